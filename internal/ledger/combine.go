package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ledgible-dev/ledgible/internal/model"
	"github.com/ledgible-dev/ledgible/internal/normalize"
)

// FileOutcome records what happened to a single input file during a combine
// run, so batch callers can report per-file failures without aborting.
type FileOutcome struct {
	Path   string
	Source model.Source
	Count  int
	Err    error
}

// Combine normalizes every CSV under each source's directory and concatenates
// the results into one ledger, sorted by date descending. A missing directory
// contributes nothing; a file that fails to parse is reported in its outcome
// and skipped. Records without a usable date are dropped so every ledger
// record has a non-null date, amount, and source. Zero input files yield an
// empty ledger, not an error.
func Combine(rawDir string, reg *normalize.Registry, asOf time.Time) ([]model.Transaction, []FileOutcome) {
	var all []model.Transaction
	var outcomes []FileOutcome

	for _, src := range model.Sources() {
		norm := reg.Get(src)
		if norm == nil {
			continue
		}

		dir := filepath.Join(rawDir, string(src))
		files, err := listCSVs(dir)
		if err != nil {
			outcomes = append(outcomes, FileOutcome{Path: dir, Source: src, Err: err})
			continue
		}

		for _, path := range files {
			txns, err := normalizeFile(path, norm, asOf)
			outcomes = append(outcomes, FileOutcome{Path: path, Source: src, Count: len(txns), Err: err})
			if err != nil {
				continue
			}
			all = append(all, txns...)
		}
	}

	all = dropIncomplete(all)
	SortByDateDesc(all)
	return all, outcomes
}

// SortByDateDesc sorts most-recent-first. The sort is stable so identical
// input order gives identical output order.
func SortByDateDesc(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
}

// dropIncomplete filters records that violate the ledger invariant: a usable
// date and a known source on every record.
func dropIncomplete(txns []model.Transaction) []model.Transaction {
	kept := txns[:0]
	for _, txn := range txns {
		if txn.Date.IsZero() || txn.Source == "" {
			continue
		}
		kept = append(kept, txn)
	}
	return kept
}

func normalizeFile(path string, norm normalize.Normalizer, asOf time.Time) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := norm.Normalize(f, asOf)
	if err != nil {
		return nil, fmt.Errorf("normalizing %s: %w", path, err)
	}
	return txns, nil
}

func listCSVs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Save writes the combined ledger to a CSV file, creating parent directories.
func Save(path string, txns []model.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, txns); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

// Load reads a combined ledger CSV from disk. A missing file is an empty
// ledger, not an error.
func Load(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	txns, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return txns, nil
}
