package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgible-dev/ledgible/internal/logging"
	"github.com/ledgible-dev/ledgible/internal/model"
	"github.com/ledgible-dev/ledgible/internal/pdftext"
	"github.com/ledgible-dev/ledgible/internal/runlog"
	"github.com/ledgible-dev/ledgible/internal/statement"
)

func newParseCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Extract raw transactions from bank PDF statements",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runParse(absDir, pdftext.Poppler{})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func runParse(root string, extractor pdftext.Extractor) error {
	log := logging.New()

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	bankDir := resolve(root, cfg.Data.RawDir, string(model.SourceTDBank))
	pdfs, err := listPDFs(bankDir)
	if err != nil {
		return err
	}
	if len(pdfs) == 0 {
		log.Info().Str("dir", bankDir).Msg("no PDF statements found")
		return nil
	}

	now := time.Now()
	var entries []runlog.Entry
	for _, pdf := range pdfs {
		entry := runlog.Entry{Timestamp: now, Command: "parse", File: filepath.Base(pdf)}

		count, err := parseStatement(pdf, extractor)
		if err != nil {
			// An unreadable statement is skipped; the batch continues.
			log.Warn().Err(err).Str("file", pdf).Msg("skipping statement")
			entry.Outcome = runlog.OutcomeFailed
			entry.Detail = err.Error()
			entries = append(entries, entry)
			continue
		}

		log.Info().Str("file", pdf).Int("transactions", count).Msg("parsed statement")
		entry.Outcome = runlog.OutcomeOK
		entry.Detail = fmt.Sprintf("%d transactions", count)
		entries = append(entries, entry)
	}

	if err := runlog.Append(root, entries); err != nil {
		log.Warn().Err(err).Msg("writing run log")
	}
	return nil
}

// parseStatement extracts one PDF and writes the raw transaction CSV next to
// it.
func parseStatement(pdfPath string, extractor pdftext.Extractor) (int, error) {
	pages, err := extractor.PageTexts(pdfPath)
	if err != nil {
		return 0, err
	}

	txns := statement.Parse(pages)

	outPath := rawCSVPath(pdfPath)
	f, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if err := statement.WriteRaw(f, txns); err != nil {
		return 0, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return len(txns), nil
}

// rawCSVPath derives the output CSV name from the statement file name, e.g.
// "Jan 2025 Statement.pdf" -> "Jan_2025_Statement_transactions.csv".
func rawCSVPath(pdfPath string) string {
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	stem = strings.ReplaceAll(stem, " ", "_")
	return filepath.Join(filepath.Dir(pdfPath), stem+"_transactions.csv")
}

func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading statement dir: %w", err)
	}

	var pdfs []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		pdfs = append(pdfs, filepath.Join(dir, e.Name()))
	}
	sort.Strings(pdfs)
	return pdfs, nil
}
