package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgible-dev/ledgible/internal/ledger"
	"github.com/ledgible-dev/ledgible/internal/logging"
	"github.com/ledgible-dev/ledgible/internal/normalize"
	"github.com/ledgible-dev/ledgible/internal/runlog"
)

// ledgerFileName is the combined canonical ledger written by combine and read
// by reconcile.
const ledgerFileName = "all_transactions.csv"

func newCombineCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Normalize all source exports into one canonical ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runCombine(absDir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func runCombine(root string) error {
	log := logging.New()

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	rawDir := resolve(root, cfg.Data.RawDir)
	now := time.Now()

	txns, outcomes := ledger.Combine(rawDir, normalize.DefaultRegistry(), now)

	var entries []runlog.Entry
	for _, out := range outcomes {
		entry := runlog.Entry{
			Timestamp: now,
			Command:   "combine",
			File:      out.Path,
		}
		if out.Err != nil {
			log.Warn().Err(out.Err).Str("file", out.Path).Str("source", string(out.Source)).Msg("skipping file")
			entry.Outcome = runlog.OutcomeFailed
			entry.Detail = out.Err.Error()
		} else {
			log.Info().Str("file", out.Path).Str("source", string(out.Source)).Int("transactions", out.Count).Msg("normalized")
			entry.Outcome = runlog.OutcomeOK
			entry.Detail = fmt.Sprintf("%d transactions", out.Count)
		}
		entries = append(entries, entry)
	}
	if err := runlog.Append(root, entries); err != nil {
		log.Warn().Err(err).Msg("writing run log")
	}

	if len(txns) == 0 {
		// A distinct, reportable outcome rather than an error.
		log.Warn().Msg("no transactions found to combine")
		return nil
	}

	outPath := resolve(root, cfg.Data.ProcessedDir, ledgerFileName)
	if err := ledger.Save(outPath, txns); err != nil {
		return err
	}

	bySource := make(map[string]int)
	for _, txn := range txns {
		bySource[string(txn.Source)]++
	}
	log.Info().
		Int("transactions", len(txns)).
		Interface("by_source", bySource).
		Str("output", outPath).
		Msg("combined ledger written")

	return nil
}
