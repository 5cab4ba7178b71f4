package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgible-dev/ledgible/internal/classify"
	"github.com/ledgible-dev/ledgible/internal/ledger"
	"github.com/ledgible-dev/ledgible/internal/logging"
	"github.com/ledgible-dev/ledgible/internal/recon"
)

func newReconcileCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run all reconciliation checks over the combined ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runReconcile(absDir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func runReconcile(root string) error {
	log := logging.New()

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	ledgerPath := resolve(root, cfg.Data.ProcessedDir, ledgerFileName)
	txns, err := ledger.Load(ledgerPath)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		log.Warn().Str("ledger", ledgerPath).Msg("ledger is empty; run combine first")
	}

	now := time.Now()
	report := recon.GenerateReport(txns, now, recon.Options{
		LookbackDays:            cfg.Reconciliation.LookbackDays,
		DuplicateThresholdHours: cfg.Reconciliation.DuplicateThresholdHours,
	})

	outPath := resolve(root, cfg.Data.ReportsDir, fmt.Sprintf("reconciliation_%s.json", now.Format("20060102_150405")))
	if err := writeReport(outPath, report); err != nil {
		return err
	}

	log.Info().
		Str("report", outPath).
		Int("transactions", report.Summary.TotalTransactions).
		Int("card_payments", len(report.CardPayments)).
		Int("payment_app_months", len(report.PaymentApps)).
		Int("potential_duplicates", len(report.Duplicates)).
		Msg("reconciliation report written")

	for _, cc := range report.CardPayments {
		log.Info().
			Str("card", cc.CardType).
			Str("payment_date", cc.PaymentDate.Format("2006-01-02")).
			Str("payment", cc.PaymentAmount.StringFixed(2)).
			Str("spent", cc.TotalSpent.StringFixed(2)).
			Str("match_pct", cc.MatchPercentage.StringFixed(2)).
			Str("status", string(cc.Status)).
			Msg("card payment")
	}
	for _, skipped := range report.SkippedPayments {
		log.Warn().Str("description", skipped).Msg("card payment with unknown issuer skipped")
	}
	for _, checkErr := range report.CheckErrors {
		log.Error().Str("check", checkErr).Msg("reconciliation check failed")
	}

	for _, s := range classify.Summarize(txns) {
		log.Info().
			Str("category", string(s.Category)).
			Int("count", s.Count).
			Str("total", s.Total.StringFixed(2)).
			Str("average", s.Average.StringFixed(2)).
			Msg("category spend")
	}

	spendPath := resolve(root, cfg.Data.ReportsDir, fmt.Sprintf("monthly_spend_%s.csv", now.Format("20060102_150405")))
	if err := writeMonthlySpend(spendPath, classify.MonthlySpendByCategory(txns)); err != nil {
		return err
	}
	log.Info().Str("report", spendPath).Msg("monthly spend written")

	return nil
}

func writeMonthlySpend(path string, cells []classify.MonthCategorySpend) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating reports dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write([]string{"month", "category", "total"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, c := range cells {
		if err := cw.Write([]string{c.Month, string(c.Category), c.Total.StringFixed(2)}); err != nil {
			return fmt.Errorf("writing %s/%s: %w", c.Month, c.Category, err)
		}
	}
	return cw.Error()
}

func writeReport(path string, report recon.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating reports dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
