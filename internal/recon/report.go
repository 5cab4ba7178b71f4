package recon

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// DataSummary describes the ledger a report was generated from.
type DataSummary struct {
	TotalTransactions int                  `json:"total_transactions"`
	DateRangeStart    time.Time            `json:"date_range_start,omitempty"`
	DateRangeEnd      time.Time            `json:"date_range_end,omitempty"`
	BySource          map[model.Source]int `json:"by_source"`
}

// Report composes every reconciliation check over one ledger snapshot. It is
// derived, never persisted as ledger truth.
type Report struct {
	ID              string               `json:"id"`
	GeneratedAt     time.Time            `json:"generated_at"`
	Summary         DataSummary          `json:"data_summary"`
	CardPayments    []CardReconciliation `json:"credit_card_reconciliation"`
	SkippedPayments []string             `json:"skipped_card_payments,omitempty"`
	PaymentApps     []AppReconciliation  `json:"payment_app_reconciliation"`
	MonthlyCashFlow []MonthCashFlow      `json:"monthly_cash_flow"`
	Duplicates      []DuplicatePair      `json:"potential_duplicates"`
	Unreconciled    UnreconciledItems    `json:"unreconciled_items"`
	CheckErrors     []string             `json:"check_errors,omitempty"`
}

// Options tunes the windowed checks. Zero values fall back to the defaults.
type Options struct {
	LookbackDays            int
	DuplicateThresholdHours int
}

func (o Options) withDefaults() Options {
	if o.LookbackDays <= 0 {
		o.LookbackDays = DefaultLookbackDays
	}
	if o.DuplicateThresholdHours <= 0 {
		o.DuplicateThresholdHours = DefaultDuplicateThresholdHours
	}
	return o
}

// GenerateReport runs all five checks over the ledger. The checks are
// independent; one failing is recorded on the report and never stops the
// others. An empty ledger produces a report with empty result sets.
func GenerateReport(txns []model.Transaction, asOf time.Time, opts Options) Report {
	opts = opts.withDefaults()

	report := Report{
		ID:          uuid.NewString(),
		GeneratedAt: asOf,
		Summary:     summarize(txns),
	}

	run := func(name string, check func()) {
		defer func() {
			if r := recover(); r != nil {
				report.CheckErrors = append(report.CheckErrors, fmt.Sprintf("%s: %v", name, r))
			}
		}()
		check()
	}

	run("credit_card_reconciliation", func() {
		report.CardPayments, report.SkippedPayments = ReconcileCardPayments(txns, opts.LookbackDays)
	})
	run("payment_app_reconciliation", func() {
		report.PaymentApps = ReconcilePaymentApps(txns)
	})
	run("monthly_cash_flow", func() {
		report.MonthlyCashFlow = MonthlyCashFlow(txns)
	})
	run("potential_duplicates", func() {
		report.Duplicates = FindDuplicates(txns, opts.DuplicateThresholdHours)
	})
	run("unreconciled_items", func() {
		report.Unreconciled = FindUnreconciled(txns, asOf)
	})

	return report
}

func summarize(txns []model.Transaction) DataSummary {
	summary := DataSummary{
		TotalTransactions: len(txns),
		BySource:          make(map[model.Source]int),
	}
	for _, txn := range txns {
		summary.BySource[txn.Source]++
		if summary.DateRangeStart.IsZero() || txn.Date.Before(summary.DateRangeStart) {
			summary.DateRangeStart = txn.Date
		}
		if txn.Date.After(summary.DateRangeEnd) {
			summary.DateRangeEnd = txn.Date
		}
	}
	return summary
}
