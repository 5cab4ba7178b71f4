package recon

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// AppReconciliation compares bank-side transfers into a payment app against
// the app's own ledger for one calendar month.
type AppReconciliation struct {
	Month      string          `json:"month"` // "2006-01"
	App        string          `json:"app"`
	BankTotal  decimal.Decimal `json:"bank_total"`
	BankCount  int             `json:"bank_count"`
	AppTotal   decimal.Decimal `json:"app_total"`
	AppCount   int             `json:"app_count"`
	Difference decimal.Decimal `json:"difference"`
	Status     Status          `json:"status"`
}

// appSources maps payment app names to their export source tags. PayPal has
// no export source yet, so its bank side reconciles against zero.
var appSources = map[string]model.Source{
	"venmo": model.SourceVenmo,
}

// ReconcilePaymentApps aggregates bank payment-app debits and app-side
// positive (outflow) amounts per calendar month and app, outer-joining the two
// sides. A month present on only one side gets zero for the other.
func ReconcilePaymentApps(txns []model.Transaction) []AppReconciliation {
	type key struct {
		month string
		app   string
	}

	cells := make(map[key]*AppReconciliation)
	cell := func(k key) *AppReconciliation {
		c, ok := cells[k]
		if !ok {
			c = &AppReconciliation{Month: k.month, App: k.app}
			cells[k] = c
		}
		return c
	}

	sourceApps := make(map[model.Source]string, len(appSources))
	for app, src := range appSources {
		sourceApps[src] = app
	}

	for _, txn := range txns {
		// Bank side: debits categorized payment_app, app inferred from
		// description.
		if txn.Source == model.SourceTDBank && txn.Category == "payment_app" {
			c := cell(key{month: txn.YearMonth(), app: inferApp(txn.Description)})
			c.BankTotal = c.BankTotal.Add(txn.Amount)
			c.BankCount++
			continue
		}
		// App side: the app's own outflows.
		if app, ok := sourceApps[txn.Source]; ok && txn.Amount.IsPositive() {
			c := cell(key{month: txn.YearMonth(), app: app})
			c.AppTotal = c.AppTotal.Add(txn.Amount)
			c.AppCount++
		}
	}

	results := make([]AppReconciliation, 0, len(cells))
	for _, c := range cells {
		c.Difference = c.BankTotal.Sub(c.AppTotal)
		c.Status = statusFor(c.Difference, appReviewThreshold)
		results = append(results, *c)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Month != results[j].Month {
			return results[i].Month < results[j].Month
		}
		return results[i].App < results[j].App
	})
	return results
}

func inferApp(desc string) string {
	lower := strings.ToLower(desc)
	switch {
	case strings.Contains(lower, "paypal"):
		return "paypal"
	case strings.Contains(lower, "venmo"):
		return "venmo"
	default:
		return "unknown"
	}
}
