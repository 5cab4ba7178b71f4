package recon

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// MonthCashFlow summarizes one month of bank activity. With the
// expense-positive convention, net cash flow is the negated amount sum, so a
// surplus month is positive.
type MonthCashFlow struct {
	Month         string          `json:"month"` // "2006-01"
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	NetCashFlow   decimal.Decimal `json:"net_cash_flow"`
}

// MonthlyCashFlow aggregates bank-source records per calendar month:
// expenses are the positive amounts, income the absolute value of the
// negative ones.
func MonthlyCashFlow(txns []model.Transaction) []MonthCashFlow {
	months := make(map[string]*MonthCashFlow)
	for _, txn := range txns {
		if txn.Source != model.SourceTDBank {
			continue
		}
		m, ok := months[txn.YearMonth()]
		if !ok {
			m = &MonthCashFlow{Month: txn.YearMonth()}
			months[txn.YearMonth()] = m
		}
		if txn.Amount.IsPositive() {
			m.TotalExpenses = m.TotalExpenses.Add(txn.Amount)
		} else {
			m.TotalIncome = m.TotalIncome.Add(txn.Amount.Abs())
		}
		m.NetCashFlow = m.NetCashFlow.Sub(txn.Amount)
	}

	out := make([]MonthCashFlow, 0, len(months))
	for _, m := range months {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
