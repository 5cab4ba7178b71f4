package classify

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// MonthCategorySpend is one cell of the month x category spend table.
type MonthCategorySpend struct {
	Month    string // "2006-01"
	Category Category
	Total    decimal.Decimal
}

// MonthlySpendByCategory sums expenses (positive amounts) per calendar month
// and analysis category. Results are sorted by month, then category, for
// deterministic output.
func MonthlySpendByCategory(txns []model.Transaction) []MonthCategorySpend {
	rules := DefaultRules()
	totals := make(map[string]map[Category]decimal.Decimal)

	for _, txn := range txns {
		if !txn.Amount.IsPositive() {
			continue
		}
		month := txn.YearMonth()
		if totals[month] == nil {
			totals[month] = make(map[Category]decimal.Decimal)
		}
		cat := ClassifyWith(rules, txn)
		totals[month][cat] = totals[month][cat].Add(txn.Amount)
	}

	var out []MonthCategorySpend
	for month, byCat := range totals {
		for cat, total := range byCat {
			out = append(out, MonthCategorySpend{Month: month, Category: cat, Total: total})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CategorySummary aggregates expense statistics for one analysis category.
type CategorySummary struct {
	Category Category
	Total    decimal.Decimal
	Count    int
	Average  decimal.Decimal
	Min      decimal.Decimal
	Max      decimal.Decimal
}

// Summarize computes per-category expense statistics, sorted by total spend
// descending.
func Summarize(txns []model.Transaction) []CategorySummary {
	rules := DefaultRules()
	byCat := make(map[Category]*CategorySummary)

	for _, txn := range txns {
		if !txn.Amount.IsPositive() {
			continue
		}
		cat := ClassifyWith(rules, txn)
		s, ok := byCat[cat]
		if !ok {
			s = &CategorySummary{Category: cat, Min: txn.Amount, Max: txn.Amount}
			byCat[cat] = s
		}
		s.Total = s.Total.Add(txn.Amount)
		s.Count++
		if txn.Amount.LessThan(s.Min) {
			s.Min = txn.Amount
		}
		if txn.Amount.GreaterThan(s.Max) {
			s.Max = txn.Amount
		}
	}

	var out []CategorySummary
	for _, s := range byCat {
		s.Average = s.Total.Div(decimal.NewFromInt(int64(s.Count))).Round(2)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
