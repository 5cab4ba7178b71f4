package recon

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// ReviewItem is a single record flagged for manual attention.
type ReviewItem struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// SourceSpend is the pending card spend summed for one source.
type SourceSpend struct {
	Source model.Source    `json:"source"`
	Total  decimal.Decimal `json:"total"`
}

// UnreconciledItems collects records that likely need reconciliation
// attention.
type UnreconciledItems struct {
	LargeUncategorizedBank []ReviewItem  `json:"large_uncategorized_bank"`
	RecentCardSpend        []SourceSpend `json:"recent_card_spend"`
}

// largeBankingFloor is the absolute amount above which an uncategorized
// ("banking") record is worth a look.
var largeBankingFloor = decimal.NewFromInt(100)

// recentCardWindowDays is the trailing window for pending-payment card
// exposure.
const recentCardWindowDays = 60

// FindUnreconciled flags large uncategorized bank records, and card spend in
// the trailing window that has not yet been swept by a payment.
func FindUnreconciled(txns []model.Transaction, asOf time.Time) UnreconciledItems {
	var items UnreconciledItems

	cutoff := asOf.AddDate(0, 0, -recentCardWindowDays)
	cardSpend := make(map[model.Source]decimal.Decimal)

	for _, txn := range txns {
		if txn.Source == model.SourceTDBank &&
			txn.Category == "banking" &&
			txn.Amount.Abs().GreaterThan(largeBankingFloor) {
			items.LargeUncategorizedBank = append(items.LargeUncategorizedBank, ReviewItem{
				Date:        txn.Date,
				Description: txn.Description,
				Amount:      txn.Amount,
			})
		}

		if (txn.Source == model.SourceAppleCard || txn.Source == model.SourceRobinhood) &&
			!txn.Date.Before(cutoff) &&
			txn.Amount.IsPositive() {
			cardSpend[txn.Source] = cardSpend[txn.Source].Add(txn.Amount)
		}
	}

	for src, total := range cardSpend {
		items.RecentCardSpend = append(items.RecentCardSpend, SourceSpend{Source: src, Total: total})
	}
	sort.Slice(items.RecentCardSpend, func(i, j int) bool {
		return items.RecentCardSpend[i].Source < items.RecentCardSpend[j].Source
	})
	return items
}
