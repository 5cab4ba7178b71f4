package recon

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// DuplicatePair flags two records from different sources with the same amount
// and timestamps within the threshold window. Detection only; no record is
// ever removed.
type DuplicatePair struct {
	Date1        time.Time       `json:"date_1"`
	Source1      model.Source    `json:"source_1"`
	Description1 string          `json:"description_1"`
	Date2        time.Time       `json:"date_2"`
	Source2      model.Source    `json:"source_2"`
	Description2 string          `json:"description_2"`
	Amount       decimal.Decimal `json:"amount"`
	HoursApart   float64         `json:"hours_apart"`
}

// FindDuplicates scans for near-duplicate records across sources. Records are
// grouped by exact amount first so the pairwise comparison only runs within a
// group; the quadratic cost is confined to records that could actually
// collide.
func FindDuplicates(txns []model.Transaction, thresholdHours int) []DuplicatePair {
	groups := make(map[string][]model.Transaction)
	var order []string
	for _, txn := range txns {
		k := txn.Amount.String()
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], txn)
	}

	threshold := float64(thresholdHours)
	var pairs []DuplicatePair
	for _, k := range order {
		group := groups[k]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if a.Source == b.Source {
					continue
				}
				hours := math.Abs(a.Date.Sub(b.Date).Hours())
				if hours > threshold {
					continue
				}
				pairs = append(pairs, DuplicatePair{
					Date1:        a.Date,
					Source1:      a.Source,
					Description1: a.Description,
					Date2:        b.Date,
					Source2:      b.Source,
					Description2: b.Description,
					Amount:       a.Amount,
					HoursApart:   math.Round(hours*10) / 10,
				})
			}
		}
	}
	return pairs
}
