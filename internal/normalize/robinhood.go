package normalize

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// RobinhoodNormalizer parses Robinhood card CSV exports. Date and time arrive
// in separate columns on a 12-hour clock and are combined into one timestamp.
type RobinhoodNormalizer struct{}

const (
	rhDatetimeFormat = "2006-01-02 3:04 PM"
	rhNumFields      = 10
	rhColDate        = 0
	rhColTime        = 1
	rhColDesc        = 2
	rhColMerchant    = 3
	rhColType        = 4
	rhColAmount      = 5
	rhColStatus      = 6
	rhColCardholder  = 7
	rhColPoints      = 8
	rhColBalance     = 9
)

// Source returns the source tag.
func (n *RobinhoodNormalizer) Source() model.Source { return model.SourceRobinhood }

// Normalize converts a Robinhood export to canonical transactions. A row whose
// date/time combination cannot be parsed is still emitted, with a zero date;
// the ledger combiner filters those out.
func (n *RobinhoodNormalizer) Normalize(r io.Reader, _ time.Time) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = rhNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading robinhood CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for _, rec := range records[1:] {
		amount, err := parseAmount(rec[rhColAmount])
		if err != nil {
			continue // row without a usable amount is excluded
		}

		txn := model.Transaction{
			Description: rec[rhColDesc],
			Merchant:    rec[rhColMerchant],
			Category:    rec[rhColType],
			Type:        rec[rhColType],
			Amount:      amount,
			Source:      model.SourceRobinhood,
			Status:      rec[rhColStatus],
			AdditionalInfo: map[string]string{
				"cardholder": rec[rhColCardholder],
				"points":     rec[rhColPoints],
				"balance":    rec[rhColBalance],
			},
		}

		if ts, err := time.Parse(rhDatetimeFormat, rec[rhColDate]+" "+rec[rhColTime]); err == nil {
			txn.Date = ts
			txn.HasTime = true
		}

		txns = append(txns, txn)
	}
	return txns, nil
}
