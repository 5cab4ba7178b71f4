package normalize

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// AppleCardNormalizer parses Apple Card monthly CSV exports.
type AppleCardNormalizer struct{}

const (
	appleDateFormat  = "01/02/2006"
	appleNumFields   = 8
	appleColTxnDate  = 0
	appleColClearing = 1
	appleColDesc     = 2
	appleColMerchant = 3
	appleColCategory = 4
	appleColType     = 5
	appleColAmount   = 6
	appleColBuyer    = 7
)

// Source returns the source tag.
func (n *AppleCardNormalizer) Source() model.Source { return model.SourceAppleCard }

// Normalize converts an Apple Card export to canonical transactions. One row
// yields one record. Issuer exports contain only settled transactions, so
// status is fixed to "Posted"; exports carry no time component. Amounts are
// purchase-positive already, which matches the expense-positive convention.
func (n *AppleCardNormalizer) Normalize(r io.Reader, _ time.Time) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = appleNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading apple card CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		date, err := time.Parse(appleDateFormat, rec[appleColTxnDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[appleColTxnDate], err)
		}

		amount, err := parseAmount(rec[appleColAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, rec[appleColAmount], err)
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Description: rec[appleColDesc],
			Merchant:    rec[appleColMerchant],
			Category:    rec[appleColCategory],
			Type:        rec[appleColType],
			Amount:      amount,
			Source:      model.SourceAppleCard,
			Status:      "Posted",
			AdditionalInfo: map[string]string{
				"clearing_date": rec[appleColClearing],
				"purchased_by":  rec[appleColBuyer],
			},
		})
	}
	return txns, nil
}
