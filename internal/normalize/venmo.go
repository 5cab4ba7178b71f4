package normalize

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// VenmoNormalizer parses Venmo transaction-history CSV exports. Venmo files
// carry account metadata above the header row and disclaimer text below the
// data, so columns are resolved by header name rather than fixed position, and
// rows are kept only when the ID cell starts with a digit.
type VenmoNormalizer struct{}

const venmoDatetimeFormat = "2006-01-02T15:04:05"

// Source returns the source tag.
func (n *VenmoNormalizer) Source() model.Source { return model.SourceVenmo }

// Normalize converts a Venmo export to canonical transactions. Venmo amounts
// are inflow-positive with an explicit sign and currency symbol; the sign is
// extracted separately from the magnitude and then flipped so the result is
// expense-positive like every other source.
func (n *VenmoNormalizer) Normalize(r io.Reader, _ time.Time) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // preamble and disclaimer rows have odd widths

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading venmo CSV: %w", err)
	}

	cols, start := venmoHeader(records)
	if cols == nil {
		return nil, fmt.Errorf("venmo CSV: header row with ID and Datetime columns not found")
	}

	var txns []model.Transaction
	for _, rec := range records[start:] {
		id := cols.get(rec, "ID")
		// Header/footer artifacts: a valid identifier starts with a digit.
		if id == "" || id[0] < '0' || id[0] > '9' {
			continue
		}

		amount, err := venmoAmount(cols.get(rec, "Amount (total)"))
		if err != nil {
			continue // row without a usable amount is excluded
		}

		txn := model.Transaction{
			Description: cols.get(rec, "Note"),
			Merchant:    venmoMerchant(cols.get(rec, "From"), cols.get(rec, "To")),
			Category:    cols.get(rec, "Type"),
			Type:        cols.get(rec, "Type"),
			Amount:      amount,
			Source:      model.SourceVenmo,
			Status:      cols.get(rec, "Status"),
			AdditionalInfo: map[string]string{
				"id":             id,
				"funding_source": cols.get(rec, "Funding Source"),
				"destination":    cols.get(rec, "Destination"),
				"fee":            cols.get(rec, "Amount (fee)"),
			},
		}

		if ts, err := time.Parse(venmoDatetimeFormat, cols.get(rec, "Datetime")); err == nil {
			txn.Date = ts
			txn.HasTime = true
		}

		txns = append(txns, txn)
	}
	return txns, nil
}

// venmoColumns maps header names to their positions.
type venmoColumns map[string]int

func (c venmoColumns) get(rec []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// venmoHeader locates the header row and returns the column map plus the index
// of the first data row.
func venmoHeader(records [][]string) (venmoColumns, int) {
	for i, rec := range records {
		cols := make(venmoColumns, len(rec))
		for j, name := range rec {
			cols[strings.TrimSpace(name)] = j
		}
		if _, hasID := cols["ID"]; !hasID {
			continue
		}
		if _, hasDT := cols["Datetime"]; hasDT {
			return cols, i + 1
		}
	}
	return nil, 0
}

// venmoAmount parses a signed, symbol-prefixed amount like "- $12.50".
// The sign is captured before stripping so that magnitude parsing never sees
// it, then reapplied flipped: Venmo exports are inflow-positive and the
// canonical convention is expense-positive.
func venmoAmount(s string) (d decimal.Decimal, err error) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(s, "+-")

	mag, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if negative {
		return mag, nil // money sent = outflow = positive expense
	}
	return mag.Neg(), nil // money received = inflow = negative
}

// venmoMerchant synthesizes a counterparty pair, only when both sides are
// present.
func venmoMerchant(from, to string) string {
	if from == "" || to == "" {
		return ""
	}
	return from + " → " + to
}
