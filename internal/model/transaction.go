package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies which external export a transaction came from.
type Source string

const (
	SourceTDBank    Source = "td_bank"
	SourceAppleCard Source = "apple_card"
	SourceVenmo     Source = "venmo"
	SourceRobinhood Source = "robinhood"
)

// Sources returns every known source tag in a fixed order.
func Sources() []Source {
	return []Source{SourceTDBank, SourceAppleCard, SourceVenmo, SourceRobinhood}
}

// ParseSource validates a source tag read from a file or flag.
func ParseSource(s string) (Source, error) {
	for _, src := range Sources() {
		if string(src) == s {
			return src, nil
		}
	}
	return "", fmt.Errorf("unknown source %q", s)
}

// Transaction is the canonical record every source normalizes into.
// Amount is expense-positive: outflows are positive, inflows negative.
// Every normalizer converts to this convention at ingestion.
type Transaction struct {
	Date           time.Time
	HasTime        bool // false when the source has no time precision
	Description    string
	Merchant       string
	Category       string // source-native category label, not the analysis category
	Type           string // source-native transaction type
	Amount         decimal.Decimal
	Source         Source
	Status         string
	AdditionalInfo map[string]string // source-specific fields not promoted to columns
}

// YearMonth returns the calendar month bucket, e.g. "2025-03".
func (t Transaction) YearMonth() string {
	return t.Date.Format("2006-01")
}

// DateOnly returns the date with any time component stripped.
func (t Transaction) DateOnly() time.Time {
	return time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, t.Date.Location())
}
