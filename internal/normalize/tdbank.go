package normalize

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgible-dev/ledgible/internal/model"
	"github.com/ledgible-dev/ledgible/internal/statement"
)

// TDBankNormalizer converts raw statement CSVs (the output of the statement
// parser) into canonical transactions. Statement dates carry no year, so the
// year is inferred against the injected reference time.
type TDBankNormalizer struct{}

// Source returns the source tag.
func (n *TDBankNormalizer) Source() model.Source { return model.SourceTDBank }

// Normalize converts raw bank rows. Amounts become +debit / -credit, which is
// the expense-positive convention directly. Rows whose amount cannot be parsed
// are excluded; rows whose date cannot be parsed are kept with a zero date for
// the combiner to filter.
func (n *TDBankNormalizer) Normalize(r io.Reader, asOf time.Time) ([]model.Transaction, error) {
	raw, err := statement.ReadRaw(r)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for _, rec := range raw {
		amount, err := bankAmount(rec.Debit, rec.Credit)
		if err != nil {
			continue
		}

		txns = append(txns, model.Transaction{
			Date:        inferYear(rec.Date, asOf),
			Description: rec.Description,
			Merchant:    extractMerchant(rec.Description),
			Category:    bankCategory(rec.Description, rec.Type),
			Type:        rec.Type,
			Amount:      amount,
			Source:      model.SourceTDBank,
			Status:      "Posted",
			AdditionalInfo: map[string]string{
				"debit":  rec.Debit,
				"credit": rec.Credit,
			},
		})
	}
	return txns, nil
}

// inferYear turns an MM/DD statement date into a full date. The current year
// is assumed first; a resulting future date is pushed back exactly one year,
// which handles statements spanning a year boundary.
func inferYear(mmdd string, asOf time.Time) time.Time {
	d, err := time.Parse("01/02/2006", fmt.Sprintf("%s/%04d", mmdd, asOf.Year()))
	if err != nil {
		return time.Time{}
	}
	if d.After(asOf) {
		d = d.AddDate(-1, 0, 0)
	}
	return d
}

// bankAmount computes +debit or -credit. Exactly one of the two columns is
// populated per statement row.
func bankAmount(debit, credit string) (decimal.Decimal, error) {
	if strings.TrimSpace(debit) != "" {
		return parseAmount(debit)
	}
	if strings.TrimSpace(credit) != "" {
		c, err := parseAmount(credit)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return c.Neg(), nil
	}
	return decimal.Decimal{}, fmt.Errorf("row has neither debit nor credit")
}

// refNumPattern matches embedded transaction reference numbers.
var refNumPattern = regexp.MustCompile(`\d{8,}`)

// extractMerchant pulls a best-effort counterparty from a statement
// description like "ELECTRONIC PMT-WEB, MERCHANT NAME 1234567890". The second
// comma-delimited segment is the merchant; long digit runs are reference
// numbers, not part of the name.
func extractMerchant(desc string) string {
	desc = strings.TrimSpace(desc)
	parts := strings.Split(desc, ",")
	if len(parts) > 1 {
		return strings.TrimSpace(refNumPattern.ReplaceAllString(parts[1], ""))
	}
	return desc
}

// Keyword tables for bank transaction categorization. Order matters: rent
// processors must be checked before the generic "management" services rule.
var (
	bankIncomeKeywords   = []string{"payroll", "salary", "direct deposit"}
	bankRentKeywords     = []string{"managego", "rent"}
	bankAppKeywords      = []string{"paypal", "venmo"}
	bankCardKeywords     = []string{"applecard", "credit card", "credit crd"}
	bankCashKeywords     = []string{"atm", "withdraw"}
	bankInvestKeywords   = []string{"robinhood"}
	bankServicesKeywords = []string{"management"}
)

// bankCategory assigns a source-native category to a bank row via an ordered,
// case-insensitive substring cascade. First matching rule wins.
func bankCategory(description, txnType string) string {
	desc := strings.ToLower(description)

	if strings.EqualFold(txnType, "CREDIT") {
		if containsAny(desc, bankIncomeKeywords) {
			return "income"
		}
		return "transfer_in"
	}

	switch {
	case containsAny(desc, bankRentKeywords):
		return "rent"
	case containsAny(desc, bankAppKeywords):
		return "payment_app"
	case containsAny(desc, bankInvestKeywords):
		return "investment"
	case containsAny(desc, bankCardKeywords):
		return "credit_card_payment"
	case containsAny(desc, bankCashKeywords):
		return "cash_withdrawal"
	case containsAny(desc, bankServicesKeywords):
		return "services"
	default:
		return "banking"
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
