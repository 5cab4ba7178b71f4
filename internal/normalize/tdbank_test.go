package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgible-dev/ledgible/internal/model"
)

const bankCSV = `Date,Transaction Type,Description,Debit,Credit
01/10,DEBIT,"ELECTRONIC PMT-WEB, MANAGEGO 123456789",2100.00,
12/31,CREDIT,"ACH DEPOSIT, PAYROLL ACME CORP",,2500.00
01/12,DEBIT,"CCD DEBIT, APPLECARD GSBANK PAYMENT",431.20,
`

func TestTDBank_Normalize(t *testing.T) {
	asOf := date(2025, 1, 15)

	n := &TDBankNormalizer{}
	txns, err := n.Normalize(strings.NewReader(bankCSV), asOf)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	rent := txns[0]
	assert.True(t, rent.Date.Equal(date(2025, 1, 10)))
	assert.True(t, rent.Amount.Equal(dec("2100.00")), "debits are positive expenses")
	assert.Equal(t, "MANAGEGO", rent.Merchant, "reference digits stripped from merchant")
	assert.Equal(t, "rent", rent.Category)
	assert.Equal(t, model.SourceTDBank, rent.Source)
	assert.Equal(t, "Posted", rent.Status)
	assert.Equal(t, "2100.00", rent.AdditionalInfo["debit"])

	payroll := txns[1]
	assert.True(t, payroll.Date.Equal(date(2024, 12, 31)), "future date pushed back one year: got %s", payroll.Date)
	assert.True(t, payroll.Amount.Equal(dec("-2500.00")), "credits are negative inflows")
	assert.Equal(t, "income", payroll.Category)

	card := txns[2]
	assert.Equal(t, "credit_card_payment", card.Category)
}

func TestTDBank_YearInference(t *testing.T) {
	asOf := date(2025, 1, 15)

	// Past within the assumed year stays put.
	assert.True(t, inferYear("01/10", asOf).Equal(date(2025, 1, 10)))
	// Future under the assumed year means last year.
	assert.True(t, inferYear("12/31", asOf).Equal(date(2024, 12, 31)))
	// Garbage gives a zero date.
	assert.True(t, inferYear("99/99", asOf).IsZero())
}

func TestTDBank_CategoryCascade(t *testing.T) {
	tests := []struct {
		desc     string
		txnType  string
		expected string
	}{
		{"ELECTRONIC PMT-WEB, MANAGEGO RENT MANAGEMENT", "DEBIT", "rent"},
		{"ELECTRONIC PMT-WEB, XYZ MANAGEMENT LLC", "DEBIT", "services"},
		{"VENMO PAYMENT", "DEBIT", "payment_app"},
		{"PAYPAL INST XFER", "DEBIT", "payment_app"},
		{"ROBINHOOD FUNDS", "DEBIT", "investment"},
		{"APPLECARD GSBANK PAYMENT", "DEBIT", "credit_card_payment"},
		{"ATM CASH WITHDRAWAL", "DEBIT", "cash_withdrawal"},
		{"MISC DEBIT", "DEBIT", "banking"},
		{"ACH DEPOSIT PAYROLL", "CREDIT", "income"},
		{"TRANSFER FROM SAVINGS", "CREDIT", "transfer_in"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, bankCategory(tt.desc, tt.txnType), "description %q", tt.desc)
	}
}

func TestTDBank_MerchantExtraction(t *testing.T) {
	assert.Equal(t, "MANAGEGO", extractMerchant("ELECTRONIC PMT-WEB, MANAGEGO 123456789"))
	assert.Equal(t, "NO COMMA DESCRIPTION", extractMerchant("NO COMMA DESCRIPTION"))
	// Short digit runs are part of the name, not reference numbers.
	assert.Equal(t, "STORE 42", extractMerchant("POS DEBIT, STORE 42"))
}

func TestTDBank_RowWithoutAmountExcluded(t *testing.T) {
	csv := "Date,Transaction Type,Description,Debit,Credit\n01/10,DEBIT,NO AMOUNTS,,\n"
	n := &TDBankNormalizer{}
	txns, err := n.Normalize(strings.NewReader(csv), date(2025, 1, 15))
	require.NoError(t, err)
	assert.Empty(t, txns)
}
