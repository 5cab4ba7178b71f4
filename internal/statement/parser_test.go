package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `Statement of Account
ACCOUNT SUMMARY
Beginning Balance 5,000.00
Electronic Deposits
POSTING DATE DESCRIPTION AMOUNT
01/03 ACH DEPOSIT, PAYROLL ACME CORP 2,500.00
01/17 ACH DEPOSIT, PAYROLL ACME CORP 2,500.00
Subtotal: 5,000.00
Electronic Payments
POSTING DATE DESCRIPTION AMOUNT
01/05 ELECTRONIC PMT-WEB, MANAGEGO 12345678 2,100.00
01/09 ELECTRONIC PMT-WEB, APPLECARD GSBANK 431.20
Subtotal: 2,531.20
DAILY BALANCE SUMMARY
01/03 7,500.00`

func TestParse_Sections(t *testing.T) {
	txns := Parse([]string{samplePage})
	require.Len(t, txns, 4)

	// Deposits section lines come out as credits with the debit field empty.
	assert.Equal(t, "01/03", txns[0].Date)
	assert.Equal(t, "CREDIT", txns[0].Type)
	assert.Equal(t, "ACH DEPOSIT, PAYROLL ACME CORP", txns[0].Description)
	assert.Equal(t, "2500.00", txns[0].Credit)
	assert.Empty(t, txns[0].Debit)

	// Payments section lines are debits; thousands separators are stripped.
	assert.Equal(t, "01/05", txns[2].Date)
	assert.Equal(t, "DEBIT", txns[2].Type)
	assert.Equal(t, "2100.00", txns[2].Debit)
	assert.Empty(t, txns[2].Credit)
}

func TestParse_LinesOutsideSectionsDropped(t *testing.T) {
	// The daily balance line matches the transaction pattern but sits after a
	// subtotal reset the section to none.
	txns := Parse([]string{samplePage})
	for _, txn := range txns {
		assert.NotEqual(t, "7,500.00", txn.Credit)
		assert.NotEqual(t, "7500.00", txn.Credit)
	}
}

func TestParse_PatternMatchBeforeAnySection(t *testing.T) {
	page := "01/03 LOOKS LIKE A TRANSACTION 100.00\nElectronic Deposits\n01/04 REAL DEPOSIT 50.00"
	txns := Parse([]string{page})
	require.Len(t, txns, 1)
	assert.Equal(t, "01/04", txns[0].Date)
}

func TestParse_SectionCarriesAcrossPages(t *testing.T) {
	page1 := "Electronic Payments\n01/05 FIRST PAGE PAYMENT 10.00"
	page2 := "01/06 SECOND PAGE PAYMENT 20.00"
	txns := Parse([]string{page1, page2})
	require.Len(t, txns, 2)
	assert.Equal(t, "DEBIT", txns[1].Type)
}

func TestParse_HeaderLinesSkippedWithoutStateChange(t *testing.T) {
	page := "Electronic Deposits\nPOSTING DATE DESCRIPTION\n01/03 DEPOSIT 75.00"
	txns := Parse([]string{page})
	require.Len(t, txns, 1)
	assert.Equal(t, "CREDIT", txns[0].Type)
}

func TestParse_EmptyPageSkipped(t *testing.T) {
	txns := Parse([]string{"", "   \n  ", "Electronic Deposits\n01/03 DEPOSIT 75.00"})
	require.Len(t, txns, 1)
}

func TestParse_NoMatchesYieldsEmpty(t *testing.T) {
	txns := Parse([]string{"nothing to see here"})
	assert.Empty(t, txns)
}

func TestParse_AmountRequiresTwoDecimals(t *testing.T) {
	page := "Electronic Deposits\n01/03 BAD AMOUNT 75.5\n01/04 GOOD AMOUNT 75.50"
	txns := Parse([]string{page})
	require.Len(t, txns, 1)
	assert.Equal(t, "01/04", txns[0].Date)
}
