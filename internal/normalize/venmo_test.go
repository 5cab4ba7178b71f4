package normalize

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgible-dev/ledgible/internal/model"
)

const venmoCSV = `Account Statement - (@jane-doe)
Account Activity
,ID,Datetime,Type,Status,Note,From,To,Amount (total),Amount (fee),Funding Source,Destination
,3456789012345678901,2025-03-02T14:30:00,Payment,Complete,Dinner,Jane Doe,Bob Jones,- $42.50,,Venmo balance,
,3456789012345678902,2025-03-05T09:15:00,Payment,Complete,Rent split,Bob Jones,Jane Doe,+ $800.00,,,Venmo balance
,,,,,,,,,,,
,In case of errors or questions see the disclosure
`

func TestVenmo_Normalize(t *testing.T) {
	n := &VenmoNormalizer{}
	txns, err := n.Normalize(strings.NewReader(venmoCSV), time.Now())
	require.NoError(t, err)
	require.Len(t, txns, 2, "header/footer artifacts must be discarded")

	sent := txns[0]
	assert.True(t, sent.Date.Equal(time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC)))
	assert.True(t, sent.HasTime)
	assert.Equal(t, "Dinner", sent.Description)
	assert.Equal(t, "Jane Doe → Bob Jones", sent.Merchant)
	assert.True(t, sent.Amount.Equal(dec("42.50")), "money sent is a positive expense: got %s", sent.Amount)
	assert.Equal(t, model.SourceVenmo, sent.Source)
	assert.Equal(t, "3456789012345678901", sent.AdditionalInfo["id"])
	assert.Equal(t, "Venmo balance", sent.AdditionalInfo["funding_source"])

	received := txns[1]
	assert.True(t, received.Amount.Equal(dec("-800.00")), "money received is a negative inflow: got %s", received.Amount)
	assert.Equal(t, "Venmo balance", received.AdditionalInfo["destination"])
}

func TestVenmo_MerchantRequiresBothParties(t *testing.T) {
	assert.Empty(t, venmoMerchant("Jane", ""))
	assert.Empty(t, venmoMerchant("", "Bob"))
	assert.Equal(t, "Jane → Bob", venmoMerchant("Jane", "Bob"))
}

func TestVenmo_MissingHeaderFailsFile(t *testing.T) {
	n := &VenmoNormalizer{}
	_, err := n.Normalize(strings.NewReader("just,some,rows\n1,2,3\n"), time.Now())
	require.Error(t, err)
}

func TestVenmoAmount_SignExtraction(t *testing.T) {
	got, err := venmoAmount("- $1,050.25")
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("1050.25")))

	got, err = venmoAmount("+ $20.00")
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("-20.00")))

	_, err = venmoAmount("")
	require.Error(t, err)
}
