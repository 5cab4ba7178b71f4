package normalize

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgible-dev/ledgible/internal/model"
)

const robinhoodCSV = `Date,Time,Description,Merchant,Type,Amount,Status,Cardholder,Points,Balance
2025-03-04,2:45 PM,COFFEE SHOP PURCHASE,Blue Bottle,Purchase,6.50,Posted,Jane Doe,65,1200
2025-03-06,,MYSTERY ROW,Somewhere,Purchase,10.00,Posted,Jane Doe,100,1300
`

func TestRobinhood_Normalize(t *testing.T) {
	n := &RobinhoodNormalizer{}
	txns, err := n.Normalize(strings.NewReader(robinhoodCSV), time.Now())
	require.NoError(t, err)
	require.Len(t, txns, 2)

	good := txns[0]
	assert.True(t, good.Date.Equal(time.Date(2025, 3, 4, 14, 45, 0, 0, time.UTC)), "12-hour clock combined: got %s", good.Date)
	assert.True(t, good.HasTime)
	assert.Equal(t, "Blue Bottle", good.Merchant)
	assert.Equal(t, model.SourceRobinhood, good.Source)
	assert.Equal(t, "65", good.AdditionalInfo["points"])

	// Unparseable date/time combination: row survives with a zero date.
	bad := txns[1]
	assert.True(t, bad.Date.IsZero())
	assert.False(t, bad.HasTime)
	assert.True(t, bad.Amount.Equal(dec("10.00")))
}

func TestRobinhood_EmptyFile(t *testing.T) {
	n := &RobinhoodNormalizer{}
	txns, err := n.Normalize(strings.NewReader(""), time.Now())
	require.NoError(t, err)
	assert.Empty(t, txns)
}
