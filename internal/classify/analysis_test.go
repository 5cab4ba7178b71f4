package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgible-dev/ledgible/internal/model"
)

func txAt(y, m, d int, merchant, amount string) model.Transaction {
	return model.Transaction{
		Date:     time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC),
		Merchant: merchant,
		Amount:   dec(amount),
	}
}

func TestMonthlySpendByCategory(t *testing.T) {
	txns := []model.Transaction{
		txAt(2025, 3, 1, "Netflix", "15.49"),
		txAt(2025, 3, 12, "Spotify", "10.99"),
		txAt(2025, 4, 2, "Netflix", "15.49"),
		txAt(2025, 3, 5, "Payroll", "-2500.00"), // income excluded from spend
	}

	got := MonthlySpendByCategory(txns)
	require.Len(t, got, 2)

	assert.Equal(t, "2025-03", got[0].Month)
	assert.Equal(t, CategorySubscriptions, got[0].Category)
	assert.True(t, got[0].Total.Equal(dec("26.48")))

	assert.Equal(t, "2025-04", got[1].Month)
	assert.True(t, got[1].Total.Equal(dec("15.49")))
}

func TestSummarize(t *testing.T) {
	txns := []model.Transaction{
		txAt(2025, 3, 1, "Netflix", "15.49"),
		txAt(2025, 3, 12, "Spotify", "10.99"),
		txAt(2025, 3, 20, "Uber Trip", "30.00"),
	}

	got := Summarize(txns)
	require.Len(t, got, 2)

	// Sorted by total descending: taxi (30.00) before subscriptions (26.48).
	assert.Equal(t, CategoryTaxi, got[0].Category)
	assert.Equal(t, 1, got[0].Count)

	subs := got[1]
	assert.Equal(t, CategorySubscriptions, subs.Category)
	assert.Equal(t, 2, subs.Count)
	assert.True(t, subs.Total.Equal(dec("26.48")))
	assert.True(t, subs.Average.Equal(dec("13.24")), "got %s", subs.Average)
	assert.True(t, subs.Min.Equal(dec("10.99")))
	assert.True(t, subs.Max.Equal(dec("15.49")))
}

func TestSummarize_EmptyLedger(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}
