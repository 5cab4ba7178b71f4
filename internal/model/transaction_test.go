package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	for _, src := range Sources() {
		got, err := ParseSource(string(src))
		require.NoError(t, err)
		assert.Equal(t, src, got)
	}

	_, err := ParseSource("mystery_bank")
	require.Error(t, err)
}

func TestYearMonth(t *testing.T) {
	txn := Transaction{Date: time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC)}
	assert.Equal(t, "2025-03", txn.YearMonth())
}

func TestDateOnly(t *testing.T) {
	txn := Transaction{Date: time.Date(2025, 3, 2, 14, 30, 45, 0, time.UTC), HasTime: true}
	assert.True(t, txn.DateOnly().Equal(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)))
}
