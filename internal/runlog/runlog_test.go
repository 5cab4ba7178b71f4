package runlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRead(t *testing.T) {
	root := t.TempDir()
	ts := time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC)

	first := []Entry{
		{Timestamp: ts, Command: "parse", File: "march.pdf", Outcome: OutcomeOK, Detail: "18 transactions"},
		{Timestamp: ts, Command: "parse", File: "bad.pdf", Outcome: OutcomeFailed, Detail: "no transactions matched"},
	}
	require.NoError(t, Append(root, first))

	second := []Entry{
		{Timestamp: ts.Add(time.Hour), Command: "combine", File: "all_transactions.csv", Outcome: OutcomeOK, Detail: ""},
	}
	require.NoError(t, Append(root, second))

	got, err := Read(root)
	require.NoError(t, err)
	require.Len(t, got, 3, "appends accumulate under one header")

	assert.True(t, got[0].Timestamp.Equal(ts))
	assert.Equal(t, "parse", got[0].Command)
	assert.Equal(t, OutcomeFailed, got[1].Outcome)
	assert.Equal(t, "combine", got[2].Command)
}

func TestRead_MissingLogIsEmpty(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDetailWithCommaSurvives(t *testing.T) {
	root := t.TempDir()
	e := Entry{
		Timestamp: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		Command:   "combine",
		File:      "x.csv",
		Outcome:   OutcomeSkipped,
		Detail:    "zero-date rows: 3, empty-source rows: 1",
	}
	require.NoError(t, Append(root, []Entry{e}))

	got, err := Read(root)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e.Detail, got[0].Detail)
}
