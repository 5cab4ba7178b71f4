package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data/raw", cfg.Data.RawDir)
	assert.Equal(t, "data/processed", cfg.Data.ProcessedDir)
	assert.Equal(t, "data/reports", cfg.Data.ReportsDir)
	assert.Equal(t, 45, cfg.Reconciliation.LookbackDays)
	assert.Equal(t, 24, cfg.Reconciliation.DuplicateThresholdHours)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgible.yaml")

	cfg := Default()
	cfg.Reconciliation.LookbackDays = 30
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialFileKeepsZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgible.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  raw_dir: inbox\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "inbox", got.Data.RawDir)
	assert.Zero(t, got.Reconciliation.LookbackDays)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadWithEnv_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgible.yaml")
	require.NoError(t, Save(path, Default()))

	t.Setenv("LEDGIBLE_RAW_DIR", "/srv/raw")
	t.Setenv("LEDGIBLE_LOOKBACK_DAYS", "30")
	t.Setenv("LEDGIBLE_DUPLICATE_THRESHOLD_HOURS", "not-a-number")

	got, err := LoadWithEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/raw", got.Data.RawDir)
	assert.Equal(t, 30, got.Reconciliation.LookbackDays)
	assert.Equal(t, 24, got.Reconciliation.DuplicateThresholdHours, "bad override ignored")
}
