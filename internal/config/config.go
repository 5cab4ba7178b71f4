package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level ledgible.yaml configuration.
type Config struct {
	Data           DataConfig  `yaml:"data"`
	Reconciliation ReconConfig `yaml:"reconciliation"`
}

// DataConfig holds the input/output directory layout, relative to the project
// root unless absolute.
type DataConfig struct {
	RawDir       string `yaml:"raw_dir"`
	ProcessedDir string `yaml:"processed_dir"`
	ReportsDir   string `yaml:"reports_dir"`
}

// ReconConfig holds the tunable reconciliation constants. Match/review
// thresholds are fixed design constants and deliberately not configurable.
type ReconConfig struct {
	LookbackDays            int `yaml:"lookback_days"`
	DuplicateThresholdHours int `yaml:"duplicate_threshold_hours"`
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			RawDir:       "data/raw",
			ProcessedDir: "data/processed",
			ReportsDir:   "data/reports",
		},
		Reconciliation: ReconConfig{
			LookbackDays:            45,
			DuplicateThresholdHours: 24,
		},
	}
}

// Load reads a ledgible.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadWithEnv reads the config file, then applies environment overrides. A
// .env file next to the config is loaded first if present; its absence is not
// an error.
func LoadWithEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides path and tuning settings from LEDGIBLE_* variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("LEDGIBLE_RAW_DIR"); v != "" {
		c.Data.RawDir = v
	}
	if v := os.Getenv("LEDGIBLE_PROCESSED_DIR"); v != "" {
		c.Data.ProcessedDir = v
	}
	if v := os.Getenv("LEDGIBLE_REPORTS_DIR"); v != "" {
		c.Data.ReportsDir = v
	}
	if v := os.Getenv("LEDGIBLE_LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Reconciliation.LookbackDays = n
		}
	}
	if v := os.Getenv("LEDGIBLE_DUPLICATE_THRESHOLD_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Reconciliation.DuplicateThresholdHours = n
		}
	}
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
