package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgible-dev/ledgible/internal/config"
	"github.com/ledgible-dev/ledgible/internal/model"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledgible project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	cfg := config.Default()

	// Per-source raw input directories plus processed/report outputs.
	dirs := []string{
		cfg.Data.ProcessedDir,
		cfg.Data.ReportsDir,
		"logs",
	}
	for _, src := range model.Sources() {
		dirs = append(dirs, filepath.Join(cfg.Data.RawDir, string(src)))
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, configName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Statement and export files are personal financial data; keep them out
	// of version control by default.
	gitignore := "data/\nlogs/\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Printf("Initialized ledgible project at %s\n", dir)
	return nil
}
