package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgible-dev/ledgible/internal/buildinfo"
	"github.com/ledgible-dev/ledgible/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgible",
		Short:   "Unified personal transaction ledger with cross-source reconciliation",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newCombineCommand())
	rootCmd.AddCommand(newReconcileCommand())

	return rootCmd
}

// configName is the project configuration file at the project root.
const configName = "ledgible.yaml"

// loadConfig reads the project config with environment overrides applied.
func loadConfig(root string) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(filepath.Join(root, configName))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolve joins path elements under the project root unless the first element
// is already absolute.
func resolve(root, dir string, elems ...string) string {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return filepath.Join(append([]string{dir}, elems...)...)
}
