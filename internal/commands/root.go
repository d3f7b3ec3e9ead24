package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martin-ueding/bank-statement-parser/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string
	var dbPath string

	rootCmd := &cobra.Command{
		Use:     "bankstatement",
		Short:   "Classify and summarize bank statement expenses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "bankstatement.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (overrides config)")

	opts := &rootOptions{config: &configPath, db: &dbPath}
	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newAddCommand(opts))
	rootCmd.AddCommand(newTableCommand(opts))
	rootCmd.AddCommand(newDeleteCommand(opts))
	rootCmd.AddCommand(newImportCommand(opts))
	rootCmd.AddCommand(newTruncateCommand(opts))
	rootCmd.AddCommand(newPlotCommand(opts))
	rootCmd.AddCommand(newCSVCommand(opts))

	return rootCmd
}

// rootOptions carries the persistent flag values into subcommands.
type rootOptions struct {
	config *string
	db     *string
}

func (o *rootOptions) open() (*env, error) {
	return openEnv(*o.config, *o.db)
}
