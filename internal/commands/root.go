package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "teller",
		Short:   "Small banking ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newOpenCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newTransactionsCommand())
	rootCmd.AddCommand(newAccrueCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
