package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/statement"
	"github.com/teller-dev/teller/internal/store"
)

func newImportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import <account> <file>",
		Short: "Import a bank statement CSV into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadLedger(dir)
			if err != nil {
				return err
			}
			a, err := findAccount(b, args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			defer f.Close()

			lines, err := statement.Parse(f)
			if err != nil {
				return err
			}

			applied, importErr := statement.Import(b, a, lines)

			// Lines applied before a rejection stay applied: each one was
			// its own validated unit of work.
			if err := store.Save(dir, b); err != nil {
				return err
			}

			if importErr != nil {
				return fmt.Errorf("imported %d of %d lines: %w", applied, len(lines), importErr)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions into account %d\n", applied, a.Number)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger data directory")

	return cmd
}
