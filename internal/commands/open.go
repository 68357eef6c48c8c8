package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/model"
	"github.com/teller-dev/teller/internal/store"
)

func newOpenCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "open (checking|savings)",
		Short: "Open a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseAccountKind(args[0])
			if err != nil {
				return err
			}

			b, err := loadLedger(dir)
			if err != nil {
				return err
			}

			a, err := b.OpenAccount(kind)
			if err != nil {
				return err
			}

			if err := store.Save(dir, b); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger data directory")

	return cmd
}
