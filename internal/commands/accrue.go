package commands

import (
	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/store"
)

func newAccrueCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "accrue <account>",
		Short: "Apply monthly interest and fees to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadLedger(dir)
			if err != nil {
				return err
			}
			a, err := findAccount(b, args[0])
			if err != nil {
				return err
			}

			if err := b.ApplyInterestAndFees(a); err != nil {
				return err
			}

			return store.Save(dir, b)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger data directory")

	return cmd
}
