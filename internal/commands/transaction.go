package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/store"
)

func newAddCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "add <account> <amount> <date>",
		Short: "Add a transaction to an account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			date, err := parseDate(args[2])
			if err != nil {
				return err
			}

			b, err := loadLedger(dir)
			if err != nil {
				return err
			}
			a, err := findAccount(b, args[0])
			if err != nil {
				return err
			}

			if err := b.AddTransaction(a, amount, date); err != nil {
				return err
			}

			return store.Save(dir, b)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger data directory")

	return cmd
}

func newTransactionsCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "transactions <account>",
		Short: "List an account's transactions in date order",
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

			for _, t := range b.Transactions(a) {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger data directory")

	return cmd
}
