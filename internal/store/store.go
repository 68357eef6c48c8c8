// Package store persists a ledger as a snapshot in a data directory:
// bank.yaml carries the account-number counter, accounts.csv the accounts
// with their balances verbatim, and transactions.csv every transaction in
// stored order. Reload reconstructs accounts whose balances equal the sum
// of their reloaded transactions because both sides are stored as written,
// never rederived.
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/teller-dev/teller/internal/bank"
	"github.com/teller-dev/teller/internal/model"
)

const (
	metaFile         = "bank.yaml"
	accountsFile     = "accounts.csv"
	transactionsFile = "transactions.csv"
)

type meta struct {
	Storage        string `yaml:"storage"`
	Version        int    `yaml:"version"`
	AccountsOpened int    `yaml:"accounts_opened"`
}

// Save writes a full snapshot of the ledger to dir.
func Save(dir string, b *bank.Bank) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	m := meta{Storage: "csv_snapshot", Version: 1, AccountsOpened: b.AccountsOpened}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling bank metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, metaFile), data, 0o644); err != nil {
		return fmt.Errorf("writing bank metadata: %w", err)
	}

	accounts := b.Accounts()
	acctRows := make([]AccountRow, len(accounts))
	var txnRows []TransactionRow
	for i, a := range accounts {
		acctRows[i] = AccountRow{Number: a.Number, Kind: a.Kind, Balance: a.Balance}
		for _, t := range a.Transactions() {
			txnRows = append(txnRows, TransactionRow{Account: a.Number, Transaction: t})
		}
	}

	if err := writeFile(filepath.Join(dir, accountsFile), func(f *os.File) error {
		return WriteAccounts(f, acctRows)
	}); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}

	if err := writeFile(filepath.Join(dir, transactionsFile), func(f *os.File) error {
		return WriteTransactions(f, txnRows)
	}); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}
	return nil
}

// Load reads a snapshot from dir. A directory with no snapshot yields a
// fresh empty ledger.
func Load(dir string, log logrus.FieldLogger) (*bank.Bank, error) {
	b := bank.New(log)

	data, err := os.ReadFile(filepath.Join(dir, metaFile))
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading bank metadata: %w", err)
	}

	var m meta
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing bank metadata: %w", err)
	}
	b.AccountsOpened = m.AccountsOpened

	acctRows, err := readRows(filepath.Join(dir, accountsFile), ReadAccounts)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}

	txnRows, err := readRows(filepath.Join(dir, transactionsFile), ReadTransactions)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	byAccount := make(map[int][]model.Transaction)
	for _, row := range txnRows {
		byAccount[row.Account] = append(byAccount[row.Account], row.Transaction)
	}

	for _, row := range acctRows {
		b.Restore(row.Number, row.Kind, row.Balance, byAccount[row.Number])
	}
	return b, nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

func readRows[T any](path string, read func(r io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}
