// Package bank implements the transaction validation and accrual engine:
// a ledger of checking and savings accounts, each holding an ordered
// sequence of dated transactions, with kind-specific rules for overdraft
// prevention, transaction-frequency limits, and once-per-month interest
// and fee accrual.
//
// The package is single-threaded by design: exactly one logical actor
// mutates a ledger at a time, and each operation touches exactly one
// account. Adapting it to multiple actors requires an external lock
// around the validate-then-mutate sequence.
package bank

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/teller-dev/teller/internal/model"
)

// Bank is a ledger of accounts. Account numbers are dense, 1-based,
// strictly increasing, and never reused.
type Bank struct {
	// AccountsOpened is the allocation counter; the next account gets
	// AccountsOpened+1. Persisted verbatim by the store.
	AccountsOpened int

	accounts []*Account
	byNumber map[int]*Account
	log      logrus.FieldLogger
}

// New creates an empty ledger. A nil logger falls back to the logrus
// standard logger.
func New(log logrus.FieldLogger) *Bank {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Bank{byNumber: make(map[int]*Account), log: log}
}

// OpenAccount allocates the next account number and registers a new
// account of the given kind.
func (b *Bank) OpenAccount(kind model.AccountKind) (*Account, error) {
	if _, ok := policies[kind]; !ok {
		return nil, fmt.Errorf("unknown account kind %q", kind)
	}
	b.AccountsOpened++
	a := newAccount(b.AccountsOpened, kind)
	b.accounts = append(b.accounts, a)
	b.byNumber[a.Number] = a
	b.log.WithFields(logrus.Fields{"account": a.Number, "kind": kind}).Debug("account opened")
	return a, nil
}

// Account looks up an account by number. Absence is a sentinel, not an
// error; callers handle it explicitly.
func (b *Bank) Account(number int) (*Account, bool) {
	a, ok := b.byNumber[number]
	return a, ok
}

// Accounts returns all accounts in creation order.
func (b *Bank) Accounts() []*Account {
	out := make([]*Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

// AddTransaction validates and then appends a normal transaction. A failed
// validation is a no-op: balance and history are left untouched and the
// error propagates unchanged.
func (b *Bank) AddTransaction(a *Account, amount decimal.Decimal, date time.Time) error {
	if err := a.CanAddTransaction(amount, date); err != nil {
		return err
	}
	a.AddTransaction(amount, date, model.KindNormal)
	b.log.WithFields(logrus.Fields{"account": a.Number, "amount": amount}).Debug("transaction added")
	return nil
}

// Transactions returns the account's history in date order.
func (b *Bank) Transactions(a *Account) []model.Transaction {
	return a.Transactions()
}

// ApplyInterestAndFees delegates to the account's accrual rules,
// propagating any error untouched.
func (b *Bank) ApplyInterestAndFees(a *Account) error {
	if err := a.ApplyInterestAndFees(); err != nil {
		return err
	}
	b.log.WithFields(logrus.Fields{"account": a.Number}).Debug("interest and fees applied")
	return nil
}

// Restore re-registers an account reloaded from a snapshot. The stored
// balance and transaction order are taken verbatim, never recomputed.
func (b *Bank) Restore(number int, kind model.AccountKind, balance decimal.Decimal, txns []model.Transaction) *Account {
	a := &Account{Number: number, Kind: kind, Balance: balance, transactions: txns}
	b.accounts = append(b.accounts, a)
	b.byNumber[number] = a
	return a
}
