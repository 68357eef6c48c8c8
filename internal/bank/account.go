package bank

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

// Account holds a balance and its ordered transaction history. The balance
// always equals the sum of the transaction amounts, and the history is
// non-decreasing by date.
//
// CanAddTransaction and AddTransaction are deliberately separate calls with
// no built-in atomicity: callers gate every mutating add with a validation
// call immediately before it, single-threaded.
type Account struct {
	Number  int
	Kind    model.AccountKind
	Balance decimal.Decimal

	transactions []model.Transaction
}

func newAccount(number int, kind model.AccountKind) *Account {
	return &Account{Number: number, Kind: kind, Balance: decimal.Zero}
}

// Transactions returns the account's history in date order.
func (a *Account) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// CanAddTransaction reports whether a transaction of the given amount and
// date may be appended. Base checks run first and short-circuit: overdraft,
// then chronology (same-day transactions are fine). Savings frequency
// limits apply only after both pass, and count normal transactions only.
func (a *Account) CanAddTransaction(amount decimal.Decimal, date time.Time) error {
	if a.Balance.Add(amount).IsNegative() {
		return OverdrawError{}
	}
	if latest, ok := a.latestDate(); ok && date.Before(latest) {
		return TransactionSequenceError{LatestDate: latest}
	}

	p := policies[a.Kind]
	if p.dailyLimit > 0 && a.countNormal(date, sameDay) >= p.dailyLimit {
		return TransactionLimitError{Reason: LimitDaily}
	}
	if p.monthlyLimit > 0 && a.countNormal(date, sameMonth) >= p.monthlyLimit {
		return TransactionLimitError{Reason: LimitMonthly}
	}
	return nil
}

// AddTransaction appends a transaction, keeps the history sorted by date
// (stable, so same-day transactions keep their relative order), and updates
// the balance. It assumes CanAddTransaction already passed and performs no
// re-validation.
func (a *Account) AddTransaction(amount decimal.Decimal, date time.Time, kind model.TransactionKind) {
	a.transactions = append(a.transactions, model.Transaction{Amount: amount, Date: date, Kind: kind})
	sort.SliceStable(a.transactions, func(i, j int) bool {
		return a.transactions[i].Date.Before(a.transactions[j].Date)
	})
	a.Balance = a.Balance.Add(amount)
}

// ApplyInterestAndFees accrues one month of interest, dated the last day of
// the latest transaction's month. At most one accrual per calendar month.
// Kinds with a low-balance fee charge it on the same day when the
// post-interest balance is below the threshold.
func (a *Account) ApplyInterestAndFees() error {
	latest, ok := a.latestDate()
	if !ok {
		return ErrNoTransactions
	}
	if a.interestAppliedInMonth(latest) {
		return TransactionLimitError{Reason: LimitInterest, Month: latest}
	}

	lastDay := lastDayOfMonth(latest)
	p := policies[a.Kind]
	a.AddTransaction(a.Balance.Mul(p.interestRate), lastDay, model.KindInterest)

	if !p.lowBalanceFee.IsZero() && a.Balance.LessThan(p.feeThreshold) {
		a.AddTransaction(p.lowBalanceFee, lastDay, model.KindFee)
	}
	return nil
}

// String renders the account the way summaries list it:
// "Checking#000000001,\tbalance: $1,234.56".
func (a *Account) String() string {
	return fmt.Sprintf("%s#%09d,\tbalance: $%s", a.Kind.Title(), a.Number, model.FormatAmount(a.Balance))
}

func (a *Account) latestDate() (time.Time, bool) {
	if len(a.transactions) == 0 {
		return time.Time{}, false
	}
	return a.transactions[len(a.transactions)-1].Date, true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func (a *Account) countNormal(date time.Time, match func(a, b time.Time) bool) int {
	n := 0
	for _, t := range a.transactions {
		if t.Kind == model.KindNormal && match(t.Date, date) {
			n++
		}
	}
	return n
}

func (a *Account) interestAppliedInMonth(d time.Time) bool {
	for _, t := range a.transactions {
		if t.Kind == model.KindInterest && sameMonth(t.Date, d) {
			return true
		}
	}
	return false
}

// lastDayOfMonth returns the final calendar day of the month containing d,
// handling the December to January rollover.
func lastDayOfMonth(d time.Time) time.Time {
	firstOfNext := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
