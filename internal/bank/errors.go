package bank

import (
	"errors"
	"fmt"
	"time"

	"github.com/teller-dev/teller/internal/model"
)

// ErrNoTransactions is returned when interest and fees are requested on an
// account with no transaction history to accrue against.
var ErrNoTransactions = errors.New("account has no transactions to accrue against")

// OverdrawError rejects a transaction that would make the balance negative.
type OverdrawError struct{}

func (OverdrawError) Error() string {
	return "This transaction could not be completed due to an insufficient account balance."
}

// TransactionSequenceError rejects a transaction dated before the latest
// existing transaction.
type TransactionSequenceError struct {
	LatestDate time.Time
}

func (e TransactionSequenceError) Error() string {
	return fmt.Sprintf("New transactions must be from %s onward.", e.LatestDate.Format(model.DateFormat))
}

// LimitReason identifies which transaction limit was exceeded.
type LimitReason string

const (
	LimitDaily    LimitReason = "daily"
	LimitMonthly  LimitReason = "monthly"
	LimitInterest LimitReason = "interest"
)

// TransactionLimitError rejects an operation that exceeds a frequency
// limit. Month is set when Reason is LimitInterest.
type TransactionLimitError struct {
	Reason LimitReason
	Month  time.Time
}

func (e TransactionLimitError) Error() string {
	switch e.Reason {
	case LimitDaily:
		return "This transaction could not be completed because this account already has 2 transactions in this day."
	case LimitMonthly:
		return "This transaction could not be completed because this account already has 5 transactions in this month."
	case LimitInterest:
		return fmt.Sprintf("Cannot apply interest and fees again in the month of %s.", e.Month.Format("January"))
	}
	return "Transaction limit exceeded."
}
