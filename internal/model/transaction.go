package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used everywhere: dates carry no
// time-of-day.
const DateFormat = "2006-01-02"

// TransactionKind classifies a transaction.
type TransactionKind string

const (
	KindNormal   TransactionKind = "normal"
	KindInterest TransactionKind = "interest"
	KindFee      TransactionKind = "fee"
)

// Transaction is an immutable dated monetary delta. Transactions are
// created only by an account append and never mutated afterwards.
type Transaction struct {
	Amount decimal.Decimal
	Date   time.Time
	Kind   TransactionKind
}

// String renders the transaction the way statements list it:
// "2024-01-05, $50.00".
func (t Transaction) String() string {
	return fmt.Sprintf("%s, $%s", t.Date.Format(DateFormat), FormatAmount(t.Amount))
}

// FormatAmount renders an amount with two decimal places and thousands
// separators, e.g. "1,234.56". Formatting never alters the stored value.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	frac := s[len(s)-2:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
