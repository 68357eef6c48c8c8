// Package statement parses bank statement CSV exports and feeds them into
// a ledger account through the normal validation gate.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/bank"
	"github.com/teller-dev/teller/internal/model"
)

// Line is one parsed statement row.
type Line struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

const (
	numFields = 3
	colDate   = 0
	colDesc   = 1
	colAmount = 2
)

// Parse reads a date,description,amount CSV statement (header row skipped).
func Parse(r io.Reader) ([]Line, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var lines []Line
	for i, rec := range records[1:] {
		line, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func parseRow(rec []string) (Line, error) {
	date, err := time.Parse(model.DateFormat, rec[colDate])
	if err != nil {
		return Line{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return Line{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	return Line{Date: date, Description: rec[colDesc], Amount: amount}, nil
}

// Import adds lines to the account one at a time through the usual
// validate-then-mutate gate. It stops at the first rejected line and
// reports how many lines were applied; applied lines stay applied.
func Import(b *bank.Bank, acct *bank.Account, lines []Line) (int, error) {
	for i, line := range lines {
		if err := b.AddTransaction(acct, line.Amount, line.Date); err != nil {
			return i, err
		}
	}
	return len(lines), nil
}
