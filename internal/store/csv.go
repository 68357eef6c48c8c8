package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

// AccountsHeader is the CSV header for accounts.csv.
const AccountsHeader = "account_number,kind,balance"

const (
	acctNumFields = 3
	acctColNumber = 0
	acctColKind   = 1
	acctColBal    = 2
)

// TransactionsHeader is the CSV header for transactions.csv.
const TransactionsHeader = "account_number,date,amount,kind"

const (
	txnNumFields  = 4
	txnColAccount = 0
	txnColDate    = 1
	txnColAmount  = 2
	txnColKind    = 3
)

// AccountRow is one row of accounts.csv. Balance is stored and restored
// verbatim; the store never recomputes it from transactions.
type AccountRow struct {
	Number  int
	Kind    model.AccountKind
	Balance decimal.Decimal
}

// TransactionRow is one row of transactions.csv.
type TransactionRow struct {
	Account     int
	Transaction model.Transaction
}

// ReadAccounts reads accounts.csv.
func ReadAccounts(r io.Reader) ([]AccountRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = acctNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var rows []AccountRow
	for i, rec := range records[1:] {
		row, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteAccounts writes accounts.csv including the header.
func WriteAccounts(w io.Writer, rows []AccountRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(AccountsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalAccount(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an AccountRow to a CSV row.
func MarshalAccount(row AccountRow) []string {
	rec := make([]string, acctNumFields)
	rec[acctColNumber] = strconv.Itoa(row.Number)
	rec[acctColKind] = string(row.Kind)
	rec[acctColBal] = row.Balance.String()
	return rec
}

// UnmarshalAccount converts a CSV row to an AccountRow.
func UnmarshalAccount(rec []string) (AccountRow, error) {
	if len(rec) != acctNumFields {
		return AccountRow{}, fmt.Errorf("expected %d fields, got %d", acctNumFields, len(rec))
	}

	number, err := strconv.Atoi(rec[acctColNumber])
	if err != nil {
		return AccountRow{}, fmt.Errorf("parsing account_number %q: %w", rec[acctColNumber], err)
	}

	kind, err := model.ParseAccountKind(rec[acctColKind])
	if err != nil {
		return AccountRow{}, err
	}

	balance, err := decimal.NewFromString(rec[acctColBal])
	if err != nil {
		return AccountRow{}, fmt.Errorf("parsing balance %q: %w", rec[acctColBal], err)
	}

	return AccountRow{Number: number, Kind: kind, Balance: balance}, nil
}

// ReadTransactions reads transactions.csv, preserving file order.
func ReadTransactions(r io.Reader) ([]TransactionRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = txnNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var rows []TransactionRow
	for i, rec := range records[1:] {
		row, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteTransactions writes transactions.csv including the header.
func WriteTransactions(w io.Writer, rows []TransactionRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalTransaction(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a TransactionRow to a CSV row.
func MarshalTransaction(row TransactionRow) []string {
	rec := make([]string, txnNumFields)
	rec[txnColAccount] = strconv.Itoa(row.Account)
	rec[txnColDate] = row.Transaction.Date.Format(model.DateFormat)
	rec[txnColAmount] = row.Transaction.Amount.String()
	rec[txnColKind] = string(row.Transaction.Kind)
	return rec
}

// UnmarshalTransaction converts a CSV row to a TransactionRow.
func UnmarshalTransaction(rec []string) (TransactionRow, error) {
	if len(rec) != txnNumFields {
		return TransactionRow{}, fmt.Errorf("expected %d fields, got %d", txnNumFields, len(rec))
	}

	account, err := strconv.Atoi(rec[txnColAccount])
	if err != nil {
		return TransactionRow{}, fmt.Errorf("parsing account_number %q: %w", rec[txnColAccount], err)
	}

	date, err := time.Parse(model.DateFormat, rec[txnColDate])
	if err != nil {
		return TransactionRow{}, fmt.Errorf("parsing date %q: %w", rec[txnColDate], err)
	}

	amount, err := decimal.NewFromString(rec[txnColAmount])
	if err != nil {
		return TransactionRow{}, fmt.Errorf("parsing amount %q: %w", rec[txnColAmount], err)
	}

	return TransactionRow{
		Account: account,
		Transaction: model.Transaction{
			Amount: amount,
			Date:   date,
			Kind:   model.TransactionKind(rec[txnColKind]),
		},
	}, nil
}
