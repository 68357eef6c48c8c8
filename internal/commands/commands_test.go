package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func initLedger(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--name", "Test Bank")
	require.NoError(t, err)
	return dir
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "init", dir, "--name", "Test Bank")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized Test Bank ledger")

	for _, name := range []string{"teller.yaml", "bank.yaml", "accounts.csv", "transactions.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "missing %s", name)
	}
}

func TestOpenAndSummary(t *testing.T) {
	dir := initLedger(t)

	out, err := run(t, "open", "checking", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "Checking#000000001,\tbalance: $0.00\n", out)

	out, err = run(t, "open", "savings", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "Savings#000000002,\tbalance: $0.00\n", out)

	out, err = run(t, "summary", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t,
		"Checking#000000001,\tbalance: $0.00\nSavings#000000002,\tbalance: $0.00\n",
		out)
}

func TestOpenInvalidKind(t *testing.T) {
	dir := initLedger(t)

	_, err := run(t, "open", "premium", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid account kind")
}

func TestAddAndListTransactions(t *testing.T) {
	dir := initLedger(t)
	_, err := run(t, "open", "checking", "--dir", dir)
	require.NoError(t, err)

	_, err = run(t, "add", "1", "1500.00", "2024-01-05", "--dir", dir)
	require.NoError(t, err)
	_, err = run(t, "add", "1", "-82.17", "2024-01-06", "--dir", dir)
	require.NoError(t, err)

	out, err := run(t, "transactions", "1", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05, $1,500.00\n2024-01-06, $-82.17\n", out)

	out, err = run(t, "summary", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "balance: $1,417.83")
}

func TestAddRejectedLeavesStateUnchanged(t *testing.T) {
	dir := initLedger(t)
	_, err := run(t, "open", "checking", "--dir", dir)
	require.NoError(t, err)
	_, err = run(t, "add", "1", "10.00", "2024-01-05", "--dir", dir)
	require.NoError(t, err)

	_, err = run(t, "add", "1", "-15.00", "2024-01-06", "--dir", dir)
	require.Error(t, err)
	assert.Equal(t, "This transaction could not be completed due to an insufficient account balance.", err.Error())

	out, err := run(t, "transactions", "1", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05, $10.00\n", out)
}

func TestAddMalformedInput(t *testing.T) {
	dir := initLedger(t)
	_, err := run(t, "open", "checking", "--dir", dir)
	require.NoError(t, err)

	_, err = run(t, "add", "1", "ten", "2024-01-05", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dollar amount")

	_, err = run(t, "add", "1", "10.00", "01/05/2024", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestAccountNotFound(t *testing.T) {
	dir := initLedger(t)

	_, err := run(t, "add", "9", "10.00", "2024-01-05", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account 9 not found")

	_, err = run(t, "transactions", "9", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account 9 not found")
}

func TestAccrue(t *testing.T) {
	dir := initLedger(t)
	_, err := run(t, "open", "savings", "--dir", dir)
	require.NoError(t, err)
	_, err = run(t, "add", "1", "1000.00", "2024-01-15", "--dir", dir)
	require.NoError(t, err)

	_, err = run(t, "accrue", "1", "--dir", dir)
	require.NoError(t, err)

	out, err := run(t, "transactions", "1", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15, $1,000.00\n2024-01-31, $4.10\n", out)

	// Accruing again in the same month is rejected and persists nothing.
	_, err = run(t, "accrue", "1", "--dir", dir)
	require.Error(t, err)
	assert.Equal(t, "Cannot apply interest and fees again in the month of January.", err.Error())

	out, err = run(t, "transactions", "1", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15, $1,000.00\n2024-01-31, $4.10\n", out)
}

func TestImportCommand(t *testing.T) {
	dir := initLedger(t)
	_, err := run(t, "open", "checking", "--dir", dir)
	require.NoError(t, err)

	statementPath := filepath.Join(t.TempDir(), "statement.csv")
	csv := "date,description,amount\n2024-01-05,Payroll,1500.00\n2024-01-06,Groceries,-82.17\n"
	require.NoError(t, os.WriteFile(statementPath, []byte(csv), 0o644))

	out, err := run(t, "import", "1", statementPath, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 transactions into account 1")

	out, err = run(t, "transactions", "1", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05, $1,500.00\n2024-01-06, $-82.17\n", out)
}

func TestImportPartialFailurePersistsPrefix(t *testing.T) {
	dir := initLedger(t)
	_, err := run(t, "open", "checking", "--dir", dir)
	require.NoError(t, err)

	statementPath := filepath.Join(t.TempDir(), "statement.csv")
	csv := "date,description,amount\n2024-01-05,Deposit,100.00\n2024-01-06,Too big,-500.00\n"
	require.NoError(t, os.WriteFile(statementPath, []byte(csv), 0o644))

	_, err = run(t, "import", "1", statementPath, "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imported 1 of 2 lines")

	out, err := run(t, "transactions", "1", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05, $100.00\n", out)
}
