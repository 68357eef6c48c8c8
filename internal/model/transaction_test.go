package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":           "0.00",
		"50":          "50.00",
		"999.9":       "999.90",
		"1234.56":     "1,234.56",
		"1000000.03":  "1,000,000.03",
		"-5.44":       "-5.44",
		"-1234567.89": "-1,234,567.89",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatAmount(decimal.RequireFromString(in)), "input %s", in)
	}
}

func TestTransactionString(t *testing.T) {
	txn := Transaction{
		Amount: decimal.RequireFromString("50"),
		Date:   time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		Kind:   KindNormal,
	}
	assert.Equal(t, "2024-01-05, $50.00", txn.String())
}

func TestParseAccountKind(t *testing.T) {
	kind, err := ParseAccountKind("checking")
	require.NoError(t, err)
	assert.Equal(t, AccountChecking, kind)

	kind, err = ParseAccountKind("savings")
	require.NoError(t, err)
	assert.Equal(t, AccountSavings, kind)

	_, err = ParseAccountKind("Checking")
	require.Error(t, err)
	_, err = ParseAccountKind("")
	require.Error(t, err)
}

func TestAccountKindTitle(t *testing.T) {
	assert.Equal(t, "Checking", AccountChecking.Title())
	assert.Equal(t, "Savings", AccountSavings.Title())
}
