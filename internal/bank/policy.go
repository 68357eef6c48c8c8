package bank

import (
	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

// policy encodes the per-kind rule set. A zero limit means unlimited; a
// zero fee means the kind never charges one.
type policy struct {
	interestRate  decimal.Decimal
	dailyLimit    int
	monthlyLimit  int
	lowBalanceFee decimal.Decimal
	feeThreshold  decimal.Decimal
}

var policies = map[model.AccountKind]policy{
	model.AccountChecking: {
		interestRate:  decimal.RequireFromString("0.0008"),
		lowBalanceFee: decimal.RequireFromString("-5.44"),
		feeThreshold:  decimal.NewFromInt(100),
	},
	model.AccountSavings: {
		interestRate: decimal.RequireFromString("0.0041"),
		dailyLimit:   2,
		monthlyLimit: 5,
	},
}
