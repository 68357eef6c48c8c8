package model

import "fmt"

// AccountKind selects the rule set an account runs under. The set is
// closed: every kind must have a policy entry in the bank package.
type AccountKind string

const (
	AccountChecking AccountKind = "checking"
	AccountSavings  AccountKind = "savings"
)

// ParseAccountKind validates a user-supplied account kind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(s) {
	case AccountChecking, AccountSavings:
		return AccountKind(s), nil
	}
	return "", fmt.Errorf("invalid account kind %q (want checking or savings)", s)
}

// Title returns the capitalized kind name used in account summaries.
func (k AccountKind) Title() string {
	switch k {
	case AccountChecking:
		return "Checking"
	case AccountSavings:
		return "Savings"
	}
	return string(k)
}
