package commands

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/bank"
	"github.com/teller-dev/teller/internal/config"
	"github.com/teller-dev/teller/internal/logging"
	"github.com/teller-dev/teller/internal/model"
	"github.com/teller-dev/teller/internal/store"
)

// loadLedger loads the snapshot in the data directory, with a logger built
// from teller.yaml (defaults when the file is absent).
func loadLedger(dir string) (*bank.Bank, error) {
	cfg := loadConfig(dir)
	log := logging.Setup(cfg.Logging.Level)
	return store.Load(dir, log)
}

func loadConfig(dir string) *config.Config {
	cfg, err := config.Load(filepath.Join(dir, config.File))
	if err != nil {
		return config.Default("Teller")
	}
	return cfg
}

// findAccount resolves a user-supplied account number argument.
func findAccount(b *bank.Bank, arg string) (*bank.Account, error) {
	number, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid account number %q", arg)
	}
	a, ok := b.Account(number)
	if !ok {
		return nil, fmt.Errorf("account %d not found", number)
	}
	return a, nil
}

// parseAmount parses exact decimal amount text. The core never sees
// malformed input; it is rejected here at the edge.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid dollar amount %q", s)
	}
	return d, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(model.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}
