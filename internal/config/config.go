package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the config file name inside a data directory.
const File = "teller.yaml"

// Config represents the top-level teller.yaml configuration.
type Config struct {
	Bank    BankConfig    `yaml:"bank"`
	Logging LoggingConfig `yaml:"logging"`
}

// BankConfig identifies the bank.
type BankConfig struct {
	Name string `yaml:"name"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // logrus level name, e.g. "info", "debug"
}

// Load reads a teller.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(bankName string) *Config {
	return &Config{
		Bank:    BankConfig{Name: bankName},
		Logging: LoggingConfig{Level: "info"},
	}
}
