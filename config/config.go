package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete simulator configuration
type Config struct {
	Files   FilesConfig   `json:"files" yaml:"files"`
	Account AccountConfig `json:"account" yaml:"account"`
	Market  MarketConfig  `json:"market" yaml:"market"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// FilesConfig names the two persisted flat files
type FilesConfig struct {
	Snapshot string `json:"snapshot" yaml:"snapshot"`
	Ledger   string `json:"ledger" yaml:"ledger"`
}

// AccountConfig contains account initialization parameters
type AccountConfig struct {
	StartingCash float64 `json:"starting_cash" yaml:"starting_cash"`
}

// MarketConfig bounds the random price walk, in percent per update
type MarketConfig struct {
	ViewBoundPercent float64 `json:"view_bound_percent" yaml:"view_bound_percent"`
	TickBoundPercent float64 `json:"tick_bound_percent" yaml:"tick_bound_percent"`
}

// JournalConfig selects the optional trade-journal mirror
type JournalConfig struct {
	Type   string `json:"type" yaml:"type"` // "none" or "sqlite"
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LogConfig points the session log at a file; empty disables logging
type LogConfig struct {
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Files.Snapshot == "" {
		return fmt.Errorf("files.snapshot is required")
	}
	if c.Files.Ledger == "" {
		return fmt.Errorf("files.ledger is required")
	}
	if c.Account.StartingCash <= 0 {
		return fmt.Errorf("account.starting_cash must be positive")
	}
	if c.Market.ViewBoundPercent <= 0 || c.Market.ViewBoundPercent > 100 {
		return fmt.Errorf("market.view_bound_percent must be between 0 and 100")
	}
	if c.Market.TickBoundPercent <= 0 || c.Market.TickBoundPercent > 100 {
		return fmt.Errorf("market.tick_bound_percent must be between 0 and 100")
	}
	if c.Journal.Type != "none" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'none' or 'sqlite'")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Files: FilesConfig{
			Snapshot: "portfolio.csv",
			Ledger:   "transactions.csv",
		},
		Account: AccountConfig{
			StartingCash: 10000,
		},
		Market: MarketConfig{
			ViewBoundPercent: 5.0,
			TickBoundPercent: 2.0,
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Log: LogConfig{
			File: "papertrade.log",
		},
	}
}
