package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds hdlcalc settings loaded from a YAML file.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// Direction selects the bounds given to parsed literals: "to" indexes
	// them 1 to n, "downto" indexes them n-1 downto 0.
	Direction string `json:"direction" yaml:"direction"`

	// TableHeader controls whether truth tables print a header row.
	TableHeader bool `json:"table_header" yaml:"table_header"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		Direction:   "to",
		TableHeader: true,
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Direction {
	case "to", "downto":
	default:
		return fmt.Errorf("direction must be \"to\" or \"downto\", got %q", c.Direction)
	}
	return nil
}

func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return l, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// Bounds returns the literal bounds for n elements.
func (c Config) Bounds(n int) (left, right int) {
	if c.Direction == "downto" {
		return n - 1, 0
	}
	return 1, n
}
