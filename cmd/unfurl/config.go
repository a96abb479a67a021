package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds CLI settings loadable from a YAML file. Flags take
// precedence over file values, which take precedence over defaults.
type Config struct {
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
	RPS         float64       `yaml:"rps"`
	UserAgent   string        `yaml:"userAgent"`
	Cache       string        `yaml:"cache"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:     10 * time.Second,
		Concurrency: 3,
		RPS:         1.0,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// applyFlags overlays non-zero CLI flag values onto the config.
func (c *Config) applyFlags(cli *CLI) {
	if cli.Timeout > 0 {
		c.Timeout = cli.Timeout
	}
	if cli.Concurrency > 0 {
		c.Concurrency = cli.Concurrency
	}
	if cli.RPS > 0 {
		c.RPS = cli.RPS
	}
	if cli.UserAgent != "" {
		c.UserAgent = cli.UserAgent
	}
	if cli.Cache != "" {
		c.Cache = cli.Cache
	}
}
