package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the bookstore CLI.
//
// Fields:
//   - APIBaseURL: absolute base URL every API path is appended to.
//   - RequestTimeout: upper bound for a single HTTP request.
//   - DBPath: SQLite file holding the persisted credential.
//   - PageSize: number of books requested per catalog page.
//   - LatestOnly: drop catalog responses that are not for the latest search.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DBPath         string
	PageSize       int
	LogLevel       string
	LatestOnly     bool
}

// LoadDefaults populates c with sensible defaults. APIBaseURL has none and
// must be configured.
func (c *Config) LoadDefaults() {
	c.RequestTimeout = 10 * time.Second
	c.DBPath = "bookstore.db"
	c.PageSize = 8
	c.LogLevel = "info"
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("api url is not configured")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("api url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("api url %q must be absolute", c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.PageSize < 1 {
		return errors.New("page size must be at least 1")
	}
	if c.DBPath == "" {
		return errors.New("database path is empty")
	}
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// LoadConfig constructs a Config from defaults, the environment, an
// optional JSON file and command-line args, in that order; later sources
// win. The result is validated.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
