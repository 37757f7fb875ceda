package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "BOOKSTORE"

// envConfig mirrors Config for envconfig. Unset variables leave the
// corresponding field untouched.
type envConfig struct {
	APIBaseURL     string        `envconfig:"API_URL"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
	DBPath         string        `envconfig:"DB_PATH"`
	PageSize       int           `envconfig:"PAGE_SIZE"`
	LogLevel       string        `envconfig:"LOG_LEVEL"`
	LatestOnly     bool          `envconfig:"LATEST_ONLY"`
}

// parseEnv loads dotenvPath (when it exists) into the process environment
// without overriding variables already set, then overlays BOOKSTORE_*
// variables onto cfg.
func parseEnv(cfg *Config, dotenvPath string) error {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	ec := envConfig{
		APIBaseURL:     cfg.APIBaseURL,
		RequestTimeout: cfg.RequestTimeout,
		DBPath:         cfg.DBPath,
		PageSize:       cfg.PageSize,
		LogLevel:       cfg.LogLevel,
		LatestOnly:     cfg.LatestOnly,
	}
	if err := envconfig.Process(envPrefix, &ec); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	cfg.APIBaseURL = ec.APIBaseURL
	cfg.RequestTimeout = ec.RequestTimeout
	cfg.DBPath = ec.DBPath
	cfg.PageSize = ec.PageSize
	cfg.LogLevel = ec.LogLevel
	cfg.LatestOnly = ec.LatestOnly
	return nil
}
