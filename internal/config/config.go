// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/mathmonsters/internal/store"
)

// Config holds process configuration. Command-line flags override it.
type Config struct {
	DBPath      string `env:"MATHMONSTERS_DB"`
	CatalogPath string `env:"MATHMONSTERS_CATALOG"`
	LogLevel    string `env:"MATHMONSTERS_LOG_LEVEL" envDefault:"info"`
	LogMode     string `env:"MATHMONSTERS_LOG_MODE" envDefault:"prod"`

	// LogFile is the log destination. "-" logs to stderr.
	LogFile string `env:"MATHMONSTERS_LOG_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and fills unset paths with XDG defaults.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = p
	}
	if cfg.LogFile == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return Config{}, err
		}
		cfg.LogFile = p
	}
	return cfg, nil
}

// DefaultLogPath returns the XDG state path of the log file.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "mathmonsters", "mathmonsters.log"), nil
}
