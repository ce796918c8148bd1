// Package cli provides the household command line and its common
// initialization: .env loading, configuration and logging.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"household/internal/config"
	"household/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// SetupLogger builds the application logger from cfg and sets it as the
// default slog logger. debug forces the debug level.
func SetupLogger(cfg *config.Config, debug bool) *log.Logger {
	lc := log.DefaultConfig()
	lc.Level = log.ParseLevel(cfg.LogLevel)
	if debug {
		lc.Level = log.ParseLevel("debug")
	}
	lc.Format = cfg.LogFormat
	lc.Component = log.ComponentCLI

	logger := log.New(lc)
	log.SetDefault(logger)
	return logger
}
