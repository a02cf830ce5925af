// Package cli provides common initialization for the pendingboard binary.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"pendingboard/internal/config"
	applog "pendingboard/internal/log"
	ports "pendingboard/internal/sheets"
	"pendingboard/internal/sheets/google"
	"pendingboard/internal/sheets/memory"
)

// SetupLogger initializes structured logging and installs it as default.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored silently as the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting the
// process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// SelectPublisher builds the report publisher the config asks for. "none"
// returns nil, which disables the publish route.
func SelectPublisher(ctx context.Context, cfg *config.Config) (ports.TablePublisher, error) {
	switch cfg.Publisher {
	case "none":
		return nil, nil
	case "memory":
		return memory.New(), nil
	case "google":
		cli, err := google.New(ctx, cfg.GoogleSpreadsheetID, cfg.ReportSheetName)
		if err != nil {
			return nil, fmt.Errorf("google publisher: %w", err)
		}
		return cli, nil
	default:
		return nil, fmt.Errorf("unknown publisher %q", cfg.Publisher)
	}
}
