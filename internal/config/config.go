package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Upload limits
	MaxUploadBytes int64

	// Session lifecycle
	SessionTTL time.Duration

	// Report publisher selection: "none", "memory" or "google"
	Publisher string

	// Google Sheets publisher
	GoogleSpreadsheetID string
	ReportSheetName     string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8081"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		SessionTTL:     getEnvDuration("SESSION_TTL", 2*time.Hour),

		Publisher:           getEnv("REPORT_PUBLISHER", "none"),
		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		ReportSheetName:     getEnv("REPORT_SHEET_NAME", "Summary"),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.MaxUploadBytes < 1<<10 {
		errors = append(errors, fmt.Sprintf("invalid max upload size %d: must be at least 1KB", c.MaxUploadBytes))
	} else if c.MaxUploadBytes > 256<<20 {
		errors = append(errors, fmt.Sprintf("invalid max upload size %d: must be at most 256MB", c.MaxUploadBytes))
	}

	if c.SessionTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid session TTL %v: must be at least 1 minute", c.SessionTTL))
	} else if c.SessionTTL > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid session TTL %v: must be at most 24 hours", c.SessionTTL))
	}

	switch c.Publisher {
	case "none", "memory", "google":
	default:
		errors = append(errors, fmt.Sprintf("invalid report publisher '%s': must be one of [none memory google]", c.Publisher))
	}

	if c.Publisher == "google" {
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using the google publisher")
		}
		if c.ReportSheetName == "" {
			errors = append(errors, "report sheet name cannot be empty when using the google publisher")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
