package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables consulted by Load.
const (
	EnvSpreadsheetID      = "SPREADSHEET_ID"
	EnvServiceAccountFile = "SERVICE_ACCOUNT_FILE"
)

// Config holds the runtime configuration for the sheets-mcp server.
// Every tool operates on the single spreadsheet identified here; the
// service account key file provides the credentials to reach it.
type Config struct {
	// SpreadsheetID is the ID of the Google Spreadsheet all operations target.
	SpreadsheetID string

	// ServiceAccountFile is the path to the service account key JSON file.
	ServiceAccountFile string
}

// LoadEnv loads variables from a .env file in the working directory when one
// exists. Values already present in the process environment take precedence
// over the file, so a missing .env is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment variables from .env file")
	} else {
		slog.Debug("no .env file found, using process environment")
	}
}

// Load builds the configuration from flag values and the environment.
// Non-empty flag values take precedence over environment variables.
func Load(flagSpreadsheetID, flagServiceAccountFile string) (*Config, error) {
	cfg := &Config{
		SpreadsheetID:      flagSpreadsheetID,
		ServiceAccountFile: flagServiceAccountFile,
	}

	if cfg.SpreadsheetID == "" {
		cfg.SpreadsheetID = os.Getenv(EnvSpreadsheetID)
	}
	if cfg.ServiceAccountFile == "" {
		cfg.ServiceAccountFile = os.Getenv(EnvServiceAccountFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required configuration values are set.
func (c *Config) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet ID is required (set %s or --spreadsheet-id)", EnvSpreadsheetID)
	}
	if c.ServiceAccountFile == "" {
		return fmt.Errorf("service account file is required (set %s or --service-account-file)", EnvServiceAccountFile)
	}
	return nil
}
