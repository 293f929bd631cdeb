package app

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	TemplateRoot    string // directory scanned for template dirs holding terraform.tfvars
	Listen          string // address for the console API server
	TerraformBinary string // provisioning tool binary, resolved on PATH

	LogFormat string
	LogLevel  string
}

// NewConfig validates and completes a Config. Unset fields fall back to
// TFCONSOLE_* environment variables (a .env file in the working directory
// is honored when present) and then to defaults.
func NewConfig(cfg Config) (*Config, error) {
	// Missing .env is the normal case; real environment variables still apply.
	_ = godotenv.Load()

	if cfg.TemplateRoot == "" {
		cfg.TemplateRoot = os.Getenv("TFCONSOLE_ROOT")
	}
	if cfg.Listen == "" {
		cfg.Listen = envOr("TFCONSOLE_LISTEN", ":8080")
	}
	if cfg.TerraformBinary == "" {
		cfg.TerraformBinary = envOr("TFCONSOLE_BINARY", "terraform")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = envOr("TFCONSOLE_LOG_FORMAT", "text")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr("TFCONSOLE_LOG_LEVEL", "info")
	}

	if cfg.TemplateRoot == "" {
		return nil, errors.New("TemplateRoot is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
