package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that all required configuration values are present.
// JWT and database credentials are always required; everything else has a
// sensible default in LoadConfig.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.DBUser == "" {
		errors = append(errors, "DB_USER is not set")
	}
	if cfg.DBPassword == "" {
		errors = append(errors, "DB_PASSWORD is not set")
	}
	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET is not set")
	}
	if IsProduction() && cfg.DBSSLMode == "disable" {
		errors = append(errors, "DB_SSL_MODE must not be disable in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
