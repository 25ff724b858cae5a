// Package config handles kalendarz configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL   = "https://gcatholic.org"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "kalendarz/1.0 (github.com/pfrederiksen/kalendarz)"
	DefaultLogLevel  = "info"
)

// Environment variable names
const (
	EnvBaseURL   = "KALENDARZ_BASE_URL"
	EnvTimeout   = "KALENDARZ_TIMEOUT"
	EnvUserAgent = "KALENDARZ_USER_AGENT"
	EnvLogLevel  = "KALENDARZ_LOG_LEVEL"
)

// Config holds all application configuration.
type Config struct {
	BaseURL   string        // scheme and host serving /calendar/ics/<year>-pl-PL.ics
	Timeout   time.Duration // HTTP client timeout
	UserAgent string
	LogLevel  string // debug, info, warn, error
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	// Missing .env is the normal case
	_ = godotenv.Load()

	var errs []error

	cfg := &Config{
		BaseURL:   strings.TrimRight(getEnv(EnvBaseURL, DefaultBaseURL), "/"),
		UserAgent: getEnv(EnvUserAgent, DefaultUserAgent),
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
	}

	timeout, err := getEnvDuration(EnvTimeout, DefaultTimeout)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Timeout = timeout

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	return cfg, nil
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, fmt.Errorf("%s must be an http(s) URL with a host, got %q", EnvBaseURL, c.BaseURL))
	}

	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", EnvTimeout, c.Timeout))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("%s must be one of: debug, info, warn, error; got %q", EnvLogLevel, c.LogLevel))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration reads an environment variable as a time.Duration ("45s", "2m").
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
