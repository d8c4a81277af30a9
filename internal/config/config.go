// Package config provides configuration loading and validation for the
// advisor service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when the environment leaves a value unset.
const (
	DefaultPort         = 8001
	DefaultFetchTimeout = 30 * time.Second
	DefaultLLMTimeout   = 30 * time.Second
)

// Config holds everything the service reads from its environment.
type Config struct {
	DatabaseURL  string
	GeminiAPIKey string
	Port         int
	FetchTimeout time.Duration
	LLMTimeout   time.Duration
	UseBrowser   bool
}

// Load reads configuration from environment variables, applying defaults for
// everything except the secrets.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Port:         DefaultPort,
		FetchTimeout: DefaultFetchTimeout,
		LLMTimeout:   DefaultLLMTimeout,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT_SECONDS %q: %w", v, err)
		}
		cfg.FetchTimeout = time.Duration(seconds) * time.Second
	}

	if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT_SECONDS %q: %w", v, err)
		}
		cfg.LLMTimeout = time.Duration(seconds) * time.Second
	}

	if v := os.Getenv("USE_BROWSER"); v != "" {
		useBrowser, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid USE_BROWSER %q: %w", v, err)
		}
		cfg.UseBrowser = useBrowser
	}

	return cfg, nil
}

// Validate checks that the configuration can actually run the service.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("config error: fetch timeout must be positive")
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("config error: LLM timeout must be positive")
	}
	return nil
}
