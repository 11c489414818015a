// Package config handles client configuration from environment variables
// and explicit overrides.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds the settings consumed by the dispatch layer. Every field can
// be bound from the environment and overridden programmatically.
type Config struct {
	// APIKey authenticates requests. May be empty for a client that only
	// performs the PKCE code exchange.
	APIKey string `env:"OPENROUTER_API_KEY"`
	// BaseURL is the API root.
	BaseURL string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1" validate:"required,url"`
	// Timeout bounds a single request, including body read.
	Timeout time.Duration `env:"OPENROUTER_TIMEOUT" envDefault:"120s" validate:"gt=0"`
	// MaxRetries is the retry ceiling for transient failures.
	MaxRetries int `env:"OPENROUTER_MAX_RETRIES" envDefault:"3" validate:"gte=0,lte=10"`
	// RetryDelay is the initial backoff interval between attempts.
	RetryDelay time.Duration `env:"OPENROUTER_RETRY_DELAY" envDefault:"500ms" validate:"gt=0"`
	// Referer is sent as the HTTP-Referer identification header.
	Referer string `env:"OPENROUTER_HTTP_REFERER"`
	// Title is sent as the X-Title identification header.
	Title string `env:"OPENROUTER_X_TITLE"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds a Config from environment variables and defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Headers returns the optional identification headers to attach to every
// request.
func (c *Config) Headers() map[string]string {
	headers := make(map[string]string)
	if c.Referer != "" {
		headers["HTTP-Referer"] = c.Referer
	}
	if c.Title != "" {
		headers["X-Title"] = c.Title
	}
	return headers
}
