package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected Load to succeed, got error: %v", err)
	}

	if cfg.BaseURL != "https://openrouter.ai/api/v1" {
		t.Fatalf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 120*time.Second {
		t.Fatalf("expected default timeout of 120s, got %v", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Fatalf("expected default of 3 retries, got %d", cfg.MaxRetries)
	}
}

func TestLoadBindsEnvironment(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("OPENROUTER_BASE_URL", "http://localhost:8080/api/v1")
	t.Setenv("OPENROUTER_TIMEOUT", "5s")
	t.Setenv("OPENROUTER_MAX_RETRIES", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected Load to succeed, got error: %v", err)
	}

	if cfg.APIKey != "sk-or-test" {
		t.Fatalf("expected API key from environment, got %q", cfg.APIKey)
	}
	if cfg.BaseURL != "http://localhost:8080/api/v1" {
		t.Fatalf("expected base URL override, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("expected timeout override, got %v", cfg.Timeout)
	}
	if cfg.MaxRetries != 1 {
		t.Fatalf("expected retry override, got %d", cfg.MaxRetries)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := &Config{BaseURL: "not a url", Timeout: time.Second, MaxRetries: 0, RetryDelay: time.Millisecond}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for malformed base URL")
	}

	cfg = &Config{BaseURL: "https://openrouter.ai/api/v1", Timeout: 0, MaxRetries: 0, RetryDelay: time.Millisecond}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for zero timeout")
	}
}

func TestHeaders(t *testing.T) {
	cfg := &Config{Referer: "https://example.com/app", Title: "Example App"}
	headers := cfg.Headers()

	if headers["HTTP-Referer"] != "https://example.com/app" {
		t.Fatalf("expected referer header, got %q", headers["HTTP-Referer"])
	}
	if headers["X-Title"] != "Example App" {
		t.Fatalf("expected title header, got %q", headers["X-Title"])
	}

	empty := (&Config{}).Headers()
	if len(empty) != 0 {
		t.Fatalf("expected no headers for empty config, got %v", empty)
	}
}
