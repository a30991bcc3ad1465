package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TURNSTILE_SECRET", "ts-secret")
	t.Setenv("EVENT_HASH_SECRET", "ev-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if !strings.HasPrefix(cfg.DatabaseURL, "postgres://") {
		t.Errorf("expected a postgres dev default, got %q", cfg.DatabaseURL)
	}
	if cfg.BlogBaseURL != "https://everythingcs.dev/blog/" {
		t.Errorf("unexpected blog base URL %q", cfg.BlogBaseURL)
	}
	if cfg.RatePerMinute != 60 {
		t.Errorf("expected default rate limit 60, got %d", cfg.RatePerMinute)
	}
}

func TestLoad_MissingSecretsIsStartupFailure(t *testing.T) {
	t.Setenv("TURNSTILE_SECRET", "")
	t.Setenv("EVENT_HASH_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected an error when secrets are missing")
	}
	if !strings.Contains(err.Error(), "TURNSTILE_SECRET") || !strings.Contains(err.Error(), "EVENT_HASH_SECRET") {
		t.Errorf("expected every missing variable to be named, got %v", err)
	}
}

func TestLoad_BlogBaseURLNormalized(t *testing.T) {
	setRequired(t)
	t.Setenv("BLOG_BASE_URL", "https://example.com/blog")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BlogBaseURL != "https://example.com/blog/" {
		t.Errorf("expected trailing slash to be added, got %q", cfg.BlogBaseURL)
	}
}

func TestLoad_BadRateLimit(t *testing.T) {
	setRequired(t)
	t.Setenv("RATE_PER_MINUTE", "zero")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a non-numeric rate limit")
	}
}
