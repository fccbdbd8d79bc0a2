package config

import (
	"testing"
)

func TestEnvLabel_DefaultsToDevelopment(t *testing.T) {
	t.Setenv("ENV", "")

	if got := EnvLabel(); got != "development" {
		t.Errorf("EnvLabel() = %q, want %q", got, "development")
	}
}

func TestEnvLabel_UsesENV(t *testing.T) {
	t.Setenv("ENV", "staging")

	if got := EnvLabel(); got != "staging" {
		t.Errorf("EnvLabel() = %q, want %q", got, "staging")
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	if err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("SETUP_HOOKS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != 8080 {
		t.Errorf("expected HTTPPort 8080, got %d", cfg.HTTPPort)
	}
	if cfg.Env != "development" {
		t.Errorf("expected Env development, got %s", cfg.Env)
	}
	if cfg.RateLimit != 0 {
		t.Errorf("expected unlimited rate, got %f", cfg.RateLimit)
	}
	if cfg.ProviderURL != "" {
		t.Errorf("expected empty ProviderURL, got %s", cfg.ProviderURL)
	}
	if len(cfg.SetupHooks) != 0 {
		t.Errorf("expected no setup hooks, got %v", cfg.SetupHooks)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	if err == nil {
		t.Error("expected error for invalid PORT")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9999")
	t.Setenv("PROVIDER_URL", "https://provider.example.com")
	t.Setenv("WEBHOOK_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("SETUP_HOOKS", " echo one , echo two ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("expected Env production, got %s", cfg.Env)
	}
	if cfg.HTTPPort != 9999 {
		t.Errorf("expected HTTPPort 9999, got %d", cfg.HTTPPort)
	}
	if cfg.ProviderURL != "https://provider.example.com" {
		t.Errorf("unexpected ProviderURL: %s", cfg.ProviderURL)
	}
	if cfg.WebhookSecret != "s3cret" {
		t.Errorf("unexpected WebhookSecret: %s", cfg.WebhookSecret)
	}
	if cfg.RateLimit != 2.5 || cfg.RateLimitBurst != 10 {
		t.Errorf("unexpected rate limit: %f burst %d", cfg.RateLimit, cfg.RateLimitBurst)
	}
	if len(cfg.SetupHooks) != 2 || cfg.SetupHooks[0] != "echo one" || cfg.SetupHooks[1] != "echo two" {
		t.Errorf("unexpected setup hooks: %v", cfg.SetupHooks)
	}
}
