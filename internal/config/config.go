// Package config handles environment variable loading for ports, database strings, etc.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultEnv is the environment label used when ENV is unset or empty.
const DefaultEnv = "development"

// DefaultHTTPPort is the port the server listens on unless PORT overrides it.
const DefaultHTTPPort = 8080

// Config holds all configuration values for the application.
type Config struct {
	// Deployment environment label (display only, no branching)
	Env string

	// HTTP server port
	HTTPPort int

	// Database connection string
	DatabaseURL string

	// Downstream provider endpoint; empty means stub mode
	ProviderURL string

	// Shared secret for inbound webhook signatures; empty disables verification
	WebhookSecret string

	// Per-client send rate limit in requests per second; 0 means unlimited
	RateLimit float64

	// Burst size for the send rate limiter
	RateLimitBurst int

	// OTLP collector address for tracing; empty disables tracing
	OTELEndpoint string

	// Commands run as setup hooks before migrations, comma-separated in SETUP_HOOKS
	SetupHooks []string
}

// EnvLabel returns the deployment environment label, defaulting to
// "development" when ENV is unset or empty.
func EnvLabel() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return DefaultEnv
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	port := DefaultHTTPPort
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		port = p
	}

	rateLimit := 0.0
	if rateStr := os.Getenv("RATE_LIMIT"); rateStr != "" {
		r, err := strconv.ParseFloat(rateStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
		}
		rateLimit = r
	}

	burst := 1
	if burstStr := os.Getenv("RATE_LIMIT_BURST"); burstStr != "" {
		b, err := strconv.Atoi(burstStr)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
		}
		burst = b
	}

	var hooks []string
	for _, hook := range strings.Split(os.Getenv("SETUP_HOOKS"), ",") {
		if hook = strings.TrimSpace(hook); hook != "" {
			hooks = append(hooks, hook)
		}
	}

	return &Config{
		Env:            EnvLabel(),
		HTTPPort:       port,
		DatabaseURL:    dbURL,
		ProviderURL:    os.Getenv("PROVIDER_URL"),
		WebhookSecret:  os.Getenv("WEBHOOK_SECRET"),
		RateLimit:      rateLimit,
		RateLimitBurst: burst,
		OTELEndpoint:   os.Getenv("OTEL_ENDPOINT"),
		SetupHooks:     hooks,
	}, nil
}
