// Package main is the entry point for the msghub messaging server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"msghub/internal/bootstrap"
	"msghub/internal/config"
	"msghub/internal/logger"
	"msghub/internal/observability"
	"msghub/internal/provider"
	"msghub/internal/server"
	"msghub/internal/server/handlers"
	"msghub/internal/store/postgres"
)

func main() {
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// State shared across steps; each step fills in what later steps need.
	var (
		cfg            *config.Config
		st             *postgres.Store
		prov           *provider.Client
		metricsHandler http.Handler
		shutdowns      []func(context.Context) error
	)

	r := bootstrap.NewRunner(os.Stdout, log)

	r.Add("preflight checks", bootstrap.ExitPreflight, func(ctx context.Context) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		return nil
	})

	r.Add("run setup hooks", bootstrap.ExitDependencies, func(ctx context.Context) error {
		for _, hook := range cfg.SetupHooks {
			fields := strings.Fields(hook)
			if len(fields) == 0 {
				continue
			}
			log.Info("running setup hook", "command", hook)
			if err := bootstrap.Command(fields[0], fields[1:]...)(ctx); err != nil {
				return fmt.Errorf("hook %q: %w", hook, err)
			}
		}
		return nil
	})

	r.Add("verify dependencies", bootstrap.ExitDependencies, func(ctx context.Context) error {
		s, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		st = s

		prov = provider.New(cfg.ProviderURL)
		if cfg.ProviderURL == "" {
			log.Info("no provider endpoint configured, sends run in stub mode")
		}

		if cfg.OTELEndpoint != "" {
			shutdownTracer, err := observability.InitTracer(ctx, "msghub", cfg.OTELEndpoint)
			if err != nil {
				return fmt.Errorf("tracing: %w", err)
			}
			shutdowns = append(shutdowns, shutdownTracer)
		}

		mh, shutdownMetrics, err := observability.InitMetrics()
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		metricsHandler = mh
		shutdowns = append(shutdowns, shutdownMetrics)
		return nil
	})

	r.Add("run database migrations", bootstrap.ExitMigration, func(ctx context.Context) error {
		return postgres.Migrate(st.DB())
	})

	r.Add("start http server", bootstrap.ExitServer, func(ctx context.Context) error {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		h := handlers.New(st, prov)
		srv := server.New(addr, h, server.Options{
			WebhookSecret:  cfg.WebhookSecret,
			RateLimit:      cfg.RateLimit,
			RateLimitBurst: cfg.RateLimitBurst,
			Metrics:        metricsHandler,
			Logger:         log,
		})

		log.Info("server listening", "addr", addr, "env", cfg.Env)
		return srv.Run(ctx)
	})

	err := r.Run(ctx, config.EnvLabel())

	if st != nil {
		st.Close()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, shutdown := range shutdowns {
		if serr := shutdown(shutdownCtx); serr != nil {
			log.Error("shutdown error", "error", serr)
		}
	}

	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(bootstrap.ExitCode(err))
	}
}
