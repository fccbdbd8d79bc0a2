// Package server wires the HTTP API for msghub.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"msghub/internal/server/handlers"
	"msghub/internal/server/middleware"
)

// Server is the HTTP server for the messaging API.
type Server struct {
	httpServer *http.Server
}

// Options carries the optional pieces of the server wiring.
type Options struct {
	// WebhookSecret enables signature verification on inbound webhooks.
	WebhookSecret string

	// RateLimit throttles sends per client; 0 disables throttling.
	RateLimit      float64
	RateLimitBurst int

	// Metrics, when set, is exposed at GET /metrics.
	Metrics http.Handler

	// Logger receives one line per completed request.
	Logger *slog.Logger
}

// New creates a new messaging API server.
func New(addr string, h *handlers.Handlers, opts Options) *Server {
	mux := http.NewServeMux()

	send := http.Handler(http.HandlerFunc(h.SendMessage))
	if opts.RateLimit > 0 {
		send = middleware.RateLimit(opts.RateLimit, opts.RateLimitBurst)(send)
	}
	mux.Handle("POST /messages/{type}", send)

	// Webhooks are called by the provider, not our frontend; when a shared
	// secret is configured they must be signed.
	webhook := http.Handler(http.HandlerFunc(h.ReceiveWebhook))
	if opts.WebhookSecret != "" {
		webhook = middleware.VerifySignature(opts.WebhookSecret)(webhook)
	}
	mux.Handle("POST /webhooks/{type}", webhook)

	mux.HandleFunc("GET /conversations", h.ListConversations)
	mux.HandleFunc("GET /conversations/{id}/messages", h.GetConversationMessages)

	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
	if opts.Metrics != nil {
		mux.Handle("GET /metrics", opts.Metrics)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      middleware.RequestID(opts.Logger)(mux),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// Run starts the HTTP server. It blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
