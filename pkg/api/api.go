// Package api exposes the search service over HTTP.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// API is the HTTP server exposing the search endpoint.
type API struct {
	svc    Service
	config Config
}

// Config holds the configuration for the API server.
type Config struct {
	Listen string `mapstructure:"listen"`
}

// Service defines the interface for the search operation the API exposes.
type Service interface {
	Search(ctx context.Context, query string) (string, error)
}

// New creates a new API instance with the provided configuration and
// service. It validates the configuration and returns an error if the
// listen address is not specified.
func New(cfg Config, svc Service) (*API, error) {
	if cfg.Listen == "" {
		return nil, fmt.Errorf("listen address must be specified")
	}

	return &API{config: cfg, svc: svc}, nil
}

// Run starts the API server with the provided configuration. It listens on
// the address specified in the configuration and handles graceful
// shutdown. When the context is cancelled, in-flight requests are given a
// grace period to complete before the server is forcefully closed.
func (a *API) Run(ctx context.Context) error {
	s := &http.Server{
		Addr:              a.config.Listen,
		ReadHeaderTimeout: defaultTimeout,
		WriteTimeout:      defaultTimeout,
		Handler:           a.newMux(),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		slog.WarnContext(ctx, "shutting down API server")

		if err := s.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "graceful shutdown failed, forcing close", "error", err)

			if closeErr := s.Close(); closeErr != nil {
				slog.ErrorContext(ctx, "forced close failed", "error", closeErr)
			}
		}
	}()

	if err := s.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	return nil
}
