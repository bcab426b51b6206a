package cmd

import (
	"context"
	"fmt"

	"github.com/ksysoev/htmlidx/pkg/api"
)

// RunCommand initializes the logger, loads configuration, builds the
// search index from the raw store, and runs the API server. It returns an
// error if any step fails.
func RunCommand(ctx context.Context, flags *cmdFlags) error {
	if err := initLogger(flags); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc, err := buildService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build search service: %w", err)
	}

	apiSvc, err := api.New(cfg.API, svc)
	if err != nil {
		return fmt.Errorf("failed to create API service: %w", err)
	}

	if err := apiSvc.Run(ctx); err != nil {
		return fmt.Errorf("failed to run API service: %w", err)
	}

	return nil
}
