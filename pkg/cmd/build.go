package cmd

import (
	"context"
	"fmt"

	"github.com/ksysoev/htmlidx/pkg/extract"
	"github.com/spf13/cobra"
)

// newBuildCmd creates a cobra command that runs the offline extraction
// step: walk source.root_path for HTML files and persist the extracted
// documents to the configured raw store.
func newBuildCmd(flags *cmdFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Extract HTML documentation into the raw document store",
		Long:  "Walk the configured source directory for HTML files, extract title/body/URL, and write them to the configured raw store for serve to load.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd.Context(), flags)
		},
	}

	return cmd
}

func runBuild(ctx context.Context, flags *cmdFlags) error {
	if err := initLogger(flags); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	docs, err := extract.Walk(ctx, extract.Options{
		RootPath:  cfg.Source.RootPath,
		URLPrefix: cfg.Source.URLPrefix,
		Include:   cfg.Source.Include,
		Exclude:   cfg.Source.Exclude,
	})
	if err != nil {
		return fmt.Errorf("failed to extract documents: %w", err)
	}

	store, err := newRawStore(ctx, cfg.RawStore)
	if err != nil {
		return fmt.Errorf("failed to create raw store: %w", err)
	}

	if err := store.Write(ctx, docs); err != nil {
		return fmt.Errorf("failed to write raw store: %w", err)
	}

	return nil
}
