package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newQueryCmd creates a cobra command that runs a single search against
// the configured raw store and prints the JSON result to stdout, without
// starting the HTTP server. Useful for smoke-testing a build before
// deploying it.
func newQueryCmd(flags *cmdFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [keyword]",
		Short: "Run a single search query against the raw store",
		Long:  "Load the raw document store, build the index, run one search query, and print the JSON result.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), flags, args[0])
		},
	}

	return cmd
}

func runQuery(ctx context.Context, flags *cmdFlags, keyword string) error {
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

	result, err := svc.Search(ctx, keyword)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Println(result) //nolint:forbidigo // CLI output is intentional

	return nil
}
