package cmd

import (
	"context"
	"fmt"

	"github.com/ksysoev/htmlidx/pkg/core"
	"github.com/ksysoev/htmlidx/pkg/tokenize"
)

// newTokenizer selects the word-cutting strategy named by cfg.Tokenizer.
// An empty value defaults to the CJK-capable gse segmenter, matching the
// source engine's own default; "ascii" opts into the dependency-free
// fallback for deployments with no CJK content.
func newTokenizer(cfg SourceConfig) (core.Tokenizer, error) {
	switch cfg.Tokenizer {
	case "", "gse":
		tok, err := tokenize.NewGSE(cfg.DictPath)
		if err != nil {
			return nil, fmt.Errorf("failed to build gse tokenizer: %w", err)
		}

		return tok, nil
	case "ascii":
		return tokenize.ASCII{}, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", cfg.Tokenizer)
	}
}

// buildService loads the raw document set from the configured store and
// builds a ready-to-query core.Service. The index is built eagerly here
// (not lazily behind the one-shot wrapper) so that a failure to load or
// build surfaces before serve starts accepting traffic, rather than on the
// first incoming query.
func buildService(ctx context.Context, cfg *appConfig) (*core.Service, error) {
	store, err := newRawStore(ctx, cfg.RawStore)
	if err != nil {
		return nil, fmt.Errorf("failed to create raw store: %w", err)
	}

	docs, err := store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw store: %w", err)
	}

	tok, err := newTokenizer(cfg.Source)
	if err != nil {
		return nil, err
	}

	weights := core.Weights{
		TitleWeight: cfg.Search.TitleWeight,
		BodyWeight:  cfg.Search.BodyWeight,
	}

	once := core.NewOnceIndex(func() *core.Index {
		return core.Build(ctx, docs, tok, weights)
	})

	idx := once()

	opts := []core.Option{}
	if cfg.Search.SnippetPrev > 0 || cfg.Search.SnippetAfter > 0 {
		opts = append(opts, core.WithSnippetWindow(cfg.Search.SnippetPrev, cfg.Search.SnippetAfter))
	}

	return core.NewService(idx, tok, opts...), nil
}
