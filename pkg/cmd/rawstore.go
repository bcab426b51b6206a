package cmd

import (
	"context"
	"fmt"

	"github.com/ksysoev/htmlidx/pkg/rawstore"
	"github.com/ksysoev/htmlidx/pkg/rawstore/local"
	"github.com/ksysoev/htmlidx/pkg/rawstore/s3"
)

// newRawStore constructs the configured rawstore.Store backend.
func newRawStore(ctx context.Context, cfg RawStoreConfig) (rawstore.Store, error) {
	switch cfg.Backend {
	case "", "local":
		return local.New(cfg.Path)
	case "s3":
		return s3.New(ctx, cfg.S3Bucket, cfg.S3Key)
	default:
		return nil, fmt.Errorf("unknown raw_store.backend %q", cfg.Backend)
	}
}
