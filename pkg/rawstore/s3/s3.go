// Package s3 implements rawstore.Store backed by an S3-compatible object,
// for deployments that build the index in one place and serve queries from
// another without a shared filesystem.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ksysoev/htmlidx/pkg/core"
	"github.com/ksysoev/htmlidx/pkg/rawstore"
)

// Client is the subset of the S3 API the Store needs, satisfied by
// *awss3.Client and by any test double.
type Client interface {
	PutObject(ctx context.Context, in *awss3.PutObjectInput, opts ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *awss3.GetObjectInput, opts ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
}

// Store persists the raw document set as a single object.
type Store struct {
	client Client
	bucket string
	key    string
}

// New creates a Store writing to bucket/key using the default AWS config
// chain (env vars, shared config, or an endpoint override supplied via
// opts, e.g. for pointing at a gofakes3 instance in tests).
func New(ctx context.Context, bucket, key string, optFns ...func(*awss3.Options)) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &Store{
		client: awss3.NewFromConfig(cfg, optFns...),
		bucket: bucket,
		key:    key,
	}, nil
}

// NewWithClient creates a Store using an already-constructed Client,
// bypassing the default AWS config chain. This is what tests use to point
// the store at an in-memory gofakes3 backend.
func NewWithClient(client Client, bucket, key string) *Store {
	return &Store{client: client, bucket: bucket, key: key}
}

// Write uploads the encoded document set, replacing any previous object at
// bucket/key. Records whose fields contain a delimiter byte are skipped
// with a logged warning; the rest of the batch is still uploaded.
func (s *Store) Write(ctx context.Context, docs []core.Doc) error {
	docs = rawstore.Validate(ctx, docs)

	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
		Body:   bytes.NewReader(rawstore.Encode(docs)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload raw store object: %w", err)
	}

	return nil
}

// Read downloads and decodes the document set. A missing object is
// treated as an empty store.
func (s *Store) Read(ctx context.Context) ([]core.Doc, error) {
	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to download raw store object: %w", err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw store object body: %w", err)
	}

	docs, err := rawstore.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode raw store object: %w", err)
	}

	return docs, nil
}
