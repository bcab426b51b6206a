// Package local implements rawstore.Store backed by a single file on the
// local filesystem.
package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ksysoev/htmlidx/pkg/core"
	"github.com/ksysoev/htmlidx/pkg/rawstore"
)

// Store persists documents to a single flat file, guarded by a mutex so a
// concurrent Read during a Write never observes a half-written file.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New creates a Store writing to and reading from path. The parent
// directory is created if it does not already exist.
func New(path string) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve raw store path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create raw store directory: %w", err)
	}

	return &Store{path: abs}, nil
}

// Write overwrites the raw store file with the encoded form of docs.
// Records whose fields contain a delimiter byte are skipped with a logged
// warning; the rest of the batch is still written.
func (s *Store) Write(ctx context.Context, docs []core.Doc) error {
	docs = rawstore.Validate(ctx, docs)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, rawstore.Encode(docs), 0o600); err != nil {
		return fmt.Errorf("failed to write raw store file: %w", err)
	}

	return nil
}

// Read loads and decodes the full document set from the raw store file. A
// missing file is treated as an empty store, matching a fresh deployment
// that has not run build yet.
func (s *Store) Read(_ context.Context) ([]core.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to open raw store file: %w", err)
	}
	defer f.Close()

	docs, err := rawstore.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode raw store file: %w", err)
	}

	return docs, nil
}
