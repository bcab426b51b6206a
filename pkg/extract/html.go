// Package extract walks a tree of HTML documentation files and turns each
// one into a core.Doc: a title, a plain-text body, and a public URL.
package extract

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ksysoev/htmlidx/pkg/core"
)

const htmlExtension = ".html"

// Options configures a tree walk.
type Options struct {
	// RootPath is the directory recursively scanned for .html files.
	RootPath string
	// URLPrefix replaces RootPath in each document's URL, e.g.
	// "https://www.boost.org/doc/libs/1_78_0/doc/html".
	URLPrefix string
	// Include, when non-empty, restricts extraction to files whose
	// path (relative to RootPath, forward-slash normalized) matches at
	// least one of these doublestar glob patterns.
	Include []string
	// Exclude skips files matching any of these doublestar glob patterns,
	// evaluated after Include.
	Exclude []string
}

// Walk recursively scans opts.RootPath for *.html files (case-sensitive
// extension match, mirroring the source engine's filesystem scan) and
// extracts a core.Doc from each. Files that fail to parse are logged as a
// warning and skipped rather than aborting the whole run. The returned
// slice is sorted by relative path for deterministic doc IDs on rebuild.
func Walk(ctx context.Context, opts Options) ([]core.Doc, error) {
	root, err := filepath.Abs(opts.RootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("failed to stat root path: %w", err)
	}

	var paths []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || filepath.Ext(path) != htmlExtension {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}

		rel = filepath.ToSlash(rel)

		matched, err := matchesFilters(rel, opts.Include, opts.Exclude)
		if err != nil {
			return err
		}

		if !matched {
			return nil
		}

		paths = append(paths, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk root path: %w", err)
	}

	sort.Strings(paths)

	docs := make([]core.Doc, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("extraction canceled: %w", err)
		}

		doc, err := extractFile(root, path, opts.URLPrefix)
		if err != nil {
			slog.WarnContext(ctx, "skipping html file", "path", path, "error", err)
			continue
		}

		docs = append(docs, doc)
	}

	slog.InfoContext(ctx, "extraction complete", "root", root, "documents", len(docs))

	return docs, nil
}

func matchesFilters(rel string, include, exclude []string) (bool, error) {
	if len(include) > 0 {
		ok, err := matchAny(include, rel)
		if err != nil {
			return false, err
		}

		if !ok {
			return false, nil
		}
	}

	if len(exclude) > 0 {
		ok, err := matchAny(exclude, rel)
		if err != nil {
			return false, err
		}

		if ok {
			return false, nil
		}
	}

	return true, nil
}

func matchAny(patterns []string, rel string) (bool, error) {
	for _, p := range patterns {
		matched, err := doublestar.Match(p, rel)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern %q: %w", p, err)
		}

		if matched {
			return true, nil
		}
	}

	return false, nil
}

func extractFile(root, path, urlPrefix string) (core.Doc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return core.Doc{}, fmt.Errorf("failed to read file: %w", err)
	}

	html := string(raw)

	title, ok := Title(html)
	if !ok {
		return core.Doc{}, fmt.Errorf("no <title> found")
	}

	return core.Doc{
		Title: title,
		Body:  Body(html),
		URL:   buildURL(root, path, urlPrefix),
	}, nil
}

// buildURL replaces the root path prefix of path with urlPrefix, joining
// with forward slashes regardless of host OS path separator.
func buildURL(root, path, urlPrefix string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	return strings.TrimSuffix(urlPrefix, "/") + "/" + filepath.ToSlash(rel)
}
