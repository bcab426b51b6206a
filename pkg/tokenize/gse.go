// Package tokenize provides core.Tokenizer implementations.
package tokenize

import (
	"fmt"

	"github.com/go-ego/gse"
)

// GSE wraps a go-ego/gse segmenter loaded with a dictionary, providing
// search-oriented cuts (short words recombined into longer candidates) for
// both CJK and space-delimited text. This is the Go analogue of the
// cppjieba segmenter's CutForSearch mode.
type GSE struct {
	seg gse.Segmenter
}

// NewGSE loads the given dictionaries (comma-separated paths, or "" for
// gse's embedded default dictionary) and returns a ready-to-use GSE
// tokenizer.
func NewGSE(dictPaths string) (*GSE, error) {
	var (
		seg gse.Segmenter
		err error
	)

	if dictPaths == "" {
		err = seg.LoadDict()
	} else {
		err = seg.LoadDict(dictPaths)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load segmenter dictionary: %w", err)
	}

	return &GSE{seg: seg}, nil
}

// CutForSearch implements core.Tokenizer.
func (g *GSE) CutForSearch(s string) []string {
	return g.seg.CutSearch(s, true)
}
