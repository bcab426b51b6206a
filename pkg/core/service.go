package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
)

const (
	defaultSnippetPrev  = 50
	defaultSnippetAfter = 100
)

// SearchHit is a single result of a search, ready for JSON serialization.
type SearchHit struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// queryHit is the transient per-query accumulator record for one matched
// document: the query tokens credited to it, in first-match order (only
// the first one unless weight accumulation is enabled), and its
// accumulated weight.
type queryHit struct {
	docID        DocID
	wordsMatched []string
	accumulated  int
}

// Service answers search queries against an Index. It is safe for
// concurrent use: queries share the Index (read-only after Build) and the
// Tokenizer, and each call allocates its own transient state.
type Service struct {
	idx        *Index
	tok        Tokenizer
	prev       int
	after      int
	accumulate bool
}

// Option configures a Service.
type Option func(*Service)

// WithSnippetWindow overrides the default 50/100 byte snippet window.
func WithSnippetWindow(prev, after int) Option {
	return func(s *Service) {
		s.prev = prev
		s.after = after
	}
}

// WithAccumulateWeights opts into summing accumulated weight across every
// query token a document matches, rather than freezing it at the first
// matched token's weight. Spec.md's documented default (false) preserves
// the source engine's dedup-on-first-see behavior bit-for-bit; this is
// the "fixed" alternative recorded as an open question in DESIGN.md.
func WithAccumulateWeights(accumulate bool) Option {
	return func(s *Service) {
		s.accumulate = accumulate
	}
}

// NewService constructs a Service over an already-built Index.
func NewService(idx *Index, tok Tokenizer, opts ...Option) *Service {
	s := &Service{
		idx:   idx,
		tok:   tok,
		prev:  defaultSnippetPrev,
		after: defaultSnippetAfter,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Search tokenizes query, merges per-term posting lists by doc ID, sorts
// the merged hits by accumulated weight descending (stable, deterministic
// regardless of map iteration order), extracts a keyword-centered snippet
// for each hit, and serializes the result to a JSON array string. Search
// never returns an error for a malformed or unmatched query; it returns an
// error only if ctx is already canceled, since every other failure mode
// degrades to an empty result or a sentinel snippet per spec.
func (s *Service) Search(ctx context.Context, query string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("search canceled: %w", err)
	}

	hits := s.collect(query)

	out := make([]SearchHit, 0, len(hits))

	for _, h := range hits {
		doc, ok := s.idx.Doc(h.docID)
		if !ok {
			continue
		}

		out = append(out, SearchHit{
			Title: doc.Title,
			Body:  Snippet(doc.Body, h.wordsMatched[0], s.prev, s.after),
			URL:   doc.URL,
		})
	}

	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to marshal search results: %w", err)
	}

	slog.DebugContext(ctx, "search complete", "query", query, "hits", len(out))

	return string(b), nil
}

// collect tokenizes query and merges posting lists into a deterministic,
// weight-descending ordered slice of queryHit. A side slice records doc IDs
// in first-seen order while the tokens are scanned (rather than relying on
// map iteration order), which keeps tie ordering stable across runs, per
// spec.md §9.
func (s *Service) collect(query string) []queryHit {
	tokens := lowerTokens(s.tok, query)

	acc := make(map[DocID]*queryHit)
	order := make([]DocID, 0)

	for _, q := range tokens {
		for _, p := range s.idx.Postings(q) {
			existing, seen := acc[p.DocID]
			if !seen {
				existing = &queryHit{
					docID:        p.DocID,
					wordsMatched: []string{p.Term},
					accumulated:  p.Weight,
				}
				acc[p.DocID] = existing
				order = append(order, p.DocID)

				continue
			}

			if s.accumulate {
				existing.wordsMatched = append(existing.wordsMatched, p.Term)
				existing.accumulated += p.Weight
			}
			// Bit-faithful default: a doc that already matched an earlier
			// query token does not accumulate additional weight from a
			// later one (spec.md §9, "dedup-on-first-see scoring").
		}
	}

	hits := make([]queryHit, 0, len(order))
	for _, id := range order {
		hits = append(hits, *acc[id])
	}

	// Stable sort by accumulated weight descending. Ties retain the
	// first-insertion order fixed above, so repeated calls against the
	// same index produce byte-identical JSON (spec.md §9).
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].accumulated > hits[j].accumulated
	})

	return hits
}
