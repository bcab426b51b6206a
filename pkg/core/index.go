package core

import (
	"context"
	"log/slog"
)

// Index is the immutable forward + inverted index produced by Build. It is
// safe for concurrent read access once constructed; nothing mutates it
// after Build returns.
type Index struct {
	forward  []Doc
	inverted map[string][]PostingEntry
}

// Len returns the number of documents in the forward index.
func (idx *Index) Len() int {
	return len(idx.forward)
}

// Doc returns the document for id. The second return value is false if id
// is out of range.
func (idx *Index) Doc(id DocID) (Doc, bool) {
	if id < 0 || int(id) >= len(idx.forward) {
		return Doc{}, false
	}

	return idx.forward[id], true
}

// Postings returns the posting list for a lowercase term, in ascending
// doc-ID order. The returned slice is a read-only view into the index:
// callers must not mutate it. Returns nil if the term was never indexed.
func (idx *Index) Postings(term string) []PostingEntry {
	return idx.inverted[term]
}

// Build consumes docs in order, assigning each a dense DocID equal to its
// position, and produces the forward and inverted indexes. Weights with
// both fields zero fall back to DefaultWeights. Build is a pure function
// of its inputs: calling it twice with the same arguments produces
// byte-for-byte identical indexes.
func Build(ctx context.Context, docs []Doc, tok Tokenizer, w Weights) *Index {
	w = w.normalize()

	forward := make([]Doc, 0, len(docs))
	inverted := make(map[string][]PostingEntry)

	for _, d := range docs {
		id := DocID(len(forward))
		forward = append(forward, d)

		counts := make(map[string]*wordCount)

		for _, t := range lowerTokens(tok, d.Title) {
			c, ok := counts[t]
			if !ok {
				c = &wordCount{}
				counts[t] = c
			}

			c.titleHits++
		}

		for _, t := range lowerTokens(tok, d.Body) {
			c, ok := counts[t]
			if !ok {
				c = &wordCount{}
				counts[t] = c
			}

			c.bodyHits++
		}

		for term, c := range counts {
			inverted[term] = append(inverted[term], PostingEntry{
				Term:   term,
				DocID:  id,
				Weight: c.weight(w),
			})
		}
	}

	slog.DebugContext(ctx, "index built", "documents", len(forward), "terms", len(inverted))

	return &Index{forward: forward, inverted: inverted}
}
