package core

import "strings"

// whitespaceTokenizer is the dependency-free Tokenizer spec.md §9 allows
// tests to substitute for the real CJK segmenter. It splits on whitespace
// only (strings.Fields).
type whitespaceTokenizer struct{}

func (whitespaceTokenizer) CutForSearch(s string) []string {
	return strings.Fields(s)
}
