package tokenize

import (
	"strings"
	"unicode"
)

// ASCII is a dependency-free core.Tokenizer that splits on anything that
// isn't a letter or digit, for deployments indexing ASCII-only
// documentation where pulling in the CJK segmenter's dictionary is not
// worth the startup cost.
type ASCII struct{}

// CutForSearch implements core.Tokenizer.
func (ASCII) CutForSearch(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
