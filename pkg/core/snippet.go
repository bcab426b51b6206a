package core

import "strings"

// Sentinel snippet strings returned when a keyword-centered window cannot
// be extracted. Part of the external contract: callers (and tests) match
// on these literal strings.
const (
	snippetFailNoKeyword = "Fail to cut body, can't find keyword"
	snippetFailTooShort  = "Fail to cut body, body is not enough"
)

// Snippet extracts a keyword-centered window of body: from prev bytes before
// the first case-insensitive occurrence of keyword (at offset p) through
// byte p+len(keyword)+after inclusive, so after+1 bytes follow the keyword,
// clamped to the body's bounds. Byte offsets, not rune offsets, matching
// the ASCII-dominant corpus this package targets.
func Snippet(body, keyword string, prev, after int) string {
	p := strings.Index(strings.ToLower(body), strings.ToLower(keyword))
	if p < 0 {
		return snippetFailNoKeyword
	}

	start := p - prev
	if start < 0 {
		start = 0
	}

	end := p + len(keyword) + after
	if last := len(body) - 1; end > last {
		end = last
	}

	if start > end {
		return snippetFailTooShort
	}

	return body[start : end+1]
}
