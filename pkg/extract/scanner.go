package extract

import "strings"

const (
	titleOpenTag  = "<title>"
	titleCloseTag = "</title>"
)

// Title returns the literal text between the first "<title>" and the first
// "</title>" that follows it. It does not unescape HTML entities or handle
// nested tags, matching the source engine's literal substring scan.
func Title(html string) (string, bool) {
	start := strings.Index(html, titleOpenTag)
	if start == -1 {
		return "", false
	}

	start += len(titleOpenTag)

	end := strings.Index(html[start:], titleCloseTag)
	if end == -1 {
		return "", false
	}

	return html[start : start+end], true
}

// contentStatus tracks whether the scanner is inside a tag (between '<' and
// '>') or inside ordinary text, mirroring the source engine's two-state
// content scan.
type contentStatus int

const (
	statusTag contentStatus = iota
	statusText
)

// Body strips every "<...>" tag from html and returns the remaining text,
// collapsing newlines to single spaces. It is a byte scanner, not an HTML
// parser: it does not decode entities, understand comments, or special-case
// <script>/<style> contents, by design — this keeps body extraction
// byte-identical to the source engine's scan.
func Body(html string) string {
	var b strings.Builder

	b.Grow(len(html))

	status := statusTag

	for i := 0; i < len(html); i++ {
		ch := html[i]

		switch status {
		case statusTag:
			if ch == '>' {
				status = statusText
			}
		case statusText:
			switch ch {
			case '<':
				status = statusTag
			case '\n':
				b.WriteByte(' ')
			default:
				b.WriteByte(ch)
			}
		}
	}

	return b.String()
}
