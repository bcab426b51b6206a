// Package rawstore persists the extracted title/body/URL triples between
// the offline extraction step and the online index build, using the
// delimited flat-file format the source engine wrote and read directly.
package rawstore

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ksysoev/htmlidx/pkg/core"
)

const (
	// fieldSep separates Title/Body/URL within a record.
	fieldSep = "\x03"
	// recordSep separates records.
	recordSep = "\n"
)

// Store persists and retrieves the full document set as a unit; it has no
// notion of a single document's identity once written, matching the
// source engine's batch-oriented raw file.
type Store interface {
	Write(ctx context.Context, docs []core.Doc) error
	Read(ctx context.Context) ([]core.Doc, error)
}

// ErrDelimiterInContent marks a document whose title, body, or URL
// contains the field or record separator byte, which would corrupt the
// flat-file format if written as-is.
var ErrDelimiterInContent = fmt.Errorf("document contains raw store delimiter byte")

// Validate drops any document whose fields contain a delimiter byte,
// logging a warning for each one, rather than silently corrupting the raw
// file or discarding the rest of an otherwise-clean batch. Backends call
// this before serializing the result with Encode.
func Validate(ctx context.Context, docs []core.Doc) []core.Doc {
	clean := make([]core.Doc, 0, len(docs))

	for i, d := range docs {
		if strings.ContainsAny(d.Title, fieldSep+recordSep) ||
			strings.ContainsAny(d.Body, fieldSep+recordSep) ||
			strings.ContainsAny(d.URL, fieldSep+recordSep) {
			slog.WarnContext(ctx, "skipping malformed raw record", "index", i, "url", d.URL, "error", ErrDelimiterInContent)
			continue
		}

		clean = append(clean, d)
	}

	return clean
}

// Encode serializes docs into the delimited raw format.
func Encode(docs []core.Doc) []byte {
	var b strings.Builder

	for _, d := range docs {
		b.WriteString(d.Title)
		b.WriteString(fieldSep)
		b.WriteString(d.Body)
		b.WriteString(fieldSep)
		b.WriteString(d.URL)
		b.WriteString(recordSep)
	}

	return []byte(b.String())
}

// Decode parses the delimited raw format produced by Encode. Records with
// the wrong number of fields are skipped with a logged warning.
func Decode(r io.Reader) ([]core.Doc, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(splitRecords)

	var docs []core.Doc

	line := 0

	for scanner.Scan() {
		line++

		rec := scanner.Text()
		if rec == "" {
			continue
		}

		fields := strings.Split(rec, fieldSep)
		if len(fields) != 3 {
			slog.Warn("skipping malformed raw record", "line", line, "fields", len(fields))
			continue
		}

		docs = append(docs, core.Doc{Title: fields[0], Body: fields[1], URL: fields[2]})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan raw store data: %w", err)
	}

	return docs, nil
}

// splitRecords is a bufio.SplitFunc that splits on recordSep instead of
// the default newline handling, since recordSep and '\n' happen to
// coincide but the format is defined in terms of the delimiter, not line
// endings.
func splitRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.Index(data, []byte(recordSep)); i >= 0 {
		return i + len(recordSep), data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
