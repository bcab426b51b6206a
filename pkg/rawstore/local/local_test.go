package local

import (
	"path/filepath"
	"testing"

	"github.com/ksysoev/htmlidx/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WriteReadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "raw.db")

	s, err := New(path)
	require.NoError(t, err)

	docs := []core.Doc{{Title: "Asio", Body: "networking", URL: "https://example/asio.html"}}

	require.NoError(t, s.Write(t.Context(), docs))

	got, err := s.Read(t.Context())
	require.NoError(t, err)
	assert.Equal(t, docs, got)
}

func TestStore_ReadMissingFileReturnsEmpty(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "raw.db"))
	require.NoError(t, err)

	got, err := s.Read(t.Context())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_WriteSkipsDelimiterInContentButKeepsRest(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "raw.db"))
	require.NoError(t, err)

	err = s.Write(t.Context(), []core.Doc{
		{Title: "good", Body: "clean", URL: "https://example/good"},
		{Title: "bad\x03title", Body: "clean", URL: "https://example/bad"},
	})
	require.NoError(t, err)

	got, err := s.Read(t.Context())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].Title)
}

func TestStore_WriteOverwritesPreviousContent(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "raw.db"))
	require.NoError(t, err)

	require.NoError(t, s.Write(t.Context(), []core.Doc{{Title: "first"}}))
	require.NoError(t, s.Write(t.Context(), []core.Doc{{Title: "second"}}))

	got, err := s.Read(t.Context())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Title)
}
