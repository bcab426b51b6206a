package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunQuery_SearchesRawStore(t *testing.T) {
	rawPath := filepath.Join(t.TempDir(), "raw.db")
	require.NoError(t, os.WriteFile(rawPath, []byte("Asio\x03networking library\x03https://example/asio.html\n"), 0o600))

	configPath := filepath.Join(t.TempDir(), "config.yml")
	content := "source:\n  tokenizer: ascii\nraw_store:\n  backend: local\n  path: " + rawPath + "\nsearch:\n  title_weight: 10\n  body_weight: 1\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	flags := &cmdFlags{LogLevel: "info", TextFormat: true, ConfigPath: configPath}

	require.NoError(t, runQuery(t.Context(), flags, "networking"))
}
