package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	content := "source:\n  root_path: ./data/html\nsearch:\n  title_weight: 10\n  body_weight: 1\napi:\n  listen: :8080\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("SOURCE_ROOT_PATH", "./override/html")

	cfg, err := loadConfig(&cmdFlags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "./override/html", cfg.Source.RootPath)
	assert.Equal(t, 10, cfg.Search.TitleWeight)
	assert.Equal(t, ":8080", cfg.API.Listen)
}

func TestLoadConfig_MissingFileReturnsError(t *testing.T) {
	_, err := loadConfig(&cmdFlags{ConfigPath: "/does/not/exist.yml"})
	assert.Error(t, err)
}

func TestLoadConfig_NoConfigPathUsesEnvOnly(t *testing.T) {
	t.Setenv("API_LISTEN", ":9090")

	cfg, err := loadConfig(&cmdFlags{})
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.API.Listen)
}
