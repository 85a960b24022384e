package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/temas.xlsx", cfg.TopicsPath)
	assert.Equal(t, "data/cuentas.xlsx", cfg.AccountsPath)
	assert.Equal(t, "data/sources.yaml", cfg.SourcesPath)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 3, cfg.FeedWorkers)
	assert.Equal(t, 3, cfg.FeedRetries)
	assert.Equal(t, 2*time.Second, cfg.FeedBackoff)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
topics_path: tablas/temas.xlsx
output_dir: salida
feed_workers: 5
feed_backoff: 500ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tablas/temas.xlsx", cfg.TopicsPath)
	assert.Equal(t, "salida", cfg.OutputDir)
	assert.Equal(t, 5, cfg.FeedWorkers)
	assert.Equal(t, 500*time.Millisecond, cfg.FeedBackoff)
	// Unset keys keep their defaults.
	assert.Equal(t, "data/cuentas.xlsx", cfg.AccountsPath)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ASUNTOS_OUTPUT_DIR", "desde_env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "desde_env", cfg.OutputDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
