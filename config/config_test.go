package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GOOGLE_SEARCH_KEY", "")
	t.Setenv("SEARCH_ENGINE_ID", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Empty(t, cfg.Gemini.ApiKey)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("GOOGLE_SEARCH_KEY", "")
	t.Setenv("SEARCH_ENGINE_ID", "")
	t.Setenv("GEMINI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
search:
  apiKey: file-search-key
  engineId: file-engine
gemini:
  apiKey: file-gemini-key
  model: gemini-2.0-flash-exp
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "file-search-key", cfg.Search.ApiKey)
	assert.Equal(t, "file-engine", cfg.Search.EngineId)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.Gemini.Model)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
gemini:
  apiKey: file-gemini-key
`), 0o600))

	t.Setenv("GOOGLE_SEARCH_KEY", "env-search-key")
	t.Setenv("SEARCH_ENGINE_ID", "env-engine")
	t.Setenv("GEMINI_API_KEY", "env-gemini-key")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-search-key", cfg.Search.ApiKey)
	assert.Equal(t, "env-engine", cfg.Search.EngineId)
	assert.Equal(t, "env-gemini-key", cfg.Gemini.ApiKey)
}

func TestLoadConfigRejectsBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
