package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
port: "9000"
static_dir: "assets"
ai_provider: "openai"
model: "gpt-4o-mini"
ai_endpoint: "http://localhost:1234/v1"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "assets", cfg.StaticDir)
	assert.Equal(t, ProviderOpenAI, cfg.AIProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "http://localhost:1234/v1", cfg.AIEndpoint)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "port: \"8000\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.AIProvider)
	assert.Equal(t, "gemini-pro", cfg.Model)
	assert.Equal(t, "static", cfg.StaticDir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigReadsKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	path := writeConfigFile(t, "port: \"8000\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
}
