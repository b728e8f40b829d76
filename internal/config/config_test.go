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

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://latex.ytotech.com/build", cfg.CompilerURL)
	assert.Equal(t, 30*time.Second, cfg.CompilerTimeout())
	assert.Equal(t, 60*time.Second, cfg.FallbackTimeout())
	assert.Equal(t, time.Hour, cfg.CacheTTL())
	assert.Equal(t, "*", cfg.CORSOrigin)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"port": 9090,
		"compiler_url": "http://localhost:8000/build",
		"compiler_timeout_seconds": 10
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "http://localhost:8000/build", cfg.CompilerURL)
	assert.Equal(t, 10*time.Second, cfg.CompilerTimeout())
	// Unset fields keep their defaults.
	assert.Equal(t, 60, cfg.FallbackTimeoutSeconds)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090}`), 0o644))

	t.Setenv("PORT", "7070")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	bad := Default()
	bad.Port = 0
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.Port = 70000
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.CompilerURL = ""
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.CompilerTimeoutSeconds = -1
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.RateLimitPerMinute = -5
	assert.Error(t, bad.Validate())
}

func TestEnvIgnoresGarbageInt(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}
