package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "home", cfg.UI.StartSection)
	assert.True(t, cfg.UI.Particles)
	assert.Equal(t, "en", cfg.UI.Language)
	assert.NoError(t, cfg.Validate())
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.campusai.yml")

	original := DefaultConfig()
	original.API.BaseURL = "https://campus.example.edu"
	original.API.Timeout = 3 * time.Second
	original.UI.StartSection = "chat"
	original.UI.Particles = false
	original.UI.Language = "hi"
	original.StateDir = filepath.Join(dir, "state")

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.API, loaded.API)
	assert.Equal(t, original.UI, loaded.UI)
	assert.Equal(t, original.StateDir, loaded.StateDir)
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(filepath.Join(dir, "nonexistent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().API.BaseURL, cfg.API.BaseURL)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CAMPUSAI_API__BASE_URL", "http://10.0.0.5:8000")
	t.Setenv("CAMPUSAI_API__TIMEOUT", "2s")
	t.Setenv("CAMPUSAI_STATE_DIR", "/tmp/campusai-state")

	cfg, err := Load(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8000", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/campusai-state", cfg.StateDir)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"relative base url", func(c *Config) { c.API.BaseURL = "/api" }, true},
		{"ftp base url", func(c *Config) { c.API.BaseURL = "ftp://campus" }, true},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, true},
		{"unknown section", func(c *Config) { c.UI.StartSection = "settings" }, true},
		{"admin section", func(c *Config) { c.UI.StartSection = "admin" }, false},
		{"zero frame interval", func(c *Config) { c.UI.FrameInterval = 0 }, true},
		{"unknown language", func(c *Config) { c.UI.Language = "fr" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, true},
		{"empty state dir", func(c *Config) { c.StateDir = "" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogPath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(".campusai", "campusai.log"), cfg.LogPath())

	cfg.Log.File = "/var/log/campusai.log"
	assert.Equal(t, "/var/log/campusai.log", cfg.LogPath())
	assert.Equal(t, filepath.Join(".campusai", "session.json"), cfg.SessionPath())
}
