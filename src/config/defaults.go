package config

import (
	"path/filepath"
	"time"
)

const (
	// DefaultFile is the config path used when --config is not given.
	DefaultFile = ".campusai.yml"

	// EnvPrefix prefixes every environment override, e.g. CAMPUSAI_API__BASE_URL.
	EnvPrefix = "CAMPUSAI_"
)

// Sections the UI can start on.
var validSections = map[string]bool{
	"home":        true,
	"chat":        true,
	"scholarship": true,
	"admin":       true,
	"login":       true,
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Languages with a bundled message file.
var validLanguages = map[string]bool{
	"en": true,
	"hi": true,
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000",
			Timeout: 15 * time.Second,
		},
		UI: UIConfig{
			StartSection:  "home",
			Particles:     true,
			FrameInterval: 100 * time.Millisecond,
			Language:      "en",
		},
		Log: LogConfig{
			Level: "info",
		},
		StateDir: ".campusai",
	}
}

// LogPath returns the resolved log file path.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.StateDir, "campusai.log")
}

// SessionPath returns where backend cookies are persisted.
func (c *Config) SessionPath() string {
	return filepath.Join(c.StateDir, "session.json")
}
