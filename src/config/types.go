package config

import "time"

// Config is the top-level client configuration, corresponding to .campusai.yml.
type Config struct {
	API      APIConfig `yaml:"api" koanf:"api"`
	UI       UIConfig  `yaml:"ui" koanf:"ui"`
	Log      LogConfig `yaml:"log" koanf:"log"`
	StateDir string    `yaml:"state_dir" koanf:"state_dir"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" koanf:"base_url"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	StartSection  string        `yaml:"start_section" koanf:"start_section"`
	Particles     bool          `yaml:"particles" koanf:"particles"`
	FrameInterval time.Duration `yaml:"frame_interval" koanf:"frame_interval"`
	Language      string        `yaml:"language" koanf:"language"`
}

// LogConfig controls where slog records go. An empty File means
// <state_dir>/campusai.log.
type LogConfig struct {
	File  string `yaml:"file" koanf:"file"`
	Level string `yaml:"level" koanf:"level"`
}
