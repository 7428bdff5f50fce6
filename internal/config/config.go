// Package config loads the optional user configuration for cyberhub from
// ~/.cyberhub/config.yaml. Every field has a default; a missing file is not
// an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings. Command-line flags override these.
// Durations are strings ("1s", "250ms") so the file stays plain YAML.
type Config struct {
	// Theme selects "light" or "dark" styling.
	Theme string `yaml:"theme"`

	// QuizSeed pins the quiz shuffle order when non-zero. Zero means a
	// time-seeded shuffle per session.
	QuizSeed int64 `yaml:"quiz_seed"`

	// StartupDelay is the artificial pause on the boot screen before the
	// name prompt appears.
	StartupDelay string `yaml:"startup_delay"`

	// LogFile receives the structured debug log when verbose mode is on.
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:        "light",
		StartupDelay: "1s",
		LogFile:      filepath.Join(baseDir(), "cyberhub.log"),
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	return filepath.Join(baseDir(), "config.yaml")
}

func baseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cyberhub"
	}
	return filepath.Join(home, ".cyberhub")
}

// StartupDelayDuration parses StartupDelay, falling back to one second on a
// malformed value.
func (c Config) StartupDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.StartupDelay)
	if err != nil || d < 0 {
		return time.Second
	}
	return d
}

// Load reads the config at path, layered over defaults. A missing file
// yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Theme != "light" && cfg.Theme != "dark" {
		return cfg, fmt.Errorf("config %s: unknown theme %q", path, cfg.Theme)
	}
	return cfg, nil
}
