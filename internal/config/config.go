package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the user preference file. Everything in here has a
// working default, so a missing file is fine.
type Config struct {
	Theme         string `yaml:"theme"`
	SearchPath    string `yaml:"search_path"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Verbose       bool   `yaml:"verbose"`
	HistoryLimit  int    `yaml:"history_limit"`
}

func Default() Config {
	return Config{
		Theme:        "Dark Mode",
		SearchPath:   ".",
		HistoryLimit: 50,
	}
}

// DefaultPath is the per-user config location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(base, "wordsearch-tui", "config.yaml"), nil
}

// Load reads the config at path. A missing file yields the defaults
// without an error; a malformed one yields the defaults plus the
// parse error so the caller can warn and carry on.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = Default().HistoryLimit
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
