package app

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/HF7weatherman/hfutils/internal/source/influx"
)

// Config holds the runtime options read from the config file,
// e.g. $HOME/.hfutils/config.yaml.
type Config struct {
	// Influx connects the fetch and export commands; all fields empty
	// leaves the remote source unconfigured.
	Influx influx.Config `yaml:"influx"`

	// OutputDir is where watch mode writes results. Empty means the
	// current directory.
	OutputDir string `yaml:"output_dir"`

	// Debounce is the watch-mode settle delay, as a Go duration string.
	Debounce string `yaml:"debounce"`
}

// DefaultConfig returns the configuration used when no file exists yet.
func DefaultConfig() Config {
	return Config{Debounce: "500ms"}
}

// DebounceDelay returns the parsed debounce, falling back to 500ms.
func (c Config) DebounceDelay() time.Duration {
	d, err := time.ParseDuration(c.Debounce)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}

// LoadConfig reads a YAML config file; a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the parent directory.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
