// Package config loads lvcluster run settings from TOML or YAML files.
//
// A file only needs the keys it wants to change; everything else keeps the
// value from Default. Command-line flags are applied on top by the caller.
//
//	# lvcluster.toml
//	merges = 1000
//	top = 3
//	log_level = "debug"
//	metrics_file = "/var/lib/node_exporter/lvcluster.prom"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by Load and Validate.
var (
	// ErrUnsupportedFormat indicates a file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalidMerges indicates a negative merge count.
	ErrInvalidMerges = errors.New("config: merges must be non-negative")

	// ErrInvalidTop indicates a top count below one.
	ErrInvalidTop = errors.New("config: top must be at least 1")

	// ErrInvalidLogLevel indicates a level charmbracelet/log does not know.
	ErrInvalidLogLevel = errors.New("config: unknown log level")
)

// Config is the full set of run settings.
type Config struct {
	// Merges is k for BoundedMerge.
	Merges int `toml:"merges" yaml:"merges"`

	// Top is how many of the largest components BoundedMerge multiplies.
	Top int `toml:"top" yaml:"top"`

	// LogLevel is one of debug, info, warn, error, fatal.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// MetricsFile, when set, receives Prometheus text-format metrics after a run.
	MetricsFile string `toml:"metrics_file" yaml:"metrics_file"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() Config {
	return Config{
		Merges:   1000,
		Top:      3,
		LogLevel: "info",
	}
}

// Load reads path on top of Default and validates the result.
// The decoder is chosen by extension.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Merges < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMerges, c.Merges)
	}
	if c.Top < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTop, c.Top)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return lvl, nil
}
