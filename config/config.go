// Package config loads estimator settings from YAML over embedded defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all run parameters.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
}

// GridConfig holds the lattice dimensions.
type GridConfig struct {
	Size int `yaml:"size"` // N, side length of the N×N grid
}

// SimulationConfig holds Monte Carlo parameters.
type SimulationConfig struct {
	Trials  int   `yaml:"trials"`  // T independent trials
	Seed    int64 `yaml:"seed"`    // 0 = fixed default seed
	Workers int   `yaml:"workers"` // trials run concurrently
	Verify  bool  `yaml:"verify"`  // BFS cross-check per trial
}

// OutputConfig holds optional result sinks.
type OutputConfig struct {
	CSV string `yaml:"csv"` // per-trial CSV path; empty disables
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	return cfg, nil
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks value ranges. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Size <= 0:
		return fmt.Errorf("%w: grid.size must be positive, got %d", ErrInvalidConfig, c.Grid.Size)
	case c.Simulation.Trials <= 0:
		return fmt.Errorf("%w: simulation.trials must be positive, got %d", ErrInvalidConfig, c.Simulation.Trials)
	case c.Simulation.Workers < 1:
		return fmt.Errorf("%w: simulation.workers must be at least 1, got %d", ErrInvalidConfig, c.Simulation.Workers)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// Logger builds a slog.Logger writing to w per the Log section.
// Call Validate first; unknown values fall back to info/text.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	hopts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}

	return slog.New(slog.NewTextHandler(w, hopts))
}

// WriteYAML writes the configuration as YAML to w.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return enc.Close()
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, s)
	}

	return level, nil
}
