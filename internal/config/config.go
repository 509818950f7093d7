// Package config loads the description of a sampling job from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// DefaultResolution is the number of samples per axis used for axes that
// aren't configured.
const DefaultResolution = 16

// Output formats.
const (
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Stdout is the output path that selects standard output.
const Stdout = "-"

// Output describes where and how sampled points are written.
type Output struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// Config describes a sampling job.
type Config struct {
	// Script is the path of the script describing the map.
	Script string
	// Resolution holds the number of samples along each input axis.
	Resolution [3]int
	// Workers limits concurrent evaluation. Zero selects the number of CPUs.
	Workers int
	// Timeout limits script evaluation. Zero selects the engine's default.
	Timeout time.Duration
	// Params are defined as globals before the script runs.
	Params map[string]float64
	Output Output
}

// file is the YAML form of Config.
type file struct {
	Script     string         `yaml:"script"`
	Resolution []int          `yaml:"resolution"`
	Workers    int            `yaml:"workers"`
	Timeout    time.Duration  `yaml:"timeout"`
	Params     map[string]any `yaml:"params"`
	Output     Output         `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Resolution: [3]int{DefaultResolution, DefaultResolution, DefaultResolution},
		Params:     map[string]float64{},
		Output:     Output{Path: Stdout, Format: FormatYAML},
	}
}

// Load reads the configuration file at path. A relative script path is
// resolved against the directory containing the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if cfg.Script != "" && !filepath.IsAbs(cfg.Script) {
		cfg.Script = filepath.Join(filepath.Dir(path), cfg.Script)
	}
	return cfg, nil
}

// Parse decodes a configuration document, applies defaults and validates the
// result.
func Parse(data []byte) (*Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.Script = f.Script
	cfg.Workers = f.Workers
	cfg.Timeout = f.Timeout
	if f.Output.Path != "" {
		cfg.Output.Path = f.Output.Path
	}
	if f.Output.Format != "" {
		cfg.Output.Format = f.Output.Format
	}

	if len(f.Resolution) > len(cfg.Resolution) {
		return nil, fmt.Errorf("resolution has %d entries, at most 3 are allowed", len(f.Resolution))
	}
	copy(cfg.Resolution[:], f.Resolution)

	for name, v := range f.Params {
		x, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", name, err)
		}
		cfg.Params[name] = x
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting of cfg.
func (cfg *Config) Validate() error {
	for i, n := range cfg.Resolution {
		if n < 1 {
			return fmt.Errorf("resolution[%d] must be at least 1, got %d", i, n)
		}
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}
	switch cfg.Output.Format {
	case FormatYAML, FormatCSV:
	default:
		return fmt.Errorf("unknown output format %q, expected %s or %s", cfg.Output.Format, FormatYAML, FormatCSV)
	}
	return nil
}
