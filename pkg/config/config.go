// Package config holds the settings of a curve pipeline run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gocurves/pkg/analysis"
	"github.com/philipparndt/gocurves/pkg/curves"
	"github.com/philipparndt/gocurves/pkg/report"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultCount is the population size of a default run.
const DefaultCount = 100

// Config describes one pipeline run.
type Config struct {
	Count     int     `yaml:"count"`
	T         float64 `yaml:"t"`
	Seed      uint64  `yaml:"seed"` // 0 seeds from OS entropy
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Parallel  bool    `yaml:"parallel"`
	Threshold int     `yaml:"threshold"`
	Workers   int     `yaml:"workers"` // 0 = GOMAXPROCS
	Format    string  `yaml:"format"`
}

// Default returns the settings of the reference run: 100 curves
// evaluated at t = π/4, sequential reduction, plain output.
func Default() Config {
	return Config{
		Count:     DefaultCount,
		T:         math.Pi / 4,
		Min:       curves.DefaultMinParam,
		Max:       curves.DefaultMaxParam,
		Threshold: analysis.DefaultThreshold,
		Format:    report.Plain.String(),
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	if c.Count < curves.MinPopulation {
		return fmt.Errorf("count must be at least %d, got %d: %w", curves.MinPopulation, c.Count, ErrInvalidConfig)
	}
	if math.IsNaN(c.T) || math.IsInf(c.T, 0) {
		return fmt.Errorf("t must be finite, got %v: %w", c.T, ErrInvalidConfig)
	}
	if !(c.Min > 0) || !(c.Max > c.Min) || math.IsInf(c.Max, 0) {
		return fmt.Errorf("parameter range [%v, %v) must be positive and non-empty: %w", c.Min, c.Max, ErrInvalidConfig)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %d: %w", c.Threshold, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ReportFormat returns the parsed output format. Call Validate first.
func (c Config) ReportFormat() report.Format {
	f, _ := report.ParseFormat(c.Format)
	return f
}
