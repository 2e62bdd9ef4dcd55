package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a run
type Config struct {
	Engine         string        `json:"engine" yaml:"engine"`
	Pattern        string        `json:"pattern" yaml:"pattern"`
	PatternFile    string        `json:"pattern_file" yaml:"pattern_file"`
	Generations    int           `json:"generations" yaml:"generations"`
	Trials         int           `json:"trials" yaml:"trials"`
	Parallel       bool          `json:"parallel" yaml:"parallel"`
	Width          int           `json:"width" yaml:"width"`
	Height         int           `json:"height" yaml:"height"`
	FrameRate      time.Duration `json:"frame_rate" yaml:"frame_rate"`
	MaxGenerations int           `json:"max_generations" yaml:"max_generations"`
	StopOnStagnant bool          `json:"stop_on_stagnant" yaml:"stop_on_stagnant"`
	LogLevel       string        `json:"log_level" yaml:"log_level"`
	MetricsAddr    string        `json:"metrics_addr" yaml:"metrics_addr"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Engine:         model.DeltaEngineName,
		Pattern:        "r-pentomino",
		Generations:    1000,
		Trials:         5,
		Parallel:       false,
		Width:          80,
		Height:         25,
		FrameRate:      time.Second / 30,
		MaxGenerations: 0, // run until stagnant or interrupted
		StopOnStagnant: true,
		LogLevel:       "info",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal yaml from file: %+v", filename)
		}
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	return config, nil
}

// Validate checks that the config describes a runnable simulation
func (c Config) Validate() error {
	switch {
	case !slices.Contains(model.EngineNames(), c.Engine):
		return errors.Wrapf(ErrInvalidConfig, "engine %q, want one of %v", c.Engine, model.EngineNames())
	case c.Generations <= 0:
		return errors.Wrapf(ErrInvalidConfig, "generations must be positive, got %d", c.Generations)
	case c.Trials <= 0:
		return errors.Wrapf(ErrInvalidConfig, "trials must be positive, got %d", c.Trials)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "viewport must be positive, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max generations must not be negative, got %d", c.MaxGenerations)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
