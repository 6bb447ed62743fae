// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/framegrab/pkg/orchestrator"
	"github.com/user/framegrab/pkg/pipeline"
)

// Config represents the full configuration for framegrab.
type Config struct {
	// Input/Output
	URL       string `yaml:"url"`
	OutputDir string `yaml:"output"`
	WorkDir   string `yaml:"work_dir"`

	// Sampling
	IntervalSec float64 `yaml:"interval"`
	Quality     int     `yaml:"quality"`
	MaxWidth    int     `yaml:"max_width"`

	// Window
	StartTime float64  `yaml:"start"`
	EndTime   *float64 `yaml:"end"`

	// Playback and reporting
	Play   bool `yaml:"play"`
	Report bool `yaml:"report"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Tool paths
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		OutputDir:   "frames",
		WorkDir:     ".",
		IntervalSec: 5,
		Quality:     95,
		StartTime:   0,
		Play:        true,
		Report:      true,
		LogLevel:    "info",
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration surface before any work starts.
// An invalid window or interval must produce no output files, so this runs
// before the output directory or log file is created.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("source URL is required")
	}
	if c.IntervalSec <= 0 {
		return fmt.Errorf("interval must be greater than 0")
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100")
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("max width must be greater than 0")
	}
	window := pipeline.TimeWindow{StartTime: c.StartTime, EndTime: c.EndTime}
	if err := window.Validate(); err != nil {
		return err
	}
	return nil
}

// ToOrchestratorConfig converts the configuration to an orchestrator Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		URL:         c.URL,
		WorkDir:     c.WorkDir,
		OutputDir:   c.OutputDir,
		IntervalSec: c.IntervalSec,
		Quality:     c.Quality,
		MaxWidth:    c.MaxWidth,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		PlayVideo:   c.Play,
	}
}
