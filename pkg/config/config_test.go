package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/framegrab/pkg/pipeline"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.OutputDir != "frames" {
		t.Errorf("output dir: expected frames, got %s", cfg.OutputDir)
	}
	if cfg.IntervalSec != 5 {
		t.Errorf("interval: expected 5, got %v", cfg.IntervalSec)
	}
	if cfg.Quality != 95 {
		t.Errorf("quality: expected 95, got %d", cfg.Quality)
	}
	if !cfg.Play || !cfg.Report {
		t.Error("play and report must default to enabled")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("output: shots\ninterval: 2.5\nquality: 80\nend: 30\nplay: false\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OutputDir != "shots" {
		t.Errorf("output dir: expected shots, got %s", cfg.OutputDir)
	}
	if cfg.IntervalSec != 2.5 {
		t.Errorf("interval: expected 2.5, got %v", cfg.IntervalSec)
	}
	if cfg.Quality != 80 {
		t.Errorf("quality: expected 80, got %d", cfg.Quality)
	}
	if cfg.EndTime == nil || *cfg.EndTime != 30 {
		t.Errorf("end time: expected 30, got %v", cfg.EndTime)
	}
	if cfg.Play {
		t.Error("play: expected false")
	}
	// Unset keys keep their defaults.
	if !cfg.Report {
		t.Error("report: expected default true")
	}
}

func TestValidate(t *testing.T) {
	valid := Defaults()
	valid.URL = "https://example.com/clip.mp4"
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing URL", func(c *Config) { c.URL = "" }},
		{"zero interval", func(c *Config) { c.IntervalSec = 0 }},
		{"quality too low", func(c *Config) { c.Quality = 0 }},
		{"quality too high", func(c *Config) { c.Quality = 101 }},
		{"negative max width", func(c *Config) { c.MaxWidth = -1 }},
		{"negative start", func(c *Config) { c.StartTime = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidate_InvalidWindow(t *testing.T) {
	cfg := Defaults()
	cfg.URL = "https://example.com/clip.mp4"
	cfg.StartTime = 30
	end := 10.0
	cfg.EndTime = &end

	if err := cfg.Validate(); !errors.Is(err, pipeline.ErrInvalidWindow) {
		t.Errorf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.URL = "https://example.com/clip.mp4"
	cfg.MaxWidth = 800
	cfg.Play = false

	oc := cfg.ToOrchestratorConfig()
	if oc.URL != cfg.URL || oc.MaxWidth != 800 || oc.PlayVideo {
		t.Errorf("conversion mismatch: %+v", oc)
	}
}
