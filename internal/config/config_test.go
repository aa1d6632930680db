package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML FlappyConfig
	if err := yaml.Unmarshal(GetDefaultYAML("flappy"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	want := DefaultFlappyConfig()
	if fromYAML != want {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig():\n got  %+v\n want %+v", fromYAML, want)
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"empty id", func(c *FlappyConfig) { c.Game.ID = "" }},
		{"no gravity", func(c *FlappyConfig) { c.Physics.Gravity = 0 }},
		{"downward jump", func(c *FlappyConfig) { c.Physics.JumpImpulse = 0.3 }},
		{"stopped pipes", func(c *FlappyConfig) { c.Physics.PipeSpeed = 0 }},
		{"gap too small", func(c *FlappyConfig) { c.Obstacles.Gap = 2*c.Player.Radius + 1 }},
		{"overlapping pipes", func(c *FlappyConfig) { c.Obstacles.Spacing = c.Obstacles.Width }},
		{"no obstacles", func(c *FlappyConfig) { c.Obstacles.Count = 0 }},
		{"player off screen", func(c *FlappyConfig) { c.Player.XRatio = 1.2 }},
		{"unknown render mode", func(c *FlappyConfig) { c.Render.Mode = "vector" }},
		{"inverted tilt", func(c *FlappyConfig) { c.Render.MinTiltDeg = 100 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadFlappyCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  gravity: 0.002\nrender:\n  mode: primitive\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.002 {
		t.Errorf("gravity = %v, expected 0.002", cfg.Physics.Gravity)
	}
	if cfg.Render.Mode != RenderPrimitive {
		t.Errorf("render mode = %q, expected primitive", cfg.Render.Mode)
	}
	// Untouched keys keep their defaults.
	if cfg.Obstacles.Gap != DefaultFlappyConfig().Obstacles.Gap {
		t.Errorf("gap = %v, expected default", cfg.Obstacles.Gap)
	}
}

func TestLoadFlappyMissingFile(t *testing.T) {
	if _, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFlappy() should fail for a missing custom file")
	}
}

func TestLoadFlappyInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  gap: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFlappy(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadFlappy() = %v, expected ErrInvalidConfig", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestApplyFlappyPreset(t *testing.T) {
	cfg := DefaultFlappyConfig()
	ApplyFlappyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset gave %+v", cfg.Difficulty)
	}

	ApplyFlappyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg.Difficulty
	ApplyFlappyPreset(&cfg, "")
	if cfg.Difficulty != before {
		t.Error("empty preset should not change the config")
	}
}
