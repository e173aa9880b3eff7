package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded RabbitConfig
	if err := yaml.Unmarshal(defaultRabbitYAML, &embedded); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	if embedded != DefaultRabbitConfig() {
		t.Errorf("embedded YAML and DefaultRabbitConfig() differ:\nembedded: %+v\nhardcoded: %+v", embedded, DefaultRabbitConfig())
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultRabbitConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RabbitConfig)
	}{
		{"zero playfield", func(c *RabbitConfig) { c.Playfield.Width = 0 }},
		{"player taller than field", func(c *RabbitConfig) { c.Player.Height = 600 }},
		{"inverted speeds", func(c *RabbitConfig) { c.Physics.MaxSpeed = 1 }},
		{"inverted gap range", func(c *RabbitConfig) { c.Spawn.GapHard = IntRange{Min: 150, Max: 120} }},
		{"no placement tries", func(c *RabbitConfig) { c.Spawn.PlacementTries = 0 }},
		{"empty history", func(c *RabbitConfig) { c.Scoring.HistorySize = 0 }},
		{"gap does not fit", func(c *RabbitConfig) { c.Playfield.Height = 250 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRabbitConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateReportsFirstInvertedRange(t *testing.T) {
	cfg := DefaultRabbitConfig()
	cfg.Spawn.SpawnOffset = IntRange{Min: 300, Max: 100}
	cfg.Hazard.ThunderTicks = IntRange{Min: 400, Max: 200}
	cfg.Spawn.ObstacleWidth = IntRange{Min: 200, Max: 100}

	for range 20 {
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "obstacle_width") {
			t.Fatalf("Validate() = %v, expected obstacle_width to be reported", err)
		}
	}
}

func TestLoadRabbitCustomPathMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rabbit.yaml")
	data := []byte("physics:\n  gravity: 0.75\nscoring:\n  coin: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRabbit(path)
	if err != nil {
		t.Fatalf("LoadRabbit() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.75 {
		t.Errorf("Gravity = %v, expected 0.75", cfg.Physics.Gravity)
	}
	if cfg.Scoring.Coin != 250 {
		t.Errorf("Coin = %d, expected 250", cfg.Scoring.Coin)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpImpulse != -7 {
		t.Errorf("JumpImpulse = %v, expected default -7", cfg.Physics.JumpImpulse)
	}
	if cfg.Spawn.PlacementTries != 20 {
		t.Errorf("PlacementTries = %d, expected default 20", cfg.Spawn.PlacementTries)
	}
}

func TestLoadRabbitCustomPathErrors(t *testing.T) {
	if _, err := LoadRabbit(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadRabbit() with a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  history_size: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRabbit(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadRabbit() = %v, expected ErrInvalidConfig", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := DefaultRabbitConfig()
	cfg.Hazard.Jitter = 9

	var buf bytes.Buffer
	if err := cfg.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML() failed: %v", err)
	}

	back, err := parseOverDefaults(buf.Bytes())
	if err != nil {
		t.Fatalf("parse written YAML: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config:\nwrote: %+v\nread:  %+v", cfg, back)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRabbitConfig()

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyPreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("normal") != DifficultyNormal {
		t.Error("ParsePreset(normal) should return DifficultyNormal")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}
