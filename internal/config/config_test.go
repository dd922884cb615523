package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	def := DefaultConfig()
	if cfg.Play != def.Play || cfg.Paddle != def.Paddle || cfg.Ball != def.Ball {
		t.Errorf("embedded play/paddle/ball differ from DefaultConfig()")
	}
	if cfg.Bricks != def.Bricks || cfg.PowerUps != def.PowerUps || cfg.Scores != def.Scores {
		t.Errorf("embedded bricks/power-ups/scores differ from DefaultConfig()")
	}
	if len(cfg.Tiers) != len(def.Tiers) {
		t.Fatalf("embedded tiers = %d, expected %d", len(cfg.Tiers), len(def.Tiers))
	}
	for i := range def.Tiers {
		if cfg.Tiers[i] != def.Tiers[i] {
			t.Errorf("tier %d = %+v, expected %+v", i, cfg.Tiers[i], def.Tiers[i])
		}
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "ball:\n  speed_x: 7\npaddle:\n  move_every_ticks: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Ball.SpeedX != 7 || cfg.Paddle.MoveEveryTicks != 2 {
		t.Errorf("overrides not applied: %+v %+v", cfg.Ball, cfg.Paddle)
	}
	// Untouched keys keep their defaults
	if cfg.Ball.SpeedY != -4 || cfg.Play.Width != 800 || len(cfg.Tiers) != 3 {
		t.Errorf("defaults lost: ball=%+v width=%d tiers=%d", cfg.Ball, cfg.Play.Width, len(cfg.Tiers))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("play: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, err := Load(bad)
	if err == nil {
		t.Error("expected error for malformed custom config")
	}
	if cfg.Play.Width != 800 {
		t.Error("failed load should still return defaults")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"EASY", DifficultyEasy, false},
		{" hard ", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name      string
		preset    DifficultyPreset
		wantX     int
		wantY     int
		wantEvery int
	}{
		{"easy", DifficultyEasy, 3, -3, 6},
		{"normal", DifficultyNormal, 4, -4, 5},
		{"hard", DifficultyHard, 6, -6, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Ball.SpeedX != tc.wantX || cfg.Ball.SpeedY != tc.wantY {
				t.Errorf("speed = (%d, %d), expected (%d, %d)", cfg.Ball.SpeedX, cfg.Ball.SpeedY, tc.wantX, tc.wantY)
			}
			if cfg.Paddle.MoveEveryTicks != tc.wantEvery {
				t.Errorf("move_every_ticks = %d, expected %d", cfg.Paddle.MoveEveryTicks, tc.wantEvery)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Play.TickRate = 0
	cfg.Paddle.Length = 1
	cfg.Ball.SpeedY = 0
	cfg.Scores.PlayerName = "  "
	cfg.Tiers = []TierConfig{
		{Code: "S", Color: "blue", PowerUpChance: 2},
		{Code: "S", Color: "red"},
		{Code: "XY"},
		{Code: " "},
	}

	fixes := cfg.Validate()
	if len(fixes) != 7 {
		t.Errorf("expected 7 fixes, got %d: %v", len(fixes), fixes)
	}
	if cfg.Play.TickRate != 30 || cfg.Paddle.Length != 3 || cfg.Ball.SpeedY != -4 {
		t.Errorf("invalid values not replaced: %+v %+v %+v", cfg.Play, cfg.Paddle, cfg.Ball)
	}
	if cfg.Scores.PlayerName != "PLY" {
		t.Errorf("PlayerName = %q, expected PLY", cfg.Scores.PlayerName)
	}
	if len(cfg.Tiers) != 1 || cfg.Tiers[0].PowerUpChance != 1 {
		t.Errorf("Tiers = %+v", cfg.Tiers)
	}

	clean := DefaultConfig()
	if fixes := clean.Validate(); len(fixes) != 0 {
		t.Errorf("default config should validate cleanly, got %v", fixes)
	}
}

func TestValidateNoTiers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tiers = nil
	cfg.Validate()
	if len(cfg.Tiers) != 3 {
		t.Errorf("expected default tiers, got %d", len(cfg.Tiers))
	}
}
