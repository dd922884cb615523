// Package config provides YAML-based game configuration loading and
// difficulty presets for SnakeBreak.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Config contains all configuration for a SnakeBreak session.
// Distances are world units; the presentation layer scales them to cells.
type Config struct {
	Play     PlayConfig    `yaml:"play"`
	Paddle   PaddleConfig  `yaml:"paddle"`
	Ball     BallConfig    `yaml:"ball"`
	Bricks   BrickConfig   `yaml:"bricks"`
	Tiers    []TierConfig  `yaml:"tiers"`
	PowerUps PowerUpConfig `yaml:"power_ups"`
	Scores   ScoresConfig  `yaml:"scores"`
	Levels   LevelsConfig  `yaml:"levels"`
	Storage  StorageConfig `yaml:"storage"`
	Logging  LoggingConfig `yaml:"logging"`
}

// PlayConfig defines the play field and tick rate.
type PlayConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// PaddleConfig defines the snake paddle.
type PaddleConfig struct {
	SegmentSize    int `yaml:"segment_size"`
	Length         int `yaml:"length"`
	MoveEveryTicks int `yaml:"move_every_ticks"`
	OffsetBottom   int `yaml:"offset_bottom"` // anchor distance from the bottom edge
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius int `yaml:"radius"`
	SpeedX int `yaml:"speed_x"`
	SpeedY int `yaml:"speed_y"`
	Gap    int `yaml:"gap"` // space between ball and paddle at spawn
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Padding   int `yaml:"padding"`
	OffsetTop int `yaml:"offset_top"`
}

// TierConfig maps a level code to a brick tier.
type TierConfig struct {
	Code          string  `yaml:"code"`
	Name          string  `yaml:"name"`
	Color         string  `yaml:"color"`
	PowerUpChance float64 `yaml:"power_up_chance"`
}

// PowerUpConfig defines falling pickups and their effects.
type PowerUpConfig struct {
	Size              int `yaml:"size"`
	FallSpeed         int `yaml:"fall_speed"`
	SlowBallDuration  int `yaml:"slow_ball_duration"`
	WiderPaddleGrowth int `yaml:"wider_paddle_growth"`
}

// ScoresConfig defines the high-score board.
type ScoresConfig struct {
	MaxEntries int    `yaml:"max_entries"`
	PlayerName string `yaml:"player_name"`
}

// LevelsConfig points at an optional directory of level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// StorageConfig selects the score backend. A non-empty File selects the
// JSON file store; otherwise the SQLite database at DB is used.
type StorageConfig struct {
	DB   string `yaml:"db"`
	File string `yaml:"file"`
}

// LoggingConfig defines where logs go while the TUI owns the terminal.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset.
// The empty string selects DifficultyNormal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Ball speed keeps the configured direction on each axis.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	var speed, moveEvery int
	switch preset {
	case DifficultyEasy:
		speed, moveEvery = 3, 6
	case DifficultyHard:
		speed, moveEvery = 6, 4
	default:
		return
	}

	cfg.Ball.SpeedX = withSign(speed, cfg.Ball.SpeedX, 1)
	cfg.Ball.SpeedY = withSign(speed, cfg.Ball.SpeedY, -1)
	cfg.Paddle.MoveEveryTicks = moveEvery
}

func withSign(mag, like, fallback int) int {
	switch {
	case like < 0:
		return -mag
	case like > 0:
		return mag
	default:
		return fallback * mag
	}
}

// Validate replaces unusable values with their defaults and returns a
// description of each replacement.
func (c *Config) Validate() []string {
	def := DefaultConfig()
	var fixes []string

	fix := func(name string, bad bool, field *int, value int) {
		if bad {
			fixes = append(fixes, fmt.Sprintf("%s=%d is invalid, using %d", name, *field, value))
			*field = value
		}
	}

	fix("play.width", c.Play.Width <= 0, &c.Play.Width, def.Play.Width)
	fix("play.height", c.Play.Height <= 0, &c.Play.Height, def.Play.Height)
	fix("play.tick_rate", c.Play.TickRate <= 0, &c.Play.TickRate, def.Play.TickRate)
	fix("paddle.segment_size", c.Paddle.SegmentSize <= 0, &c.Paddle.SegmentSize, def.Paddle.SegmentSize)
	fix("paddle.length", c.Paddle.Length < 3, &c.Paddle.Length, def.Paddle.Length)
	fix("paddle.move_every_ticks", c.Paddle.MoveEveryTicks <= 0, &c.Paddle.MoveEveryTicks, def.Paddle.MoveEveryTicks)
	fix("paddle.offset_bottom", c.Paddle.OffsetBottom <= 0 || c.Paddle.OffsetBottom >= c.Play.Height,
		&c.Paddle.OffsetBottom, def.Paddle.OffsetBottom)
	fix("ball.radius", c.Ball.Radius <= 0, &c.Ball.Radius, def.Ball.Radius)
	fix("ball.speed_x", c.Ball.SpeedX == 0, &c.Ball.SpeedX, def.Ball.SpeedX)
	fix("ball.speed_y", c.Ball.SpeedY == 0, &c.Ball.SpeedY, def.Ball.SpeedY)
	fix("ball.gap", c.Ball.Gap < 0, &c.Ball.Gap, def.Ball.Gap)
	fix("bricks.width", c.Bricks.Width <= 0, &c.Bricks.Width, def.Bricks.Width)
	fix("bricks.height", c.Bricks.Height <= 0, &c.Bricks.Height, def.Bricks.Height)
	fix("bricks.padding", c.Bricks.Padding < 0, &c.Bricks.Padding, def.Bricks.Padding)
	fix("bricks.offset_top", c.Bricks.OffsetTop < 0, &c.Bricks.OffsetTop, def.Bricks.OffsetTop)
	fix("power_ups.size", c.PowerUps.Size <= 0, &c.PowerUps.Size, def.PowerUps.Size)
	fix("power_ups.fall_speed", c.PowerUps.FallSpeed <= 0, &c.PowerUps.FallSpeed, def.PowerUps.FallSpeed)
	fix("power_ups.slow_ball_duration", c.PowerUps.SlowBallDuration <= 0,
		&c.PowerUps.SlowBallDuration, def.PowerUps.SlowBallDuration)
	fix("power_ups.wider_paddle_growth", c.PowerUps.WiderPaddleGrowth <= 0,
		&c.PowerUps.WiderPaddleGrowth, def.PowerUps.WiderPaddleGrowth)
	fix("scores.max_entries", c.Scores.MaxEntries <= 0, &c.Scores.MaxEntries, def.Scores.MaxEntries)

	if strings.TrimSpace(c.Scores.PlayerName) == "" {
		c.Scores.PlayerName = def.Scores.PlayerName
	}

	var tiers []TierConfig
	seen := make(map[string]bool)
	for _, t := range c.Tiers {
		switch {
		case utf8.RuneCountInString(t.Code) != 1 || t.Code == " ":
			fixes = append(fixes, fmt.Sprintf("tier code %q must be a single non-space character, dropped", t.Code))
			continue
		case seen[t.Code]:
			fixes = append(fixes, fmt.Sprintf("tier code %q is duplicated, dropped", t.Code))
			continue
		}
		if t.PowerUpChance < 0 || t.PowerUpChance > 1 {
			fixes = append(fixes, fmt.Sprintf("tier %q power_up_chance=%g is outside [0,1], clamped", t.Code, t.PowerUpChance))
			t.PowerUpChance = min(max(t.PowerUpChance, 0), 1)
		}
		seen[t.Code] = true
		tiers = append(tiers, t)
	}
	if len(tiers) == 0 {
		fixes = append(fixes, "no usable tiers, using defaults")
		tiers = def.Tiers
	}
	c.Tiers = tiers

	return fixes
}
