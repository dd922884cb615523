package config

import (
	_ "embed"
)

//go:embed defaults/snakebreak.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// DefaultConfig returns the default SnakeBreak configuration.
func DefaultConfig() Config {
	return Config{
		Play: PlayConfig{
			Width:    800,
			Height:   600,
			TickRate: 30,
		},
		Paddle: PaddleConfig{
			SegmentSize:    20,
			Length:         3,
			MoveEveryTicks: 5,
			OffsetBottom:   50,
		},
		Ball: BallConfig{
			Radius: 10,
			SpeedX: 4,
			SpeedY: -4,
			Gap:    5,
		},
		Bricks: BrickConfig{
			Width:     75,
			Height:    20,
			Padding:   5,
			OffsetTop: 50,
		},
		Tiers: []TierConfig{
			{Code: "S", Name: "standard", Color: "blue", PowerUpChance: 0.1},
			{Code: "H", Name: "hard", Color: "red", PowerUpChance: 0.15},
			{Code: "P", Name: "power-up", Color: "green", PowerUpChance: 1.0},
		},
		PowerUps: PowerUpConfig{
			Size:              15,
			FallSpeed:         3,
			SlowBallDuration:  300,
			WiderPaddleGrowth: 2,
		},
		Scores: ScoresConfig{
			MaxEntries: 5,
			PlayerName: "PLY",
		},
		Storage: StorageConfig{
			DB: "~/.snakebreak/scores.db",
		},
		Logging: LoggingConfig{
			File:  "~/.snakebreak/snakebreak.log",
			Level: "info",
		},
	}
}
