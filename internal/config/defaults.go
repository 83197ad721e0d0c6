package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Window: BreakoutWindow{
			Width:  800,
			Height: 600,
			Title:  "Breakout Game",
			FPS:    60,
		},
		Bricks: BreakoutBricks{
			Rows:    3,
			Columns: 10,
			Width:   60,
			Height:  20,
			Gap:     10,
			OffsetX: 35,
			OffsetY: 30,
			Points:  10,
		},
		Paddle: BreakoutPaddle{
			Width:        100,
			Height:       20,
			Speed:        400,
			BottomOffset: 50,
		},
		Ball: BreakoutBall{
			Radius: 10,
			Speed:  250,
		},
		Gameplay: BreakoutGameplay{
			WinHoldSeconds: 2,
			ExitOnWin:      true,
			HoldTicks:      8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 0,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
