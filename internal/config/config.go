// Package config provides YAML-based game configuration loading and
// difficulty management for Breakout.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the Breakout game.
// Sizes, positions and speeds are in world units (pixels of the playfield).
type BreakoutConfig struct {
	Window     BreakoutWindow   `yaml:"window"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Ball       BreakoutBall     `yaml:"ball"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutWindow defines the playfield and the desktop window.
type BreakoutWindow struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Gap     int `yaml:"gap"`      // Space between neighbouring bricks
	OffsetX int `yaml:"offset_x"` // Left edge of the first column
	OffsetY int `yaml:"offset_y"` // Top edge of the first row
	Points  int `yaml:"points"`   // Score per destroyed brick
}

// BreakoutPaddle defines the player's paddle.
type BreakoutPaddle struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per second
	BottomOffset int     `yaml:"bottom_offset"` // Distance from the bottom edge to the paddle top
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Units per second on each axis
}

// BreakoutGameplay defines round flow.
type BreakoutGameplay struct {
	WinHoldSeconds float64 `yaml:"win_hold_seconds"` // How long "You Win!" stays up
	ExitOnWin      bool    `yaml:"exit_on_win"`      // Close the game after the win message
	HoldTicks      int     `yaml:"hold_ticks"`       // Terminal held-key emulation window
}

// MaxScore returns the score reached when every brick is destroyed.
func (c BreakoutConfig) MaxScore() int {
	return c.Bricks.Rows * c.Bricks.Columns * c.Bricks.Points
}

// Validate checks the configuration for values the simulation cannot run with.
func (c BreakoutConfig) Validate() error {
	w, h := c.Window.Width, c.Window.Height
	b := c.Bricks

	switch {
	case w <= 0 || h <= 0:
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, w, h)
	case c.Window.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.Window.FPS)
	case b.Rows <= 0 || b.Columns <= 0:
		return fmt.Errorf("%w: brick grid %dx%d must be positive", ErrInvalidConfig, b.Rows, b.Columns)
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: brick size %dx%d must be positive", ErrInvalidConfig, b.Width, b.Height)
	case b.Gap < 0 || b.OffsetX < 0 || b.OffsetY < 0:
		return fmt.Errorf("%w: brick gap and offsets must not be negative", ErrInvalidConfig)
	case b.Points <= 0:
		return fmt.Errorf("%w: brick points must be positive, got %d", ErrInvalidConfig, b.Points)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size %dx%d must be positive", ErrInvalidConfig, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Width >= w:
		return fmt.Errorf("%w: paddle width %d does not fit window width %d", ErrInvalidConfig, c.Paddle.Width, w)
	case c.Paddle.BottomOffset < c.Paddle.Height || c.Paddle.BottomOffset >= h:
		return fmt.Errorf("%w: paddle bottom offset %d out of range", ErrInvalidConfig, c.Paddle.BottomOffset)
	case c.Paddle.Speed <= 0:
		return fmt.Errorf("%w: paddle speed must be positive", ErrInvalidConfig)
	case c.Ball.Radius <= 0 || c.Ball.Speed <= 0:
		return fmt.Errorf("%w: ball radius and speed must be positive", ErrInvalidConfig)
	case 2*c.Ball.Radius >= float64(w) || 2*c.Ball.Radius >= float64(h):
		return fmt.Errorf("%w: ball diameter does not fit the window", ErrInvalidConfig)
	case c.Gameplay.WinHoldSeconds < 0:
		return fmt.Errorf("%w: win hold must not be negative", ErrInvalidConfig)
	}

	gridRight := b.OffsetX + b.Columns*b.Width + (b.Columns-1)*b.Gap
	gridBottom := b.OffsetY + b.Rows*b.Height + (b.Rows-1)*b.Gap
	if gridRight > w {
		return fmt.Errorf("%w: brick grid right edge %d exceeds window width %d", ErrInvalidConfig, gridRight, w)
	}
	if gridBottom >= h-c.Paddle.BottomOffset {
		return fmt.Errorf("%w: brick grid bottom edge %d overlaps the paddle row", ErrInvalidConfig, gridBottom)
	}

	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached (0 = max score)
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
