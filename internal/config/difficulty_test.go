package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultBreakoutConfig().Difficulty, 300)

	assert.False(t, d.IsEnabled())
	assert.Equal(t, 250.0, d.Speed(250, 0, 0))
	assert.Equal(t, 250.0, d.Speed(250, 300, 10000))
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score"},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg, 300)

	assert.Equal(t, 0.0, d.Level(0, 0))
	assert.InDelta(t, 0.5, d.Level(150, 0), 1e-9)
	assert.Equal(t, 1.0, d.Level(600, 0), "progress is clamped")

	assert.Equal(t, 100.0, d.Speed(100, 0, 0))
	assert.InDelta(t, 150.0, d.Speed(100, 150, 0), 1e-9)
	assert.InDelta(t, 200.0, d.Speed(100, 300, 0), 1e-9)
}

func TestDifficultyTimeProgressionWithInitialLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg, 300)

	assert.Equal(t, 0.5, d.Level(0, 0))
	assert.InDelta(t, 0.75, d.Level(0, 50), 1e-9)

	d.SetInitialLevel(2.0)
	assert.Equal(t, 1.0, d.Level(0, 0), "initial level is clamped")

	d.SetEnabled(false)
	assert.False(t, d.IsEnabled())
	assert.Equal(t, 100.0, d.Speed(100, 0, 100))
}

func TestDifficultyFixedHoldsInitialLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg, 300)

	assert.False(t, d.IsEnabled(), "no progression")
	assert.Equal(t, 150.0, d.Speed(100, 0, 0))
	assert.Equal(t, 150.0, d.Speed(100, 300, 10000))

	// The default config has level 0, so fixed keeps the base speed
	cfg.InitialLevel = 0
	assert.Equal(t, 250.0, NewDifficultyManager(cfg, 300).Speed(250, 300, 0))
}
