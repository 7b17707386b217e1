// Package config provides YAML-based game configuration loading and
// difficulty presets for termpong.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/termpong/internal/game"
)

// Config contains all tunable game parameters.
type Config struct {
	Field       Field       `yaml:"field"`
	Paddle      Paddle      `yaml:"paddle"`
	Ball        Ball        `yaml:"ball"`
	AI          AI          `yaml:"ai"`
	Progression Progression `yaml:"progression"`
}

// Field defines the playing field layout.
type Field struct {
	// TopMargin is the number of rows reserved above the field for the HUD.
	TopMargin int `yaml:"top_margin"`
}

// Paddle defines paddle geometry.
type Paddle struct {
	Width int `yaml:"width"`
}

// Ball defines ball timing.
type Ball struct {
	// IntervalMs is the base tick period in milliseconds. The effective
	// period shrinks as levels are cleared unless SpeedScaling is off.
	IntervalMs   int  `yaml:"interval_ms"`
	SpeedScaling bool `yaml:"speed_scaling"`
}

// AI defines the computer paddle timing.
type AI struct {
	IntervalMs int `yaml:"interval_ms"`
}

// Progression defines how rounds advance and end.
type Progression struct {
	// MaxHits is the number of player returns that clears a level.
	MaxHits int `yaml:"max_hits"`
	// MaxLevels is the number of levels to clear for a win.
	MaxLevels int `yaml:"max_levels"`
}

// Validate reports the first out-of-range parameter, if any.
func (c Config) Validate() error {
	if c.Field.TopMargin < 0 {
		return fmt.Errorf("config: field.top_margin %d is negative", c.Field.TopMargin)
	}
	if c.Paddle.Width < 2 {
		return fmt.Errorf("config: paddle.width %d is below the minimum of 2", c.Paddle.Width)
	}
	if c.Ball.IntervalMs < 1 {
		return fmt.Errorf("config: ball.interval_ms %d is below the minimum of 1", c.Ball.IntervalMs)
	}
	if c.AI.IntervalMs < 1 {
		return fmt.Errorf("config: ai.interval_ms %d is below the minimum of 1", c.AI.IntervalMs)
	}
	if c.Progression.MaxHits < 1 {
		return fmt.Errorf("config: progression.max_hits %d is below the minimum of 1", c.Progression.MaxHits)
	}
	if c.Progression.MaxLevels < 1 {
		return fmt.Errorf("config: progression.max_levels %d is below the minimum of 1", c.Progression.MaxLevels)
	}
	return nil
}

// Rules converts the configuration into the engine's rule set.
func (c Config) Rules() game.Rules {
	return game.Rules{
		FieldTop:     c.Field.TopMargin,
		PaddleWidth:  c.Paddle.Width,
		MaxHits:      c.Progression.MaxHits,
		MaxLevel:     c.Progression.MaxLevels,
		BallInterval: time.Duration(c.Ball.IntervalMs) * time.Millisecond,
		AIInterval:   time.Duration(c.AI.IntervalMs) * time.Millisecond,
		SpeedScaling: c.Ball.SpeedScaling,
	}
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", s)
	}
}

// ApplyPreset adjusts the configuration for a difficulty preset. Normal
// leaves the loaded values untouched; fixed only disables speed scaling.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Paddle.Width = 6
		cfg.Ball.IntervalMs = 35
		cfg.Progression.MaxHits = 3
	case PresetHard:
		cfg.Paddle.Width = 2
		cfg.Ball.IntervalMs = 18
		cfg.AI.IntervalMs = 35
	case PresetFixed:
		cfg.Ball.SpeedScaling = false
	}
}
