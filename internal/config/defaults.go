package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration, mirroring the embedded
// defaults/pong.yaml.
func DefaultConfig() Config {
	return Config{
		Field: Field{
			TopMargin: 1,
		},
		Paddle: Paddle{
			Width: 4,
		},
		Ball: Ball{
			IntervalMs:   25,
			SpeedScaling: true,
		},
		AI: AI{
			IntervalMs: 45,
		},
		Progression: Progression{
			MaxHits:   5,
			MaxLevels: 5,
		},
	}
}
