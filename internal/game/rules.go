package game

import "time"

// Default gameplay parameters, overridable through the config file.
const (
	DefaultFieldTop     = 1 // row 0 is the HUD line
	DefaultPaddleWidth  = 4
	DefaultMaxHits      = 5
	DefaultMaxLevel     = 5
	DefaultBallInterval = 25 * time.Millisecond
	DefaultAIInterval   = 45 * time.Millisecond
	DefaultTagBuffer    = 64
)

// Rules holds the static parameters of a game: field layout, paddle size,
// leveling thresholds and actor tick intervals.
type Rules struct {
	FieldTop    int
	PaddleWidth int

	// MaxHits is the number of consecutive player hits before a level
	// advances; MaxLevel is the last playable level, beyond which the
	// player wins.
	MaxHits  int
	MaxLevel int

	// BallInterval is the base sleep between ball ticks; the effective
	// sleep is BallInterval times (MaxLevel - level), floored at one
	// interval. AIInterval is fixed.
	BallInterval time.Duration
	AIInterval   time.Duration

	// SpeedScaling disables the per-level speedup when false.
	SpeedScaling bool
}

// DefaultRules returns the standard game parameters.
func DefaultRules() Rules {
	return Rules{
		FieldTop:     DefaultFieldTop,
		PaddleWidth:  DefaultPaddleWidth,
		MaxHits:      DefaultMaxHits,
		MaxLevel:     DefaultMaxLevel,
		BallInterval: DefaultBallInterval,
		AIInterval:   DefaultAIInterval,
		SpeedScaling: true,
	}
}

// ballSleep computes the ball actor's sleep for the given level.
// Higher levels sleep less; the clamp keeps a floor of one interval.
func (r Rules) ballSleep(level int) time.Duration {
	if !r.SpeedScaling {
		level = 0
	}
	lvl := level
	if lvl > r.MaxLevel-1 {
		lvl = r.MaxLevel - 1
	}
	return r.BallInterval * time.Duration(r.MaxLevel-lvl)
}
