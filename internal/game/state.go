package game

import (
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/termpong/internal/core"
)

// Side identifies one of the two paddles.
type Side int

const (
	SidePlayer Side = iota // right paddle, keyboard/mouse controlled
	SideAI                 // left paddle, computer controlled
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideAI {
		return "ai"
	}
	return "player"
}

// Winner reports how a round ended.
type Winner int32

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerAI
)

// String returns a human-readable name for the winner.
func (w Winner) String() string {
	switch w {
	case WinnerPlayer:
		return "player"
	case WinnerAI:
		return "ai"
	default:
		return "none"
	}
}

// State is the single shared game record all actors read and mutate.
//
// Field ownership during a round: ball fields are written only by the ball
// actor, AI paddle fields only by the AI actor, player paddle fields only by
// the input actor. Resize cuts across that ownership, so every cross-field
// access (including each owner's own tick) goes through mu. Control flags
// are atomics and need no lock.
type State struct {
	mu    sync.Mutex
	rules Rules

	// Ball: current and previous position plus the direction vector.
	// Direction components are always -1 or +1.
	BallRow, BallCol         int
	PrevBallRow, PrevBallCol int
	DirRow, DirCol           int

	// Player paddle: center row, previous center row, fixed column.
	PaddlePos, PrevPaddlePos int
	PaddleCol                int

	// AI paddle: center row, previous center row, fixed column.
	AIPos, PrevAIPos int
	AICol            int

	// Field bounds, recomputed on resize.
	BottomRow int
	Cols      int

	// Progress counters, written only by the ball actor.
	HitCount int
	Level    int

	playRequested atomic.Bool
	exitRequested atomic.Bool
	terminating   atomic.Bool
	winner        atomic.Int32
}

// Snapshot is a consistent copy of the render-relevant fields, taken under
// the state lock. The render consumer repaints from the latest snapshot
// regardless of which tag woke it.
type Snapshot struct {
	BallRow, BallCol         int
	PrevBallRow, PrevBallCol int
	PaddlePos, PrevPaddlePos int
	PaddleCol                int
	AIPos, PrevAIPos         int
	AICol                    int
	BottomRow, Cols          int
	HitCount, Level          int
	FieldTop, PaddleWidth    int
}

// NewState creates the shared state for the given terminal geometry.
func NewState(rules Rules, rows, cols int) *State {
	s := &State{rules: rules}
	s.applyBounds(rows, cols)
	s.ResetRound()
	return s
}

// ResetRound restores the launch configuration: paddles centered, ball at
// the field center moving down-right toward the player, counters zeroed.
func (s *State) ResetRound() {
	s.mu.Lock()
	defer s.mu.Unlock()

	center := (s.rules.FieldTop + s.BottomRow) / 2
	s.PaddlePos, s.PrevPaddlePos = center, center
	s.AIPos, s.PrevAIPos = center, center

	s.BallRow = center
	s.BallCol = s.Cols / 2
	s.PrevBallRow, s.PrevBallCol = s.BallRow, s.BallCol
	s.DirRow, s.DirCol = 1, 1

	s.HitCount = 0
	s.Level = 0

	s.winner.Store(int32(WinnerNone))
}

// Resize recomputes the field bounds from the given terminal geometry and
// clamps every position back inside them. Called by the signal actor with
// the whole mutation in one critical section.
func (s *State) Resize(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyBounds(rows, cols)
}

// applyBounds is the lock-free core of Resize, shared with NewState.
func (s *State) applyBounds(rows, cols int) {
	s.BottomRow = rows - 1
	s.Cols = cols
	s.PaddleCol = cols - 1
	s.AICol = 1

	half := s.rules.PaddleWidth / 2
	low := half
	high := core.Max(s.BottomRow-half, low)
	s.PaddlePos = core.Clamp(s.PaddlePos, low, high)
	s.PrevPaddlePos = core.Clamp(s.PrevPaddlePos, low, high)
	s.AIPos = core.Clamp(s.AIPos, low, high)
	s.PrevAIPos = core.Clamp(s.PrevAIPos, low, high)

	if s.BallRow > s.BottomRow {
		s.BallRow = s.BottomRow
	}
	if s.BallRow < s.rules.FieldTop {
		s.BallRow = s.rules.FieldTop
	}
	if s.BallCol >= cols {
		s.BallCol = cols / 2
	}
	s.PrevBallRow = core.Clamp(s.PrevBallRow, s.rules.FieldTop, s.BottomRow)
	s.PrevBallCol = core.Clamp(s.PrevBallCol, 0, cols-1)
}

// Snapshot returns a consistent copy of the positional fields.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		BallRow: s.BallRow, BallCol: s.BallCol,
		PrevBallRow: s.PrevBallRow, PrevBallCol: s.PrevBallCol,
		PaddlePos: s.PaddlePos, PrevPaddlePos: s.PrevPaddlePos,
		PaddleCol: s.PaddleCol,
		AIPos:     s.AIPos, PrevAIPos: s.PrevAIPos,
		AICol:     s.AICol,
		BottomRow: s.BottomRow, Cols: s.Cols,
		HitCount: s.HitCount, Level: s.Level,
		FieldTop: s.rules.FieldTop, PaddleWidth: s.rules.PaddleWidth,
	}
}

// RequestPlay sets the play-requested flag. Polled, not pushed.
func (s *State) RequestPlay() {
	s.playRequested.Store(true)
}

// ConsumePlayRequest atomically reads and clears the play-requested flag.
func (s *State) ConsumePlayRequest() bool {
	return s.playRequested.CompareAndSwap(true, false)
}

// RequestExit sets the exit-requested flag.
func (s *State) RequestExit() {
	s.exitRequested.Store(true)
}

// ExitRequested reports whether a quit was requested.
func (s *State) ExitRequested() bool {
	return s.exitRequested.Load()
}

// markTerminating records that a process-level termination signal arrived,
// distinguishing the fatal path from an ordinary quit.
func (s *State) markTerminating() {
	s.terminating.Store(true)
}

// Terminating reports whether a termination signal was observed.
func (s *State) Terminating() bool {
	return s.terminating.Load()
}

func (s *State) setWinner(w Winner) {
	s.winner.Store(int32(w))
}

// Winner reports how the current round ended, or WinnerNone while it runs.
func (s *State) Winner() Winner {
	return Winner(s.winner.Load())
}
