package game

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termpong/internal/core"
)

// tickOutcome reports what a single physics tick produced.
type tickOutcome int

const (
	tickContinue tickOutcome = iota
	tickLevelUp              // player cleared a level; the gate is already raised
	tickPlayerWin            // ball escaped past the AI paddle
	tickAIWin                // ball escaped past the player paddle
)

// ballActor advances the ball on a level-dependent period. It is the only
// writer of the ball fields and the progress counters.
type ballActor struct {
	state *State
	gate  *PauseGate
	notes *Notifier
	rules Rules
	log   *log.Logger
}

func (b *ballActor) run(ctx context.Context) {
	for {
		if err := b.gate.Wait(ctx); err != nil {
			return
		}

		switch b.tick() {
		case tickLevelUp:
			b.notes.Publish(TagBallUpdated)
			b.log.Debug("level cleared", "level", b.level())

			// Block here until the gate is acknowledged; nothing else
			// mutates ball/AI/counter state in the meantime.
			if err := b.gate.Wait(ctx); err != nil {
				return
			}

			if b.level() > b.rules.MaxLevel {
				b.finish(WinnerPlayer)
				return
			}

		case tickPlayerWin:
			b.finish(WinnerPlayer)
			return

		case tickAIWin:
			b.finish(WinnerAI)
			return

		case tickContinue:
			b.notes.Publish(TagBallUpdated)
		}

		if !sleepCtx(ctx, b.rules.ballSleep(b.level())) {
			return
		}
	}
}

// tick performs one physics step under the state lock: advance, reflect on
// walls, then test both paddle columns. Wall bounce and paddle bounce are
// mutually exclusive per tick by row-vs-column separation, so reflection is
// applied at most once per axis.
func (b *ballActor) tick() tickOutcome {
	s := b.state
	s.mu.Lock()
	defer s.mu.Unlock()

	s.PrevBallRow, s.PrevBallCol = s.BallRow, s.BallCol
	s.BallRow += s.DirRow
	s.BallCol += s.DirCol

	// Reflect on field top and bottom, restoring the row invariant by
	// folding the overshoot back inside.
	if s.BallRow < b.rules.FieldTop || s.BallRow > s.BottomRow {
		s.DirRow = -s.DirRow
		s.BallRow += 2 * s.DirRow
	}

	// Player paddle column.
	if s.BallCol == s.PaddleCol {
		if !paddleHit(s.PaddlePos, s.BallRow, s.DirRow, b.rules.PaddleWidth) {
			return tickAIWin
		}
		s.DirCol = -s.DirCol
		s.BallCol += 2 * s.DirCol

		if s.HitCount >= b.rules.MaxHits {
			s.Level++
			s.HitCount = 0
			b.gate.Raise()
			return tickLevelUp
		}
		s.HitCount++
	}

	// AI paddle column: same reflection, no leveling on this side.
	if s.BallCol == s.AICol {
		if !paddleHit(s.AIPos, s.BallRow, s.DirRow, b.rules.PaddleWidth) {
			return tickPlayerWin
		}
		s.DirCol = -s.DirCol
		s.BallCol += 2 * s.DirCol
	}

	return tickContinue
}

// paddleHit tests the ball against a paddle's hit window. The dirRow term
// compensates for diagonal motion: the effective window aligns with the
// ball's row one step prior. The comparison is inclusive at exactly half
// the paddle width.
func paddleHit(center, ballRow, dirRow, width int) bool {
	return core.Abs(center-ballRow+dirRow) <= width/2
}

func (b *ballActor) level() int {
	b.state.mu.Lock()
	defer b.state.mu.Unlock()
	return b.state.Level
}

func (b *ballActor) finish(w Winner) {
	b.state.setWinner(w)
	b.notes.Terminal()
	b.log.Debug("round over", "winner", w)
}

// sleepCtx sleeps for d, returning false if the context is canceled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
