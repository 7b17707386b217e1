package game

import (
	"context"

	"github.com/vovakirdan/termpong/internal/core"
)

// aiActor moves the AI paddle one step toward the ball on a fixed period.
// It is the only writer of the AI paddle fields.
type aiActor struct {
	state *State
	gate  *PauseGate
	notes *Notifier
	rules Rules
}

func (a *aiActor) run(ctx context.Context) {
	for {
		if err := a.gate.Wait(ctx); err != nil {
			return
		}

		a.step()
		a.notes.Publish(TagAIUpdated)

		if !sleepCtx(ctx, a.rules.AIInterval) {
			return
		}
	}
}

// step moves the paddle center by sign(ballRow - aiCenter), applied only if
// the result stays in the legal range. A zero delta produces no movement.
func (a *aiActor) step() {
	s := a.state
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.AIPos + core.Sign(s.BallRow-s.AIPos)
	s.PrevAIPos = s.AIPos

	half := a.rules.PaddleWidth / 2
	if next >= half && next <= s.BottomRow-half {
		s.AIPos = next
	}
}
