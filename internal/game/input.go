package game

import (
	"context"

	"github.com/vovakirdan/termpong/internal/core"
)

// EventSource delivers one decoded input event at a time, blocking until
// an event arrives. The second return value is false when the source is
// exhausted (context canceled or terminal closed).
type EventSource interface {
	Next(ctx context.Context) (core.InputEvent, bool)
}

// inputActor translates input events into paddle movement and control
// flags. It is the only writer of the player paddle fields. It runs for the
// whole session, not per round, so play/quit requests work between rounds.
type inputActor struct {
	state *State
	gate  *PauseGate
	notes *Notifier
	rules Rules
	src   EventSource
	fatal func()
}

func (a *inputActor) run(ctx context.Context) {
	for {
		ev, ok := a.src.Next(ctx)
		if !ok {
			return
		}

		// While the gate is active only the acknowledgment and quit are
		// honored; game-affecting input is dropped so player input cannot
		// desync state during a level transition.
		if a.gate.Active() {
			switch ev.Kind {
			case core.EventPlay:
				a.gate.Clear()
			case core.EventQuit:
				a.fatal()
				return
			}
			continue
		}

		switch ev.Kind {
		case core.EventUp:
			a.movePaddle(-1)
			a.notes.Publish(TagPlayerInput)

		case core.EventDown:
			a.movePaddle(+1)
			a.notes.Publish(TagPlayerInput)

		case core.EventPlay:
			// No tag: the round orchestrator polls this flag.
			a.state.RequestPlay()

		case core.EventQuit:
			a.state.RequestExit()
			// The terminal tag unblocks the consumer waiting on the channel.
			a.notes.Terminal()

		case core.EventPointerMove:
			a.movePaddleTo(ev.Row)
			a.notes.Publish(TagPlayerInput)
		}
	}
}

// movePaddle shifts the paddle center by one step if the result stays in
// the legal range. The previous position is saved for the erase cycle.
func (a *inputActor) movePaddle(delta int) {
	s := a.state
	s.mu.Lock()
	defer s.mu.Unlock()

	s.PrevPaddlePos = s.PaddlePos
	next := s.PaddlePos + delta
	half := a.rules.PaddleWidth / 2
	if next >= half && next <= s.BottomRow-half {
		s.PaddlePos = next
	}
}

// movePaddleTo sets the paddle center to the pointer row, clamped into the
// legal range.
func (a *inputActor) movePaddleTo(row int) {
	s := a.state
	s.mu.Lock()
	defer s.mu.Unlock()

	s.PrevPaddlePos = s.PaddlePos
	half := a.rules.PaddleWidth / 2
	high := core.Max(s.BottomRow-half, half)
	s.PaddlePos = core.Clamp(row, half, high)
}
