package game

import (
	"context"
	"sync"
)

// PauseGate is the barrier that freezes every actor during a level
// transition. The ball actor raises it after clearing a level; the input
// actor clears it when the acknowledgment key is observed. While raised,
// all actors block in Wait, so no ball, paddle or counter state changes.
//
// The original busy-wait is replaced by a rendezvous channel with identical
// externally observable semantics: full freeze until acknowledgment.
type PauseGate struct {
	mu sync.Mutex
	ch chan struct{} // closed while the gate is down
}

// NewPauseGate creates a gate in the cleared (open) position.
func NewPauseGate() *PauseGate {
	ch := make(chan struct{})
	close(ch)
	return &PauseGate{ch: ch}
}

// Raise activates the gate. Raising an already-active gate is a no-op.
func (g *PauseGate) Raise() {
	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case <-g.ch:
		g.ch = make(chan struct{})
	default:
		// already raised
	}
}

// Clear deactivates the gate, releasing every waiter.
// Clearing an inactive gate is a no-op.
func (g *PauseGate) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case <-g.ch:
		// already clear
	default:
		close(g.ch)
	}
}

// Active reports whether the gate is currently raised.
func (g *PauseGate) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case <-g.ch:
		return false
	default:
		return true
	}
}

// Wait blocks while the gate is active. Returns the context error if the
// context is canceled first.
func (g *PauseGate) Wait(ctx context.Context) error {
	g.mu.Lock()
	ch := g.ch
	g.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
