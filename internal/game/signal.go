package game

import (
	"context"

	"github.com/charmbracelet/log"
)

// Renderer is the draw capability the core consumes. The render consumer
// implements it over a screen buffer; the signal actor issues the same
// calls during resize that the consumer would issue on tag drain.
type Renderer interface {
	DrawPaddle(side Side)
	DeletePaddle(side Side)
	DrawBall()
	DeleteBall()
	Repaint()
}

// Geometry is the terminal-size capability the core consumes.
type Geometry interface {
	Dimensions() (rows, cols int)
}

// signalActor reacts to termination and resize requests. Termination is
// fatal and immediate; resize recomputes the field bounds under the state
// lock and repaints.
type signalActor struct {
	state  *State
	geo    Geometry
	rend   Renderer
	resize <-chan struct{}
	term   <-chan struct{}
	fatal  func()
	log    *log.Logger
}

func (a *signalActor) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case <-a.term:
			// Fatal path: no per-actor teardown, the process (or session)
			// ends after terminal restore.
			a.log.Debug("termination signal")
			a.state.markTerminating()
			a.fatal()
			return

		case <-a.resize:
			a.handleResize()
		}
	}
}

// handleResize recomputes bounds from the current terminal geometry,
// clamps every position into them, then erases and repaints the field.
func (a *signalActor) handleResize() {
	rows, cols := a.geo.Dimensions()
	if rows < 2 || cols < 4 {
		return
	}
	a.state.Resize(rows, cols)
	a.log.Debug("resized", "rows", rows, "cols", cols)

	// Full redraw: same calls the render consumer issues, against the
	// freshly clamped state.
	a.rend.Repaint()
}
