// Package game implements the real-time Pong coordinator: four
// independently timed actors (ball physics, AI paddle, input listener,
// signal listener) that share one mutable State, synchronized by the state
// lock, a pause-gate barrier and a bounded tag channel draining into the
// render consumer.
package game

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Options configures an Engine. Source, Renderer and Geometry are the
// external capabilities the core consumes; everything else has defaults.
type Options struct {
	Rules    Rules
	Source   EventSource
	Renderer Renderer
	Geometry Geometry

	// Logger receives actor lifecycle debug events. Defaults to a
	// discarding logger.
	Logger *log.Logger

	// Fatal is invoked on the termination-signal path and on quit during
	// a level transition. The default marks the exit flag and pushes the
	// terminal tag; platforms add their own teardown on top.
	Fatal func()

	// TagBuffer sizes the notification channel. Sized generously relative
	// to the tick rates so producers never block.
	TagBuffer int
}

// Engine wires the shared state, the pause gate, the notifier and the four
// actors together. The input and signal actors live for the whole session;
// the ball and AI actors live for one round.
type Engine struct {
	state *State
	gate  *PauseGate
	notes *Notifier
	rules Rules

	src  EventSource
	rend Renderer
	geo  Geometry
	log  *log.Logger

	fatal    func()
	resizeCh chan struct{}
	termCh   chan struct{}

	roundCancel context.CancelFunc
}

// New creates an engine for the given terminal geometry. The state starts
// in launch configuration; no actors run until Start.
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rules.MaxLevel < 1 {
		opts.Rules = DefaultRules()
	}

	rows, cols := opts.Geometry.Dimensions()

	e := &Engine{
		state:    NewState(opts.Rules, rows, cols),
		gate:     NewPauseGate(),
		notes:    NewNotifier(opts.TagBuffer),
		rules:    opts.Rules,
		src:      opts.Source,
		rend:     opts.Renderer,
		geo:      opts.Geometry,
		log:      opts.Logger,
		resizeCh: make(chan struct{}, 1),
		termCh:   make(chan struct{}, 1),
	}

	e.fatal = opts.Fatal
	if e.fatal == nil {
		e.fatal = func() {
			e.state.RequestExit()
			e.notes.Terminal()
		}
	}

	return e
}

// Start spawns the session-lifetime actors: the input listener and the
// signal listener. It does not start a round.
func (e *Engine) Start(ctx context.Context) {
	in := &inputActor{
		state: e.state,
		gate:  e.gate,
		notes: e.notes,
		rules: e.rules,
		src:   e.src,
		fatal: e.fatal,
	}
	sig := &signalActor{
		state:  e.state,
		geo:    e.geo,
		rend:   e.rend,
		resize: e.resizeCh,
		term:   e.termCh,
		fatal:  e.fatal,
		log:    e.log,
	}

	go in.run(ctx)
	go sig.run(ctx)
	e.log.Debug("engine started")
}

// StartRound resets the shared state to launch configuration and spawns
// the ball and AI actors. The round ends when the ball actor exits (win,
// loss) or the session context is canceled; EndRound stops it early.
func (e *Engine) StartRound(ctx context.Context) {
	e.EndRound()
	e.state.ResetRound()
	e.gate.Clear()

	roundCtx, cancel := context.WithCancel(ctx)
	e.roundCancel = cancel

	ball := &ballActor{
		state: e.state,
		gate:  e.gate,
		notes: e.notes,
		rules: e.rules,
		log:   e.log,
	}
	ai := &aiActor{
		state: e.state,
		gate:  e.gate,
		notes: e.notes,
		rules: e.rules,
	}

	go ai.run(roundCtx)
	go func() {
		ball.run(roundCtx)
		// The ball actor exiting ends the round for the AI actor too.
		cancel()
	}()

	e.log.Debug("round started")
}

// EndRound cancels the current round's actors, if any.
func (e *Engine) EndRound() {
	if e.roundCancel != nil {
		e.roundCancel()
		e.roundCancel = nil
	}
}

// Tags returns the notification channel the render consumer drains.
func (e *Engine) Tags() <-chan Tag {
	return e.notes.C()
}

// Snapshot returns a consistent copy of the positional state.
func (e *Engine) Snapshot() Snapshot {
	return e.state.Snapshot()
}

// GateActive reports whether a level transition is in progress.
func (e *Engine) GateActive() bool {
	return e.gate.Active()
}

// Winner reports how the current round ended, or WinnerNone while it runs.
func (e *Engine) Winner() Winner {
	return e.state.Winner()
}

// ConsumePlayRequest atomically reads and clears the play-requested flag.
// Polled by the round orchestrator.
func (e *Engine) ConsumePlayRequest() bool {
	return e.state.ConsumePlayRequest()
}

// ExitRequested reports whether the player asked to quit.
func (e *Engine) ExitRequested() bool {
	return e.state.ExitRequested()
}

// Terminating reports whether a process-level termination signal arrived;
// callers use it to pick the fatal exit path.
func (e *Engine) Terminating() bool {
	return e.state.Terminating()
}

// Resize asks the signal actor to recompute the field bounds from the
// geometry capability. Coalesced: a pending request absorbs new ones.
func (e *Engine) Resize() {
	select {
	case e.resizeCh <- struct{}{}:
	default:
	}
}

// Terminate delivers a process-level termination request to the signal
// actor. Fatal and immediate; never retried.
func (e *Engine) Terminate() {
	select {
	case e.termCh <- struct{}{}:
	default:
	}
}
