// Package tui provides the Bubble Tea integration for termpong. It owns
// the render consumer that drains engine tags, the input bridge feeding
// the engine's event source, and the intro/game-over flow around rounds.
package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/core"
	"github.com/vovakirdan/termpong/internal/game"
	"github.com/vovakirdan/termpong/internal/storage"
)

type phase int

const (
	phaseIntro phase = iota
	phasePlaying
	phaseGameOver
)

// tagMsg carries one engine notification into the Bubble Tea loop.
type tagMsg game.Tag

// pollMsg drives the round orchestrator's flag polling.
type pollMsg time.Time

// pollInterval paces ConsumePlayRequest checks between rounds.
const pollInterval = 50 * time.Millisecond

// eventSource bridges Bubble Tea messages to the engine's input actor.
type eventSource struct {
	ch chan core.InputEvent
}

func newEventSource() *eventSource {
	return &eventSource{ch: make(chan core.InputEvent, 16)}
}

// Next implements game.EventSource.
func (s *eventSource) Next(ctx context.Context) (core.InputEvent, bool) {
	select {
	case ev := <-s.ch:
		return ev, true
	case <-ctx.Done():
		return core.InputEvent{}, false
	}
}

// push hands an event to the input actor without blocking the UI loop.
func (s *eventSource) push(ev core.InputEvent) {
	select {
	case s.ch <- ev:
	default:
		// Input actor is behind; dropping a keystroke beats stalling.
	}
}

// termGeometry tracks the terminal size for the engine's resize path.
type termGeometry struct {
	mu         sync.Mutex
	rows, cols int
}

// Dimensions implements game.Geometry.
func (g *termGeometry) Dimensions() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rows, g.cols
}

func (g *termGeometry) set(rows, cols int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rows, g.cols = rows, cols
}

// Model is the Bubble Tea model for a termpong session.
type Model struct {
	engine   *game.Engine
	renderer *ScreenRenderer
	events   *eventSource
	geo      *termGeometry
	keys     *KeyMapper
	store    *storage.Store
	logger   *log.Logger
	rules    game.Rules

	ctx    context.Context
	cancel context.CancelFunc

	phase         phase
	width, height int
	roundStart    time.Time
	lastSnap      game.Snapshot
	saved         bool
	quitting      bool
}

// NewModel creates a session model for the given terminal size. The store
// may be nil; rounds are then simply not recorded.
func NewModel(cfg config.Config, store *storage.Store, logger *log.Logger, width, height int) Model {
	if logger == nil {
		logger = log.Default()
	}
	rules := cfg.Rules()

	geo := &termGeometry{rows: height, cols: width}
	rend := NewScreenRenderer(width, height)
	events := newEventSource()
	ctx, cancel := context.WithCancel(context.Background())

	engine := game.New(game.Options{
		Rules:    rules,
		Source:   events,
		Renderer: rend,
		Geometry: geo,
		Logger:   logger,
	})
	rend.Bind(engine.Snapshot)

	return Model{
		engine:   engine,
		renderer: rend,
		events:   events,
		geo:      geo,
		keys:     NewKeyMapper(),
		store:    store,
		logger:   logger,
		rules:    rules,
		ctx:      ctx,
		cancel:   cancel,
		width:    width,
		height:   height,
	}
}

// Engine exposes the underlying engine for signal wiring.
func (m Model) Engine() *game.Engine {
	return m.engine
}

// Close cancels the session context, stopping all actors.
func (m Model) Close() {
	m.cancel()
}

// Init starts the session-lifetime actors and the message loops.
func (m Model) Init() tea.Cmd {
	m.engine.Start(m.ctx)
	return tea.Batch(m.waitForTag(), m.poll())
}

// waitForTag returns a command that blocks on the next engine tag.
func (m Model) waitForTag() tea.Cmd {
	return func() tea.Msg {
		select {
		case tag := <-m.engine.Tags():
			return tagMsg(tag)
		case <-m.ctx.Done():
			return nil
		}
	}
}

// poll paces the play-request flag checks between rounds.
func (m Model) poll() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev := m.keys.MapKey(msg); ev.Kind != core.EventNone {
			m.events.push(ev)
		}
		return m, nil

	case tea.MouseMsg:
		if ev := m.keys.MapMouse(msg); ev.Kind != core.EventNone {
			m.events.push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case pollMsg:
		return m.handlePoll()

	case tagMsg:
		return m.handleTag(game.Tag(msg))
	}

	return m, nil
}

// handleResize updates the buffer and asks the engine to reclamp.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.geo.set(msg.Height, msg.Width)
	m.renderer.Resize(msg.Width, msg.Height)
	m.engine.Resize()
	return m, nil
}

// handlePoll starts a round when the player asked for one.
func (m Model) handlePoll() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying && m.engine.ConsumePlayRequest() {
		m.phase = phasePlaying
		m.saved = false
		m.roundStart = time.Now()
		m.engine.StartRound(m.ctx)
		m.renderer.Repaint()
	}
	return m, m.poll()
}

// handleTag is the render consumer: erase at the previous position, draw at
// the new one, repaint the HUD counters.
func (m Model) handleTag(tag game.Tag) (tea.Model, tea.Cmd) {
	switch tag {
	case game.TagBallUpdated:
		if m.phase == phasePlaying {
			m.renderer.DeleteBall()
			m.renderer.DrawBall()
			m.renderer.UpdateHUD()
		}

	case game.TagAIUpdated:
		if m.phase == phasePlaying {
			m.renderer.DeletePaddle(game.SideAI)
			m.renderer.DrawPaddle(game.SideAI)
		}

	case game.TagPlayerInput:
		if m.phase == phasePlaying {
			m.renderer.DeletePaddle(game.SidePlayer)
			m.renderer.DrawPaddle(game.SidePlayer)
		}

	case game.TagTerminal:
		return m.handleTerminal()
	}

	return m, m.waitForTag()
}

// handleTerminal ends the round or the whole session.
func (m Model) handleTerminal() (tea.Model, tea.Cmd) {
	// Fatal signal or explicit quit ends the session.
	if m.engine.Terminating() || m.engine.ExitRequested() {
		m.quitting = true
		m.engine.EndRound()
		return m, tea.Quit
	}

	winner := m.engine.Winner()
	if winner == game.WinnerNone {
		return m, m.waitForTag()
	}

	m.lastSnap = m.engine.Snapshot()
	m.phase = phaseGameOver
	m.saveRound(winner)
	return m, m.waitForTag()
}

// saveRound persists the finished round, once.
func (m *Model) saveRound(winner game.Winner) {
	if m.store == nil || m.saved {
		return
	}
	m.saved = true

	result := storage.RoundResult{
		Winner:       winner,
		LevelReached: m.lastSnap.Level,
		HitsTotal:    m.hitsTotal(),
		DurationSecs: int(time.Since(m.roundStart).Seconds()),
	}
	if id, err := m.store.SaveRound(result); err != nil {
		m.logger.Warn("could not save round", "error", err)
	} else {
		m.logger.Debug("round saved", "id", id, "winner", winner)
	}
}

// hitsTotal reconstructs the whole-round return count from the per-level
// counter and the number of cleared levels.
func (m Model) hitsTotal() int {
	return m.lastSnap.Level*m.rules.MaxHits + m.lastSnap.HitCount
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseIntro:
		return introView(m.width, m.height)

	case phaseGameOver:
		return gameOverView(m.width, m.height, m.engine.Winner(), m.lastSnap.Level, m.hitsTotal())

	default:
		if m.engine.GateActive() {
			return levelBanner(m.width, m.height, m.engine.Snapshot().Level)
		}
		return m.renderer.View()
	}
}
