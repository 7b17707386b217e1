package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/game"
	"github.com/vovakirdan/termpong/internal/storage"
)

// Session pairs a running engine with its teardown. The engine pointer is
// exposed so the caller can forward process signals into Terminate.
type Session struct {
	Engine *game.Engine
	model  Model
}

// Close stops all session actors.
func (s *Session) Close() {
	s.model.Close()
}

// NewProgram builds the Bubble Tea program for a local session. The caller
// runs it, forwards SIGINT/SIGTERM to session.Engine.Terminate, and closes
// the session afterwards.
func NewProgram(cfg config.Config, store *storage.Store, logger *log.Logger, width, height int) (*tea.Program, *Session) {
	model := NewModel(cfg, store, logger, width, height)
	// Signals route through the engine's termination path, not Bubble Tea's
	// default interrupt handling.
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	)
	return p, &Session{Engine: model.Engine(), model: model}
}
