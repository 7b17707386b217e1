package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termpong/internal/core"
)

// KeyMapper translates Bubble Tea input messages to game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an input event. Unbound keys map to
// EventNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.InputEvent {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.InputEvent{Kind: core.EventQuit}
	case "w", "up", "k":
		return core.InputEvent{Kind: core.EventUp}
	case "s", "down", "j":
		return core.InputEvent{Kind: core.EventDown}
	case " ", "enter", "p":
		return core.InputEvent{Kind: core.EventPlay}
	}
	return core.InputEvent{Kind: core.EventNone}
}

// MapMouse translates pointer motion to a paddle move event. Clicks and
// wheel events are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.InputEvent {
	if msg.Action != tea.MouseActionMotion {
		return core.InputEvent{Kind: core.EventNone}
	}
	return core.InputEvent{Kind: core.EventPointerMove, Row: msg.Y}
}
