package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termpong/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.EventKind
	}{
		{"w moves up", keyMsg('w'), core.EventUp},
		{"k moves up", keyMsg('k'), core.EventUp},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.EventUp},
		{"s moves down", keyMsg('s'), core.EventDown},
		{"j moves down", keyMsg('j'), core.EventDown},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.EventDown},
		{"space plays", tea.KeyMsg{Type: tea.KeySpace}, core.EventPlay},
		{"enter plays", tea.KeyMsg{Type: tea.KeyEnter}, core.EventPlay},
		{"q quits", keyMsg('q'), core.EventQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.EventQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.EventQuit},
		{"unbound key", keyMsg('x'), core.EventNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if ev := km.MapKey(tc.msg); ev.Kind != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), ev.Kind, tc.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	motion := tea.MouseMsg{Action: tea.MouseActionMotion, X: 10, Y: 7}
	ev := km.MapMouse(motion)
	if ev.Kind != core.EventPointerMove || ev.Row != 7 {
		t.Errorf("MapMouse(motion) = %+v, expected pointer move to row 7", ev)
	}

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Y: 7}
	if ev := km.MapMouse(press); ev.Kind != core.EventNone {
		t.Errorf("MapMouse(press) = %+v, expected no event", ev)
	}
}
