package core

// EventKind identifies what kind of input event was read from the terminal.
type EventKind int

const (
	EventNone        EventKind = iota
	EventUp                    // Up arrow / k - move paddle up
	EventDown                  // Down arrow / j - move paddle down
	EventPlay                  // Space - request a new round / acknowledge a level banner
	EventQuit                  // q / Ctrl+C - request game termination
	EventPointerMove           // Mouse motion - move paddle to the pointer row
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventUp:
		return "Up"
	case EventDown:
		return "Down"
	case EventPlay:
		return "Play"
	case EventQuit:
		return "Quit"
	case EventPointerMove:
		return "PointerMove"
	default:
		return "Unknown"
	}
}

// InputEvent is one decoded terminal input event.
// Row is only meaningful for EventPointerMove.
type InputEvent struct {
	Kind EventKind
	Row  int
}
