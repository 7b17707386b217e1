package game

// Tag is a fixed-size notification message identifying which part of the
// shared state changed. Producers (ball, AI, input actors) push tags; the
// render consumer drains them in FIFO order and repaints.
type Tag uint8

const (
	TagBallUpdated Tag = iota
	TagAIUpdated
	TagPlayerInput
	TagTerminal // round ended: win, loss or quit
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagBallUpdated:
		return "ball"
	case TagAIUpdated:
		return "ai"
	case TagPlayerInput:
		return "player"
	case TagTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Notifier is the bounded multi-producer/single-consumer tag conduit.
// Publish never blocks the producer: when the buffer is full the oldest
// tag is dropped, which is safe because the consumer repaints from the
// latest state regardless of which tag woke it.
type Notifier struct {
	tags chan Tag
}

// NewNotifier creates a notifier with the given buffer size.
func NewNotifier(size int) *Notifier {
	if size < 1 {
		size = DefaultTagBuffer
	}
	return &Notifier{tags: make(chan Tag, size)}
}

// Publish pushes a tag without blocking. If the buffer is full the oldest
// buffered tag is dropped and the new one is pushed best-effort.
func (n *Notifier) Publish(t Tag) {
	select {
	case n.tags <- t:
		return
	default:
	}

	// Buffer full: drop the oldest and retry once.
	select {
	case <-n.tags:
	default:
	}
	select {
	case n.tags <- t:
	default:
	}
}

// Terminal pushes TagTerminal and guarantees delivery: it keeps evicting
// older tags until the send lands. The terminal tag unblocks the consumer's
// drain loop and must never be lost.
func (n *Notifier) Terminal() {
	for {
		select {
		case n.tags <- TagTerminal:
			return
		default:
		}
		select {
		case <-n.tags:
		default:
		}
	}
}

// C returns the receive side for the render consumer.
func (n *Notifier) C() <-chan Tag {
	return n.tags
}
