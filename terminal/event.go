package terminal

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	EventResize
	EventError  // Read error
	EventClosed // Input closed
)

// Modifier is a bitmask of modifier keys held during an event
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Event is one terminal input event. The framebuffer core passes these
// through unmodified; only the embedding program interprets them.
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier

	// EventResize
	Rows int
	Cols int

	// EventError
	Err error

	// EventMouse, 0-indexed cell coordinates
	MouseRow    int
	MouseCol    int
	MouseBtn    MouseButton
	MouseAction MouseAction
}
