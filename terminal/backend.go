package terminal

// Backend abstracts platform-specific terminal access so the lifecycle
// and tests can run against something other than a live tty.
type Backend interface {
	// Init puts the terminal into raw (non-canonical) input mode.
	Init() error

	// Fini restores the terminal mode. Safe to call more than once.
	Fini()

	// Size returns the current terminal dimensions in cells.
	Size() (rows, cols int)

	// Write writes raw bytes to the terminal output.
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed,
	// or an error occurs. A nil slice with nil error means no data
	// (poll timeout or EOF after stop).
	Read(stop <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events.
	SetResizeHandler(handler func(rows, cols int))
}
