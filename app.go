package termframe

import (
	"bufio"
	"fmt"
	"sync"

	"github.com/lixenwraith/termframe/screen"
	"github.com/lixenwraith/termframe/terminal"
)

// App owns the terminal session: raw mode, the double-buffered screen,
// the output sink and the input event stream. Create with New, start
// with Init, and always arrange for Fini to run on the way out.
//
// One frame is drawn per Draw call; the core is single-threaded and App
// must not be used from multiple goroutines concurrently.
type App struct {
	backend terminal.Backend
	out     *bufio.Writer
	scr     *screen.Screen
	reader  *terminal.Reader

	mode      screen.ColorMode
	modeSet   bool
	mouse     terminal.MouseMode
	altScreen bool

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// Option configures an App.
type Option func(*App)

// WithBackend substitutes the platform backend, mainly for tests.
func WithBackend(b terminal.Backend) Option {
	return func(a *App) { a.backend = b }
}

// WithColorMode overrides color capability detection.
func WithColorMode(m screen.ColorMode) Option {
	return func(a *App) { a.mode = m; a.modeSet = true }
}

// WithMouse enables mouse reporting for the session.
func WithMouse(mode terminal.MouseMode) Option {
	return func(a *App) { a.mouse = mode }
}

// WithAltScreen renders on the alternate screen buffer, restoring the
// shell's scrollback contents on exit.
func WithAltScreen() Option {
	return func(a *App) { a.altScreen = true }
}

// New creates an App. No terminal state is touched until Init.
func New(opts ...Option) *App {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}
	if a.backend == nil {
		a.backend = terminal.NewBackend()
	}
	if !a.modeSet {
		a.mode = screen.DetectColorMode()
	}
	return a
}

// Init enters raw mode, clears the screen, hides the cursor and starts
// the input reader.
func (a *App) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}

	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	rows, cols := a.backend.Size()
	a.scr = screen.NewScreen(rows, cols, a.mode)
	a.out = bufio.NewWriterSize(a.backend, 32768)

	if a.altScreen {
		terminal.WriteAltScreen(a.out, true)
	}
	screen.WriteClear(a.out)
	screen.WriteCursorHide(a.out)
	// Keep a bottom-right corner write from scrolling the screen
	terminal.WriteAutoWrap(a.out, false)
	if a.mouse != terminal.MouseModeNone {
		terminal.WriteMouseMode(a.out, a.mouse)
	}
	if err := a.out.Flush(); err != nil {
		a.backend.Fini()
		return fmt.Errorf("terminal setup: %w", err)
	}

	a.reader = terminal.NewReader(a.backend)
	a.backend.SetResizeHandler(func(rows, cols int) {
		a.reader.Post(terminal.Event{Type: terminal.EventResize, Rows: rows, Cols: cols})
	})
	a.reader.Start()

	a.initialized = true
	return nil
}

// Draw runs one frame: it sizes and clears the next buffer, hands it to
// fn for mutation, then renders the result and flushes the sink. The
// render happens whenever fn returns, so every exit path of fn ends
// with a consistent terminal.
func (a *App) Draw(fn func(f *screen.Frame)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.finalized {
		return fmt.Errorf("draw on inactive app")
	}

	rows, cols := a.backend.Size()
	a.scr.PrepareNextFrame(rows, cols)
	fn(a.scr.Next())

	if err := a.scr.Render(a.out); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := a.out.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Events returns the pass-through input event stream: keys, mouse and
// resize notifications, uninterpreted.
func (a *App) Events() <-chan terminal.Event {
	return a.reader.Events()
}

// Size returns the current terminal dimensions.
func (a *App) Size() (rows, cols int) {
	return a.backend.Size()
}

// Fini restores the terminal: colors reset, screen cleared, cursor
// shown, raw mode undone. Restoration is best-effort; write failures
// during teardown are discarded. Safe to call more than once.
func (a *App) Fini() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.finalized {
		return
	}

	if a.reader != nil {
		a.reader.Stop()
	}

	if a.mouse != terminal.MouseModeNone {
		terminal.WriteMouseMode(a.out, terminal.MouseModeNone)
	}
	terminal.WriteSGRReset(a.out)
	if a.altScreen {
		terminal.WriteAltScreen(a.out, false)
	} else {
		screen.WriteClear(a.out)
		screen.WriteCursorHome(a.out)
	}
	screen.WriteCursorShow(a.out)
	terminal.WriteAutoWrap(a.out, true)
	a.out.Flush()

	a.backend.Fini()
	a.finalized = true
}
