package terminal

import (
	"io"
	"os"
)

// Pre-allocated control sequences for session setup and teardown
var (
	seqSGR0    = []byte("\x1b[0m")
	seqRIS     = []byte("\x1bc") // Reset to Initial State (emergency)
	seqShow    = []byte("\x1b[?25h")
	seqHide    = []byte("\x1b[?25l")
	seqWrapOn  = []byte("\x1b[?7h")
	seqWrapOff = []byte("\x1b[?7l")

	seqAltScreenEnter = []byte("\x1b[?1049h")
	seqAltScreenExit  = []byte("\x1b[?1049l")

	// SGR extended mouse coordinates plus the three reporting levels
	seqMouseSGROn    = []byte("\x1b[?1006h")
	seqMouseSGROff   = []byte("\x1b[?1006l")
	seqMouseClickOn  = []byte("\x1b[?1000h")
	seqMouseClickOff = []byte("\x1b[?1000l")
	seqMouseDragOn   = []byte("\x1b[?1002h")
	seqMouseDragOff  = []byte("\x1b[?1002l")
	seqMouseMoveOn   = []byte("\x1b[?1003h")
	seqMouseMoveOff  = []byte("\x1b[?1003l")
)

// WriteSGRReset resets all text attributes and colors.
func WriteSGRReset(w io.Writer) error {
	_, err := w.Write(seqSGR0)
	return err
}

// WriteAltScreen enters or leaves the alternate screen buffer.
func WriteAltScreen(w io.Writer, enter bool) error {
	s := seqAltScreenExit
	if enter {
		s = seqAltScreenEnter
	}
	_, err := w.Write(s)
	return err
}

// WriteAutoWrap enables or disables DECAWM auto-wrap. Disabling it keeps
// a write to the bottom-right corner from scrolling the screen.
func WriteAutoWrap(w io.Writer, on bool) error {
	s := seqWrapOff
	if on {
		s = seqWrapOn
	}
	_, err := w.Write(s)
	return err
}

// WriteMouseMode enables the given mouse reporting modes and disables
// the rest. MouseModeNone turns reporting off entirely.
func WriteMouseMode(w io.Writer, mode MouseMode) error {
	var seqs [][]byte
	if mode == MouseModeNone {
		seqs = [][]byte{seqMouseMoveOff, seqMouseDragOff, seqMouseClickOff, seqMouseSGROff}
	} else {
		seqs = append(seqs, seqMouseSGROn)
		if mode&MouseModeClick != 0 {
			seqs = append(seqs, seqMouseClickOn)
		} else {
			seqs = append(seqs, seqMouseClickOff)
		}
		if mode&MouseModeDrag != 0 {
			seqs = append(seqs, seqMouseDragOn)
		} else {
			seqs = append(seqs, seqMouseDragOff)
		}
		if mode&MouseModeMotion != 0 {
			seqs = append(seqs, seqMouseMoveOn)
		} else {
			seqs = append(seqs, seqMouseMoveOff)
		}
	}
	for _, s := range seqs {
		if _, err := w.Write(s); err != nil {
			return err
		}
	}
	return nil
}

// EmergencyReset attempts to restore the terminal to a sane state when
// normal teardown cannot run, typically from panic recovery. Errors are
// ignored; there is nothing actionable in a crash context.
func EmergencyReset(w io.Writer) {
	w.Write(seqMouseMoveOff)
	w.Write(seqMouseDragOff)
	w.Write(seqMouseClickOff)
	w.Write(seqMouseSGROff)

	w.Write(seqShow)
	w.Write(seqAltScreenExit)
	w.Write(seqSGR0)
	w.Write(seqWrapOn)
	w.Write(seqRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
