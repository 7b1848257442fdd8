package screen

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// maxRows is the largest addressable row count: terminal cursor
// positioning uses 1-indexed unsigned 16-bit coordinates.
const maxRows = 1 << 16

// Screen holds the two frames mediating between the last-rendered state
// and the one being built. The next frame is the only mutable one; the
// previous frame always holds the last fully-rendered state.
//
// A Screen assumes a single writer and a single renderer. Concurrent use
// must be serialized by the caller.
type Screen struct {
	previous *Frame
	next     *Frame
	mode     ColorMode
}

// NewScreen creates a screen with two identical blank frames. The
// optional mode selects how RGB colors are emitted; the default is
// ModeTrueColor.
func NewScreen(rows, cols int, mode ...ColorMode) *Screen {
	m := ModeTrueColor
	if len(mode) > 0 {
		m = mode[0]
	}
	return &Screen{
		previous: NewFrame(rows, cols),
		next:     NewFrame(rows, cols),
		mode:     m,
	}
}

// PrepareNextFrame swaps the two frames and resets the new next frame to
// a blank grid of the given dimensions. The frame the caller just
// populated becomes the diff baseline. The swap is by pointer, so
// steady-state frames allocate nothing.
func (s *Screen) PrepareNextFrame(rows, cols int) {
	s.previous, s.next = s.next, s.previous
	s.next.Reset(rows, cols)
}

// Next returns the frame the caller may mutate until the next render.
func (s *Screen) Next() *Frame {
	return s.next
}

// Render writes the pending frame to w: a full redraw when the
// dimensions changed since the last render, a cell diff otherwise.
// The first write failure aborts the render and is returned.
func (s *Screen) Render(w io.Writer) error {
	pr, pc := s.previous.dims()
	nr, nc := s.next.dims()
	if pr != nr || pc != nc {
		return s.redraw(w)
	}
	return s.redrawDiff(w)
}

// redraw clears the screen and repaints every cell. Each cell is
// positioned explicitly, so the traversal order does not affect the
// screen contents. Color sequences are skipped when the cell's storage
// predecessor already established the same colors.
func (s *Screen) redraw(w io.Writer) error {
	checkRowLimit(s.next.rows)

	ew := &errWriter{w: w}
	ew.Write(seqClear)
	for row := 0; row < s.next.rows; row++ {
		for col := 0; col < s.next.cols; col++ {
			writeCursorPos(ew, row, col)
			current := s.next.Get(row, col)
			if prow, pcol, ok := s.next.prevRowCol(row, col); ok {
				prev := s.next.Get(prow, pcol)
				if prev.Fg != current.Fg {
					current.Fg.writeFg(ew, s.mode)
				}
				if prev.Bg != current.Bg {
					current.Bg.writeBg(ew, s.mode)
				}
			} else {
				current.Fg.writeFg(ew, s.mode)
				current.Bg.writeBg(ew, s.mode)
			}
			writeGlyph(ew, current.Glyph)
		}
	}
	return ew.err
}

// redrawDiff emits output only for cells that differ from the previous
// frame. Both frames have equal dimensions on this path. The active
// terminal colors are tracked so a changed cell costs at most one cursor
// move, two color sequences and one glyph; identical frames produce only
// the two initial color resets.
func (s *Screen) redrawDiff(w io.Writer) error {
	checkRowLimit(s.next.rows)

	ew := &errWriter{w: w}
	fg := Default
	bg := Default
	fg.writeFg(ew, s.mode)
	bg.writeBg(ew, s.mode)
	for row := 0; row < s.next.rows; row++ {
		for col := 0; col < s.next.cols; col++ {
			next := s.next.Get(row, col)
			prev := s.previous.Get(row, col)
			if next == prev {
				continue
			}
			writeCursorPos(ew, row, col)
			if next.Fg != fg {
				next.Fg.writeFg(ew, s.mode)
				fg = next.Fg
			}
			if next.Bg != bg {
				next.Bg.writeBg(ew, s.mode)
				bg = next.Bg
			}
			writeGlyph(ew, next.Glyph)
		}
	}
	return ew.err
}

func checkRowLimit(rows int) {
	if rows >= maxRows {
		panic(fmt.Sprintf("screen: %d rows exceed the 16-bit terminal coordinate space", rows))
	}
}

func writeGlyph(w io.Writer, r rune) error {
	if r < utf8.RuneSelf {
		var buf [1]byte
		buf[0] = byte(r)
		_, err := w.Write(buf[:])
		return err
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	_, err := w.Write(buf[:n])
	return err
}
