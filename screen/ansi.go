package screen

import "io"

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	seqClear = []byte("\x1b[2J")

	seqCursorHide = []byte("\x1b[?25l")
	seqCursorShow = []byte("\x1b[?25h")
	seqCursorHome = []byte("\x1b[1;1H")

	// Color prefixes
	seqFgRGB = []byte("\x1b[38;2;") // followed by R;G;Bm
	seqBgRGB = []byte("\x1b[48;2;") // followed by R;G;Bm
	seqFg256 = []byte("\x1b[38;5;") // followed by Nm
	seqBg256 = []byte("\x1b[48;5;") // followed by Nm
)

// appendInt appends the decimal form of n without allocation.
// Terminal values are small: 0-255 for channels, 1-65535 for coordinates.
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	var buf [5]byte
	i := 5
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// errWriter wraps a sink and latches the first write error so render
// loops can stay linear. Writes after a failure are discarded.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// writeCursorPos writes a 1-indexed cursor positioning sequence for the
// given 0-indexed row and column.
func writeCursorPos(w io.Writer, row, col int) error {
	var buf [16]byte
	b := append(buf[:0], csi...)
	b = appendInt(b, row+1)
	b = append(b, ';')
	b = appendInt(b, col+1)
	b = append(b, 'H')
	_, err := w.Write(b)
	return err
}

// WriteClear emits the clear-entire-screen sequence.
func WriteClear(w io.Writer) error {
	_, err := w.Write(seqClear)
	return err
}

// WriteCursorHide emits the cursor-hide sequence.
func WriteCursorHide(w io.Writer) error {
	_, err := w.Write(seqCursorHide)
	return err
}

// WriteCursorShow emits the cursor-show sequence.
func WriteCursorShow(w io.Writer) error {
	_, err := w.Write(seqCursorShow)
	return err
}

// WriteCursorHome emits a cursor move to the origin.
func WriteCursorHome(w io.Writer) error {
	_, err := w.Write(seqCursorHome)
	return err
}
