package screen

import "io"

// colorKind tags the closed set of color variants.
type colorKind uint8

const (
	kindDefault colorKind = iota
	kindBlack
	kindRed
	kindGreen
	kindYellow
	kindBlue
	kindMagenta
	kindCyan
	kindWhite
	kindLightBlack
	kindLightRed
	kindLightGreen
	kindLightYellow
	kindLightBlue
	kindLightMagenta
	kindLightCyan
	kindLightWhite
	kindRGB
)

// Color selects a terminal color: the terminal default, one of the 16
// conventional named colors, or a 24-bit RGB triple. Colors are
// comparable with ==; a named color is never equal to the RGB color with
// the same channel values.
type Color struct {
	kind    colorKind
	r, g, b uint8
}

// Named color values. Default is the terminal's own default color and the
// zero value of Color.
var (
	Default      = Color{kind: kindDefault}
	Black        = Color{kind: kindBlack}
	Red          = Color{kind: kindRed}
	Green        = Color{kind: kindGreen}
	Yellow       = Color{kind: kindYellow}
	Blue         = Color{kind: kindBlue}
	Magenta      = Color{kind: kindMagenta}
	Cyan         = Color{kind: kindCyan}
	White        = Color{kind: kindWhite}
	LightBlack   = Color{kind: kindLightBlack}
	LightRed     = Color{kind: kindLightRed}
	LightGreen   = Color{kind: kindLightGreen}
	LightYellow  = Color{kind: kindLightYellow}
	LightBlue    = Color{kind: kindLightBlue}
	LightMagenta = Color{kind: kindLightMagenta}
	LightCyan    = Color{kind: kindLightCyan}
	LightWhite   = Color{kind: kindLightWhite}
)

// Rgb returns a 24-bit true color. Channel values are emitted verbatim.
func Rgb(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// Pre-rendered SGR sequences for the named colors, indexed by colorKind.
// Foreground: 39 (default), 30-37, 90-97. Background: +10.
var (
	fgSeq = [kindRGB][]byte{
		[]byte("\x1b[39m"),
		[]byte("\x1b[30m"), []byte("\x1b[31m"), []byte("\x1b[32m"), []byte("\x1b[33m"),
		[]byte("\x1b[34m"), []byte("\x1b[35m"), []byte("\x1b[36m"), []byte("\x1b[37m"),
		[]byte("\x1b[90m"), []byte("\x1b[91m"), []byte("\x1b[92m"), []byte("\x1b[93m"),
		[]byte("\x1b[94m"), []byte("\x1b[95m"), []byte("\x1b[96m"), []byte("\x1b[97m"),
	}
	bgSeq = [kindRGB][]byte{
		[]byte("\x1b[49m"),
		[]byte("\x1b[40m"), []byte("\x1b[41m"), []byte("\x1b[42m"), []byte("\x1b[43m"),
		[]byte("\x1b[44m"), []byte("\x1b[45m"), []byte("\x1b[46m"), []byte("\x1b[47m"),
		[]byte("\x1b[100m"), []byte("\x1b[101m"), []byte("\x1b[102m"), []byte("\x1b[103m"),
		[]byte("\x1b[104m"), []byte("\x1b[105m"), []byte("\x1b[106m"), []byte("\x1b[107m"),
	}
)

// WriteFg emits the sequence selecting c as the foreground color.
func (c Color) WriteFg(w io.Writer) error {
	return c.writeFg(w, ModeTrueColor)
}

// WriteBg emits the sequence selecting c as the background color.
func (c Color) WriteBg(w io.Writer) error {
	return c.writeBg(w, ModeTrueColor)
}

func (c Color) writeFg(w io.Writer, mode ColorMode) error {
	if c.kind != kindRGB {
		_, err := w.Write(fgSeq[c.kind])
		return err
	}
	if mode == Mode256 {
		return write256(w, seqFg256, RGBTo256(c.r, c.g, c.b))
	}
	return writeRGB(w, seqFgRGB, c.r, c.g, c.b)
}

func (c Color) writeBg(w io.Writer, mode ColorMode) error {
	if c.kind != kindRGB {
		_, err := w.Write(bgSeq[c.kind])
		return err
	}
	if mode == Mode256 {
		return write256(w, seqBg256, RGBTo256(c.r, c.g, c.b))
	}
	return writeRGB(w, seqBgRGB, c.r, c.g, c.b)
}

func writeRGB(w io.Writer, prefix []byte, r, g, b uint8) error {
	var buf [24]byte
	s := append(buf[:0], prefix...)
	s = appendInt(s, int(r))
	s = append(s, ';')
	s = appendInt(s, int(g))
	s = append(s, ';')
	s = appendInt(s, int(b))
	s = append(s, 'm')
	_, err := w.Write(s)
	return err
}

func write256(w io.Writer, prefix []byte, n uint8) error {
	var buf [16]byte
	s := append(buf[:0], prefix...)
	s = appendInt(s, int(n))
	s = append(s, 'm')
	_, err := w.Write(s)
	return err
}
