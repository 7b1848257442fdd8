package screen

// Cell is one character position: a single glyph plus its foreground and
// background colors. Cells are small values compared with ==.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

// DefaultCell is the blank cell: a space in the terminal's default colors.
var DefaultCell = Cell{Glyph: ' '}

// NewCell builds a cell from a glyph and up to two colors: the first is
// the foreground, the second the background. Unspecified colors default
// to the terminal default.
func NewCell(glyph rune, colors ...Color) Cell {
	c := Cell{Glyph: glyph}
	if len(colors) > 0 {
		c.Fg = colors[0]
	}
	if len(colors) > 1 {
		c.Bg = colors[1]
	}
	return c
}
