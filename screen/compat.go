package screen

import (
	"github.com/gdamore/tcell/v2"
)

// tcell interop for programs migrating from tcell-based rendering.
// The 16 named colors map onto the corresponding ANSI palette entries;
// everything else round-trips through 24-bit RGB.

var toTcellNamed = [kindRGB]tcell.Color{
	kindDefault:      tcell.ColorDefault,
	kindBlack:        tcell.ColorBlack,
	kindRed:          tcell.ColorMaroon,
	kindGreen:        tcell.ColorGreen,
	kindYellow:       tcell.ColorOlive,
	kindBlue:         tcell.ColorNavy,
	kindMagenta:      tcell.ColorPurple,
	kindCyan:         tcell.ColorTeal,
	kindWhite:        tcell.ColorSilver,
	kindLightBlack:   tcell.ColorGray,
	kindLightRed:     tcell.ColorRed,
	kindLightGreen:   tcell.ColorLime,
	kindLightYellow:  tcell.ColorYellow,
	kindLightBlue:    tcell.ColorBlue,
	kindLightMagenta: tcell.ColorFuchsia,
	kindLightCyan:    tcell.ColorAqua,
	kindLightWhite:   tcell.ColorWhite,
}

// ToTcell converts a Color to the equivalent tcell color.
func (c Color) ToTcell() tcell.Color {
	if c.kind == kindRGB {
		return tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
	}
	return toTcellNamed[c.kind]
}

// FromTcell converts a tcell color. The 16 ANSI palette constants map to
// the named colors; other valid colors become RGB triples.
func FromTcell(tc tcell.Color) Color {
	if tc == tcell.ColorDefault || !tc.Valid() {
		return Default
	}
	for kind, named := range toTcellNamed {
		if tc == named {
			return Color{kind: colorKind(kind)}
		}
	}
	r, g, b := tc.RGB()
	return Rgb(uint8(r), uint8(g), uint8(b))
}

// ToTcellStyle converts a cell's colors to a tcell style.
func (c Cell) ToTcellStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(c.Fg.ToTcell()).
		Background(c.Bg.ToTcell())
}

// CellFromTcell builds a cell from a rune and a tcell style. Text
// attributes other than color are discarded.
func CellFromTcell(glyph rune, style tcell.Style) Cell {
	fg, bg, _ := style.Decompose()
	return Cell{Glyph: glyph, Fg: FromTcell(fg), Bg: FromTcell(bg)}
}
