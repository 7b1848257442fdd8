// color-chart displays the 16 named colors and a true-color hue sweep.
// Press q or Ctrl+C to quit.
package main

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termframe"
	"github.com/lixenwraith/termframe/screen"
	"github.com/lixenwraith/termframe/terminal"
)

var named = []struct {
	name  string
	color screen.Color
}{
	{"black", screen.Black},
	{"red", screen.Red},
	{"green", screen.Green},
	{"yellow", screen.Yellow},
	{"blue", screen.Blue},
	{"magenta", screen.Magenta},
	{"cyan", screen.Cyan},
	{"white", screen.White},
	{"light black", screen.LightBlack},
	{"light red", screen.LightRed},
	{"light green", screen.LightGreen},
	{"light yellow", screen.LightYellow},
	{"light blue", screen.LightBlue},
	{"light magenta", screen.LightMagenta},
	{"light cyan", screen.LightCyan},
	{"light white", screen.LightWhite},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "color-chart: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := termframe.New()
	if err := app.Init(); err != nil {
		return err
	}
	defer app.Fini()

	for {
		err := app.Draw(func(f *screen.Frame) {
			rows, cols := f.Rows(), f.Columns()

			for i, nc := range named {
				row := i + 1
				if row >= rows {
					break
				}
				writeText(f, row, 2, nc.name, screen.Default, screen.Default)
				for col := 16; col < 24 && col < cols; col++ {
					f.Set(row, col, screen.NewCell(' ', screen.Default, nc.color))
				}
			}

			// Hue sweep rendered as true color
			sweepRow := len(named) + 2
			if sweepRow+1 < rows {
				writeText(f, sweepRow, 2, "true color", screen.Default, screen.Default)
				for col := 16; col < cols-2; col++ {
					h := 360.0 * float64(col-16) / float64(cols-18)
					r, g, b := colorful.Hsv(h, 1, 1).RGB255()
					f.Set(sweepRow, col, screen.NewCell(' ', screen.Default, screen.Rgb(r, g, b)))
				}
			}

			if rows > 0 {
				writeText(f, rows-1, 2, "q to quit", screen.LightBlack, screen.Default)
			}
		})
		if err != nil {
			return err
		}

		ev := <-app.Events()
		if ev.Type == terminal.EventKey && (ev.Rune == 'q' || ev.Key == terminal.KeyCtrlC) {
			return nil
		}
		// Anything else (including resize) falls through to a redraw
	}
}

func writeText(f *screen.Frame, row, col int, s string, fg, bg screen.Color) {
	for _, r := range s {
		if col >= f.Columns() {
			return
		}
		f.Set(row, col, screen.NewCell(r, fg, bg))
		col++
	}
}
