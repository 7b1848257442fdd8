// frame-demo walks a red dot across the screen at 60fps, exercising the
// per-frame diff path. Press q or Ctrl+C to quit.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/termframe"
	"github.com/lixenwraith/termframe/screen"
	"github.com/lixenwraith/termframe/terminal"
)

const frameTime = time.Second / 60

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "frame-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := termframe.New()
	if err := app.Init(); err != nil {
		return err
	}
	defer app.Fini()

	counter := 0
	for {
		start := time.Now()

		err := app.Draw(func(f *screen.Frame) {
			rows, cols := f.Rows(), f.Columns()
			if rows == 0 || cols == 0 {
				return
			}
			row := counter % rows
			col := (counter / rows) % cols
			f.Set(row, col, screen.NewCell('.', screen.Default, screen.Red))
			counter = (counter + 1) % (rows * cols)
		})
		if err != nil {
			return err
		}

	drain:
		for {
			select {
			case ev := <-app.Events():
				if ev.Type == terminal.EventKey {
					if ev.Rune == 'q' || ev.Key == terminal.KeyCtrlC {
						return nil
					}
				}
			default:
				break drain
			}
		}

		if d := time.Since(start); d < frameTime {
			time.Sleep(frameTime - d)
		}
	}
}
