// input-test echoes parsed key and mouse events to the screen. Mouse
// reporting is enabled; the last events are shown newest-last. Press
// Ctrl+C to quit.
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/termframe"
	"github.com/lixenwraith/termframe/screen"
	"github.com/lixenwraith/termframe/terminal"
)

const maxLog = 16

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "input-test: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := termframe.New(
		termframe.WithAltScreen(),
		termframe.WithMouse(terminal.MouseModeClick|terminal.MouseModeDrag),
	)
	if err := app.Init(); err != nil {
		return err
	}
	defer app.Fini()

	var log []string
	addLog := func(s string) {
		if len(log) >= maxLog {
			copy(log, log[1:])
			log = log[:maxLog-1]
		}
		log = append(log, s)
	}

	for {
		err := app.Draw(func(f *screen.Frame) {
			writeText(f, 0, 2, "input-test: press keys, click and drag; Ctrl+C quits",
				screen.LightWhite, screen.Blue)
			for i, entry := range log {
				row := i + 2
				if row >= f.Rows() {
					break
				}
				writeText(f, row, 2, entry, screen.Default, screen.Default)
			}
		})
		if err != nil {
			return err
		}

		ev := <-app.Events()
		switch ev.Type {
		case terminal.EventKey:
			if ev.Key == terminal.KeyCtrlC {
				return nil
			}
			addLog(describeKey(ev))
		case terminal.EventMouse:
			addLog(fmt.Sprintf("mouse %s %s at (%d, %d) mod=%d",
				ev.MouseBtn, ev.MouseAction, ev.MouseRow, ev.MouseCol, ev.Modifiers))
		case terminal.EventResize:
			addLog(fmt.Sprintf("resize to %dx%d", ev.Rows, ev.Cols))
		case terminal.EventError:
			return ev.Err
		case terminal.EventClosed:
			return nil
		}
	}
}

func describeKey(ev terminal.Event) string {
	var mods string
	if ev.Modifiers&terminal.ModShift != 0 {
		mods += "shift+"
	}
	if ev.Modifiers&terminal.ModAlt != 0 {
		mods += "alt+"
	}
	if ev.Modifiers&terminal.ModCtrl != 0 {
		mods += "ctrl+"
	}
	if ev.Key == terminal.KeyRune {
		return fmt.Sprintf("key %s%q", mods, ev.Rune)
	}
	return fmt.Sprintf("key %s%s", mods, ev.Key)
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
