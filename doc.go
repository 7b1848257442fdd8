// Package termframe is a minimal-repaint terminal framebuffer. A
// program describes a full screen of colored cells each frame; the
// library emits only the control sequences needed to transform what is
// currently displayed into the new state.
//
// Typical use:
//
//	app := termframe.New()
//	if err := app.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer app.Fini()
//
//	for running {
//		err := app.Draw(func(f *screen.Frame) {
//			f.Set(0, 0, screen.NewCell('x', screen.Red))
//		})
//		...
//	}
//
// Rendering is double-buffered: a resize triggers a full repaint, an
// unchanged frame produces almost no output. Input events from the
// terminal are exposed unparsed by policy — the library forwards key,
// mouse and resize events but never interprets them.
package termframe
