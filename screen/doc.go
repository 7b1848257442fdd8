// Package screen implements a double-buffered terminal framebuffer with
// minimal-repaint rendering.
//
// Features:
//   - Closed color model: terminal default, 16 named colors, 24-bit RGB
//   - Column-major cell grid with bounds-checked access
//   - Two render strategies: full redraw on resize, cell diff otherwise
//   - Optional downconversion of RGB colors to the xterm-256 palette
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: xterm-compatible terminals.
package screen
