// Package terminal is the platform backend for the framebuffer: raw
// mode acquisition and restoration, terminal size queries, SIGWINCH
// resize notification, and an asynchronous input event stream parsed
// from raw stdin bytes.
//
// The rendering core never interprets events; it only needs the current
// dimensions and a byte sink. Everything else in this package is
// plumbing for interactive programs.
//
// Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
