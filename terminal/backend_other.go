//go:build !unix

package terminal

import "errors"

type stubBackend struct{}

// NewBackend returns a placeholder backend on platforms without raw
// terminal support. Init always fails; callers can still supply their
// own Backend implementation.
func NewBackend() Backend {
	return stubBackend{}
}

func (stubBackend) Init() error {
	return errors.New("terminal: unsupported platform")
}

func (stubBackend) Fini()                                {}
func (stubBackend) Size() (int, int)                     { return 24, 80 }
func (stubBackend) Write(p []byte) (int, error)          { return len(p), nil }
func (stubBackend) SetResizeHandler(func(rows, cols int)) {}

func (stubBackend) Read(stop <-chan struct{}) ([]byte, error) {
	<-stop
	return nil, nil
}
