package screen

import (
	"bytes"
	"errors"
	"testing"
)

// TestColorSequences verifies the exact SGR bytes for every color variant
func TestColorSequences(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		wantFg string
		wantBg string
	}{
		{"Default", Default, "\x1b[39m", "\x1b[49m"},
		{"Black", Black, "\x1b[30m", "\x1b[40m"},
		{"Red", Red, "\x1b[31m", "\x1b[41m"},
		{"Green", Green, "\x1b[32m", "\x1b[42m"},
		{"Yellow", Yellow, "\x1b[33m", "\x1b[43m"},
		{"Blue", Blue, "\x1b[34m", "\x1b[44m"},
		{"Magenta", Magenta, "\x1b[35m", "\x1b[45m"},
		{"Cyan", Cyan, "\x1b[36m", "\x1b[46m"},
		{"White", White, "\x1b[37m", "\x1b[47m"},
		{"LightBlack", LightBlack, "\x1b[90m", "\x1b[100m"},
		{"LightRed", LightRed, "\x1b[91m", "\x1b[101m"},
		{"LightGreen", LightGreen, "\x1b[92m", "\x1b[102m"},
		{"LightYellow", LightYellow, "\x1b[93m", "\x1b[103m"},
		{"LightBlue", LightBlue, "\x1b[94m", "\x1b[104m"},
		{"LightMagenta", LightMagenta, "\x1b[95m", "\x1b[105m"},
		{"LightCyan", LightCyan, "\x1b[96m", "\x1b[106m"},
		{"LightWhite", LightWhite, "\x1b[97m", "\x1b[107m"},
		{"Rgb", Rgb(10, 20, 30), "\x1b[38;2;10;20;30m", "\x1b[48;2;10;20;30m"},
		{"Rgb extremes", Rgb(0, 128, 255), "\x1b[38;2;0;128;255m", "\x1b[48;2;0;128;255m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fg, bg bytes.Buffer
			if err := tt.color.WriteFg(&fg); err != nil {
				t.Fatalf("WriteFg failed: %v", err)
			}
			if err := tt.color.WriteBg(&bg); err != nil {
				t.Fatalf("WriteBg failed: %v", err)
			}
			if fg.String() != tt.wantFg {
				t.Errorf("Expected fg %q, got %q", tt.wantFg, fg.String())
			}
			if bg.String() != tt.wantBg {
				t.Errorf("Expected bg %q, got %q", tt.wantBg, bg.String())
			}
		})
	}
}

// TestColorEquality verifies the tagged-value equality rules
func TestColorEquality(t *testing.T) {
	if Red != Red {
		t.Error("Expected a named color to equal itself")
	}
	if Red == LightRed {
		t.Error("Expected distinct named colors to differ")
	}
	if Rgb(1, 2, 3) != Rgb(1, 2, 3) {
		t.Error("Expected identical RGB triples to be equal")
	}
	if Rgb(1, 2, 3) == Rgb(1, 2, 4) {
		t.Error("Expected RGB triples with different channels to differ")
	}
	if Black == Rgb(0, 0, 0) {
		t.Error("Expected named Black to differ from Rgb(0,0,0)")
	}
	var zero Color
	if zero != Default {
		t.Error("Expected the zero value to be the default color")
	}
}

// TestColor256Downconversion verifies RGB emission in 256-color mode
func TestColor256Downconversion(t *testing.T) {
	var buf bytes.Buffer
	c := Rgb(255, 0, 0)
	if err := c.writeFg(&buf, Mode256); err != nil {
		t.Fatalf("writeFg failed: %v", err)
	}
	want := "\x1b[38;5;196m"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}

	buf.Reset()
	if err := Red.writeFg(&buf, Mode256); err != nil {
		t.Fatalf("writeFg failed: %v", err)
	}
	if buf.String() != "\x1b[31m" {
		t.Errorf("Expected named colors to be unaffected by mode, got %q", buf.String())
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write(p []byte) (int, error) { return 0, f.err }

// TestColorWriteFailure verifies sink errors propagate
func TestColorWriteFailure(t *testing.T) {
	wantErr := errors.New("sink broken")
	if err := Red.WriteFg(failingWriter{err: wantErr}); !errors.Is(err, wantErr) {
		t.Errorf("Expected sink error to propagate, got %v", err)
	}
	if err := Rgb(1, 2, 3).WriteBg(failingWriter{err: wantErr}); !errors.Is(err, wantErr) {
		t.Errorf("Expected sink error to propagate, got %v", err)
	}
}
