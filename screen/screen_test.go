package screen

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
)

var gotoRe = regexp.MustCompile(`\x1b\[[0-9]+;[0-9]+H`)
var colorRe = regexp.MustCompile(`\x1b\[(?:3[0-9]|4[0-9]|9[0-7]|10[0-7])m`)

// TestDiffIdenticalBlankFrames verifies that rendering a screen whose
// frames match produces only the two initial color resets
func TestDiffIdenticalBlankFrames(t *testing.T) {
	s := NewScreen(4, 3)
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := "\x1b[39m\x1b[49m"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

// TestDiffGlyphChange verifies the minimal output for a glyph-only change
func TestDiffGlyphChange(t *testing.T) {
	s := NewScreen(4, 3)
	s.Next().Set(0, 0, NewCell('A', Red))

	var base bytes.Buffer
	if err := s.Render(&base); err != nil {
		t.Fatalf("baseline Render failed: %v", err)
	}
	wantBase := "\x1b[39m\x1b[49m\x1b[1;1H\x1b[31mA"
	if base.String() != wantBase {
		t.Fatalf("Expected baseline %q, got %q", wantBase, base.String())
	}

	s.PrepareNextFrame(4, 3)
	s.Next().Set(0, 0, NewCell('B', Red))

	var out bytes.Buffer
	if err := s.Render(&out); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	// One goto, the foreground re-established against the reset tracker,
	// and the new glyph
	want := "\x1b[39m\x1b[49m\x1b[1;1H\x1b[31mB"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

// TestDiffChangedCellBudget verifies k changed cells cost exactly k
// gotos, k glyphs and at most 2k color sequences
func TestDiffChangedCellBudget(t *testing.T) {
	s := NewScreen(4, 3)
	s.Next().Set(0, 0, NewCell('a', Red))
	s.Next().Set(1, 2, NewCell('b', Red))
	s.Next().Set(3, 1, NewCell('c', Red))

	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	want := "\x1b[39m\x1b[49m" +
		"\x1b[1;1H\x1b[31ma" +
		"\x1b[2;3Hb" +
		"\x1b[4;2Hc"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}

	if n := len(gotoRe.FindAllString(out, -1)); n != 3 {
		t.Errorf("Expected 3 cursor gotos, got %d", n)
	}
	// 2 initial resets plus one shared foreground change
	if n := len(colorRe.FindAllString(out, -1)); n > 2*3+2 {
		t.Errorf("Expected at most %d color sequences, got %d", 2*3+2, n)
	}
}

// TestRenderStrategySelection verifies dimension changes force the full
// redraw (visible as the leading clear-screen sequence)
func TestRenderStrategySelection(t *testing.T) {
	t.Run("Same dims diffs", func(t *testing.T) {
		s := NewScreen(3, 3)
		s.PrepareNextFrame(3, 3)
		var buf bytes.Buffer
		if err := s.Render(&buf); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if strings.Contains(buf.String(), "\x1b[2J") {
			t.Errorf("Expected no clear-screen on the diff path, got %q", buf.String())
		}
	})

	t.Run("Changed dims redraws", func(t *testing.T) {
		s := NewScreen(3, 3)
		s.PrepareNextFrame(4, 3)
		var buf bytes.Buffer
		if err := s.Render(&buf); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if !strings.HasPrefix(buf.String(), "\x1b[2J") {
			t.Errorf("Expected full redraw to start with clear-screen, got %q", buf.String())
		}
	})
}

// TestFullRedrawOriginTrueColor verifies the origin cell emits both
// colors unconditionally, RGB channels verbatim
func TestFullRedrawOriginTrueColor(t *testing.T) {
	s := NewScreen(1, 1)
	s.PrepareNextFrame(2, 2)
	s.Next().Set(0, 0, NewCell('x', Rgb(10, 20, 30)))

	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	wantPrefix := "\x1b[2J\x1b[1;1H\x1b[38;2;10;20;30m\x1b[49mx"
	if !strings.HasPrefix(buf.String(), wantPrefix) {
		t.Errorf("Expected prefix %q, got %q", wantPrefix, buf.String())
	}
}

// TestFullRedrawColorElision verifies cells sharing their predecessor's
// colors skip color sequences entirely
func TestFullRedrawColorElision(t *testing.T) {
	s := NewScreen(1, 1)
	s.PrepareNextFrame(2, 2)

	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := "\x1b[2J" +
		"\x1b[1;1H\x1b[39m\x1b[49m " +
		"\x1b[1;2H " +
		"\x1b[2;1H " +
		"\x1b[2;2H "
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

// TestBufferRotation verifies the populated frame becomes the diff
// baseline after PrepareNextFrame
func TestBufferRotation(t *testing.T) {
	s := NewScreen(2, 2)
	s.Next().Set(0, 0, NewCell('A', Red))
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		t.Fatalf("baseline Render failed: %v", err)
	}

	s.PrepareNextFrame(2, 2)
	// Next frame left blank: the old 'A' cell must be repainted blank
	buf.Reset()
	if err := s.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := "\x1b[39m\x1b[49m\x1b[1;1H "
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

// TestRowLimitFault verifies both strategies reject row counts beyond
// the 16-bit coordinate space
func TestRowLimitFault(t *testing.T) {
	t.Run("Diff path", func(t *testing.T) {
		s := NewScreen(1<<16, 1)
		defer func() {
			if recover() == nil {
				t.Error("Expected panic for 65536 rows")
			}
		}()
		s.Render(&bytes.Buffer{})
	})

	t.Run("Full path", func(t *testing.T) {
		s := NewScreen(1, 1)
		s.PrepareNextFrame(1<<16, 1)
		defer func() {
			if recover() == nil {
				t.Error("Expected panic for 65536 rows")
			}
		}()
		s.Render(&bytes.Buffer{})
	})
}

// TestRenderWriteFailure verifies sink errors surface from Render
func TestRenderWriteFailure(t *testing.T) {
	wantErr := errors.New("sink broken")
	s := NewScreen(2, 2)
	if err := s.Render(failingWriter{err: wantErr}); !errors.Is(err, wantErr) {
		t.Errorf("Expected sink error to propagate, got %v", err)
	}
}

// TestScreenMode256 verifies RGB cells downconvert when the screen is
// constructed in 256-color mode
func TestScreenMode256(t *testing.T) {
	s := NewScreen(1, 1, Mode256)
	s.Next().Set(0, 0, NewCell('x', Rgb(255, 0, 0)))

	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[38;5;196m") {
		t.Errorf("Expected 256-color foreground sequence, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "38;2;") {
		t.Errorf("Expected no true-color sequence in 256 mode, got %q", buf.String())
	}
}
