package screen

import "testing"

// TestRGBTo256 verifies palette mapping on cube and grayscale anchors
func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"Black", 0, 0, 0, 16},
		{"White", 255, 255, 255, 231},
		{"Pure red", 255, 0, 0, 196},
		{"Pure green", 0, 255, 0, 46},
		{"Pure blue", 0, 0, 255, 21},
		{"Cube level one red", 95, 0, 0, 52},
		{"Mid gray uses ramp", 128, 128, 128, 244},
		{"Dark gray uses ramp", 10, 10, 10, 232},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Expected index %d for (%d,%d,%d), got %d", tt.want, tt.r, tt.g, tt.b, got)
			}
		})
	}
}

// TestDetectColorMode verifies environment-based capability detection
func TestDetectColorMode(t *testing.T) {
	clearEnv := func(t *testing.T) {
		for _, v := range []string{
			"COLORTERM", "TERM", "KITTY_WINDOW_ID", "KONSOLE_VERSION",
			"ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE",
		} {
			t.Setenv(v, "")
		}
	}

	t.Run("COLORTERM truecolor", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("COLORTERM", "truecolor")
		if got := DetectColorMode(); got != ModeTrueColor {
			t.Errorf("Expected ModeTrueColor, got %v", got)
		}
	})

	t.Run("TERM direct", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TERM", "xterm-direct")
		if got := DetectColorMode(); got != ModeTrueColor {
			t.Errorf("Expected ModeTrueColor, got %v", got)
		}
	})

	t.Run("Kitty marker", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("KITTY_WINDOW_ID", "1")
		if got := DetectColorMode(); got != ModeTrueColor {
			t.Errorf("Expected ModeTrueColor, got %v", got)
		}
	})

	t.Run("Plain xterm falls back", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TERM", "xterm-256color")
		if got := DetectColorMode(); got != Mode256 {
			t.Errorf("Expected Mode256, got %v", got)
		}
	})
}
