package screen

import (
	"os"
	"strings"
)

// ColorMode indicates how RGB colors are emitted. Named colors are
// unaffected by the mode.
type ColorMode uint8

const (
	ModeTrueColor ColorMode = iota // 24-bit RGB, channels verbatim
	Mode256                        // nearest xterm-256 palette index
)

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to the nearest cube level, pre-computed at init
var cubeIndex [256]uint8

// grayscaleStart is the first grayscale ramp index (232-255, 24 shades)
const grayscaleStart = 232

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := absInt(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			if d := absInt(i - int(cubeValues[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 returns the nearest xterm-256 palette index for an RGB triple.
// Near-gray values prefer the grayscale ramp over the color cube when it
// is the closer match.
func RGBTo256(r, g, b uint8) uint8 {
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(absInt(int(r)-gray), absInt(int(g)-gray), absInt(int(b)-gray))

	if maxDiff < 10 {
		// Grayscale ramp: luminance 8, 18, ..., 238
		if gray < 4 {
			return 16 // cube black
		}
		if gray > 243 {
			return 231 // cube white
		}
		grayIdx := uint8(grayscaleStart + (gray-8)/10)

		grayLevel := 8 + int(grayIdx-grayscaleStart)*10
		grayDist := absInt(int(r)-grayLevel) + absInt(int(g)-grayLevel) + absInt(int(b)-grayLevel)

		cr, cg, cb := cubeIndex[r], cubeIndex[g], cubeIndex[b]
		cubeDist := absInt(int(r)-int(cubeValues[cr])) +
			absInt(int(g)-int(cubeValues[cg])) +
			absInt(int(b)-int(cubeValues[cb]))

		if grayDist < cubeDist {
			return grayIdx
		}
	}

	return 16 + 36*cubeIndex[r] + 6*cubeIndex[g] + cubeIndex[b]
}

// DetectColorMode determines terminal color capability from environment.
func DetectColorMode() ColorMode {
	// COLORTERM is set by modern terminals and has highest priority
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ModeTrueColor
	}

	// Terminal-specific markers
	for _, v := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"WEZTERM_PANE",
	} {
		if os.Getenv(v) != "" {
			return ModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ModeTrueColor
	}

	return Mode256
}
