package brush

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// RGB is a straight (non-premultiplied) color. Each component is in
// the range [0, 1].
//
// Brush paint is always specified as a straight color plus a separate
// alpha; coverage only exists once a dab has been rasterized.
type RGB struct {
	R, G, B float32
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
	Red   = RGB{1, 0, 0}
	Green = RGB{0, 1, 0}
	Blue  = RGB{0, 0, 1}
)

// Clamp returns c with every component clamped to [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Color converts c to an opaque color.NRGBA.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: roundByte(c.R), G: roundByte(c.G), B: roundByte(c.B), A: 255}
}

// String returns c as a "#rrggbb" hex string.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", roundByte(c.R), roundByte(c.G), roundByte(c.B))
}

// FromColor converts a standard color.Color to a straight RGB color,
// discarding alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
	}
}

// ParseHex parses a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional '#' prefix.
func ParseHex(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	var ok bool
	switch len(s) {
	case 3: // RGB
		r, g, b, ok = parseHexDigits(s[0:1], s[1:2], s[2:3])
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		r, g, b, ok = parseHexDigits(s[0:2], s[2:4], s[4:6])
	}
	if !ok {
		return RGB{}, fmt.Errorf("brush: invalid hex color %q", hex)
	}

	return RGB{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
	}, nil
}

func parseHexDigits(rs, gs, bs string) (r, g, b uint32, ok bool) {
	r, okR := parseHex(rs)
	g, okG := parseHex(gs)
	b, okB := parseHex(bs)
	return r, g, b, okR && okG && okB
}

// parseHex is a helper for hex parsing
func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

// roundByte converts a unit value to the nearest byte.
func roundByte(v float32) uint8 {
	return uint8(math32.Round(clamp01(v) * 255))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
