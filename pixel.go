package brush

import (
	"github.com/gogpu/brush/internal/blend"
)

// AlphaEpsilon is the alpha below which a pixel is treated as fully
// transparent.
const AlphaEpsilon = blend.Epsilon

// Pixel is an RGBA color in premultiplied alpha form.
// Each component is in the range [0, 1] and R, G, B never exceed A.
type Pixel struct {
	R, G, B, A float32
}

// Transparent is the fully transparent pixel.
var Transparent = Pixel{}

// Premultiplied returns the premultiplied pixel for a straight color
// covered with the given alpha.
func Premultiplied(c RGB, alpha float32) Pixel {
	return Pixel{
		R: c.R * alpha,
		G: c.G * alpha,
		B: c.B * alpha,
		A: alpha,
	}
}

// PixelFromRGBA8 converts a straight-alpha 8-bit color to a premultiplied pixel.
func PixelFromRGBA8(r, g, b, a uint8) Pixel {
	af := float32(a) / 255
	return Pixel{
		R: float32(r) / 255 * af,
		G: float32(g) / 255 * af,
		B: float32(b) / 255 * af,
		A: af,
	}
}

// RGBA8 converts p to straight-alpha 8-bit components.
// Channels are truncated, and pixels below AlphaEpsilon become all zero.
func (p Pixel) RGBA8() (r, g, b, a uint8) {
	if p.A < AlphaEpsilon {
		return 0, 0, 0, 0
	}
	inv := 1 / p.A
	return unitToByte(p.R * inv),
		unitToByte(p.G * inv),
		unitToByte(p.B * inv),
		unitToByte(p.A)
}

// IsTransparent reports whether p carries no visible coverage.
func (p Pixel) IsTransparent() bool {
	return p.A < AlphaEpsilon
}

// Straight returns the unpremultiplied color of p.
func (p Pixel) Straight() RGB {
	if p.A < AlphaEpsilon {
		return RGB{}
	}
	return RGB{R: p.R / p.A, G: p.G / p.A, B: p.B / p.A}
}

// WithAlpha rescales the premultiplied channels so that the alpha
// becomes a. A transparent pixel stays transparent.
func (p Pixel) WithAlpha(a float32) Pixel {
	if p.A < AlphaEpsilon {
		return Transparent
	}
	scale := a / p.A
	return Pixel{
		R: p.R * scale,
		G: p.G * scale,
		B: p.B * scale,
		A: a,
	}
}

// Over composites p over dst with the Normal blend mode.
func (p Pixel) Over(dst Pixel) Pixel {
	return BlendNormal.Apply(p, dst)
}

// unitToByte clamps v to [0, 1] and scales it to a byte, truncating.
func unitToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
