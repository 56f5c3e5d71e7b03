package brush

import (
	"fmt"
	"strings"

	"github.com/gogpu/brush/internal/blend"
)

// BlendMode selects how paint is combined with the pixels beneath it.
//
// Normal is the Porter-Duff over operator. The other modes unpremultiply
// both pixels, apply their formula to straight color, interpolate from the
// destination color toward the result by the source alpha and
// re-premultiply with the over alpha.
type BlendMode uint8

const (
	BlendNormal   = BlendMode(blend.ModeNormal)
	BlendMultiply = BlendMode(blend.ModeMultiply)
	BlendScreen   = BlendMode(blend.ModeScreen)
	BlendOverlay  = BlendMode(blend.ModeOverlay)
	BlendDarken   = BlendMode(blend.ModeDarken)
	BlendLighten  = BlendMode(blend.ModeLighten)
)

var blendModeNames = [...]string{
	BlendNormal:   "normal",
	BlendMultiply: "multiply",
	BlendScreen:   "screen",
	BlendOverlay:  "overlay",
	BlendDarken:   "darken",
	BlendLighten:  "lighten",
}

// String returns the lowercase name of the mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", m)
}

// ParseBlendMode returns the mode with the given name, ignoring case.
func ParseBlendMode(name string) (BlendMode, error) {
	for i, n := range blendModeNames {
		if strings.EqualFold(n, name) {
			return BlendMode(i), nil
		}
	}
	return BlendNormal, fmt.Errorf("brush: unknown blend mode %q", name)
}

// Apply blends src onto dst. Both pixels are premultiplied.
// Unknown modes behave like BlendNormal.
func (m BlendMode) Apply(src, dst Pixel) Pixel {
	r, g, b, a := blend.GetFunc(blend.Mode(m))(src.R, src.G, src.B, src.A, dst.R, dst.G, dst.B, dst.A)
	return Pixel{R: r, G: g, B: b, A: a}
}
