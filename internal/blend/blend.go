// Package blend implements the compositing kernels used to merge brush paint.
//
// All kernels work with premultiplied alpha float32 values in the range 0-1.
// Normal is the Porter-Duff "over" operator. The remaining modes are
// separable blend modes that are evaluated on straight (unpremultiplied)
// color and then scoped to the source coverage before re-premultiplying.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a blend mode.
type Mode uint8

const (
	ModeNormal   Mode = iota // Result: S + D*(1-Sa) [default]
	ModeMultiply             // Result: S * D
	ModeScreen               // Result: 1 - (1-S)*(1-D)
	ModeOverlay              // HardLight with swapped layers
	ModeDarken               // min(S, D)
	ModeLighten              // max(S, D)
)

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-1.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da float32) (r, g, b, a float32)

// GetFunc returns the blend function for the given mode.
// Returns Normal for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case ModeNormal:
		return Normal
	case ModeMultiply:
		return Multiply
	case ModeScreen:
		return Screen
	case ModeOverlay:
		return Overlay
	case ModeDarken:
		return Darken
	case ModeLighten:
		return Lighten
	default:
		return Normal
	}
}

// Normal composites source over destination (default blend mode).
// Formula: S + D * (1 - Sa), applied to every channel including alpha.
func Normal(sr, sg, sb, sa, dr, dg, db, da float32) (float32, float32, float32, float32) {
	invSa := 1 - sa
	return sr + dr*invSa,
		sg + dg*invSa,
		sb + db*invSa,
		sa + da*invSa
}
