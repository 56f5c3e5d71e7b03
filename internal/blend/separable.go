package blend

import "github.com/chewxy/math32"

// separableBlend applies a per-channel blend function B(s, d) to two
// premultiplied pixels.
//
// The sequence is fixed:
//  1. sa ≈ 0 returns the destination, da ≈ 0 returns the source.
//  2. Both pixels are unpremultiplied to straight color.
//  3. B is evaluated on the straight colors.
//  4. The output alpha is the over alpha Sa + Da*(1-Sa).
//  5. Each channel is interpolated from the straight destination color
//     toward B by Sa.
//  6. The result is premultiplied by the output alpha.
//
// This differs from the W3C premultiplied formula: the blend is scoped to
// the source coverage, which is what painting applications expect of a
// semi-transparent brush.
func separableBlend(sr, sg, sb, sa, dr, dg, db, da float32, blendChan func(s, d float32) float32) (float32, float32, float32, float32) {
	if sa < Epsilon {
		return dr, dg, db, da
	}
	if da < Epsilon {
		return sr, sg, sb, sa
	}

	sur, sug, sub := unpremultiply(sr, sa), unpremultiply(sg, sa), unpremultiply(sb, sa)
	dur, dug, dub := unpremultiply(dr, da), unpremultiply(dg, da), unpremultiply(db, da)

	blendR := blendChan(sur, dur)
	blendG := blendChan(sug, dug)
	blendB := blendChan(sub, dub)

	outA := sourceOverAlpha(sa, da)
	if outA < Epsilon {
		return 0, 0, 0, 0
	}

	return lerp(dur, blendR, sa) * outA,
		lerp(dug, blendG, sa) * outA,
		lerp(dub, blendB, sa) * outA,
		outA
}

// Multiply multiplies source and destination colors.
// Formula: B(Cb, Cs) = Cb * Cs
func Multiply(sr, sg, sb, sa, dr, dg, db, da float32) (float32, float32, float32, float32) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d float32) float32 {
		return s * d
	})
}

// Screen produces a lighter result than multiply.
// Formula: B(Cb, Cs) = 1 - (1 - Cb) * (1 - Cs)
func Screen(sr, sg, sb, sa, dr, dg, db, da float32) (float32, float32, float32, float32) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d float32) float32 {
		return 1 - (1-s)*(1-d)
	})
}

// Overlay multiplies or screens depending on the destination.
// Formula: B(Cb, Cs) = if Cb < 0.5: 2*Cs*Cb, else: 1 - 2*(1-Cs)*(1-Cb)
func Overlay(sr, sg, sb, sa, dr, dg, db, da float32) (float32, float32, float32, float32) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d float32) float32 {
		if d < 0.5 {
			return 2 * s * d
		}
		return 1 - 2*(1-s)*(1-d)
	})
}

// Darken selects the darker of source and destination.
// Formula: B(Cb, Cs) = min(Cb, Cs)
func Darken(sr, sg, sb, sa, dr, dg, db, da float32) (float32, float32, float32, float32) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, math32.Min)
}

// Lighten selects the lighter of source and destination.
// Formula: B(Cb, Cs) = max(Cb, Cs)
func Lighten(sr, sg, sb, sa, dr, dg, db, da float32) (float32, float32, float32, float32) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, math32.Max)
}
