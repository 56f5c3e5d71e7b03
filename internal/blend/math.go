package blend

// Epsilon is the alpha below which a pixel is treated as fully transparent.
// It also guards every unpremultiply division.
const Epsilon = 0.001

// unpremultiply recovers the straight color of a channel.
// The caller guarantees a >= Epsilon.
func unpremultiply(c, a float32) float32 {
	return c / a
}

// lerp returns a + (b-a)*t.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// sourceOverAlpha computes the result alpha of the over operator.
// Formula: Sa + Da * (1 - Sa)
func sourceOverAlpha(sa, da float32) float32 {
	return sa + da*(1-sa)
}
