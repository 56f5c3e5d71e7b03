// Package input models pen and pointer input for brush strokes.
//
// Devices produce [Point] samples at their own rate. A [Backend] delivers
// them as [Event] values through a mutex-guarded [Queue], which is the only
// concurrency boundary between input polling and stroke rendering: the
// producer never blocks, and event order is preserved end to end.
package input

// Point is a single raw pen sample.
//
// Pressure is normalized to [0, 1] and tilt is in degrees in [-90, 90].
// Timestamp is in milliseconds since the Unix epoch.
type Point struct {
	X         float32 `json:"x"`
	Y         float32 `json:"y"`
	Pressure  float32 `json:"pressure"`
	TiltX     float32 `json:"tilt_x"`
	TiltY     float32 `json:"tilt_y"`
	Timestamp uint64  `json:"timestamp_ms"`
}

// NewPoint returns an untilted sample at (x, y) with the given pressure.
func NewPoint(x, y, pressure float32) Point {
	return Point{X: x, Y: y, Pressure: pressure}
}

// Clamped returns p with pressure clamped to [0, 1] and tilt to [-90, 90].
func (p Point) Clamped() Point {
	p.Pressure = clamp(p.Pressure, 0, 1)
	p.TiltX = clamp(p.TiltX, -90, 90)
	p.TiltY = clamp(p.TiltY, -90, 90)
	return p
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
