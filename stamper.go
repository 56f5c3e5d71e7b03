package brush

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/brush/input"
)

// Dab is a single circular paint deposit emitted by a Stamper.
type Dab struct {
	// X and Y are the center position.
	X, Y float32
	// Size is the dab diameter in pixels.
	Size float32
	// Alpha is the dab opacity (flow, optionally scaled by pressure).
	Alpha float32
	// Angle is the pen tilt direction in radians.
	Angle float32
	// Pressure is the pressure at this point.
	Pressure float32
}

// Radius returns half the dab size.
func (d Dab) Radius() float32 {
	return d.Size / 2
}

// StamperConfig controls dab emission.
type StamperConfig struct {
	// Size is the base brush diameter in pixels.
	Size float32
	// Spacing is the distance between dabs as a fraction of the dab size.
	Spacing float32
	// Flow is the per-dab opacity in [0, 1].
	Flow float32
	// Hardness is the fraction of the radius painted at full alpha.
	Hardness float32
	// PressureSize scales dab size with pressure.
	PressureSize bool
	// PressureAlpha scales dab alpha with pressure.
	PressureAlpha bool
	// MinSizeRatio is the fraction of Size used at zero pressure.
	MinSizeRatio float32
	// MinAlphaRatio is the fraction of Flow used at zero pressure.
	MinAlphaRatio float32
}

// DefaultStamperConfig returns a 20px hard round brush at 25% spacing with
// pressure controlling both size and alpha.
func DefaultStamperConfig() StamperConfig {
	return StamperConfig{
		Size:          20,
		Spacing:       0.25,
		Flow:          1,
		Hardness:      1,
		PressureSize:  true,
		PressureAlpha: true,
	}
}

// dabSize returns the diameter of a dab painted at the given pressure.
func (c *StamperConfig) dabSize(pressure float32) float32 {
	if !c.PressureSize {
		return c.Size
	}
	lo := c.Size * c.MinSizeRatio
	return lo + (c.Size-lo)*pressure
}

// dabAlpha returns the alpha of a dab painted at the given pressure.
func (c *StamperConfig) dabAlpha(pressure float32) float32 {
	if !c.PressureAlpha {
		return c.Flow
	}
	lo := c.Flow * c.MinAlphaRatio
	return lo + (c.Flow-lo)*pressure
}

// resampleStep is the spacing of resampled path points, half the nominal
// dab spacing.
func (c *StamperConfig) resampleStep() float32 {
	return max(c.Size*c.Spacing*0.5, minResampleStep)
}

const (
	// historySize is the number of samples kept for spline interpolation.
	historySize = 4

	// minSpacing is the floor of the dab spacing threshold in pixels.
	minSpacing = 1

	// minResampleStep keeps degenerate configs (zero size or spacing) from
	// resampling a segment into an unbounded number of points.
	minResampleStep = 0.5

	// segmentEpsilon is the traversal distance below which a resampled
	// point is placed without interpolation.
	segmentEpsilon = 0.001
)

// pathPoint is an interpolated sample along the stroke path.
type pathPoint struct {
	x, y         float32
	pressure     float32
	tiltX, tiltY float32
}

// pathPointFrom converts a raw sample, clamping pressure and tilt.
func pathPointFrom(p input.Point) pathPoint {
	p = p.Clamped()
	return pathPoint{x: p.X, y: p.Y, pressure: p.Pressure, tiltX: p.TiltX, tiltY: p.TiltY}
}

func (p pathPoint) lerp(q pathPoint, t float32) pathPoint {
	return pathPoint{
		x:        p.x + (q.x-p.x)*t,
		y:        p.y + (q.y-p.y)*t,
		pressure: p.pressure + (q.pressure-p.pressure)*t,
		tiltX:    p.tiltX + (q.tiltX-p.tiltX)*t,
		tiltY:    p.tiltY + (q.tiltY-p.tiltY)*t,
	}
}

func (p pathPoint) distance(q pathPoint) float32 {
	return math32.Hypot(q.x-p.x, q.y-p.y)
}

// catmullRom evaluates the Catmull-Rom spline through p0..p3 at t in
// [0, 1] on the segment p1→p2. The spline can overshoot, so pressure is
// clamped to [0, 1].
func catmullRom(p0, p1, p2, p3 pathPoint, t float32) pathPoint {
	t2 := t * t
	t3 := t2 * t

	b0 := -0.5*t3 + t2 - 0.5*t
	b1 := 1.5*t3 - 2.5*t2 + 1
	b2 := -1.5*t3 + 2*t2 + 0.5*t
	b3 := 0.5*t3 - 0.5*t2

	eval := func(v0, v1, v2, v3 float32) float32 {
		return b0*v0 + b1*v1 + b2*v2 + b3*v3
	}

	return pathPoint{
		x:        eval(p0.x, p1.x, p2.x, p3.x),
		y:        eval(p0.y, p1.y, p2.y, p3.y),
		pressure: clamp01(eval(p0.pressure, p1.pressure, p2.pressure, p3.pressure)),
		tiltX:    eval(p0.tiltX, p1.tiltX, p2.tiltX, p3.tiltX),
		tiltY:    eval(p0.tiltY, p1.tiltY, p2.tiltY, p3.tiltY),
	}
}

// Stamper converts raw input samples into evenly spaced dabs.
//
// Spacing is measured along the path by accumulating traversed distance,
// so the dab density does not depend on the device sampling rate. Once
// four samples are known the path is smoothed with a Catmull-Rom spline,
// which makes emission lag the live cursor by one sample.
//
// All state is per stroke and owned by the Stamper. A Stamper is not safe
// for concurrent use.
type Stamper struct {
	cfg StamperConfig

	// TerminalDab makes FinishStroke emit a final dab at the last sample
	// when no dab was placed there yet.
	TerminalDab bool

	accumulated float32
	lastStamp   pathPoint
	hasStamp    bool
	history     []pathPoint
	strokeStart bool

	// resampled is reused between calls to avoid per-sample allocations.
	resampled []pathPoint
}

// NewStamper creates a stamper with the given configuration.
func NewStamper(cfg StamperConfig) *Stamper {
	return &Stamper{
		cfg:         cfg,
		history:     make([]pathPoint, 0, historySize),
		strokeStart: true,
	}
}

// Config returns the current configuration.
func (s *Stamper) Config() StamperConfig {
	return s.cfg
}

// SetConfig replaces the configuration. It is meant to be called between
// strokes.
func (s *Stamper) SetConfig(cfg StamperConfig) {
	s.cfg = cfg
}

// BeginStroke resets all per-stroke state.
func (s *Stamper) BeginStroke() {
	s.accumulated = 0
	s.lastStamp = pathPoint{}
	s.hasStamp = false
	s.history = s.history[:0]
	s.strokeStart = true
}

// ProcessPoint consumes one sample and returns the dabs it produces, in
// path order. The first sample of a stroke always yields exactly one dab
// at the sample position.
func (s *Stamper) ProcessPoint(p input.Point) []Dab {
	pt := pathPointFrom(p)

	if len(s.history) == historySize {
		copy(s.history, s.history[1:])
		s.history = s.history[:historySize-1]
	}
	s.history = append(s.history, pt)

	if s.strokeStart {
		s.strokeStart = false
		s.lastStamp = pt
		s.hasStamp = true
		return []Dab{s.makeDab(pt)}
	}

	if len(s.history) < 2 {
		return nil
	}

	var dabs []Dab
	for _, cur := range s.resample() {
		if !s.hasStamp {
			s.lastStamp = cur
			s.hasStamp = true
			continue
		}

		last := s.lastStamp
		dist := last.distance(cur)
		s.accumulated += dist

		threshold := max(s.cfg.dabSize(cur.pressure)*s.cfg.Spacing, minSpacing)

		for s.accumulated >= threshold {
			overshoot := s.accumulated - threshold
			t := float32(1)
			if dist > segmentEpsilon {
				t = 1 - min(overshoot/dist, 1)
			}

			at := last.lerp(cur, t)
			dabs = append(dabs, s.makeDab(at))

			s.accumulated -= threshold
			s.lastStamp = at
		}

		s.lastStamp = cur
	}

	return dabs
}

// FinishStroke ends the stroke and returns any remaining dabs. Unless
// TerminalDab is set this is always empty: ProcessPoint has already
// emitted every dab the path earned. The per-stroke state is reset.
func (s *Stamper) FinishStroke() []Dab {
	var dabs []Dab
	if s.TerminalDab && len(s.history) > 1 {
		end := s.history[len(s.history)-1]
		if s.lastStamp.distance(end) > segmentEpsilon || s.accumulated > segmentEpsilon {
			dabs = append(dabs, s.makeDab(end))
		}
	}
	s.BeginStroke()
	return dabs
}

// makeDab builds the dab painted at p.
func (s *Stamper) makeDab(p pathPoint) Dab {
	return Dab{
		X:        p.x,
		Y:        p.y,
		Size:     s.cfg.dabSize(p.pressure),
		Alpha:    s.cfg.dabAlpha(p.pressure),
		Angle:    math32.Atan2(p.tiltY, p.tiltX),
		Pressure: p.pressure,
	}
}

// resample returns evenly stepped points on the newest usable segment of
// the history: the last segment (linear) while fewer than four samples
// are known, then the middle segment of the last four (Catmull-Rom).
// The returned slice is only valid until the next call.
func (s *Stamper) resample() []pathPoint {
	n := len(s.history)
	s.resampled = s.resampled[:0]

	var from, to pathPoint
	spline := n >= historySize
	if spline {
		from, to = s.history[n-3], s.history[n-2]
	} else {
		from, to = s.history[n-2], s.history[n-1]
	}

	dist := from.distance(to)
	step := s.cfg.resampleStep()
	if dist < step {
		return append(s.resampled, to)
	}

	steps := int(math32.Ceil(dist / step))
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps)
		if spline {
			s.resampled = append(s.resampled, catmullRom(s.history[n-4], from, to, s.history[n-1], t))
		} else {
			s.resampled = append(s.resampled, from.lerp(to, t))
		}
	}
	return s.resampled
}
