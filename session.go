package brush

import (
	"image"
	"sync/atomic"

	"github.com/gogpu/brush/input"
	"github.com/gogpu/brush/internal/tiles"
)

// Session drives strokes from input samples to a target Pixmap.
//
// It owns a Stamper and a StrokeBuffer sized like the target, resolves
// every dab to the session color and merges each finished stroke with the
// session opacity and blend mode. Tiles touched by merged strokes are
// remembered until Invalidated is called.
//
// A Session is not safe for concurrent use, except for Invalidated which
// may be called from a display goroutine.
type Session struct {
	stamper *Stamper
	buffer  *StrokeBuffer
	target  *Pixmap
	dirty   atomic.Pointer[tiles.DirtyRegion]

	color   RGB
	opacity float32
	mode    BlendMode

	inStroke bool
	dabs     int
	events   []input.Event
}

// NewSession creates a session painting into target.
func NewSession(target *Pixmap, opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}

	st := NewStamper(o.stamper)
	st.TerminalDab = o.terminalDab

	s := &Session{
		stamper: st,
		buffer:  NewStrokeBuffer(target.Width(), target.Height()),
		target:  target,
		color:   o.color,
		opacity: o.opacity,
		mode:    o.mode,
	}
	s.dirty.Store(tiles.NewDirtyRegion(target.Width(), target.Height()))
	return s
}

// Target returns the pixmap strokes are merged into.
func (s *Session) Target() *Pixmap {
	return s.target
}

// SetTarget replaces the target pixmap and resizes the stroke buffer to
// match. An active stroke is aborted.
func (s *Session) SetTarget(target *Pixmap) {
	s.target = target
	s.buffer.Resize(target.Width(), target.Height())
	s.dirty.Store(tiles.NewDirtyRegion(target.Width(), target.Height()))
	if s.inStroke {
		s.stamper.BeginStroke()
		s.inStroke = false
	}
}

// SetColor sets the paint color for subsequent dabs.
func (s *Session) SetColor(c RGB) {
	s.color = c.Clamp()
}

// SetOpacity sets the opacity ceiling applied when a stroke ends.
func (s *Session) SetOpacity(opacity float32) {
	s.opacity = clamp01(opacity)
}

// SetBlendMode sets the mode used to merge strokes.
func (s *Session) SetBlendMode(m BlendMode) {
	s.mode = m
}

// SetStamperConfig replaces the brush parameters. It takes effect for the
// next stroke.
func (s *Session) SetStamperConfig(cfg StamperConfig) {
	s.stamper.SetConfig(cfg)
}

// Stamper returns the session stamper.
func (s *Session) Stamper() *Stamper {
	return s.stamper
}

// Buffer returns the session stroke buffer.
func (s *Session) Buffer() *StrokeBuffer {
	return s.buffer
}

// InStroke reports whether a stroke is in progress.
func (s *Session) InStroke() bool {
	return s.inStroke
}

// Begin starts a stroke. A stroke already in progress is ended first.
func (s *Session) Begin() {
	if s.inStroke {
		s.End()
	}
	s.stamper.BeginStroke()
	s.buffer.BeginStroke()
	s.inStroke = true
	s.dabs = 0
}

// Feed processes one sample of the current stroke, beginning a stroke if
// none is active. It returns the number of dabs stamped.
func (s *Session) Feed(p input.Point) int {
	if !s.inStroke {
		s.Begin()
	}
	return s.stamp(s.stamper.ProcessPoint(p))
}

func (s *Session) stamp(dabs []Dab) int {
	hardness := s.stamper.cfg.Hardness
	for _, d := range dabs {
		s.buffer.Stamp(d, s.color, hardness)
	}
	s.dabs += len(dabs)
	return len(dabs)
}

// End finishes the current stroke, merges it into the target and returns
// the modified region. Without an active stroke End returns the empty
// rectangle.
func (s *Session) End() Rect {
	if !s.inStroke {
		return EmptyRect()
	}
	s.stamp(s.stamper.FinishStroke())
	s.inStroke = false

	r := s.buffer.EndStrokeMode(s.target.Data(), s.opacity, s.mode)
	if d := s.dirty.Load(); d != nil {
		d.MarkRect(r.Image())
	}

	Logger().Debug("brush: stroke ended", "dabs", s.dabs, "rect", r.Image())
	return r
}

// Drain processes all events queued in q and returns the union of the
// regions modified by strokes that ended.
//
// Input samples with positive pressure begin or continue a stroke; a
// sample with zero pressure (pen lifted) or a proximity-leave event ends
// it, as does a backend error status.
func (s *Session) Drain(q *input.Queue) Rect {
	s.events = q.Drain(s.events[:0])
	return s.handle(s.events)
}

// Poll is like Drain for the pending events of a Backend.
func (s *Session) Poll(b input.Backend) Rect {
	s.events = b.Poll(s.events[:0])
	return s.handle(s.events)
}

func (s *Session) handle(events []input.Event) Rect {
	modified := EmptyRect()
	for _, e := range events {
		switch e.Kind {
		case input.EventInput:
			if e.Point.Pressure > 0 {
				s.Feed(e.Point)
			} else {
				modified = modified.Union(s.End())
			}
		case input.EventProximityLeave:
			modified = modified.Union(s.End())
		case input.EventStatusChanged:
			if e.Status == input.StatusError {
				modified = modified.Union(s.End())
			}
		}
	}
	return modified
}

// Invalidated returns the tiles of the target modified since the last call
// and forgets them.
func (s *Session) Invalidated() []image.Rectangle {
	d := s.dirty.Load()
	if d == nil {
		return nil
	}
	return d.GetAndClear()
}
