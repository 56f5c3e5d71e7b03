package input

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Replay is a Device that plays back recorded samples. It emits a
// proximity-enter event, the samples in order, a proximity-leave event
// and then io.EOF.
type Replay struct {
	// PerRead is the number of samples returned by each Read.
	PerRead int

	points  []Point
	pos     int
	entered bool
	left    bool
}

// NewReplay creates a replay of points. It emits 4 samples per Read.
func NewReplay(points []Point) *Replay {
	return &Replay{PerRead: 4, points: points}
}

// LoadReplay reads a recording of JSON objects, one Point per line.
// Blank lines are skipped.
func LoadReplay(r io.Reader) (*Replay, error) {
	var points []Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		b := sc.Bytes()
		if len(b) == 0 {
			continue
		}
		var p Point
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, fmt.Errorf("input: replay line %d: %w", line, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: reading replay: %w", err)
	}
	return NewReplay(points), nil
}

// WriteReplay writes points in the format read by LoadReplay.
func WriteReplay(w io.Writer, points []Point) error {
	enc := json.NewEncoder(w)
	for i := range points {
		if err := enc.Encode(&points[i]); err != nil {
			return fmt.Errorf("input: writing replay: %w", err)
		}
	}
	return nil
}

// Len returns the number of recorded samples.
func (r *Replay) Len() int {
	return len(r.points)
}

// Info implements Device.
func (r *Replay) Info() Info {
	return Info{
		Name:             "Replay",
		SupportsPressure: true,
		SupportsTilt:     true,
		PressureRange:    [2]int{0, 1},
	}
}

// Read implements Device.
func (r *Replay) Read(dst []Event) ([]Event, error) {
	if r.left {
		return dst, io.EOF
	}
	if !r.entered {
		r.entered = true
		dst = append(dst, Event{Kind: EventProximityEnter})
	}

	n := max(r.PerRead, 1)
	end := min(r.pos+n, len(r.points))
	for _, p := range r.points[r.pos:end] {
		dst = append(dst, InputEvent(p))
	}
	r.pos = end

	if r.pos == len(r.points) {
		r.left = true
		dst = append(dst, Event{Kind: EventProximityLeave})
		return dst, io.EOF
	}
	return dst, nil
}
