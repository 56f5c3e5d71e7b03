package input

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// PressureCurve maps raw normalized pressure to output pressure.
type PressureCurve uint8

const (
	// CurveLinear maps pressure 1:1.
	CurveLinear PressureCurve = iota
	// CurveSoft makes light pressure easier (square root).
	CurveSoft
	// CurveHard requires more pressure (square).
	CurveHard
	// CurveS is soft at both extremes and steep in the middle (smoothstep).
	CurveS
)

var curveNames = [...]string{
	CurveLinear: "linear",
	CurveSoft:   "soft",
	CurveHard:   "hard",
	CurveS:      "s-curve",
}

// Apply evaluates the curve. The input is clamped to [0, 1] first.
func (c PressureCurve) Apply(pressure float32) float32 {
	p := clamp(pressure, 0, 1)
	switch c {
	case CurveSoft:
		return math32.Sqrt(p)
	case CurveHard:
		return p * p
	case CurveS:
		return p * p * (3 - 2*p)
	default:
		return p
	}
}

// String returns the curve name.
func (c PressureCurve) String() string {
	if int(c) < len(curveNames) {
		return curveNames[c]
	}
	return fmt.Sprintf("PressureCurve(%d)", c)
}

// ParsePressureCurve returns the curve with the given name, ignoring case.
func ParsePressureCurve(name string) (PressureCurve, error) {
	for i, n := range curveNames {
		if strings.EqualFold(n, name) {
			return PressureCurve(i), nil
		}
	}
	return CurveLinear, fmt.Errorf("input: unknown pressure curve %q", name)
}
