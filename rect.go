package brush

import (
	"image"
	"math"
)

// Rect is an integer bounding box with exclusive Right and Bottom edges.
//
// The empty rectangle is represented explicitly by opposing sentinels
// (Left/Top at math.MaxInt, Right/Bottom at math.MinInt), so that Expand
// and Union treat it as an identity element without special cases.
// Any Rect with Left >= Right or Top >= Bottom is empty.
type Rect struct {
	Left, Top, Right, Bottom int
}

// NewRect returns the rectangle [left, right) x [top, bottom).
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// EmptyRect returns the canonical empty rectangle.
func EmptyRect() Rect {
	return Rect{
		Left:   math.MaxInt,
		Top:    math.MaxInt,
		Right:  math.MinInt,
		Bottom: math.MinInt,
	}
}

// IsEmpty reports whether r contains no pixels.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Width returns the horizontal extent of r, or 0 if r is empty.
func (r Rect) Width() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the vertical extent of r, or 0 if r is empty.
func (r Rect) Height() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Bottom - r.Top
}

// Expand returns r grown to cover the square of the given radius
// around (x, y): [x-radius, x+radius] inclusive.
func (r Rect) Expand(x, y, radius int) Rect {
	return Rect{
		Left:   min(r.Left, x-radius),
		Top:    min(r.Top, y-radius),
		Right:  max(r.Right, x+radius+1),
		Bottom: max(r.Bottom, y+radius+1),
	}
}

// Union returns the smallest rectangle containing r and o.
// The empty rectangle is the identity.
func (r Rect) Union(o Rect) Rect {
	if o.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return o
	}
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// ClampTo intersects r with the pixel range [0, width) x [0, height).
func (r Rect) ClampTo(width, height int) Rect {
	return Rect{
		Left:   max(r.Left, 0),
		Top:    max(r.Top, 0),
		Right:  min(r.Right, width),
		Bottom: min(r.Bottom, height),
	}
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Image converts r to an image.Rectangle. Empty rectangles map to
// image.Rectangle{}.
func (r Rect) Image() image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}
