package brush

import (
	"github.com/chewxy/math32"
)

// minDabRadius is the smallest radius a dab is rasterized with.
const minDabRadius = 0.5

// StrokeBuffer isolates the paint of a single stroke.
//
// Dabs are composited into the buffer with the over operator, so flow
// compounds where dabs overlap. The stroke opacity is applied once, as a
// ceiling on the accumulated alpha, when EndStroke merges the buffer into
// the target raster. Compositing dabs straight onto the target would make
// flow and opacity indistinguishable.
//
// Pixels are stored premultiplied. A StrokeBuffer is not safe for
// concurrent use.
type StrokeBuffer struct {
	width  int
	height int
	data   []Pixel
	dirty  Rect
	active bool
}

// NewStrokeBuffer creates a transparent buffer of the given size.
func NewStrokeBuffer(width, height int) *StrokeBuffer {
	width, height = max(width, 0), max(height, 0)
	return &StrokeBuffer{
		width:  width,
		height: height,
		data:   make([]Pixel, width*height),
		dirty:  EmptyRect(),
	}
}

// Resize reallocates the buffer and clears its content.
// Resizing during a stroke aborts the stroke: its paint is discarded and
// a later EndStroke is a no-op.
func (b *StrokeBuffer) Resize(width, height int) {
	if b.active {
		Logger().Warn("brush: stroke buffer resized during a stroke, aborting stroke",
			"from_w", b.width, "from_h", b.height, "to_w", width, "to_h", height)
	}

	width, height = max(width, 0), max(height, 0)
	b.width = width
	b.height = height
	if n := width * height; cap(b.data) >= n {
		b.data = b.data[:n]
		clear(b.data)
	} else {
		b.data = make([]Pixel, n)
	}
	b.dirty = EmptyRect()
	b.active = false
}

// BeginStroke clears the buffer and marks a stroke as active.
func (b *StrokeBuffer) BeginStroke() {
	b.Clear()
	b.active = true
}

// Clear makes every pixel transparent and resets the dirty rectangle.
func (b *StrokeBuffer) Clear() {
	clear(b.data)
	b.dirty = EmptyRect()
}

// IsActive reports whether a stroke is in progress.
func (b *StrokeBuffer) IsActive() bool {
	return b.active
}

// Dimensions returns the buffer size.
func (b *StrokeBuffer) Dimensions() (width, height int) {
	return b.width, b.height
}

// DirtyRect returns the region touched since the last clear. It is not
// clamped to the buffer bounds.
func (b *StrokeBuffer) DirtyRect() Rect {
	return b.dirty
}

func (b *StrokeBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Pixel returns the premultiplied pixel at (x, y).
// Out-of-bounds coordinates return Transparent.
func (b *StrokeBuffer) Pixel(x, y int) Pixel {
	if !b.inBounds(x, y) {
		return Transparent
	}
	return b.data[y*b.width+x]
}

// SetPixel replaces the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (b *StrokeBuffer) SetPixel(x, y int, p Pixel) {
	if !b.inBounds(x, y) {
		return
	}
	b.data[y*b.width+x] = p
}

// BlendPixel composites src over the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (b *StrokeBuffer) BlendPixel(x, y int, src Pixel) {
	if !b.inBounds(x, y) {
		return
	}
	i := y*b.width + x
	b.data[i] = src.Over(b.data[i])
}

// StampDab rasterizes a round dab centered at (cx, cy).
//
// Pixels within radius*hardness receive the full alpha; beyond that the
// alpha falls off linearly to zero at the radius. Pixel centers are
// sampled at half-integer coordinates. Contributions below AlphaEpsilon
// are skipped. The dirty rectangle grows by the dab's bounding square
// whether or not any pixel receives paint. Color, alpha and hardness are
// clamped to [0, 1].
func (b *StrokeBuffer) StampDab(cx, cy, radius float32, color RGB, alpha, hardness float32) {
	r := max(radius, minDabRadius)
	color = color.Clamp()
	alpha = clamp01(alpha)
	hardness = clamp01(hardness)

	b.dirty = b.dirty.Expand(int(cx), int(cy), int(math32.Ceil(r)))

	left := int(math32.Floor(cx - r))
	top := int(math32.Floor(cy - r))
	right := int(math32.Ceil(cx + r))
	bottom := int(math32.Ceil(cy + r))

	// Only iterate pixels that exist.
	left, top = max(left, 0), max(top, 0)
	right, bottom = min(right, b.width-1), min(bottom, b.height-1)

	inner := r * hardness
	fade := r - inner

	for py := top; py <= bottom; py++ {
		dy := float32(py) + 0.5 - cy
		row := b.data[py*b.width : (py+1)*b.width]
		for px := left; px <= right; px++ {
			dx := float32(px) + 0.5 - cx
			dist := math32.Sqrt(dx*dx + dy*dy)
			if dist > r {
				continue
			}

			a := alpha
			if dist > inner && fade > segmentEpsilon {
				a = alpha * (1 - (dist-inner)/fade)
			}
			if a < AlphaEpsilon {
				continue
			}

			row[px] = Premultiplied(color, a).Over(row[px])
		}
	}
}

// Stamp rasterizes a dab from a Stamper with the given color and hardness.
func (b *StrokeBuffer) Stamp(d Dab, color RGB, hardness float32) {
	b.StampDab(d.X, d.Y, d.Radius(), color, d.Alpha, hardness)
}

// EndStroke merges the stroke into target with the Normal blend mode and
// returns the region that was written. See EndStrokeMode.
func (b *StrokeBuffer) EndStroke(target []byte, opacity float32) Rect {
	return b.EndStrokeMode(target, opacity, BlendNormal)
}

// EndStrokeMode merges the stroke into target and ends it.
//
// target is a row-major straight-alpha 8-bit RGBA buffer with the same
// dimensions as the stroke buffer (stride width*4). opacity is clamped to
// [0, 1]. Every stroke pixel in the dirty rectangle is first limited to
// alpha <= opacity, then blended
// onto the target pixel with mode. Pixels whose target offset lies
// beyond len(target) are skipped.
//
// If no stroke is active, EndStrokeMode does nothing and returns the
// empty rectangle. Otherwise it returns the dirty rectangle clamped to
// the buffer bounds, for downstream invalidation.
func (b *StrokeBuffer) EndStrokeMode(target []byte, opacity float32, mode BlendMode) Rect {
	if !b.active {
		return EmptyRect()
	}
	b.active = false
	opacity = clamp01(opacity)

	rect := b.dirty.ClampTo(b.width, b.height)
	if rect.IsEmpty() {
		return rect
	}

	written := 0
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			idx := y*b.width + x
			src := b.data[idx]
			if src.A < AlphaEpsilon {
				continue
			}

			off := idx * 4
			if off+3 >= len(target) {
				continue
			}
			px := target[off : off+4 : off+4]

			src = src.WithAlpha(min(src.A, opacity))
			dst := PixelFromRGBA8(px[0], px[1], px[2], px[3])
			px[0], px[1], px[2], px[3] = mode.Apply(src, dst).RGBA8()
			written++
		}
	}

	Logger().Debug("brush: stroke merged",
		"rect", rect.Image(), "pixels", written, "opacity", opacity, "mode", mode)
	return rect
}
