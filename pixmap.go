package brush

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap is the raster a stroke is merged into: a row-major straight-alpha
// RGBA buffer with 8 bits per channel and a stride of width*4 bytes.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, not premultiplied
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * 4
}

// Data returns the raw pixel data (straight RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel stores a premultiplied pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, px Pixel) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = px.RGBA8()
}

// GetPixel returns the pixel at (x, y) in premultiplied form.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) Pixel {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return PixelFromRGBA8(p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3])
}

// Clear fills the entire pixmap with a color at the given alpha.
func (p *Pixmap) Clear(c RGB, alpha float32) {
	r, g, b, a := Premultiplied(c.Clamp(), clamp01(alpha)).RGBA8()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SubImage returns a copy of the region r as an image.NRGBA, e.g. the
// rectangle returned by EndStroke.
func (p *Pixmap) SubImage(r Rect) *image.NRGBA {
	return p.ToImage().SubImage(r.Image()).(*image.NRGBA)
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	dst := pm.nrgba()
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return pm
}

// Scale returns a copy of the pixmap resampled to width x height with a
// Catmull-Rom filter.
func (p *Pixmap) Scale(width, height int) *Pixmap {
	out := NewPixmap(width, height)
	dst := out.nrgba()
	draw.CatmullRom.Scale(dst, dst.Rect, p.ToImage(), p.Bounds(), draw.Src, nil)
	return out
}

// nrgba returns an image.NRGBA sharing the pixmap memory.
func (p *Pixmap) nrgba() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.Stride(),
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("brush: encoding %s: %w", path, err)
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
