// Package tiles tracks which tiles of a raster need to be refreshed on
// screen after strokes have been merged into it.
package tiles

import (
	"image"
	"math/bits"
	"sync/atomic"
)

const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	TileHeight = 64
)

// DirtyRegion tracks which tiles need redrawing using an atomic bitmap.
// The stroke consumer marks merged regions while a display goroutine
// collects them, so all methods are safe for concurrent use without
// external synchronization.
//
// The bitmap uses one bit per tile, packed into uint64 words (64 tiles per word).
type DirtyRegion struct {
	// words is the atomic bitmap where each bit represents a tile's dirty state.
	// Bit index = ty * tilesX + tx
	words []atomic.Uint64

	width, height  int
	tilesX, tilesY int
}

// NewDirtyRegion creates a tracker for a raster of the given pixel size.
// All tiles start clean. Returns nil if either dimension is not positive.
func NewDirtyRegion(width, height int) *DirtyRegion {
	if width <= 0 || height <= 0 {
		return nil
	}

	tilesX := (width + TileWidth - 1) / TileWidth
	tilesY := (height + TileHeight - 1) / TileHeight
	numWords := (tilesX*tilesY + 63) / 64

	return &DirtyRegion{
		words:  make([]atomic.Uint64, numWords),
		width:  width,
		height: height,
		tilesX: tilesX,
		tilesY: tilesY,
	}
}

// mark marks a single tile as dirty.
func (d *DirtyRegion) mark(tx, ty int) {
	idx := ty*d.tilesX + tx
	d.words[idx/64].Or(1 << (idx & 63))
}

// MarkRect marks all tiles that intersect the pixel rectangle r.
// Parts of r outside the raster are ignored.
func (d *DirtyRegion) MarkRect(r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, d.width, d.height))
	if r.Empty() {
		return
	}

	tx1, ty1 := r.Min.X/TileWidth, r.Min.Y/TileHeight
	tx2, ty2 := (r.Max.X-1)/TileWidth, (r.Max.Y-1)/TileHeight

	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			d.mark(tx, ty)
		}
	}
}

// MarkAll marks every tile dirty.
func (d *DirtyRegion) MarkAll() {
	d.MarkRect(image.Rect(0, 0, d.width, d.height))
}

// IsEmpty returns true if no tiles are marked as dirty.
func (d *DirtyRegion) IsEmpty() bool {
	for i := range d.words {
		if d.words[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of tiles marked as dirty.
func (d *DirtyRegion) Count() int {
	count := 0
	for i := range d.words {
		count += bits.OnesCount64(d.words[i].Load())
	}
	return count
}

// GetAndClear atomically collects the dirty tiles, clears them and returns
// their pixel rectangles clipped to the raster, in row-major order.
func (d *DirtyRegion) GetAndClear() []image.Rectangle {
	var dirty []image.Rectangle
	bounds := image.Rect(0, 0, d.width, d.height)

	for wordIdx := range d.words {
		word := d.words[wordIdx].Swap(0)
		for word != 0 {
			bitIdx := bits.TrailingZeros64(word)
			tileIdx := wordIdx*64 + bitIdx
			tx, ty := tileIdx%d.tilesX, tileIdx/d.tilesX

			r := image.Rect(tx*TileWidth, ty*TileHeight, (tx+1)*TileWidth, (ty+1)*TileHeight)
			dirty = append(dirty, r.Intersect(bounds))

			word &^= 1 << bitIdx
		}
	}
	return dirty
}

// TilesX returns the number of tiles horizontally.
func (d *DirtyRegion) TilesX() int {
	return d.tilesX
}

// TilesY returns the number of tiles vertically.
func (d *DirtyRegion) TilesY() int {
	return d.tilesY
}
