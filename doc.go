// Package brush renders pen input into paint strokes using the flow and
// opacity model of professional image editors.
//
// # Overview
//
// A stroke passes through three stages:
//
//   - A [Stamper] resamples irregular input samples into evenly spaced
//     round dabs. Spacing is measured along the (spline-smoothed) path,
//     so dab density does not depend on the device sampling rate.
//   - A [StrokeBuffer] rasterizes the dabs of one stroke into an isolated
//     premultiplied float buffer. Overlapping dabs compound with the over
//     operator: this is flow.
//   - [StrokeBuffer.EndStroke] limits the accumulated alpha to the stroke
//     opacity and merges the buffer into the target raster with a
//     [BlendMode]. Opacity is therefore a ceiling, applied exactly once.
//
// # Quick Start
//
//	pm := brush.NewPixmap(512, 512)
//	s := brush.NewSession(pm,
//	    brush.WithColor(brush.Red),
//	    brush.WithOpacity(0.6),
//	)
//
//	for _, p := range samples { // []input.Point
//	    s.Feed(p)
//	}
//	dirty := s.End() // region to redraw
//
//	_ = pm.SavePNG("stroke.png")
//
// # Pixels
//
// [Pixel] is premultiplied float32 RGBA; any pixel with alpha below
// [AlphaEpsilon] is treated as transparent. [Pixmap] stores straight-alpha
// 8-bit RGBA with a stride of width*4, the layout [StrokeBuffer.EndStroke]
// writes into.
//
// # Concurrency
//
// The core is single-threaded and synchronous. Input devices deliver
// samples through the order-preserving queue of package input, which is
// the only point where goroutines meet.
package brush
