package brush

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func pixelApprox(p, q Pixel, tol float32) bool {
	return approxEqual(p.R, q.R, tol) && approxEqual(p.G, q.G, tol) &&
		approxEqual(p.B, q.B, tol) && approxEqual(p.A, q.A, tol)
}

func TestPremultiplied(t *testing.T) {
	got := Premultiplied(RGB{1, 0.5, 0.25}, 0.5)
	want := Pixel{R: 0.5, G: 0.25, B: 0.125, A: 0.5}
	if got != want {
		t.Errorf("Premultiplied() = %+v, want %+v", got, want)
	}
}

func TestPixelRGBA8(t *testing.T) {
	tests := []struct {
		name           string
		p              Pixel
		r, g, b, alpha uint8
	}{
		{"opaque red", Pixel{1, 0, 0, 1}, 255, 0, 0, 255},
		{"half red", Pixel{0.5, 0, 0, 0.5}, 255, 0, 0, 127},
		{"below epsilon", Pixel{0.0005, 0.0005, 0, 0.0005}, 0, 0, 0, 0},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"truncates", Pixel{0.499, 0.499, 0.499, 1}, 127, 127, 127, 255},
		{"over range clamps", Pixel{1.2, 0, 0, 1}, 255, 0, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.p.RGBA8()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.alpha {
				t.Errorf("RGBA8() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.alpha)
			}
		})
	}
}

func TestPixelFromRGBA8(t *testing.T) {
	got := PixelFromRGBA8(255, 0, 0, 255)
	if got != (Pixel{1, 0, 0, 1}) {
		t.Errorf("PixelFromRGBA8(opaque red) = %+v", got)
	}

	got = PixelFromRGBA8(255, 255, 255, 0)
	if got != Transparent {
		t.Errorf("PixelFromRGBA8(alpha 0) = %+v, want transparent", got)
	}

	got = PixelFromRGBA8(200, 100, 50, 128)
	a := float32(128) / 255
	want := Pixel{R: 200.0 / 255 * a, G: 100.0 / 255 * a, B: 50.0 / 255 * a, A: a}
	if !pixelApprox(got, want, 1e-6) {
		t.Errorf("PixelFromRGBA8(200, 100, 50, 128) = %+v, want %+v", got, want)
	}
}

func TestPixelWithAlpha(t *testing.T) {
	p := Premultiplied(RGB{0.8, 0.4, 0.2}, 0.9)

	got := p.WithAlpha(0.3)
	if !approxEqual(got.A, 0.3, 1e-6) {
		t.Errorf("WithAlpha(0.3).A = %v", got.A)
	}
	if s := got.Straight(); !approxEqual(s.R, 0.8, 1e-5) || !approxEqual(s.G, 0.4, 1e-5) || !approxEqual(s.B, 0.2, 1e-5) {
		t.Errorf("WithAlpha changed the straight color: %+v", s)
	}

	if got := Transparent.WithAlpha(1); got != Transparent {
		t.Errorf("Transparent.WithAlpha(1) = %+v, want transparent", got)
	}
}

func TestPixelStraight(t *testing.T) {
	if got := Transparent.Straight(); got != (RGB{}) {
		t.Errorf("Transparent.Straight() = %+v, want black", got)
	}
	got := Pixel{0.25, 0.5, 0, 0.5}.Straight()
	if got != (RGB{0.5, 1, 0}) {
		t.Errorf("Straight() = %+v, want {0.5 1 0}", got)
	}
}

func TestPixelIsTransparent(t *testing.T) {
	if !Transparent.IsTransparent() {
		t.Error("Transparent.IsTransparent() = false")
	}
	if !(Pixel{A: AlphaEpsilon / 2}).IsTransparent() {
		t.Error("pixel below AlphaEpsilon should be transparent")
	}
	if (Pixel{A: AlphaEpsilon}).IsTransparent() {
		t.Error("pixel at AlphaEpsilon should not be transparent")
	}
}

func TestPixelOver(t *testing.T) {
	src := Premultiplied(Red, 0.5)
	dst := Premultiplied(Green, 1)
	got := src.Over(dst)
	want := Pixel{R: 0.5, G: 0.5, B: 0, A: 1}
	if !pixelApprox(got, want, 1e-6) {
		t.Errorf("Over() = %+v, want %+v", got, want)
	}
}
