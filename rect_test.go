package brush

import (
	"image"
	"testing"
)

func TestEmptyRect(t *testing.T) {
	r := EmptyRect()
	if !r.IsEmpty() {
		t.Fatal("EmptyRect().IsEmpty() = false, want true")
	}
	if r.Width() != 0 || r.Height() != 0 {
		t.Errorf("EmptyRect() size = %dx%d, want 0x0", r.Width(), r.Height())
	}
	if r.Contains(0, 0) {
		t.Error("EmptyRect().Contains(0, 0) = true, want false")
	}
	if got := r.Image(); got != (image.Rectangle{}) {
		t.Errorf("EmptyRect().Image() = %v, want zero rectangle", got)
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"unit", NewRect(0, 0, 1, 1), false},
		{"zero width", NewRect(5, 0, 5, 10), true},
		{"zero height", NewRect(0, 5, 10, 5), true},
		{"inverted", NewRect(10, 10, 0, 0), true},
		{"negative origin", NewRect(-10, -10, -5, -5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("%v.IsEmpty() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	tests := []struct {
		name       string
		r          Rect
		x, y, rad  int
		want       Rect
		wantW      int
		wantHeight int
	}{
		{"from empty", EmptyRect(), 50, 50, 10, NewRect(40, 40, 61, 61), 21, 21},
		{"zero radius", EmptyRect(), 3, 4, 0, NewRect(3, 4, 4, 5), 1, 1},
		{"grows existing", NewRect(40, 40, 61, 61), 70, 20, 5, NewRect(40, 15, 76, 61), 36, 46},
		{"inside existing", NewRect(0, 0, 100, 100), 50, 50, 10, NewRect(0, 0, 100, 100), 100, 100},
		{"negative coordinates", EmptyRect(), -5, -5, 2, NewRect(-7, -7, -2, -2), 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Expand(tt.x, tt.y, tt.rad)
			if got != tt.want {
				t.Errorf("Expand(%d, %d, %d) = %+v, want %+v", tt.x, tt.y, tt.rad, got, tt.want)
			}
			if got.Width() != tt.wantW || got.Height() != tt.wantHeight {
				t.Errorf("size = %dx%d, want %dx%d", got.Width(), got.Height(), tt.wantW, tt.wantHeight)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, -5, 20, 8)
	c := NewRect(-3, 2, 1, 30)

	t.Run("identity", func(t *testing.T) {
		for _, r := range []Rect{a, b, c} {
			if got := r.Union(EmptyRect()); got != r {
				t.Errorf("%v ∪ empty = %v", r, got)
			}
			if got := EmptyRect().Union(r); got != r {
				t.Errorf("empty ∪ %v = %v", r, got)
			}
		}
		if got := EmptyRect().Union(EmptyRect()); !got.IsEmpty() {
			t.Errorf("empty ∪ empty = %v, want empty", got)
		}
	})

	t.Run("commutative", func(t *testing.T) {
		if a.Union(b) != b.Union(a) {
			t.Errorf("a ∪ b = %v, b ∪ a = %v", a.Union(b), b.Union(a))
		}
	})

	t.Run("associative", func(t *testing.T) {
		if l, r := a.Union(b).Union(c), a.Union(b.Union(c)); l != r {
			t.Errorf("(a ∪ b) ∪ c = %v, a ∪ (b ∪ c) = %v", l, r)
		}
	})

	t.Run("bounds", func(t *testing.T) {
		want := NewRect(0, -5, 20, 10)
		if got := a.Union(b); got != want {
			t.Errorf("a ∪ b = %v, want %v", got, want)
		}
	})

	t.Run("non-canonical empty is identity", func(t *testing.T) {
		if got := a.Union(NewRect(100, 100, 100, 200)); got != a {
			t.Errorf("a ∪ degenerate = %v, want %v", got, a)
		}
	})
}

func TestRectClampTo(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"inside", NewRect(10, 10, 20, 20), NewRect(10, 10, 20, 20)},
		{"overflows all edges", NewRect(-10, -10, 200, 200), NewRect(0, 0, 100, 50)},
		{"partially outside", NewRect(90, 40, 110, 60), NewRect(90, 40, 100, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.ClampTo(100, 50); got != tt.want {
				t.Errorf("ClampTo(100, 50) = %v, want %v", got, tt.want)
			}
		})
	}

	if got := NewRect(200, 200, 300, 300).ClampTo(100, 50); !got.IsEmpty() {
		t.Errorf("fully outside ClampTo = %v, want empty", got)
	}
	if got := EmptyRect().ClampTo(100, 50); !got.IsEmpty() {
		t.Errorf("empty ClampTo = %v, want empty", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(40, 40, 61, 61)
	for _, p := range []struct {
		x, y int
		want bool
	}{
		{40, 40, true},
		{60, 60, true},
		{61, 60, false},
		{60, 61, false},
		{39, 50, false},
	} {
		if got := r.Contains(p.x, p.y); got != p.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", p.x, p.y, got, p.want)
		}
	}
}
