package preset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/brush"
	"github.com/gogpu/brush/input"
)

const library = `
[[brush]]
name = "Soft Round"
diameter = 40.0
hardness = 0.5
spacing = 0.1
flow = 0.3
opacity = 0.8
blend_mode = "multiply"
color = "#ff0000"
scatter_count = 3

[brush.pressure]
size = true
alpha = false
min_size_ratio = 0.2
curve = "soft"

[[brush]]
name = "Minimal"
`

func TestLoad(t *testing.T) {
	lib, err := Load(strings.NewReader(library))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(lib) != 2 {
		t.Fatalf("Load() returned %d presets, want 2", len(lib))
	}

	p := lib[0]
	want := Default()
	want.Name = "Soft Round"
	want.Diameter = 40
	want.Hardness = 0.5
	want.Spacing = 0.1
	want.Flow = 0.3
	want.Opacity = 0.8
	want.BlendMode = brush.BlendMultiply
	want.Color = brush.Red
	want.ScatterCount = 3
	want.PressureSize = true
	want.PressureAlpha = false
	want.MinSizeRatio = 0.2
	want.Curve = input.CurveSoft
	if p != want {
		t.Errorf("lib[0] = %+v\nwant      %+v", p, want)
	}

	minimal := Default()
	minimal.Name = "Minimal"
	if lib[1] != minimal {
		t.Errorf("lib[1] = %+v, want defaults named Minimal", lib[1])
	}
}

func TestLoadEmpty(t *testing.T) {
	lib, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if len(lib) != 0 {
		t.Errorf("Load(\"\") = %d presets, want 0", len(lib))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		invalid bool
	}{
		{"unknown key", "[[brush]]\nwetness = 0.5\n", false},
		{"syntax", "[[brush]\n", false},
		{"wrong type", "[[brush]]\ndiameter = \"big\"\n", false},
		{"zero diameter", "[[brush]]\ndiameter = 0.0\n", true},
		{"negative spacing", "[[brush]]\nspacing = -0.5\n", true},
		{"flow above one", "[[brush]]\nflow = 1.5\n", true},
		{"hardness below zero", "[[brush]]\nhardness = -0.1\n", true},
		{"min ratio above one", "[[brush]]\n[brush.pressure]\nmin_alpha_ratio = 2.0\n", true},
		{"unknown blend mode", "[[brush]]\nblend_mode = \"dissolve\"\n", true},
		{"bad color", "[[brush]]\ncolor = \"#12345\"\n", true},
		{"unknown curve", "[[brush]]\n[brush.pressure]\ncurve = \"cubic\"\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalid) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestLibraryFind(t *testing.T) {
	lib := Library{Default(), {Name: "Ink"}}

	p, err := lib.Find("ink")
	if err != nil || p.Name != "Ink" {
		t.Errorf("Find(\"ink\") = %+v, %v", p, err)
	}
	if _, err := lib.Find("Charcoal"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(\"Charcoal\") error = %v, want ErrNotFound", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brushes.toml")
	if err := os.WriteFile(path, []byte(library), 0o600); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(lib) != 2 {
		t.Errorf("LoadFile() returned %d presets, want 2", len(lib))
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[[brush]]\nflow = 9.0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("LoadFile(bad) error = %v, want it to name the file", err)
	}
}

func TestPresetStamperConfig(t *testing.T) {
	p := Default()
	p.Diameter = 12
	p.Flow = 0.4
	p.MinAlphaRatio = 0.1

	cfg := p.StamperConfig()
	want := brush.StamperConfig{
		Size:          12,
		Spacing:       DefaultSpacing,
		Flow:          0.4,
		Hardness:      DefaultHardness,
		PressureSize:  true,
		PressureAlpha: true,
		MinAlphaRatio: 0.1,
	}
	if cfg != want {
		t.Errorf("StamperConfig() = %+v, want %+v", cfg, want)
	}
}

func TestPresetSessionOptions(t *testing.T) {
	p := Default()
	p.Color = brush.Blue
	p.Diameter = 6

	pm := brush.NewPixmap(20, 20)
	s := brush.NewSession(pm, p.SessionOptions()...)
	s.Feed(input.NewPoint(10, 10, 1))
	r := s.End()

	if want := brush.NewRect(7, 7, 14, 14); r != want {
		t.Errorf("End() = %+v, want %+v", r, want)
	}
	if got := s.Stamper().Config().Size; got != 6 {
		t.Errorf("stamper size = %v, want 6", got)
	}
	if px := pm.GetPixel(10, 10); px != (brush.Pixel{B: 1, A: 1}) {
		t.Errorf("center = %+v, want opaque blue", px)
	}
}
