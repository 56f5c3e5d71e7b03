// Package preset loads brush presets from TOML files.
//
// A preset file holds a library of brushes:
//
//	[[brush]]
//	name = "Soft Round"
//	diameter = 40.0
//	hardness = 0.5
//	spacing = 0.1
//	flow = 0.3
//	opacity = 0.8
//	blend_mode = "multiply"
//	color = "#336699"
//
//	[brush.pressure]
//	size = true
//	alpha = false
//	min_size_ratio = 0.2
//	curve = "soft"
//
// Keys that are absent take the descriptor defaults (see Default), so a
// partial preset is always usable.
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/brush"
	"github.com/gogpu/brush/input"
)

// Descriptor defaults for keys missing from a preset.
const (
	DefaultDiameter      = 30
	DefaultHardness      = 1
	DefaultSpacing       = 0.25
	DefaultAngle         = 0
	DefaultRoundness     = 1
	DefaultSizeJitter    = 0
	DefaultSizeMinimum   = 0
	DefaultOpacityJitter = 0
	DefaultScatter       = 0
	DefaultScatterCount  = 1
)

var (
	// ErrInvalid is wrapped by errors for out-of-range preset values.
	ErrInvalid = errors.New("preset: invalid value")
	// ErrNotFound is returned by Library.Find for an unknown name.
	ErrNotFound = errors.New("preset: not found")
)

// Preset is a fully resolved brush description.
//
// Angle, Roundness, the jitters and the scatter settings are carried for
// descriptor round-tripping; the round-dab engine paints circular,
// unjittered dabs.
type Preset struct {
	Name      string
	Diameter  float32
	Hardness  float32
	Spacing   float32
	Angle     float32
	Roundness float32
	Flow      float32
	Opacity   float32
	BlendMode brush.BlendMode
	Color     brush.RGB

	PressureSize  bool
	PressureAlpha bool
	MinSizeRatio  float32
	MinAlphaRatio float32
	Curve         input.PressureCurve

	SizeJitter    float32
	OpacityJitter float32
	Scatter       float32
	ScatterCount  uint32
}

// Default returns the preset used for an empty descriptor.
func Default() Preset {
	return Preset{
		Name:          "Default",
		Diameter:      DefaultDiameter,
		Hardness:      DefaultHardness,
		Spacing:       DefaultSpacing,
		Angle:         DefaultAngle,
		Roundness:     DefaultRoundness,
		Flow:          1,
		Opacity:       1,
		BlendMode:     brush.BlendNormal,
		Color:         brush.Black,
		PressureSize:  true,
		PressureAlpha: true,
		MinSizeRatio:  DefaultSizeMinimum,
		Curve:         input.CurveLinear,
		SizeJitter:    DefaultSizeJitter,
		OpacityJitter: DefaultOpacityJitter,
		Scatter:       DefaultScatter,
		ScatterCount:  DefaultScatterCount,
	}
}

// StamperConfig converts p to the dab emission parameters.
func (p Preset) StamperConfig() brush.StamperConfig {
	return brush.StamperConfig{
		Size:          p.Diameter,
		Spacing:       p.Spacing,
		Flow:          p.Flow,
		Hardness:      p.Hardness,
		PressureSize:  p.PressureSize,
		PressureAlpha: p.PressureAlpha,
		MinSizeRatio:  p.MinSizeRatio,
		MinAlphaRatio: p.MinAlphaRatio,
	}
}

// SessionOptions returns the session options that apply p.
func (p Preset) SessionOptions() []brush.SessionOption {
	return []brush.SessionOption{
		brush.WithStamperConfig(p.StamperConfig()),
		brush.WithColor(p.Color),
		brush.WithOpacity(p.Opacity),
		brush.WithBlendMode(p.BlendMode),
	}
}

// Library is an ordered set of presets.
type Library []Preset

// Find returns the preset with the given name, ignoring case.
func (l Library) Find(name string) (Preset, error) {
	for _, p := range l {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Load decodes a preset library. Unknown keys are rejected.
func Load(r io.Reader) (Library, error) {
	var f libraryFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("preset: decoding: %w", err)
	}

	lib := make(Library, 0, len(f.Brushes))
	for i, d := range f.Brushes {
		p, err := d.resolve()
		if err != nil {
			return nil, fmt.Errorf("preset: brush %d: %w", i, err)
		}
		lib = append(lib, p)
	}

	brush.Logger().Debug("preset: library loaded", "brushes", len(lib))
	return lib, nil
}

// LoadFile decodes the preset library stored at path.
func LoadFile(path string) (Library, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	lib, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}
