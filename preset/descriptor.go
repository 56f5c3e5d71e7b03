package preset

import (
	"fmt"

	"github.com/gogpu/brush"
	"github.com/gogpu/brush/input"
)

// libraryFile is the TOML layout of a preset file.
type libraryFile struct {
	Brushes []descriptor `toml:"brush"`
}

// descriptor mirrors Preset with optional fields, so that missing keys
// can be told apart from zero values.
type descriptor struct {
	Name      *string  `toml:"name"`
	Diameter  *float32 `toml:"diameter"`
	Hardness  *float32 `toml:"hardness"`
	Spacing   *float32 `toml:"spacing"`
	Angle     *float32 `toml:"angle"`
	Roundness *float32 `toml:"roundness"`
	Flow      *float32 `toml:"flow"`
	Opacity   *float32 `toml:"opacity"`
	BlendMode *string  `toml:"blend_mode"`
	Color     *string  `toml:"color"`

	Pressure *pressureDescriptor `toml:"pressure"`

	SizeJitter    *float32 `toml:"size_jitter"`
	OpacityJitter *float32 `toml:"opacity_jitter"`
	Scatter       *float32 `toml:"scatter"`
	ScatterCount  *uint32  `toml:"scatter_count"`
}

type pressureDescriptor struct {
	Size          *bool    `toml:"size"`
	Alpha         *bool    `toml:"alpha"`
	MinSizeRatio  *float32 `toml:"min_size_ratio"`
	MinAlphaRatio *float32 `toml:"min_alpha_ratio"`
	Curve         *string  `toml:"curve"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// resolve substitutes defaults for missing keys and validates ranges.
func (d *descriptor) resolve() (Preset, error) {
	p := Default()

	set(&p.Name, d.Name)
	set(&p.Diameter, d.Diameter)
	set(&p.Hardness, d.Hardness)
	set(&p.Spacing, d.Spacing)
	set(&p.Angle, d.Angle)
	set(&p.Roundness, d.Roundness)
	set(&p.Flow, d.Flow)
	set(&p.Opacity, d.Opacity)
	set(&p.SizeJitter, d.SizeJitter)
	set(&p.OpacityJitter, d.OpacityJitter)
	set(&p.Scatter, d.Scatter)
	set(&p.ScatterCount, d.ScatterCount)

	if d.BlendMode != nil {
		m, err := brush.ParseBlendMode(*d.BlendMode)
		if err != nil {
			return Preset{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		p.BlendMode = m
	}
	if d.Color != nil {
		c, err := brush.ParseHex(*d.Color)
		if err != nil {
			return Preset{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		p.Color = c
	}

	if pd := d.Pressure; pd != nil {
		set(&p.PressureSize, pd.Size)
		set(&p.PressureAlpha, pd.Alpha)
		set(&p.MinSizeRatio, pd.MinSizeRatio)
		set(&p.MinAlphaRatio, pd.MinAlphaRatio)
		if pd.Curve != nil {
			c, err := input.ParsePressureCurve(*pd.Curve)
			if err != nil {
				return Preset{}, fmt.Errorf("%w: %w", ErrInvalid, err)
			}
			p.Curve = c
		}
	}

	return p, p.validate()
}

func (p *Preset) validate() error {
	if p.Diameter <= 0 {
		return fmt.Errorf("%w: diameter %v must be positive", ErrInvalid, p.Diameter)
	}
	if p.Spacing <= 0 {
		return fmt.Errorf("%w: spacing %v must be positive", ErrInvalid, p.Spacing)
	}
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"hardness", p.Hardness},
		{"flow", p.Flow},
		{"opacity", p.Opacity},
		{"roundness", p.Roundness},
		{"min_size_ratio", p.MinSizeRatio},
		{"min_alpha_ratio", p.MinAlphaRatio},
	} {
		if f.v < 0 || f.v > 1 {
			return fmt.Errorf("%w: %s %v outside [0, 1]", ErrInvalid, f.name, f.v)
		}
	}
	return nil
}
