// Package style defines the immutable style descriptor shared by the
// analysis and synthesis pipelines.
//
// A Descriptor is the complete numeric summary of one handwriting sample.
// It is produced once by analysis, never mutated, and fully determines
// synthesis behavior together with the RNG seed: there is no hidden state.
package style

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel ink color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Distance returns the Euclidean RGB distance to o on the 0-255 scale.
func (c RGB) Distance(o RGB) float64 {
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(o.R) / 255, G: float64(o.G) / 255, B: float64(o.B) / 255}
	return a.DistanceRgb(b) * 255
}

// Descriptor is the extracted style of one handwriting sample.
//
// Every field is finite and within its documented range after Clamp; the
// analysis pipeline always returns a clamped descriptor. Distances are in
// pixels of the analyzed image, Slant is in radians, Pressure is a unitless
// ratio in [0,1], WidthVariation a relative deviation in [0,0.3].
type Descriptor struct {
	InkColor          RGB     `json:"ink_color"`
	StrokeWidth       float64 `json:"stroke_width"`
	Slant             float64 `json:"slant"`
	CharacterHeight   float64 `json:"character_height"`
	CharacterWidth    float64 `json:"character_width"`
	SpaceWidth        float64 `json:"space_width"`
	LineSpacing       float64 `json:"line_spacing"`
	BaselineVariation float64 `json:"baseline_variation"`
	Jitter            float64 `json:"jitter"`
	Pressure          float64 `json:"pressure"`
	WidthVariation    float64 `json:"width_variation"`
}

// Default is the fixed fallback descriptor used when no valid sample is
// available (for example when upstream image decoding failed and the caller
// chose to proceed anyway).
func Default() Descriptor {
	return Descriptor{
		InkColor:          RGB{0, 0, 0},
		StrokeWidth:       2,
		Slant:             0,
		CharacterHeight:   40,
		CharacterWidth:    25,
		SpaceWidth:        15,
		LineSpacing:       60,
		BaselineVariation: 2,
		Jitter:            0.5,
		Pressure:          0.8,
		WidthVariation:    0.1,
	}
}

// Clamp forces every field into its documented range, replacing non-finite
// values with the Default() value for that field. It returns the receiver
// by value so assembly can end with a single clamping pass.
func (d Descriptor) Clamp() Descriptor {
	def := Default()
	d.StrokeWidth = clampFinite(d.StrokeWidth, 0.1, 1e4, def.StrokeWidth)
	d.Slant = clampFinite(d.Slant, -math.Pi/2, math.Pi/2, def.Slant)
	d.CharacterHeight = clampFinite(d.CharacterHeight, 0.1, 1e4, def.CharacterHeight)
	d.CharacterWidth = clampFinite(d.CharacterWidth, 0.1, 1e4, def.CharacterWidth)
	d.SpaceWidth = clampFinite(d.SpaceWidth, 0.1, 1e4, def.SpaceWidth)
	d.LineSpacing = clampFinite(d.LineSpacing, 0.1, 1e4, def.LineSpacing)
	d.BaselineVariation = clampFinite(d.BaselineVariation, 0, 1e4, def.BaselineVariation)
	d.Jitter = clampFinite(d.Jitter, 0, 1e4, def.Jitter)
	d.Pressure = clampFinite(d.Pressure, 0, 1, def.Pressure)
	d.WidthVariation = clampFinite(d.WidthVariation, 0, 0.3, def.WidthVariation)
	return d
}

func clampFinite(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
