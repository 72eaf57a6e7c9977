package synth

import (
	"math"
	"math/rand"

	"honnef.co/go/curve"

	"github.com/scrawlab/scrawl/internal/config"
	"github.com/scrawlab/scrawl/internal/style"
)

// Model draws the per-glyph stochastic transforms that keep repeated
// characters from rendering mechanically identical.
//
// All draws come from the single RNG handed to NewModel, in a fixed order
// per glyph (rotation, scale, vertical offset, width multiplier, then path
// jitter), so a seeded run is fully reproducible.
type Model struct {
	desc style.Descriptor
	opts config.Options
	rng  *rand.Rand
}

// GlyphVariation is one glyph instance's drawn transform.
type GlyphVariation struct {
	Rotation    float64 // radians
	Scale       float64 // uniform scale factor
	VOffset     float64 // vertical baseline offset, pixels
	StrokeWidth float64 // resolved stroke width, pixels
}

// NewModel builds a variation model over desc using the given RNG.
func NewModel(desc style.Descriptor, opts config.Options, rng *rand.Rand) *Model {
	return &Model{desc: desc, opts: opts, rng: rng}
}

// Next draws the transform for the next glyph instance.
//
// Rotation is uniform in ±slant (Basic) or ±2·slant (Enhanced); scale is
// uniform in [opts.ScaleMin, opts.ScaleMax]; the vertical offset is uniform
// in ±baselineVariation·1.5/2; the stroke width is the descriptor width
// times a uniform multiplier in [opts.WidthMulMin, opts.WidthMulMax].
func (m *Model) Next() GlyphVariation {
	band := math.Abs(m.desc.Slant)
	if m.opts.Fidelity == config.Enhanced {
		band *= 2
	}
	offsetBand := m.desc.BaselineVariation * 1.5 / 2
	return GlyphVariation{
		Rotation:    m.uniform(-band, band),
		Scale:       m.uniform(m.opts.ScaleMin, m.opts.ScaleMax),
		VOffset:     m.uniform(-offsetBand, offsetBand),
		StrokeWidth: m.desc.StrokeWidth * m.uniform(m.opts.WidthMulMin, m.opts.WidthMulMax),
	}
}

// SpaceFactor draws the word-gap multiplier in [0.8, 1.2].
func (m *Model) SpaceFactor() float64 {
	return m.uniform(0.8, 1.2)
}

// AdvanceFactor draws the per-character advance multiplier
// in 1 ± widthVariation/2.
func (m *Model) AdvanceFactor() float64 {
	half := m.desc.WidthVariation / 2
	return m.uniform(1-half, 1+half)
}

// LineFactor draws the line-advance multiplier in [1, 1.15].
func (m *Model) LineFactor() float64 {
	return m.uniform(1, 1.15)
}

// JitterPath perturbs resolved glyph geometry by resampling it at a fixed
// arc-length step and adding independent Gaussian noise (mean 0, standard
// deviation = the descriptor's jitter) to every sample point. The result is
// a polyline path. With zero jitter the input path is returned unchanged,
// preserving exact curve geometry.
func (m *Model) JitterPath(p curve.BezPath) curve.BezPath {
	if m.desc.Jitter <= 0 {
		return p
	}
	step := m.opts.JitterStep
	if step <= 0 {
		step = 3
	}

	var out curve.BezPath
	var cur curve.Point
	for _, el := range p {
		switch el.Kind {
		case curve.MoveToKind:
			cur = el.P0
			out.MoveTo(m.perturb(cur))
		case curve.LineToKind, curve.QuadToKind, curve.CubicToKind:
			seg := segmentFrom(cur, el)
			arclen := seg.Arclen(0.1)
			n := int(math.Ceil(arclen / step))
			if n < 1 {
				n = 1
			}
			for i := 1; i <= n; i++ {
				out.LineTo(m.perturb(seg.Eval(float64(i) / float64(n))))
			}
			cur = seg.End()
		case curve.ClosePathKind:
			out.ClosePath()
		}
	}
	return out
}

func (m *Model) perturb(pt curve.Point) curve.Point {
	return curve.Pt(
		pt.X+m.rng.NormFloat64()*m.desc.Jitter,
		pt.Y+m.rng.NormFloat64()*m.desc.Jitter,
	)
}

func (m *Model) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + m.rng.Float64()*(hi-lo)
}

func segmentFrom(start curve.Point, el curve.PathElement) curve.PathSegment {
	switch el.Kind {
	case curve.LineToKind:
		return curve.PathSegment{Kind: curve.LineKind, P0: start, P1: el.P0}
	case curve.QuadToKind:
		return curve.PathSegment{Kind: curve.QuadKind, P0: start, P1: el.P0, P2: el.P1}
	default:
		return curve.PathSegment{Kind: curve.CubicKind, P0: start, P1: el.P0, P2: el.P1, P3: el.P2}
	}
}
