package analysis

import (
	"math"

	"github.com/scrawlab/scrawl/internal/config"
	"github.com/scrawlab/scrawl/internal/imaging"
)

const (
	// jitterScale converts the isolated-edge fraction into the descriptor's
	// jitter amplitude.
	jitterScale = 2.0

	// pressureSampleRows is how many rows the pressure estimator samples.
	pressureSampleRows = 20

	fallbackBaselineVariation = 2.0
	fallbackJitter            = 0.5
	fallbackPressure          = 0.8
	fallbackWidthVariation    = 0.1
	maxWidthVariation         = 0.3
)

// VariationStats are the stochastic components of a style descriptor.
type VariationStats struct {
	BaselineVariation float64 `json:"baseline_variation"`
	Jitter            float64 `json:"jitter"`
	Pressure          float64 `json:"pressure"`
	WidthVariation    float64 `json:"width_variation"`
}

// Variation measures how irregular the sample's handwriting is.
//
// BaselineVariation is the dispersion of successive line spacings from their
// own central value (2.0 when fewer than two lines exist). Jitter is the
// fraction of edge pixels with fewer than two edge neighbors, scaled to the
// descriptor range (0.5 with no edges). Pressure is the central sampled row
// ink density relative to the densest sampled row, at most 1.0 (0.8 with no
// inked rows). WidthVariation is the relative deviation of character widths
// from their own central width, capped at 0.3 (0.1 with fewer than three
// characters).
//
// Enhanced fidelity uses medians for the central values; Basic uses means.
func Variation(m, edges *imaging.Mask, boxes []Box, baselines []int, opts config.Options) VariationStats {
	center := mean
	if opts.Fidelity == config.Enhanced {
		center = median
	}

	return VariationStats{
		BaselineVariation: baselineVariation(baselines, center),
		Jitter:            edgeJitter(edges),
		Pressure:          inkPressure(m, center),
		WidthVariation:    widthVariation(boxes, center),
	}
}

func baselineVariation(baselines []int, center func([]float64) float64) float64 {
	if len(baselines) < 2 {
		return fallbackBaselineVariation
	}
	spacings := make([]float64, 0, len(baselines)-1)
	for i := 1; i < len(baselines); i++ {
		spacings = append(spacings, float64(baselines[i]-baselines[i-1]))
	}
	mid := center(spacings)
	deviations := make([]float64, len(spacings))
	for i, s := range spacings {
		deviations[i] = math.Abs(s - mid)
	}
	return center(deviations)
}

func edgeJitter(edges *imaging.Mask) float64 {
	total, isolated := 0, 0
	for y := 0; y < edges.H; y++ {
		for x := 0; x < edges.W; x++ {
			if !edges.At(x, y) {
				continue
			}
			total++
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if edges.At(x+dx, y+dy) {
						neighbors++
					}
				}
			}
			if neighbors < 2 {
				isolated++
			}
		}
	}
	if total == 0 {
		return fallbackJitter
	}
	return float64(isolated) / float64(total) * jitterScale
}

func inkPressure(m *imaging.Mask, center func([]float64) float64) float64 {
	if m.H == 0 || m.W == 0 {
		return fallbackPressure
	}
	step := m.H / pressureSampleRows
	if step < 1 {
		step = 1
	}
	var densities []float64
	for y := 0; y < m.H; y += step {
		if n := m.RowCount(y); n > 0 {
			densities = append(densities, float64(n)/float64(m.W))
		}
	}
	if len(densities) == 0 {
		return fallbackPressure
	}
	maxDensity := 0.0
	for _, d := range densities {
		if d > maxDensity {
			maxDensity = d
		}
	}
	p := center(densities) / maxDensity
	if p > 1 {
		p = 1
	}
	return p
}

func widthVariation(boxes []Box, center func([]float64) float64) float64 {
	if len(boxes) < 3 {
		return fallbackWidthVariation
	}
	widths := make([]float64, len(boxes))
	for i, b := range boxes {
		widths[i] = float64(b.W)
	}
	mid := center(widths)
	if mid <= 0 {
		return fallbackWidthVariation
	}
	deviations := make([]float64, len(widths))
	for i, w := range widths {
		deviations[i] = math.Abs(w-mid) / mid
	}
	v := center(deviations)
	if v > maxWidthVariation {
		v = maxWidthVariation
	}
	return v
}
