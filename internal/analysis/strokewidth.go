package analysis

import (
	"math"

	"github.com/scrawlab/scrawl/internal/imaging"
)

// fallbackStrokeWidth is returned for a mask with no ink pixels.
const fallbackStrokeWidth = 2.0

// DistanceTransform computes, for every ink pixel, the chamfer distance to
// the nearest background pixel using two-pass 8-neighbor propagation with
// Euclidean step costs (1 for axis-aligned moves, sqrt2 for diagonal).
//
// Background pixels are 0. Pixels outside the mask do not count as
// background: an ink region touching the image border keeps the distance
// implied by background inside the image only.
func DistanceTransform(m *imaging.Mask) [][]float64 {
	const diag = math.Sqrt2

	dist := make([][]float64, m.H)
	far := float64(m.W + m.H)
	for y := 0; y < m.H; y++ {
		dist[y] = make([]float64, m.W)
		for x := 0; x < m.W; x++ {
			if m.At(x, y) {
				dist[y][x] = far
			}
		}
	}

	at := func(x, y int) float64 {
		if x < 0 || x >= m.W || y < 0 || y >= m.H {
			return far
		}
		return dist[y][x]
	}

	// Forward pass: propagate from the left and above.
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.At(x, y) {
				continue
			}
			d := dist[y][x]
			d = math.Min(d, at(x-1, y)+1)
			d = math.Min(d, at(x, y-1)+1)
			d = math.Min(d, at(x-1, y-1)+diag)
			d = math.Min(d, at(x+1, y-1)+diag)
			dist[y][x] = d
		}
	}

	// Backward pass: propagate from the right and below.
	for y := m.H - 1; y >= 0; y-- {
		for x := m.W - 1; x >= 0; x-- {
			if !m.At(x, y) {
				continue
			}
			d := dist[y][x]
			d = math.Min(d, at(x+1, y)+1)
			d = math.Min(d, at(x, y+1)+1)
			d = math.Min(d, at(x+1, y+1)+diag)
			d = math.Min(d, at(x-1, y+1)+diag)
			dist[y][x] = d
		}
	}
	return dist
}

// StrokeWidth estimates the dominant stroke width of the ink in a mask.
//
// Each ink pixel contributes its doubled chamfer distance (rounded to the
// nearest integer) to a histogram; twice the distance to background
// approximates the local stroke thickness. The most frequent bucket is the
// estimate; ties go to the wider bucket so symmetric strokes resolve to
// their full width.
//
// Returns 2.0 for a mask with no ink pixels.
func StrokeWidth(m *imaging.Mask) float64 {
	if m.Count() == 0 {
		return fallbackStrokeWidth
	}

	dist := DistanceTransform(m)
	hist := make(map[int]int)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.At(x, y) {
				continue
			}
			bucket := int(math.Round(2 * dist[y][x]))
			if bucket < 1 {
				bucket = 1
			}
			hist[bucket]++
		}
	}

	best, bestCount := 0, 0
	for bucket, count := range hist {
		if count > bestCount || (count == bestCount && bucket > best) {
			best = bucket
			bestCount = count
		}
	}
	return float64(best)
}
