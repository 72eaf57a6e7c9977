package analysis

import (
	"github.com/scrawlab/scrawl/internal/config"
	"github.com/scrawlab/scrawl/internal/imaging"
)

// defaultBandHeight bounds the final line's band when there is no following
// baseline and no spacing history to derive one from.
const defaultBandHeight = 50

// Box is a character bounding box in mask coordinates. Boxes outside the
// configured dimension bounds are discarded at segmentation time and never
// stored.
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// CharacterRows segments a mask into per-line character boxes.
//
// Each line band spans from its baseline down to the next baseline; the
// final band extends by the median baseline spacing (or a fixed default when
// fewer than two lines exist). Within a band, a maximal run of columns
// containing ink is a glyph candidate; its vertical extent is refit by
// scanning the run's columns for the outermost ink rows. Candidates whose
// width or height falls outside [opts.MinCharDim, opts.MaxCharDim] are
// dropped as noise.
//
// The result is ordered by line, then left to right within a line.
func CharacterRows(m *imaging.Mask, baselines []int, opts config.Options) [][]Box {
	if len(baselines) == 0 {
		return nil
	}

	band := defaultBandHeight
	if len(baselines) >= 2 {
		var spacings []float64
		for i := 1; i < len(baselines); i++ {
			spacings = append(spacings, float64(baselines[i]-baselines[i-1]))
		}
		band = int(median(spacings))
	}

	rows := make([][]Box, 0, len(baselines))
	for i, base := range baselines {
		top := base
		bottom := m.H
		if i+1 < len(baselines) {
			bottom = baselines[i+1]
		} else if top+band < bottom {
			bottom = top + band
		}
		rows = append(rows, segmentBand(m, top, bottom, opts))
	}
	return rows
}

// Characters flattens CharacterRows into a single ordered box list.
func Characters(m *imaging.Mask, baselines []int, opts config.Options) []Box {
	var all []Box
	for _, row := range CharacterRows(m, baselines, opts) {
		all = append(all, row...)
	}
	return all
}

func segmentBand(m *imaging.Mask, top, bottom int, opts config.Options) []Box {
	colHasInk := func(x int) bool {
		for y := top; y < bottom; y++ {
			if m.At(x, y) {
				return true
			}
		}
		return false
	}

	var boxes []Box
	x := 0
	for x < m.W {
		if !colHasInk(x) {
			x++
			continue
		}
		start := x
		for x < m.W && colHasInk(x) {
			x++
		}

		// Refit the vertical extent over the run's columns.
		yMin, yMax := bottom, top-1
		for cx := start; cx < x; cx++ {
			for y := top; y < bottom; y++ {
				if !m.At(cx, y) {
					continue
				}
				if y < yMin {
					yMin = y
				}
				if y > yMax {
					yMax = y
				}
			}
		}

		w := x - start
		h := yMax - yMin + 1
		if w < opts.MinCharDim || w > opts.MaxCharDim ||
			h < opts.MinCharDim || h > opts.MaxCharDim {
			continue
		}
		boxes = append(boxes, Box{X: start, Y: yMin, W: w, H: h})
	}
	return boxes
}
