package analysis

import (
	"github.com/scrawlab/scrawl/internal/imaging"
)

const (
	// lineSmoothRadius is the moving-average radius applied to the
	// horizontal projection before peak picking.
	lineSmoothRadius = 2

	// linePeakRadius is the window within which a selected row must be the
	// maximum of the smoothed projection.
	linePeakRadius = 5

	// lineThresholdFraction scales the mask width into the minimum smoothed
	// projection value for a row to qualify as a text line.
	lineThresholdFraction = 0.015
)

// Baselines locates the text lines of a mask and returns their y positions
// in ascending order.
//
// The horizontal projection (ink pixels per row) is smoothed with a fixed
// moving average; a row qualifies when it is the maximum of the smoothed
// profile within a fixed radius, rises above its predecessor (so a plateau
// yields exactly one position), and exceeds a threshold proportional to the
// mask width.
//
// Returns an empty slice for a mask with no qualifying rows.
func Baselines(m *imaging.Mask) []int {
	if m.H == 0 || m.W == 0 {
		return nil
	}

	projection := make([]float64, m.H)
	for y := 0; y < m.H; y++ {
		projection[y] = float64(m.RowCount(y))
	}

	smoothed := make([]float64, m.H)
	for y := 0; y < m.H; y++ {
		sum, n := 0.0, 0
		for k := y - lineSmoothRadius; k <= y+lineSmoothRadius; k++ {
			if k < 0 || k >= m.H {
				continue
			}
			sum += projection[k]
			n++
		}
		smoothed[y] = sum / float64(n)
	}

	threshold := lineThresholdFraction * float64(m.W)
	var lines []int
	for y := 1; y < m.H; y++ {
		if smoothed[y] <= threshold || smoothed[y] <= smoothed[y-1] {
			continue
		}
		isMax := true
		for k := y - linePeakRadius; k <= y+linePeakRadius && isMax; k++ {
			if k < 0 || k >= m.H {
				continue
			}
			if smoothed[k] > smoothed[y] {
				isMax = false
			}
		}
		if isMax {
			lines = append(lines, y)
		}
	}
	return lines
}
