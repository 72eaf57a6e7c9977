package imaging

import "math"

// edgeGradientThreshold is the gradient magnitude above which a pixel of a
// binary mask counts as an edge. The Sobel pair below yields magnitudes in
// [0, 4·sqrt2] on a {0,1} grid; 2.0 keeps step edges and drops the weak
// responses inside diagonal stair-steps.
const edgeGradientThreshold = 2.0

// DetectEdges marks the ink/background transitions of a binary mask.
//
// The mask is treated as a {0,1} grid and convolved with the 3×3 Sobel
// kernel pair; a pixel is an edge when the gradient magnitude exceeds a
// fixed threshold. Out-of-bounds neighbors read as background.
func DetectEdges(m *Mask) *Mask {
	edges := NewMask(m.W, m.H)

	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					if m.At(x+kx, y+ky) {
						gx += sobelX[ky+1][kx+1]
						gy += sobelY[ky+1][kx+1]
					}
				}
			}
			if math.Sqrt(gx*gx+gy*gy) > edgeGradientThreshold {
				edges.Set(x, y, true)
			}
		}
	}
	return edges
}
