package analysis

import (
	"math"

	"github.com/scrawlab/scrawl/internal/config"
	"github.com/scrawlab/scrawl/internal/imaging"
)

// Slant estimates the dominant stroke angle of a sample from its edge mask,
// in radians, where 0 means perfectly vertical strokes and positive values
// lean clockwise.
//
// A standard Hough transform votes each edge pixel into a (rho, theta)
// accumulator with theta stepping over [0°, 180°) at opts.HoughThetaStep
// and rho sized by the image diagonal. Any theta whose best rho bin exceeds
// opts.HoughVoteThreshold is a dominant angle, weighted by that bin's count.
// Theta values above 90° are mapped to theta-180° so that near-vertical
// lines on either side of vertical average toward zero instead of 90°.
//
// Returns 0 when no angle reaches the vote threshold.
func Slant(edges *imaging.Mask, opts config.Options) float64 {
	w, h := edges.W, edges.H
	if w == 0 || h == 0 {
		return 0
	}

	maxDist := int(math.Sqrt(float64(w*w+h*h))) + 1
	numAngles := int(180 / opts.HoughThetaStep)
	if numAngles < 1 {
		return 0
	}

	sin := make([]float64, numAngles)
	cos := make([]float64, numAngles)
	for t := 0; t < numAngles; t++ {
		angle := float64(t) * opts.HoughThetaStep * math.Pi / 180
		sin[t] = math.Sin(angle)
		cos[t] = math.Cos(angle)
	}

	accumulator := make([][]int, 2*maxDist)
	for i := range accumulator {
		accumulator[i] = make([]int, numAngles)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !edges.At(x, y) {
				continue
			}
			for t := 0; t < numAngles; t++ {
				rho := float64(x)*cos[t] + float64(y)*sin[t]
				rhoIdx := int(math.Round(rho)) + maxDist
				if rhoIdx >= 0 && rhoIdx < 2*maxDist {
					accumulator[rhoIdx][t]++
				}
			}
		}
	}

	var weightedSum, totalWeight float64
	for t := 0; t < numAngles; t++ {
		best := 0
		for rhoIdx := 0; rhoIdx < 2*maxDist; rhoIdx++ {
			if accumulator[rhoIdx][t] > best {
				best = accumulator[rhoIdx][t]
			}
		}
		if best <= opts.HoughVoteThreshold {
			continue
		}
		deg := float64(t) * opts.HoughThetaStep
		if deg > 90 {
			deg -= 180
		}
		weightedSum += deg * float64(best)
		totalWeight += float64(best)
	}

	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight * math.Pi / 180
}
