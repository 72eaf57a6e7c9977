package analysis

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/scrawlab/scrawl/internal/config"
	"github.com/scrawlab/scrawl/internal/style"
)

// colorCluster is a running mean over the candidate ink pixels assigned to it.
type colorCluster struct {
	r, g, b float64 // running mean, 0-255 scale
	count   int
}

func (c *colorCluster) add(r, g, b float64) {
	n := float64(c.count)
	c.r = (c.r*n + r) / (n + 1)
	c.g = (c.g*n + g) / (n + 1)
	c.b = (c.b*n + b) / (n + 1)
	c.count++
}

func (c *colorCluster) distance(r, g, b float64) float64 {
	a := colorful.Color{R: c.r / 255, G: c.g / 255, B: c.b / 255}
	o := colorful.Color{R: r / 255, G: g / 255, B: b / 255}
	return a.DistanceRgb(o) * 255
}

// InkColor estimates the dominant ink color of a sample.
//
// Pixels are sampled at a fixed stride chosen so that at most
// opts.ColorSampleSize pixels are visited. A sample counts as candidate ink
// when all three channels fall below opts.DarkThreshold.
//
// At Enhanced fidelity candidates feed a list of running-mean clusters: each
// candidate joins the nearest cluster (Euclidean RGB distance) when that
// distance is below opts.ClusterMergeThreshold, and starts a new singleton
// cluster otherwise. The centroid of the most populated cluster wins. At
// Basic fidelity all candidates feed a single running mean.
//
// Falls back to pure black when no dark pixel is sampled.
func InkColor(img image.Image, opts config.Options) style.RGB {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w == 0 || h == 0 {
		return style.RGB{}
	}

	stride := 1
	if opts.ColorSampleSize > 0 {
		stride = int(math.Sqrt(float64(w*h) / float64(opts.ColorSampleSize)))
		if stride < 1 {
			stride = 1
		}
	}

	dark := float64(opts.DarkThreshold)
	var clusters []*colorCluster
	single := &colorCluster{}

	for y := 0; y < h; y += stride {
		for x := 0; x < w; x += stride {
			pr, pg, pb, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			r := float64(pr >> 8)
			g := float64(pg >> 8)
			b := float64(pb >> 8)
			if r >= dark || g >= dark || b >= dark {
				continue
			}

			if opts.Fidelity != config.Enhanced {
				single.add(r, g, b)
				continue
			}

			best := -1
			bestDist := math.MaxFloat64
			for i, c := range clusters {
				if d := c.distance(r, g, b); d < bestDist {
					bestDist = d
					best = i
				}
			}
			if best >= 0 && bestDist < opts.ClusterMergeThreshold {
				clusters[best].add(r, g, b)
			} else {
				nc := &colorCluster{}
				nc.add(r, g, b)
				clusters = append(clusters, nc)
			}
		}
	}

	winner := single
	if opts.Fidelity == config.Enhanced {
		winner = nil
		for _, c := range clusters {
			if winner == nil || c.count > winner.count {
				winner = c
			}
		}
	}
	if winner == nil || winner.count == 0 {
		return style.RGB{R: 0, G: 0, B: 0}
	}
	return style.RGB{
		R: uint8(math.Round(winner.r)),
		G: uint8(math.Round(winner.g)),
		B: uint8(math.Round(winner.b)),
	}
}
