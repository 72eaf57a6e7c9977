package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/scrawlab/scrawl/internal/config"
)

// Prepare bounds and conditions a sample image before analysis.
//
// Samples whose larger dimension exceeds opts.MaxAnalysisDim are downscaled
// (Lanczos) so that analysis cost stays proportional to content, not camera
// resolution. At Enhanced fidelity a Gaussian denoise pass runs before
// binarization; sensor noise otherwise inflates the jitter statistic.
//
// Returns the scale factor applied (1.0 when no resize happened) so that
// callers can map descriptor pixel quantities back to the original image.
func Prepare(img image.Image, opts config.Options) (image.Image, float64) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	scale := 1.0
	if opts.MaxAnalysisDim > 0 && max(w, h) > opts.MaxAnalysisDim {
		if w >= h {
			scale = float64(opts.MaxAnalysisDim) / float64(w)
			img = imaging.Resize(img, opts.MaxAnalysisDim, 0, imaging.Lanczos)
		} else {
			scale = float64(opts.MaxAnalysisDim) / float64(h)
			img = imaging.Resize(img, 0, opts.MaxAnalysisDim, imaging.Lanczos)
		}
	}

	if opts.Fidelity == config.Enhanced && opts.DenoiseSigma > 0 {
		img = blur.Gaussian(img, opts.DenoiseSigma)
	}
	return img, scale
}
