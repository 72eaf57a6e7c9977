package imaging

import (
	"image"
	"testing"

	"github.com/scrawlab/scrawl/internal/config"
)

func TestPrepare_DownscalesLargeSamples(t *testing.T) {
	opts := config.Default()
	opts.DenoiseSigma = 0
	opts.MaxAnalysisDim = 1600

	img := image.NewRGBA(image.Rect(0, 0, 3200, 1600))
	out, scale := Prepare(img, opts)
	if scale != 0.5 {
		t.Errorf("scale: got %v, want 0.5", scale)
	}
	b := out.Bounds()
	if b.Dx() != 1600 || b.Dy() != 800 {
		t.Errorf("prepared size: got %dx%d, want 1600x800", b.Dx(), b.Dy())
	}
}

func TestPrepare_TallSamplesScaleByHeight(t *testing.T) {
	opts := config.Default()
	opts.DenoiseSigma = 0

	img := image.NewRGBA(image.Rect(0, 0, 800, 3200))
	out, scale := Prepare(img, opts)
	if scale != 0.5 {
		t.Errorf("scale: got %v, want 0.5", scale)
	}
	if b := out.Bounds(); b.Dy() != 1600 {
		t.Errorf("prepared height: got %d, want 1600", b.Dy())
	}
}

func TestPrepare_SmallSamplesUntouched(t *testing.T) {
	opts := config.Default()
	opts.DenoiseSigma = 0

	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	out, scale := Prepare(img, opts)
	if scale != 1.0 {
		t.Errorf("scale: got %v, want 1.0", scale)
	}
	if out != image.Image(img) {
		t.Error("small sample should pass through unchanged")
	}
}
