package analysis

import (
	"image"
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/scrawlab/scrawl/internal/config"
	"github.com/scrawlab/scrawl/internal/imaging"
)

// sampleImage returns a white canvas with solid black horizontal bands of the
// given height starting at each top y.
func sampleImage(w, h, bandHeight int, tops ...int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	for _, top := range tops {
		for y := top; y < top+bandHeight; y++ {
			for x := 0; x < w; x++ {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}

func TestAnalyze_BlackBand(t *testing.T) {
	opts := config.Default()
	opts.DenoiseSigma = 0
	img := sampleImage(400, 400, 10, 200)

	desc, err := Analyze(img, opts)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if desc.InkColor.R > 5 || desc.InkColor.G > 5 || desc.InkColor.B > 5 {
		t.Errorf("ink color: got %+v, want near black", desc.InkColor)
	}
	if math.Abs(desc.StrokeWidth-10) > 2 {
		t.Errorf("stroke width: got %v, want 10 +/- 2", desc.StrokeWidth)
	}

	mask := imaging.Binarize(img, opts.BlockSize, opts.ThresholdC)
	lines := Baselines(mask)
	if len(lines) != 1 {
		t.Fatalf("line count: got %d (%v), want 1", len(lines), lines)
	}
	if diff := lines[0] - 200; diff < -5 || diff > 5 {
		t.Errorf("line position: got y=%d, want within 5 of 200", lines[0])
	}
}

func TestAnalyze_LineSpacing(t *testing.T) {
	opts := config.Default()
	opts.DenoiseSigma = 0
	img := sampleImage(400, 400, 8, 100, 200, 300)

	desc, err := Analyze(img, opts)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if math.Abs(desc.LineSpacing-100) > 5 {
		t.Errorf("line spacing: got %v, want 100 +/- 5", desc.LineSpacing)
	}
}

func TestAnalyze_EmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := Analyze(img, config.Default()); err != ErrEmptyImage {
		t.Errorf("zero-size image: got err=%v, want ErrEmptyImage", err)
	}
}

func TestAnalyze_BlankImageFallbacks(t *testing.T) {
	opts := config.Default()
	opts.DenoiseSigma = 0
	img := sampleImage(200, 200, 0)

	desc, err := Analyze(img, opts)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if desc.StrokeWidth != 2 {
		t.Errorf("blank stroke width: got %v, want fallback 2", desc.StrokeWidth)
	}
	if desc.Jitter != 0.5 {
		t.Errorf("blank jitter: got %v, want fallback 0.5", desc.Jitter)
	}
	if desc.Pressure != 0.8 {
		t.Errorf("blank pressure: got %v, want fallback 0.8", desc.Pressure)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	opts := config.Default()
	img := sampleImage(300, 300, 10, 100, 200)

	a, err := Analyze(img, opts)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	b, err := Analyze(img, opts)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated analysis differs:\n%+v\n%+v", a, b)
	}
}

func TestBlendOCRWidth(t *testing.T) {
	boxes := []Box{{W: 30}, {W: 30}}
	got := blendOCRWidth(30, boxes, "abc", 0.5)
	if got != 25 {
		t.Errorf("blend: got %v, want 25", got)
	}
}

func TestBlendOCRWidth_NoTranscript(t *testing.T) {
	boxes := []Box{{W: 30}}
	if got := blendOCRWidth(30, boxes, "  \n", 0.5); got != 30 {
		t.Errorf("whitespace transcript: got %v, want measured 30", got)
	}
	if got := blendOCRWidth(30, boxes, "ab", 0); got != 30 {
		t.Errorf("zero blend: got %v, want measured 30", got)
	}
}
