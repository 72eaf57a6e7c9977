package imaging

import (
	"image"
	"image/color"
	"testing"
)

// strokesImage returns a white image with black 2px vertical strokes.
func strokesImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%20 == 10 || x%20 == 11 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func TestBinarize_Strokes(t *testing.T) {
	img := strokesImage(100, 60)
	mask := Binarize(img, 15, 10)

	if mask.W != 100 || mask.H != 60 {
		t.Fatalf("dimensions: got %dx%d, want 100x60", mask.W, mask.H)
	}
	if !mask.At(10, 30) {
		t.Error("stroke pixel (10,30) should be ink")
	}
	if mask.At(5, 30) {
		t.Error("background pixel (5,30) should not be ink")
	}
}

func TestBinarize_Idempotent(t *testing.T) {
	img := strokesImage(100, 60)
	first := Binarize(img, 15, 10)
	second := Binarize(first.ToImage(), 15, 10)

	for y := 0; y < first.H; y++ {
		for x := 0; x < first.W; x++ {
			if first.At(x, y) != second.At(x, y) {
				t.Fatalf("masks differ at (%d,%d): first=%v second=%v",
					x, y, first.At(x, y), second.At(x, y))
			}
		}
	}
}

func TestBinarize_UniformImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.RGBA{128, 128, 128, 255})
		}
	}
	mask := Binarize(img, 15, 10)
	if n := mask.Count(); n != 0 {
		t.Errorf("uniform image should produce no ink, got %d pixels", n)
	}
}

func TestBinarize_SmallerThanBlock(t *testing.T) {
	// A 4x4 image with one dark pixel; the window clamps to the image.
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(2, 2, color.Black)

	mask := Binarize(img, 15, 10)
	if !mask.At(2, 2) {
		t.Error("dark pixel should be ink even when image is smaller than block")
	}
	if mask.At(0, 0) {
		t.Error("white pixel should not be ink")
	}
}

func TestBinarize_EvenBlockSize(t *testing.T) {
	img := strokesImage(60, 40)
	// Even sizes round up; both must classify the strokes.
	odd := Binarize(img, 15, 10)
	even := Binarize(img, 14, 10)
	if odd.Count() == 0 || even.Count() == 0 {
		t.Fatal("both block sizes should find ink")
	}
}
