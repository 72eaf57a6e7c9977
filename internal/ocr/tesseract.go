//go:build cgo && linux

package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Tesseract recognizes text with the system Tesseract engine.
type Tesseract struct {
	language string
}

// New returns a Tesseract-backed recognizer for the given language code
// (e.g. "eng"). The corresponding language data must be installed.
func New(language string) (Recognizer, error) {
	if language == "" {
		language = "eng"
	}
	return &Tesseract{language: language}, nil
}

// Recognize runs OCR over the whole image.
//
// Tesseract consumes file paths, so the image is written to a temporary PNG
// that is removed before returning.
func (t *Tesseract) Recognize(img image.Image) (string, error) {
	tmp, err := os.CreateTemp("", "scrawl-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmp.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr failed: %w", err)
	}
	return text, nil
}

// RecognizeRegion runs OCR over a rectangular region of the image.
func (t *Tesseract) RecognizeRegion(img image.Image, x1, y1, x2, y2 int) (string, error) {
	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))
	return t.Recognize(cropped)
}
