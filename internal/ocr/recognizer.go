// Package ocr is the optional text-recognition collaborator.
//
// The analysis core never depends on this package; it accepts a recognized
// transcript as a plain string. This package produces such transcripts with
// Tesseract (via gosseract) when built with cgo on Linux, and reports
// ErrUnavailable otherwise. Absent OCR is a fully supported configuration:
// analysis simply skips the character-width refinement.
package ocr

import (
	"errors"
	"image"
)

// ErrUnavailable reports that no OCR engine is compiled into this binary.
var ErrUnavailable = errors.New("ocr: tesseract support not built in (requires cgo on linux)")

// Recognizer extracts plain text from a sample image.
type Recognizer interface {
	// Recognize returns the text visible in img. An empty string with a
	// nil error is a valid result for an image with no recognizable text.
	Recognize(img image.Image) (string, error)
}
