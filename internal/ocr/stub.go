//go:build !cgo || !linux

package ocr

// New reports that OCR support is not compiled into this binary. Callers
// treat this the same as having no transcript: analysis proceeds without
// the character-width refinement.
func New(language string) (Recognizer, error) {
	return nil, ErrUnavailable
}
