package imaging

import (
	"image"
	"image/color"
)

// Mask is a binary ink/background grid. Foreground (true) means ink.
//
// A Mask is immutable once produced by Binarize or DetectEdges; nothing in
// the pipelines mutates a mask after construction.
type Mask struct {
	W, H int
	pix  []bool
}

// NewMask returns an all-background mask of the given size.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, pix: make([]bool, w*h)}
}

// At reports whether (x, y) is ink. Out-of-bounds coordinates are background.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false
	}
	return m.pix[y*m.W+x]
}

// Set marks (x, y) in-bounds as ink or background.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return
	}
	m.pix[y*m.W+x] = v
}

// Count returns the number of ink pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.pix {
		if v {
			n++
		}
	}
	return n
}

// RowCount returns the number of ink pixels in row y.
func (m *Mask) RowCount(y int) int {
	if y < 0 || y >= m.H {
		return 0
	}
	n := 0
	for _, v := range m.pix[y*m.W : (y+1)*m.W] {
		if v {
			n++
		}
	}
	return n
}

// ToImage renders the mask as a two-level grayscale image with ink black (0)
// and background white (255).
func (m *Mask) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.W, m.H))
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.At(x, y) {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
