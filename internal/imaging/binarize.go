package imaging

import "image"

// Luminance converts an image to a height×width grid of ITU-R BT.601 luma
// values on the 0-255 scale.
func Luminance(img image.Image) [][]float64 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	lum := make([][]float64, height)
	for y := 0; y < height; y++ {
		lum[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			rf := float64(r >> 8)
			gf := float64(g >> 8)
			bf := float64(b >> 8)
			lum[y][x] = 0.299*rf + 0.587*gf + 0.114*bf
		}
	}
	return lum
}

// Binarize classifies each pixel as ink or background using a locally
// adaptive mean threshold.
//
// For every pixel the mean luminance over a blockSize×blockSize window
// centered on it is computed (the window is clamped at the image edges, so
// images smaller than the block degrade to a global mean). The pixel is ink
// when its luminance is below mean - c.
//
// The window means are computed from a summed-area table, so the cost is
// independent of blockSize. Even block sizes are rounded up to the next odd
// value so the window stays centered.
func Binarize(img image.Image, blockSize int, c float64) *Mask {
	lum := Luminance(img)
	return BinarizeLuminance(lum, blockSize, c)
}

// BinarizeLuminance is Binarize over an already-extracted luminance grid.
func BinarizeLuminance(lum [][]float64, blockSize int, c float64) *Mask {
	height := len(lum)
	if height == 0 {
		return NewMask(0, 0)
	}
	width := len(lum[0])
	mask := NewMask(width, height)

	if blockSize < 3 {
		blockSize = 3
	}
	if blockSize%2 == 0 {
		blockSize++
	}
	r := blockSize / 2

	// integral[y][x] holds the sum of lum over [0,x) × [0,y).
	integral := make([][]float64, height+1)
	integral[0] = make([]float64, width+1)
	for y := 0; y < height; y++ {
		integral[y+1] = make([]float64, width+1)
		rowSum := 0.0
		for x := 0; x < width; x++ {
			rowSum += lum[y][x]
			integral[y+1][x+1] = integral[y][x+1] + rowSum
		}
	}

	for y := 0; y < height; y++ {
		y0 := max(0, y-r)
		y1 := min(height-1, y+r)
		for x := 0; x < width; x++ {
			x0 := max(0, x-r)
			x1 := min(width-1, x+r)

			sum := integral[y1+1][x1+1] - integral[y0][x1+1] - integral[y1+1][x0] + integral[y0][x0]
			area := float64((y1 - y0 + 1) * (x1 - x0 + 1))
			if lum[y][x] < sum/area-c {
				mask.Set(x, y, true)
			}
		}
	}
	return mask
}
