package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/scrawlab/scrawl/internal/style"
)

// quadFlattenSteps is the fixed subdivision used when flattening quadratic
// segments before stroking. Glyphs are small relative to the canvas, so a
// fixed count stays well under a pixel of error.
const quadFlattenSteps = 16

// capSegments is the polygon resolution of the round caps and joins.
const capSegments = 12

type rpoint struct {
	x, y float64
}

// Rasterizer is a software Backend that strokes glyph paths into an RGBA
// canvas using golang.org/x/image/vector.
//
// Stroking is done by expanding each flattened path segment into a filled
// quad of the stroke width, with circular caps at every vertex so joins and
// endpoints are rounded.
type Rasterizer struct {
	dst      *image.RGBA
	w, h     int
	subpaths [][]rpoint
	cur      []rpoint
}

// NewRasterizer returns a white w×h canvas ready to receive strokes.
func NewRasterizer(w, h int) *Rasterizer {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &Rasterizer{dst: dst, w: w, h: h}
}

// Image returns the canvas.
func (r *Rasterizer) Image() *image.RGBA {
	return r.dst
}

func (r *Rasterizer) MoveTo(x, y float64) {
	r.flushSubpath()
	r.cur = append(r.cur, rpoint{x, y})
}

func (r *Rasterizer) LineTo(x, y float64) {
	r.cur = append(r.cur, rpoint{x, y})
}

func (r *Rasterizer) QuadTo(cx, cy, x, y float64) {
	if len(r.cur) == 0 {
		r.cur = append(r.cur, rpoint{x, y})
		return
	}
	p0 := r.cur[len(r.cur)-1]
	for i := 1; i <= quadFlattenSteps; i++ {
		t := float64(i) / quadFlattenSteps
		mt := 1 - t
		px := mt*mt*p0.x + 2*mt*t*cx + t*t*x
		py := mt*mt*p0.y + 2*mt*t*cy + t*t*y
		r.cur = append(r.cur, rpoint{px, py})
	}
}

// Stroke draws the accumulated subpaths with round caps and resets the path.
func (r *Rasterizer) Stroke(c style.RGB, width float64) {
	r.flushSubpath()
	if len(r.subpaths) == 0 {
		return
	}
	if width < 0.5 {
		width = 0.5
	}
	half := width / 2

	rz := vector.NewRasterizer(r.w, r.h)
	for _, sp := range r.subpaths {
		for i := 0; i < len(sp); i++ {
			if i+1 < len(sp) {
				addSegmentQuad(rz, sp[i], sp[i+1], half)
			}
			addCap(rz, sp[i], half)
		}
	}

	src := image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	rz.DrawOp = draw.Over
	rz.Draw(r.dst, r.dst.Bounds(), src, image.Point{})

	r.subpaths = nil
}

func (r *Rasterizer) flushSubpath() {
	if len(r.cur) > 0 {
		r.subpaths = append(r.subpaths, r.cur)
		r.cur = nil
	}
}

// addSegmentQuad fills the rectangle swept by a stroke of half-width h along
// the segment a→b.
func addSegmentQuad(rz *vector.Rasterizer, a, b rpoint, h float64) {
	dx := b.x - a.x
	dy := b.y - a.y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx := -dy / length * h
	ny := dx / length * h

	rz.MoveTo(float32(a.x+nx), float32(a.y+ny))
	rz.LineTo(float32(b.x+nx), float32(b.y+ny))
	rz.LineTo(float32(b.x-nx), float32(b.y-ny))
	rz.LineTo(float32(a.x-nx), float32(a.y-ny))
	rz.ClosePath()
}

// addCap fills a polygonal disc at p, rounding joins and line ends. The
// vertex order matches the orientation of addSegmentQuad so overlapping
// windings stack instead of canceling.
func addCap(rz *vector.Rasterizer, p rpoint, h float64) {
	rz.MoveTo(float32(p.x+h), float32(p.y))
	for i := 1; i < capSegments; i++ {
		th := -2 * math.Pi * float64(i) / capSegments
		rz.LineTo(float32(p.x+h*math.Cos(th)), float32(p.y+h*math.Sin(th)))
	}
	rz.ClosePath()
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
