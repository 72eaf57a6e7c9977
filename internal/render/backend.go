// Package render consumes the draw-command stream of a generated document.
//
// The core exposes rendered output as MoveTo/LineTo/QuadTo commands tagged
// with a resolved stroke color and width; any backend implementing those
// primitives plus path stroking can consume it. This package defines that
// backend contract and ships one software implementation built on
// golang.org/x/image/vector.
package render

import (
	"github.com/scrawlab/scrawl/internal/style"
	"github.com/scrawlab/scrawl/internal/synth"
)

// Backend receives path primitives followed by a Stroke call that draws the
// accumulated path and resets it.
type Backend interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	Stroke(color style.RGB, width float64)
}

// Render replays a document's placements into a backend, one Stroke per
// glyph instance.
func Render(doc *synth.Document, b Backend) {
	for _, pl := range doc.Placements {
		for _, cmd := range pl.Commands {
			switch cmd.Op {
			case synth.OpMoveTo:
				b.MoveTo(cmd.X, cmd.Y)
			case synth.OpLineTo:
				b.LineTo(cmd.X, cmd.Y)
			case synth.OpQuadTo:
				b.QuadTo(cmd.CX, cmd.CY, cmd.X, cmd.Y)
			}
		}
		b.Stroke(pl.Color, pl.StrokeWidth)
	}
}
