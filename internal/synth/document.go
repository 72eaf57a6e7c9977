package synth

import (
	"honnef.co/go/curve"

	"github.com/scrawlab/scrawl/internal/style"
)

// Op identifies a draw command primitive.
type Op int

const (
	OpMoveTo Op = iota + 1
	OpLineTo
	OpQuadTo
)

// Command is one resolved draw instruction in canvas coordinates. CX and CY
// are the control point and are meaningful only for OpQuadTo.
type Command struct {
	Op Op      `json:"op"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	CX float64 `json:"cx,omitempty"`
	CY float64 `json:"cy,omitempty"`
}

// Placement is one glyph instance: where it sits, how the variation model
// transformed it, and its fully resolved stroke geometry.
type Placement struct {
	Char        rune      `json:"char"`
	OriginX     float64   `json:"origin_x"`
	OriginY     float64   `json:"origin_y"`
	Rotation    float64   `json:"rotation"`
	Scale       float64   `json:"scale"`
	StrokeWidth float64   `json:"stroke_width"`
	Color       style.RGB `json:"color"`
	Commands    []Command `json:"commands"`
}

// Document is the output of one Generate call. It is transient: produced
// fresh per call and owned by the caller afterwards.
type Document struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Placements []Placement `json:"placements"`

	// Skipped marks the distinct no-op result for empty text or a missing
	// descriptor. It is not an error.
	Skipped bool `json:"skipped"`

	// Truncated reports that layout ran past the bottom margin and stopped
	// emitting glyphs. Documented truncation, not an error.
	Truncated bool `json:"truncated"`
}

// commandsFromPath converts resolved path geometry into draw commands.
// Cubic segments do not occur in templates; ClosePath is represented by the
// builder never emitting it (all template strokes are open).
func commandsFromPath(p curve.BezPath) []Command {
	cmds := make([]Command, 0, len(p))
	for _, el := range p {
		switch el.Kind {
		case curve.MoveToKind:
			cmds = append(cmds, Command{Op: OpMoveTo, X: el.P0.X, Y: el.P0.Y})
		case curve.LineToKind:
			cmds = append(cmds, Command{Op: OpLineTo, X: el.P0.X, Y: el.P0.Y})
		case curve.QuadToKind:
			cmds = append(cmds, Command{Op: OpQuadTo, CX: el.P0.X, CY: el.P0.Y, X: el.P1.X, Y: el.P1.Y})
		}
	}
	return cmds
}
