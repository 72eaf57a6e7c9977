package synth

import (
	"math/rand"
	"strings"
	"time"

	"honnef.co/go/curve"

	"github.com/scrawlab/scrawl/internal/config"
	"github.com/scrawlab/scrawl/internal/glyph"
	"github.com/scrawlab/scrawl/internal/style"
)

// classWidth is the advance of a character relative to the descriptor's
// CharacterWidth. Narrow strokes {i, l, t} advance at 0.3×, wide letters
// {m, w} at 1.4×, letters with tails or flags {f, j, p, q, y} at 0.8×,
// everything else at 1×.
func classWidth(ch rune) float64 {
	switch ch {
	case 'i', 'l', 't':
		return 0.3
	case 'm', 'w':
		return 1.4
	case 'f', 'j', 'p', 'q', 'y':
		return 0.8
	default:
		return 1.0
	}
}

// Generate lays out text in the style of desc and returns the resulting
// placed glyph paths.
//
// Generate is a pure function of (descriptor, text, opts.Seed): the RNG is
// created here from the seed and threaded through every stochastic step.
// A zero seed picks a time-derived one, for callers that do not need
// reproducibility.
//
// A nil descriptor or an all-whitespace text is a no-op: the returned
// document has Skipped set and no placements. Layout that runs past the
// bottom margin stops emitting glyphs and sets Truncated.
func Generate(desc *style.Descriptor, text string, catalog *glyph.Catalog, opts config.Options) *Document {
	doc := &Document{Width: opts.CanvasWidth, Height: opts.CanvasHeight}

	words := strings.Fields(text)
	if desc == nil || len(words) == 0 {
		doc.Skipped = true
		return doc
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	model := NewModel(*desc, opts, rng)

	left := opts.Margin
	right := float64(opts.CanvasWidth) - opts.Margin
	bottom := float64(opts.CanvasHeight) - opts.Margin

	lineHeight := opts.LineHeight
	if lineHeight <= 0 {
		lineHeight = desc.LineSpacing
	}

	cursorX := left
	baseY := opts.Margin + desc.CharacterHeight

	newline := func() bool {
		cursorX = left
		baseY += lineHeight * model.LineFactor()
		return baseY <= bottom
	}

	for _, word := range words {
		wordWidth := 0.0
		for _, ch := range word {
			wordWidth += classWidth(ch) * desc.CharacterWidth
		}
		wordWidth *= opts.WordCompression

		if cursorX > left && cursorX+wordWidth > right {
			if !newline() {
				doc.Truncated = true
				return doc
			}
		}

		for _, ch := range word {
			v := model.Next()
			advance := classWidth(ch) * desc.CharacterWidth * model.AdvanceFactor()

			if cursorX > left && cursorX+advance > right {
				if !newline() {
					doc.Truncated = true
					return doc
				}
			}
			if baseY > bottom {
				doc.Truncated = true
				return doc
			}

			doc.Placements = append(doc.Placements,
				placeGlyph(ch, catalog.Lookup(ch), cursorX, baseY, v, desc, model))
			cursorX += advance
		}

		cursorX += desc.SpaceWidth * model.SpaceFactor()
	}
	return doc
}

// placeGlyph resolves one glyph instance: the template's unit-box strokes
// are scaled to the glyph size, rotated about the baseline origin,
// translated to the cursor, and jittered.
func placeGlyph(ch rune, tpl glyph.Template, x, baseY float64, v GlyphVariation, desc *style.Descriptor, model *Model) Placement {
	glyphW := classWidth(ch) * desc.CharacterWidth * v.Scale
	glyphH := desc.CharacterHeight * v.Scale

	// Unit box baseline sits at y=1; shift it to the local origin before
	// scaling so rotation pivots on the glyph's baseline start.
	aff := curve.Translate(curve.Vec2{X: x, Y: baseY + v.VOffset}).
		Mul(curve.Rotate(v.Rotation)).
		Mul(curve.Scale(glyphW, glyphH)).
		Mul(curve.Translate(curve.Vec2{X: 0, Y: -1}))

	p := Placement{
		Char:        ch,
		OriginX:     x,
		OriginY:     baseY + v.VOffset,
		Rotation:    v.Rotation,
		Scale:       v.Scale,
		StrokeWidth: v.StrokeWidth,
		Color:       desc.InkColor,
	}
	for _, stroke := range tpl.Strokes {
		resolved := model.JitterPath(stroke.Transform(aff))
		p.Commands = append(p.Commands, commandsFromPath(resolved)...)
	}
	return p
}
