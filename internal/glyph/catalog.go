// Package glyph holds the static vector template catalog used by synthesis.
//
// Templates are normalized stroke skeletons in a unit box: x in [0,1],
// y in [0,1] with y increasing downward and the baseline at y=1. Descenders
// extend below the baseline with y values above 1. Lookup never fails: an
// exact character match is tried first, then the character's class template,
// then a generic fallback curve.
//
// The catalog is built once at startup and never mutated afterwards; it is
// safe for concurrent use.
package glyph

import (
	"errors"
	"unicode"

	"honnef.co/go/curve"
)

// ErrEmptyCatalog reports a catalog constructed with no templates at all.
// An empty catalog is a startup configuration error, not a soft degeneracy.
var ErrEmptyCatalog = errors.New("glyph catalog has no templates")

// Class groups characters that share a generic template and metrics.
type Class int

const (
	Lowercase Class = iota
	Uppercase
	Digit
	Punctuation
)

// ClassOf returns the template class of a character.
func ClassOf(r rune) Class {
	switch {
	case unicode.IsUpper(r):
		return Uppercase
	case unicode.IsDigit(r):
		return Digit
	case unicode.IsLetter(r):
		return Lowercase
	default:
		return Punctuation
	}
}

// Template is one character's normalized stroke skeleton: an ordered list of
// open vector paths in the unit box.
type Template struct {
	Strokes []curve.BezPath
}

// Catalog maps characters to templates with a class and generic fallback.
type Catalog struct {
	exact   map[rune]Template
	classes map[Class]Template
	generic Template
}

// NewCatalog builds the process-wide template catalog.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{
		exact:   builtinTemplates(),
		classes: classTemplates(),
		generic: genericTemplate(),
	}
	if len(c.exact) == 0 && len(c.classes) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// Lookup resolves a character to a template. Resolution order is exact
// character, then the character's class, then the generic fallback; it
// always succeeds.
func (c *Catalog) Lookup(r rune) Template {
	if t, ok := c.exact[r]; ok {
		return t
	}
	if t, ok := c.classes[ClassOf(r)]; ok {
		return t
	}
	return c.generic
}

// Size returns the number of exact-character templates.
func (c *Catalog) Size() int {
	return len(c.exact)
}
