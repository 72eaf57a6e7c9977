// Package synth turns a style descriptor and arbitrary input text into
// placed, stochastically varied glyph paths ready for rasterization.
//
// The entry point is Generate: it looks each character up in the glyph
// template catalog, draws a per-glyph transform from the variation model,
// and lays words out with wrapping and bottom-margin truncation. The result
// is a Document: an ordered sequence of placements whose resolved geometry
// is expressed as MoveTo/LineTo/QuadTo draw commands, consumable by any
// backend that can stroke those three primitives.
//
// All randomness flows from one explicitly seeded RNG, so a (descriptor,
// text, seed) triple always produces the same document.
package synth
