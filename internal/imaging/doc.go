// Package imaging provides the pixel-level primitives of the analysis
// pipeline: luminance extraction, adaptive binarization, binary edge
// detection, and sample preprocessing.
//
// All operations work with standard Go image.Image inputs and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Determinism
//
// Every function in this package is a pure function of its inputs. The same
// image and parameters always produce the same mask, so downstream style
// extraction is reproducible.
//
// # Degenerate Inputs
//
// Images smaller than the binarization block are handled by clamping the
// averaging window to the image bounds. Zero-dimension images are the one
// hard failure of the analysis pipeline and are rejected before this
// package is reached.
package imaging
