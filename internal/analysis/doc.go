// Package analysis extracts a style descriptor from a handwriting sample.
//
// The entry point is Analyze, which composes the individual estimators:
//
//  1. Binarization and edge detection (package imaging)
//  2. Ink color clustering
//  3. Stroke width via a chamfer distance transform
//  4. Slant via a Hough transform over edge pixels
//  5. Line segmentation via horizontal projection profiles
//  6. Character segmentation via per-band column runs
//  7. Variation statistics (baseline, jitter, pressure, width)
//
// Every estimator has a documented fallback for degenerate input (no ink, no
// lines, no dominant angle), so Analyze always produces a descriptor; its
// only error is a zero-dimension image.
//
// # Fidelity
//
// Estimators come in Basic and Enhanced variants selected by
// config.Options.Fidelity rather than as separate pipelines. Basic uses mean
// statistics and a single running color average; Enhanced uses medians and
// running-mean color clustering, which are more robust on noisy samples.
package analysis
