package analysis

import (
	"errors"
	"image"
	"strings"

	"github.com/scrawlab/scrawl/internal/config"
	"github.com/scrawlab/scrawl/internal/imaging"
	"github.com/scrawlab/scrawl/internal/style"
)

// ErrEmptyImage reports a structurally invalid sample: zero width or height.
// This is the only failure Analyze ever returns; every soft degeneracy
// resolves to an estimator fallback instead.
var ErrEmptyImage = errors.New("sample image has zero width or height")

// Analyze extracts a style descriptor from a handwriting sample.
//
// It is a pure function of the sample and the options: the same inputs
// always produce the same descriptor. Use AnalyzeWithText when an external
// text recognizer has produced a transcript of the sample.
func Analyze(img image.Image, opts config.Options) (style.Descriptor, error) {
	return AnalyzeWithText(img, "", opts)
}

// AnalyzeWithText is Analyze with an optional recognized transcript of the
// sample, as produced by an external OCR collaborator.
//
// The transcript is used only to refine the character width estimate: the
// measured median box width is blended with totalInkWidth/len(transcript)
// at weight opts.OCRWidthBlend. An empty transcript skips the refinement.
func AnalyzeWithText(img image.Image, recognized string, opts config.Options) (style.Descriptor, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return style.Descriptor{}, ErrEmptyImage
	}

	prepared, _ := imaging.Prepare(img, opts)
	mask := imaging.Binarize(prepared, opts.BlockSize, opts.ThresholdC)
	edges := imaging.DetectEdges(mask)

	baselines := Baselines(mask)
	rows := CharacterRows(mask, baselines, opts)
	var boxes []Box
	for _, row := range rows {
		boxes = append(boxes, row...)
	}

	center := mean
	if opts.Fidelity == config.Enhanced {
		center = median
	}

	def := style.Default()
	desc := style.Descriptor{
		InkColor:    InkColor(prepared, opts),
		StrokeWidth: StrokeWidth(mask),
		Slant:       Slant(edges, opts),
	}

	stats := Variation(mask, edges, boxes, baselines, opts)
	desc.BaselineVariation = stats.BaselineVariation
	desc.Jitter = stats.Jitter
	desc.Pressure = stats.Pressure
	desc.WidthVariation = stats.WidthVariation

	desc.CharacterHeight = def.CharacterHeight
	desc.CharacterWidth = def.CharacterWidth
	if len(boxes) > 0 {
		heights := make([]float64, len(boxes))
		widths := make([]float64, len(boxes))
		for i, b := range boxes {
			heights[i] = float64(b.H)
			widths[i] = float64(b.W)
		}
		desc.CharacterHeight = center(heights)
		desc.CharacterWidth = center(widths)
	}
	desc.CharacterWidth = blendOCRWidth(desc.CharacterWidth, boxes, recognized, opts.OCRWidthBlend)

	desc.LineSpacing = def.LineSpacing
	if len(baselines) >= 2 {
		spacings := make([]float64, 0, len(baselines)-1)
		for i := 1; i < len(baselines); i++ {
			spacings = append(spacings, float64(baselines[i]-baselines[i-1]))
		}
		desc.LineSpacing = center(spacings)
	} else if len(boxes) > 0 {
		desc.LineSpacing = desc.CharacterHeight * 1.8
	}

	desc.SpaceWidth = desc.CharacterWidth * 0.6
	if gaps := interCharacterGaps(rows); len(gaps) > 0 {
		desc.SpaceWidth = center(gaps)
	}

	return desc.Clamp(), nil
}

// blendOCRWidth refines the measured character width with an OCR-derived
// estimate (total ink width divided by transcript length). The blend weight
// is a tunable: 0.5 reproduces the unweighted average the estimator was
// originally tuned with.
func blendOCRWidth(measured float64, boxes []Box, recognized string, blend float64) float64 {
	if blend <= 0 || len(boxes) == 0 {
		return measured
	}
	runes := 0
	for _, r := range recognized {
		if !isSpace(r) {
			runes++
		}
	}
	if runes == 0 {
		return measured
	}
	totalInk := 0.0
	for _, b := range boxes {
		totalInk += float64(b.W)
	}
	ocrWidth := totalInk / float64(runes)
	return (1-blend)*measured + blend*ocrWidth
}

func isSpace(r rune) bool {
	return strings.ContainsRune(" \t\r\n", r)
}

// interCharacterGaps collects the positive horizontal gaps between
// consecutive boxes on the same line.
func interCharacterGaps(rows [][]Box) []float64 {
	var gaps []float64
	for _, row := range rows {
		for i := 1; i < len(row); i++ {
			gap := float64(row[i].X - (row[i-1].X + row[i-1].W))
			if gap > 0 {
				gaps = append(gaps, gap)
			}
		}
	}
	return gaps
}
