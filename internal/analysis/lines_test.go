package analysis

import (
	"testing"

	"github.com/scrawlab/scrawl/internal/imaging"
)

// bandMask draws full-width ink bands of the given height at each top y.
func bandMask(w, h, bandHeight int, tops ...int) *imaging.Mask {
	m := imaging.NewMask(w, h)
	for _, top := range tops {
		for y := top; y < top+bandHeight; y++ {
			for x := 0; x < w; x++ {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

func TestBaselines_ThreeBands(t *testing.T) {
	m := bandMask(400, 320, 8, 50, 150, 250)
	lines := Baselines(m)
	if len(lines) != 3 {
		t.Fatalf("line count: got %d (%v), want 3", len(lines), lines)
	}
	for i, want := range []int{50, 150, 250} {
		if diff := lines[i] - want; diff < -5 || diff > 5 {
			t.Errorf("line %d: got y=%d, want within 5 of %d", i, lines[i], want)
		}
	}
	for i := 1; i < len(lines); i++ {
		spacing := lines[i] - lines[i-1]
		if spacing < 95 || spacing > 105 {
			t.Errorf("spacing %d-%d: got %d, want 100 +/- 5", i-1, i, spacing)
		}
	}
}

func TestBaselines_PlateauYieldsOnePeak(t *testing.T) {
	// A single thick band has a flat smoothed top; the rising-edge rule
	// must report it exactly once.
	m := bandMask(400, 100, 20, 40)
	lines := Baselines(m)
	if len(lines) != 1 {
		t.Errorf("plateau band: got %d lines (%v), want 1", len(lines), lines)
	}
}

func TestBaselines_EmptyMask(t *testing.T) {
	m := imaging.NewMask(200, 200)
	if lines := Baselines(m); len(lines) != 0 {
		t.Errorf("empty mask: got %v, want no lines", lines)
	}
}

func TestBaselines_FaintRowsIgnored(t *testing.T) {
	// Rows with only a few ink pixels stay below the width-proportional
	// threshold.
	m := imaging.NewMask(400, 100)
	for y := 48; y < 53; y++ {
		for x := 0; x < 4; x++ {
			m.Set(x, y, true)
		}
	}
	if lines := Baselines(m); len(lines) != 0 {
		t.Errorf("faint rows: got %v, want no lines", lines)
	}
}
