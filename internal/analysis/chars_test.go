package analysis

import (
	"testing"

	"github.com/scrawlab/scrawl/internal/config"
	"github.com/scrawlab/scrawl/internal/imaging"
)

// blockMask draws solid rectangles at the given boxes.
func blockMask(w, h int, boxes ...Box) *imaging.Mask {
	m := imaging.NewMask(w, h)
	for _, b := range boxes {
		for y := b.Y; y < b.Y+b.H; y++ {
			for x := b.X; x < b.X+b.W; x++ {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

func TestCharacters_SingleLine(t *testing.T) {
	want := []Box{
		{X: 10, Y: 55, W: 12, H: 20},
		{X: 40, Y: 52, W: 15, H: 25},
		{X: 70, Y: 58, W: 8, H: 16},
	}
	m := blockMask(200, 150, want...)
	got := Characters(m, []int{50}, config.Default())
	if len(got) != len(want) {
		t.Fatalf("box count: got %d (%v), want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("box %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCharacterRows_BandsFollowBaselines(t *testing.T) {
	boxes := []Box{
		{X: 20, Y: 55, W: 10, H: 20}, // first line
		{X: 20, Y: 155, W: 10, H: 20}, // second line
		{X: 60, Y: 155, W: 10, H: 20},
	}
	m := blockMask(300, 300, boxes...)
	rows := CharacterRows(m, []int{50, 150}, config.Default())
	if len(rows) != 2 {
		t.Fatalf("row count: got %d, want 2", len(rows))
	}
	if len(rows[0]) != 1 || len(rows[1]) != 2 {
		t.Errorf("boxes per row: got %d/%d, want 1/2", len(rows[0]), len(rows[1]))
	}
}

func TestCharacters_DimensionFilter(t *testing.T) {
	boxes := []Box{
		{X: 10, Y: 55, W: 2, H: 2},  // below MinCharDim: noise speck
		{X: 30, Y: 55, W: 10, H: 15}, // valid
	}
	m := blockMask(200, 150, boxes...)
	got := Characters(m, []int{50}, config.Default())
	if len(got) != 1 {
		t.Fatalf("box count after filter: got %d (%v), want 1", len(got), got)
	}
	if got[0].X != 30 {
		t.Errorf("surviving box: got %+v, want the one at x=30", got[0])
	}
}

func TestCharacters_NoBaselines(t *testing.T) {
	m := blockMask(100, 100, Box{X: 10, Y: 10, W: 10, H: 10})
	if got := Characters(m, nil, config.Default()); got != nil {
		t.Errorf("no baselines: got %v, want nil", got)
	}
}
