package style

import (
	"encoding/json"
	"math"
	"testing"
)

func TestClamp_Ranges(t *testing.T) {
	d := Descriptor{
		StrokeWidth:    -3,
		Slant:          math.Pi,
		Pressure:       1.7,
		WidthVariation: 0.9,
		Jitter:         -1,
	}.Clamp()

	if d.StrokeWidth != 0.1 {
		t.Errorf("stroke width: got %v, want floor 0.1", d.StrokeWidth)
	}
	if d.Slant != math.Pi/2 {
		t.Errorf("slant: got %v, want ceiling pi/2", d.Slant)
	}
	if d.Pressure != 1 {
		t.Errorf("pressure: got %v, want ceiling 1", d.Pressure)
	}
	if d.WidthVariation != 0.3 {
		t.Errorf("width variation: got %v, want ceiling 0.3", d.WidthVariation)
	}
	if d.Jitter != 0 {
		t.Errorf("jitter: got %v, want floor 0", d.Jitter)
	}
}

func TestClamp_NonFiniteFallsBack(t *testing.T) {
	d := Descriptor{
		StrokeWidth: math.NaN(),
		LineSpacing: math.Inf(1),
	}.Clamp()
	def := Default()
	if d.StrokeWidth != def.StrokeWidth {
		t.Errorf("NaN stroke width: got %v, want default %v", d.StrokeWidth, def.StrokeWidth)
	}
	if d.LineSpacing != def.LineSpacing {
		t.Errorf("Inf line spacing: got %v, want default %v", d.LineSpacing, def.LineSpacing)
	}
}

func TestClamp_DefaultIsStable(t *testing.T) {
	d := Default()
	if d.Clamp() != d {
		t.Errorf("default descriptor changed under clamp: %+v", d.Clamp())
	}
}

func TestRGB_Hex(t *testing.T) {
	if h := (RGB{R: 255, G: 0, B: 128}).Hex(); h != "#ff0080" {
		t.Errorf("hex: got %q, want #ff0080", h)
	}
}

func TestRGB_Distance(t *testing.T) {
	black := RGB{}
	if d := black.Distance(black); d != 0 {
		t.Errorf("self distance: got %v, want 0", d)
	}
	if d := black.Distance(RGB{R: 255, G: 255, B: 255}); math.Abs(d-255*math.Sqrt(3)) > 1e-6 {
		t.Errorf("black-white distance: got %v, want 255*sqrt(3)", d)
	}
}

func TestDescriptor_JSONRoundTrip(t *testing.T) {
	d := Default()
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Descriptor
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != d {
		t.Errorf("round trip: got %+v, want %+v", got, d)
	}
}
