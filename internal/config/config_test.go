package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrawl.yaml")
	body := "fidelity: basic\nblock_size: 21\nseed: 99\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Fidelity != Basic {
		t.Errorf("fidelity: got %q, want basic", opts.Fidelity)
	}
	if opts.BlockSize != 21 {
		t.Errorf("block size: got %d, want 21", opts.BlockSize)
	}
	if opts.Seed != 99 {
		t.Errorf("seed: got %d, want 99", opts.Seed)
	}

	// Untouched keys keep their defaults.
	def := Default()
	if opts.CanvasWidth != def.CanvasWidth || opts.ThresholdC != def.ThresholdC {
		t.Errorf("defaults not preserved: %+v", opts)
	}
}

func TestLoad_InvalidFidelity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrawl.yaml")
	if err := os.WriteFile(path, []byte("fidelity: turbo\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "fidelity") {
		t.Errorf("bad fidelity: got err=%v, want fidelity error", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file: expected an error")
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"tiny block", func(o *Options) { o.BlockSize = 1 }},
		{"inverted char dims", func(o *Options) { o.MinCharDim = 50; o.MaxCharDim = 10 }},
		{"zero theta step", func(o *Options) { o.HoughThetaStep = 0 }},
		{"inverted scale range", func(o *Options) { o.ScaleMin = 2; o.ScaleMax = 1 }},
		{"blend above one", func(o *Options) { o.OCRWidthBlend = 1.5 }},
		{"zero canvas", func(o *Options) { o.CanvasWidth = 0 }},
	}
	for _, c := range cases {
		opts := Default()
		c.mutate(&opts)
		if err := opts.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
