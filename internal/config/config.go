package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Fidelity selects the statistical variant used by the analysis estimators
// and the rotation band used during synthesis.
//
// Basic uses mean-based statistics and a rotation band of ±slant.
// Enhanced uses median-based statistics, color clustering, an extra denoise
// pass before binarization, and a rotation band of ±2·slant.
type Fidelity string

const (
	Basic    Fidelity = "basic"
	Enhanced Fidelity = "enhanced"
)

// Options is the complete tuning surface for both pipelines.
//
// The zero value is not usable; start from Default() and override fields, or
// load overrides from a YAML file with Load(). All pixel-valued fields are in
// the coordinate space of the analyzed image.
type Options struct {
	// Fidelity selects Basic or Enhanced estimator variants.
	Fidelity Fidelity `yaml:"fidelity"`

	// BlockSize is the side of the square window used by the adaptive
	// binarizer. Must be odd; even values are rounded up.
	BlockSize int `yaml:"block_size"`

	// ThresholdC is subtracted from the local mean luminance (0-255 scale).
	// A pixel is ink when its luminance is below mean - ThresholdC.
	ThresholdC float64 `yaml:"threshold_c"`

	// DarkThreshold is the per-channel ceiling (0-255) for a sampled pixel
	// to count as candidate ink during color clustering.
	DarkThreshold int `yaml:"dark_threshold"`

	// ClusterMergeThreshold is the Euclidean RGB distance (0-255 scale)
	// below which a candidate pixel merges into an existing color cluster.
	ClusterMergeThreshold float64 `yaml:"cluster_merge_threshold"`

	// ColorSampleSize caps how many pixels the color clusterer examines.
	ColorSampleSize int `yaml:"color_sample_size"`

	// HoughVoteThreshold is the minimum accumulator count for an angle to
	// count as dominant during slant estimation.
	HoughVoteThreshold int `yaml:"hough_vote_threshold"`

	// HoughThetaStep is the angular resolution of the Hough accumulator,
	// in degrees.
	HoughThetaStep float64 `yaml:"hough_theta_step"`

	// MinCharDim and MaxCharDim bound the width and height of accepted
	// character boxes; candidates outside the range are discarded as noise.
	MinCharDim int `yaml:"min_char_dim"`
	MaxCharDim int `yaml:"max_char_dim"`

	// MaxAnalysisDim caps the larger image dimension before analysis.
	// Larger samples are downscaled to keep Analyze bounded.
	MaxAnalysisDim int `yaml:"max_analysis_dim"`

	// DenoiseSigma is the Gaussian blur radius applied before binarization
	// at Enhanced fidelity. Zero disables the pass.
	DenoiseSigma float64 `yaml:"denoise_sigma"`

	// OCRWidthBlend is the weight of the OCR-derived character width when
	// recognized text is available: 0 keeps the measured width, 1 uses the
	// OCR estimate alone, 0.5 averages them.
	OCRWidthBlend float64 `yaml:"ocr_width_blend"`

	// Canvas geometry for layout, in output pixels.
	CanvasWidth  int     `yaml:"canvas_width"`
	CanvasHeight int     `yaml:"canvas_height"`
	Margin       float64 `yaml:"margin"`

	// LineHeight is the base vertical advance between lines. Zero means
	// use the descriptor's LineSpacing.
	LineHeight float64 `yaml:"line_height"`

	// ScaleMin and ScaleMax bound the per-glyph uniform scale draw.
	ScaleMin float64 `yaml:"scale_min"`
	ScaleMax float64 `yaml:"scale_max"`

	// WidthMulMin and WidthMulMax bound the per-glyph stroke width
	// multiplier draw.
	WidthMulMin float64 `yaml:"width_mul_min"`
	WidthMulMax float64 `yaml:"width_mul_max"`

	// JitterStep is the arc-length resampling step used when applying
	// positional jitter to glyph paths, in output pixels.
	JitterStep float64 `yaml:"jitter_step"`

	// WordCompression scales the estimated word width used for wrapping
	// decisions (advances themselves are not compressed).
	WordCompression float64 `yaml:"word_compression"`

	// Seed seeds the synthesis RNG. Zero selects a time-derived seed.
	Seed int64 `yaml:"seed"`
}

// Default returns the options both pipelines are tuned against.
func Default() Options {
	return Options{
		Fidelity:              Enhanced,
		BlockSize:             15,
		ThresholdC:            10,
		DarkThreshold:         100,
		ClusterMergeThreshold: 40,
		ColorSampleSize:       10000,
		HoughVoteThreshold:    50,
		HoughThetaStep:        1,
		MinCharDim:            4,
		MaxCharDim:            200,
		MaxAnalysisDim:        1600,
		DenoiseSigma:          1.5,
		OCRWidthBlend:         0.5,
		CanvasWidth:           800,
		CanvasHeight:          1000,
		Margin:                40,
		LineHeight:            0,
		ScaleMin:              0.9,
		ScaleMax:              1.1,
		WidthMulMin:           0.8,
		WidthMulMax:           1.2,
		JitterStep:            3,
		WordCompression:       0.95,
		Seed:                  0,
	}
}

// Load reads YAML overrides from path on top of Default().
//
// Missing keys keep their default values, so a config file only needs to
// name the fields it changes.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// Validate rejects option combinations the pipelines cannot honor.
func (o Options) Validate() error {
	switch o.Fidelity {
	case Basic, Enhanced:
	default:
		return fmt.Errorf("unknown fidelity %q", o.Fidelity)
	}
	if o.BlockSize < 3 {
		return fmt.Errorf("block_size %d too small, need >= 3", o.BlockSize)
	}
	if o.MinCharDim < 1 || o.MaxCharDim <= o.MinCharDim {
		return fmt.Errorf("invalid char dim bounds [%d, %d]", o.MinCharDim, o.MaxCharDim)
	}
	if o.HoughThetaStep <= 0 {
		return fmt.Errorf("hough_theta_step must be positive, got %v", o.HoughThetaStep)
	}
	if o.ScaleMin > o.ScaleMax || o.WidthMulMin > o.WidthMulMax {
		return fmt.Errorf("variation range inverted")
	}
	if o.OCRWidthBlend < 0 || o.OCRWidthBlend > 1 {
		return fmt.Errorf("ocr_width_blend %v outside [0,1]", o.OCRWidthBlend)
	}
	if o.CanvasWidth <= 0 || o.CanvasHeight <= 0 {
		return fmt.Errorf("canvas %dx%d must be positive", o.CanvasWidth, o.CanvasHeight)
	}
	return nil
}
