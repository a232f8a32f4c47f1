package pipeline

import (
	"math"

	"github.com/YuminosukeSato/krr/pkg/errors"
	"github.com/YuminosukeSato/krr/plotting"
	"github.com/YuminosukeSato/krr/sklearn/kernel_ridge"
)

// Config holds every knob of the sine regression demo.
type Config struct {
	// 学習データ
	Samples   int
	Low, High float64
	Noise     float64
	Seed      uint64

	// 予測範囲
	TestSamples int
	TestSeed    uint64
	MarkerIndex int

	// モデル
	Width       float64
	Tau         float64
	Solver      string
	Standardize bool

	// 出力。Output が空なら描画をスキップする
	Output       string
	Title        string
	FigureWidth  float64
	FigureHeight float64
	ModelOutput  string
}

// DefaultConfig reproduces the classic demo: 100 noisy samples of sin(x) on
// [-2, 2), a Gaussian kernel of width 1, tau = 1e-3, 500 test points and a
// marker at test index 200.
func DefaultConfig() Config {
	return Config{
		Samples:      100,
		Low:          -2,
		High:         2,
		Noise:        0.05,
		Seed:         1,
		TestSamples:  500,
		TestSeed:     2,
		MarkerIndex:  200,
		Width:        1.0,
		Tau:          kernel_ridge.DefaultTau,
		Solver:       kernel_ridge.SolverCholesky.String(),
		Output:       "krr_sine.png",
		Title:        "KernelRidgeRegression on Sine",
		FigureWidth:  6.4,
		FigureHeight: 4.8,
	}
}

var imageFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
	"svg": true, "pdf": true, "eps": true,
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return errors.NewValidationError(name, "must be positive", v)
	}
	return nil
}

// Validate checks the configuration before any work is done.
func (c Config) Validate() error {
	// R² は訓練ラベルの分散を必要とする
	if c.Samples < 2 {
		return errors.NewValidationError("samples", "must be >= 2", c.Samples)
	}
	if c.TestSamples < 1 {
		return errors.NewValidationError("test_samples", "must be >= 1", c.TestSamples)
	}
	if !(c.Low < c.High) {
		return errors.NewValidationError("range", "low must be smaller than high", [2]float64{c.Low, c.High})
	}
	if c.Noise < 0 || math.IsNaN(c.Noise) {
		return errors.NewValidationError("noise", "must be >= 0", c.Noise)
	}
	if err := positive("width", c.Width); err != nil {
		return err
	}
	if err := positive("tau", c.Tau); err != nil {
		return err
	}
	if _, err := kernel_ridge.ParseSolver(c.Solver); err != nil {
		return errors.NewValidationError("solver", err.Error(), c.Solver)
	}
	if c.MarkerIndex < 0 || c.MarkerIndex >= c.TestSamples {
		return errors.NewValidationError("marker_index", "must index a test sample", c.MarkerIndex)
	}
	if c.Output != "" {
		if !imageFormats[plotting.FormatOf(c.Output)] {
			return errors.NewValidationError("output", "unsupported image format", c.Output)
		}
		if err := positive("figure_width", c.FigureWidth); err != nil {
			return err
		}
		if err := positive("figure_height", c.FigureHeight); err != nil {
			return err
		}
	}
	return nil
}
