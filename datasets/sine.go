// Package datasets generates synthetic data for kernel machine demos.
//
// Inputs follow the column-per-sample layout: a 1×n matrix holds n
// one-dimensional samples. Wrap it with features.NewDenseFromColumns.
package datasets

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/YuminosukeSato/krr/core/features"
	"github.com/YuminosukeSato/krr/core/model"
	"github.com/YuminosukeSato/krr/kernel"
	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SineConfig describes a noisy sine wave sample.
type SineConfig struct {
	// Samples is the number of points.
	Samples int
	// Low and High bound the uniformly drawn inputs, [Low, High).
	Low, High float64
	// Noise is the standard deviation of Gaussian noise added to sin(x).
	Noise float64
	// Seed makes the sample reproducible.
	Seed uint64
}

// DefaultSineConfig returns 100 points on [-2, 2) with noise σ = 0.05.
func DefaultSineConfig() SineConfig {
	return SineConfig{
		Samples: 100,
		Low:     -2,
		High:    2,
		Noise:   0.05,
		Seed:    1,
	}
}

func (c SineConfig) validate(op string) error {
	if c.Samples < 1 {
		return errors.NewValidationError("samples", "must be >= 1", c.Samples)
	}
	if !(c.Low < c.High) {
		return errors.NewValueError(op, "low must be smaller than high")
	}
	if c.Noise < 0 || math.IsNaN(c.Noise) {
		return errors.NewValidationError("noise", "must be >= 0", c.Noise)
	}
	return nil
}

func newSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

func sortedUniform(n int, low, high float64, src rand.Source) []float64 {
	u := distuv.Uniform{Min: low, Max: high, Src: src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = u.Rand()
	}
	sort.Float64s(xs)
	return xs
}

// SineData draws sorted inputs X (1×n) and targets Y (1×n) with
// Y = sin(X) + N(0, Noise²).
func SineData(cfg SineConfig) (X, Y *mat.Dense, err error) {
	if err := cfg.validate("datasets.SineData"); err != nil {
		return nil, nil, err
	}
	src := newSource(cfg.Seed)
	xs := sortedUniform(cfg.Samples, cfg.Low, cfg.High, src)

	noise := distuv.Normal{Mu: 0, Sigma: cfg.Noise, Src: src}
	ys := make([]float64, cfg.Samples)
	for i, x := range xs {
		ys[i] = math.Sin(x)
		if cfg.Noise > 0 {
			ys[i] += noise.Rand()
		}
	}
	return mat.NewDense(1, cfg.Samples, xs), mat.NewDense(1, cfg.Samples, ys), nil
}

// PredictionRange draws n sorted inputs on [low, high) as a 1×n matrix.
func PredictionRange(n int, low, high float64, seed uint64) (*mat.Dense, error) {
	cfg := SineConfig{Samples: n, Low: low, High: high, Seed: seed}
	if err := cfg.validate("datasets.PredictionRange"); err != nil {
		return nil, err
	}
	return mat.NewDense(1, n, sortedUniform(n, low, high, newSource(seed))), nil
}

// Scaler maps raw inputs (samples × features) to the space the kernel was
// trained in. preprocessing.StandardScaler implements it.
type Scaler interface {
	Transform(X mat.Matrix) (mat.Matrix, error)
}

// IsolineConfig describes the prediction range drawn by ComputeOutputIsolinesSine.
type IsolineConfig struct {
	Samples   int
	Low, High float64
	Seed      uint64
	// Scaler, when set, is applied to the range before kernel evaluation.
	Scaler Scaler
}

// DefaultIsolineConfig returns 500 points on [-2, 2).
func DefaultIsolineConfig() IsolineConfig {
	return IsolineConfig{Samples: 500, Low: -2, High: 2, Seed: 2}
}

// ComputeOutputIsolinesSine draws a prediction range, re-initializes k on
// (train, range) and applies reg. It returns the raw range XE (1×n) and the
// predictions YE. Afterwards k's right-hand side is the range, so
// reg.ApplyOne(i) predicts XE[0, i].
func ComputeOutputIsolinesSine(reg model.KernelMachine, k kernel.Kernel, train *features.Dense, cfg IsolineConfig) (*mat.Dense, []float64, error) {
	XE, err := PredictionRange(cfg.Samples, cfg.Low, cfg.High, cfg.Seed)
	if err != nil {
		return nil, nil, err
	}
	test, err := features.NewDenseFromColumns(XE)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Scaler != nil {
		scaled, err := cfg.Scaler.Transform(test.Matrix())
		if err != nil {
			return nil, nil, errors.Wrap(err, "scaling prediction range")
		}
		if test, err = features.NewDense(scaled); err != nil {
			return nil, nil, err
		}
	}
	if err := k.Init(train, test); err != nil {
		return nil, nil, err
	}
	out, err := reg.Apply()
	if err != nil {
		return nil, nil, err
	}
	return XE, out.Values(), nil
}
