// Package kernel provides kernel functions and Gram matrix computation.
//
// A kernel is initialized on two feature sets, lhs and rhs. Compute(i, j)
// evaluates the kernel on lhs vector i and rhs vector j. Kernel machines
// train with lhs == rhs == training data and predict by re-initializing
// the kernel with the query data on the right-hand side.
package kernel

import (
	"fmt"
	"math"
	"sync"

	"github.com/YuminosukeSato/krr/core/features"
	"github.com/YuminosukeSato/krr/core/parallel"
	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// parallelThreshold is the number of lhs rows below which Matrix fills the
// Gram matrix sequentially.
const parallelThreshold = 256

// Kernel is a positive semi-definite similarity function bound to a pair of
// feature sets.
type Kernel interface {
	// Name returns the kernel type name, e.g. "GaussianKernel".
	Name() string

	// Init binds the kernel to lhs and rhs. Both must be non-nil and have
	// the same dimensionality.
	Init(lhs, rhs *features.Dense) error

	// IsInitialized reports whether Init has succeeded.
	IsInitialized() bool

	// Compute evaluates the kernel on lhs vector i and rhs vector j.
	Compute(i, j int) float64

	// Matrix returns the lhs × rhs Gram matrix.
	Matrix() (*mat.Dense, error)

	Lhs() *features.Dense
	Rhs() *features.Dense

	// Params returns the hyperparameters needed to rebuild the kernel with FromParams.
	Params() map[string]interface{}
}

// Func evaluates a kernel on two vectors of equal length.
type Func func(x, y []float64) float64

// base implements everything except the kernel function itself.
type base struct {
	name string
	fn   Func
	lhs  *features.Dense
	rhs  *features.Dense
}

func (b *base) Name() string { return b.name }

func (b *base) Init(lhs, rhs *features.Dense) error {
	op := b.name + ".Init"
	if lhs == nil || rhs == nil {
		return errors.NewValueError(op, "lhs and rhs features are required")
	}
	if lhs.NumFeatures() != rhs.NumFeatures() {
		return errors.NewDimensionError(op, lhs.NumFeatures(), rhs.NumFeatures(), 1)
	}
	b.lhs = lhs
	b.rhs = rhs
	return nil
}

func (b *base) IsInitialized() bool {
	return b.lhs != nil && b.rhs != nil
}

func (b *base) Compute(i, j int) float64 {
	return b.fn(b.lhs.Vector(i), b.rhs.Vector(j))
}

func (b *base) Lhs() *features.Dense { return b.lhs }
func (b *base) Rhs() *features.Dense { return b.rhs }

func (b *base) Matrix() (*mat.Dense, error) {
	op := b.name + ".Matrix"
	if !b.IsInitialized() {
		return nil, errors.NewModelError(op, "not initialized", errors.ErrKernelNotInitialized)
	}

	n, k := b.lhs.NumVectors(), b.rhs.NumVectors()
	m := mat.NewDense(n, k, nil)

	// ワーカー goroutine 内の panic もここで error に変換する
	var (
		once     sync.Once
		panicErr error
	)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		err := errors.SafeExecute(op, func() error {
			for i := start; i < end; i++ {
				row := m.RawRowView(i)
				x := b.lhs.Vector(i)
				for j := range row {
					row[j] = b.fn(x, b.rhs.Vector(j))
				}
			}
			return nil
		})
		if err != nil {
			once.Do(func() { panicErr = err })
		}
	})
	if panicErr != nil {
		return nil, panicErr
	}
	return m, nil
}

// FromParams rebuilds a kernel from its Name and Params.
func FromParams(name string, params map[string]interface{}) (Kernel, error) {
	switch name {
	case GaussianName:
		width, err := floatParam(params, "width")
		if err != nil {
			return nil, err
		}
		return NewGaussian(width)
	case LinearName:
		return NewLinear(), nil
	case PolynomialName:
		degree, err := floatParam(params, "degree")
		if err != nil {
			return nil, err
		}
		c, err := floatParam(params, "c")
		if err != nil {
			return nil, err
		}
		if degree != math.Trunc(degree) {
			return nil, errors.NewValidationError("degree", "must be a whole number", degree)
		}
		return NewPolynomial(int(degree), c)
	default:
		return nil, errors.NewValueError("kernel.FromParams", fmt.Sprintf("unknown kernel %q", name))
	}
}

// floatParam accepts the numeric types produced by Params and by JSON decoding.
func floatParam(params map[string]interface{}, key string) (float64, error) {
	switch v := params[key].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, errors.NewValidationError(key, "missing or not a number", params[key])
	}
}
