package datasets

import (
	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// MeanShiftGenerator streams standard normal vectors whose component
// DimensionShift is offset by MeanShift. Two-sample tests use it to draw
// p = N(0, I) and q = N(shift·e_k, I).
type MeanShiftGenerator struct {
	dimension      int
	meanShift      float64
	dimensionShift int
	normal         distuv.Normal
}

// NewMeanShiftGenerator returns a generator of dim-dimensional vectors.
// dimShift must index a valid dimension.
func NewMeanShiftGenerator(meanShift float64, dim, dimShift int, seed uint64) (*MeanShiftGenerator, error) {
	if dim < 1 {
		return nil, errors.NewValidationError("dimension", "must be >= 1", dim)
	}
	if dimShift < 0 || dimShift >= dim {
		return nil, errors.NewValidationError("dimension_shift",
			"dimension of shift must be smaller than number of dimensions", dimShift)
	}
	return &MeanShiftGenerator{
		dimension:      dim,
		meanShift:      meanShift,
		dimensionShift: dimShift,
		normal:         distuv.Normal{Mu: 0, Sigma: 1, Src: newSource(seed)},
	}, nil
}

// Dimension returns the length of generated vectors.
func (g *MeanShiftGenerator) Dimension() int { return g.dimension }

// Next returns a fresh vector.
func (g *MeanShiftGenerator) Next() []float64 {
	v := make([]float64, g.dimension)
	for i := range v {
		v[i] = g.normal.Rand()
	}
	v[g.dimensionShift] += g.meanShift
	return v
}

// Sample draws n vectors as the rows of an n×dimension matrix.
func (g *MeanShiftGenerator) Sample(n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, errors.NewValidationError("n", "must be >= 1", n)
	}
	m := mat.NewDense(n, g.dimension, nil)
	for i := 0; i < n; i++ {
		m.SetRow(i, g.Next())
	}
	return m, nil
}
