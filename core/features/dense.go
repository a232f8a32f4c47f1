// Package features provides the feature and label containers consumed by
// kernels and kernel machines.
package features

import (
	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dense is an immutable set of real-valued feature vectors.
// Row i of the underlying matrix is vector i.
type Dense struct {
	data *mat.Dense
}

// NewDense copies X, an n_samples × n_features matrix.
func NewDense(X mat.Matrix) (*Dense, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("features.NewDense", "empty data", errors.ErrEmptyData)
	}
	return &Dense{data: mat.DenseCopyOf(X)}, nil
}

// NewDenseFromColumns copies X laid out as n_features × n_samples, i.e. one
// column per vector. A 1×n row of inputs becomes n one-dimensional vectors.
func NewDenseFromColumns(X mat.Matrix) (*Dense, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("features.NewDenseFromColumns", "empty data", errors.ErrEmptyData)
	}
	return &Dense{data: mat.DenseCopyOf(X.T())}, nil
}

// NewDenseFromSlice builds one-dimensional vectors from xs.
func NewDenseFromSlice(xs []float64) (*Dense, error) {
	if len(xs) == 0 {
		return nil, errors.NewModelError("features.NewDenseFromSlice", "empty data", errors.ErrEmptyData)
	}
	data := make([]float64, len(xs))
	copy(data, xs)
	return &Dense{data: mat.NewDense(len(xs), 1, data)}, nil
}

// NumVectors returns the number of feature vectors.
func (d *Dense) NumVectors() int {
	r, _ := d.data.Dims()
	return r
}

// NumFeatures returns the dimensionality of each vector.
func (d *Dense) NumFeatures() int {
	_, c := d.data.Dims()
	return c
}

// Vector returns vector i. The slice aliases internal storage and must not be modified.
func (d *Dense) Vector(i int) []float64 {
	return d.data.RawRowView(i)
}

// Matrix returns a read-only view of the vectors as rows.
func (d *Dense) Matrix() mat.Matrix {
	return d.data
}

// Column returns a copy of feature j across all vectors.
func (d *Dense) Column(j int) []float64 {
	return mat.Col(nil, j, d.data)
}
