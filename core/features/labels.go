package features

import (
	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Labels holds real-valued regression targets.
type Labels struct {
	values []float64
}

// NewLabels copies values.
func NewLabels(values []float64) (*Labels, error) {
	if len(values) == 0 {
		return nil, errors.NewModelError("features.NewLabels", "empty labels", errors.ErrEmptyData)
	}
	v := make([]float64, len(values))
	copy(v, values)
	return &Labels{values: v}, nil
}

// NewLabelsFromMatrix flattens a column vector (n×1) or a row vector (1×n).
func NewLabelsFromMatrix(y mat.Matrix) (*Labels, error) {
	r, c := y.Dims()
	switch {
	case r == 0 || c == 0:
		return nil, errors.NewModelError("features.NewLabelsFromMatrix", "empty labels", errors.ErrEmptyData)
	case c == 1:
		return &Labels{values: mat.Col(nil, 0, y)}, nil
	case r == 1:
		return &Labels{values: mat.Row(nil, 0, y)}, nil
	default:
		return nil, errors.NewValueError("features.NewLabelsFromMatrix",
			"labels must be a row or column vector")
	}
}

// Len returns the number of labels.
func (l *Labels) Len() int {
	return len(l.values)
}

// At returns label i.
func (l *Labels) At(i int) float64 {
	return l.values[i]
}

// Values returns a copy of the labels.
func (l *Labels) Values() []float64 {
	v := make([]float64, len(l.values))
	copy(v, l.values)
	return v
}

// Vec returns the labels as a new vector.
func (l *Labels) Vec() *mat.VecDense {
	return mat.NewVecDense(len(l.values), l.Values())
}
