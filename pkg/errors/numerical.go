package errors

import (
	"math"
)

// maxReportedValues bounds how many offending values an instability error carries.
const maxReportedValues = 10

// CheckNumericalStability returns a NumericalInstabilityError if any value is NaN or Inf.
// Only the offending values are attached to the error.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	var bad []float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = append(bad, v)
			if len(bad) >= maxReportedValues {
				break
			}
		}
	}
	if len(bad) > 0 {
		return NewNumericalInstabilityError(operation, bad, iteration)
	}
	return nil
}

// CheckScalar checks a single scalar value for numerical instability.
func CheckScalar(operation string, value float64, iteration int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, iteration)
	}
	return nil
}

// CheckMatrix scans a matrix and reports the first non-finite entries it finds.
func CheckMatrix(operation string, matrix interface {
	At(int, int) float64
	Dims() (int, int)
}, iteration int) error {
	rows, cols := matrix.Dims()
	var bad []float64
	for i := 0; i < rows && len(bad) < maxReportedValues; i++ {
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad = append(bad, v)
				if len(bad) >= maxReportedValues {
					break
				}
			}
		}
	}
	if len(bad) > 0 {
		return NewNumericalInstabilityError(operation, bad, iteration)
	}
	return nil
}

// StabilizeExp computes exp with protection against overflow.
// Kernel functions call it so that a tiny width never produces Inf.
func StabilizeExp(value float64) float64 {
	const maxExp = 700.0
	if value > maxExp {
		return math.Exp(maxExp)
	}
	if value < -maxExp {
		return 0
	}
	return math.Exp(value)
}
