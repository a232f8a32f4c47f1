// Package model provides the interfaces and shared state types for estimators.
package model

import (
	"github.com/YuminosukeSato/krr/core/features"
	"gonum.org/v1/gonum/mat"
)

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the coefficient of determination R^2 of the prediction.
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}

// Regressor combines interfaces for regression models.
type Regressor interface {
	Estimator
	Predictor
	Scorer
}

// KernelMachine is a model whose predictions are driven by a kernel that has
// been initialized on (training vectors, query vectors).
//
// Apply predicts every query vector currently on the kernel's right-hand
// side; ApplyOne predicts a single one by index.
type KernelMachine interface {
	Train() error
	Apply() (*features.Labels, error)
	ApplyOne(idx int) (float64, error)
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models that allow parameter modification.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters.
	SetParams(params map[string]interface{}) error
}
