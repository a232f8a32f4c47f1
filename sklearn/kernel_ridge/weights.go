package kernel_ridge

import (
	"github.com/YuminosukeSato/krr/core/features"
	"github.com/YuminosukeSato/krr/core/model"
	"github.com/YuminosukeSato/krr/kernel"
	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const weightsVersion = "1.0"

// ExportWeights captures the trained model: coefficients, training vectors,
// the kernel and the hyperparameters.
func (m *KernelRidgeRegression) ExportWeights() (*model.ModelWeights, error) {
	if err := m.state.RequireFitted(modelName, "ExportWeights"); err != nil {
		return nil, err
	}
	n := m.train.NumVectors()
	vectors := make([][]float64, n)
	for i := 0; i < n; i++ {
		vectors[i] = append([]float64(nil), m.train.Vector(i)...)
	}
	nFeatures, nSamples := m.state.Dimensions()
	return &model.ModelWeights{
		ModelType:      modelName,
		Version:        weightsVersion,
		Coefficients:   m.Alphas(),
		SupportVectors: vectors,
		Kernel:         m.kernel.Name(),
		KernelParams:   m.kernel.Params(),
		Hyperparameters: map[string]interface{}{
			"tau":    m.tau,
			"solver": m.solver.String(),
		},
		Metadata: map[string]interface{}{
			"n_features": nFeatures,
			"n_samples":  nSamples,
		},
		IsFitted: true,
	}, nil
}

// ImportWeights restores a model exported with ExportWeights. The kernel is
// rebuilt from the weights and initialized on the stored training vectors,
// replacing any kernel the model held.
func (m *KernelRidgeRegression) ImportWeights(mw *model.ModelWeights) error {
	const op = "KernelRidgeRegression.ImportWeights"
	if err := mw.Validate(); err != nil {
		return errors.NewModelError(op, "invalid weights", err)
	}
	if mw.ModelType != modelName {
		return errors.NewValueError(op, "weights are for "+mw.ModelType)
	}
	if !mw.IsFitted {
		return errors.NewValueError(op, "weights are not fitted")
	}

	k, err := kernel.FromParams(mw.Kernel, mw.KernelParams)
	if err != nil {
		return err
	}

	n, d := len(mw.SupportVectors), len(mw.SupportVectors[0])
	data := make([]float64, 0, n*d)
	for _, sv := range mw.SupportVectors {
		data = append(data, sv...)
	}
	train, err := features.NewDense(mat.NewDense(n, d, data))
	if err != nil {
		return err
	}
	if err := k.Init(train, train); err != nil {
		return err
	}

	if tau, ok := mw.Hyperparameters["tau"].(float64); ok {
		m.tau = tau
	}
	if name, ok := mw.Hyperparameters["solver"].(string); ok {
		if s, err := ParseSolver(name); err == nil {
			m.solver = s
		}
	}

	m.kernel = k
	m.train = train
	m.labels = nil
	m.alphas = mat.NewVecDense(n, append([]float64(nil), mw.Coefficients...))
	m.state.SetFitted(d, n)
	return nil
}
