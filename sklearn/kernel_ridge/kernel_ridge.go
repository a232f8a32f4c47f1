// Package kernel_ridge implements kernel ridge regression.
//
// The model solves (K + tau·I) α = y on the training Gram matrix K and
// predicts f(x) = Σ_i α_i k(x_i, x). It follows the kernel machine workflow:
//
//	feat, _ := features.NewDenseFromColumns(X)
//	lab, _ := features.NewLabelsFromMatrix(Y)
//	gk, _ := kernel.NewGaussian(1.0)
//	_ = gk.Init(feat, feat)
//	krr := kernel_ridge.NewKernelRidgeRegression(gk, lab, kernel_ridge.WithTau(1e-3))
//	_ = krr.Train()
//	out, _ := krr.Apply() // predictions for the kernel's right-hand side
//
// Fit, Predict and Score are provided as well.
package kernel_ridge

import (
	"fmt"
	"time"

	"github.com/YuminosukeSato/krr/core/features"
	"github.com/YuminosukeSato/krr/core/model"
	"github.com/YuminosukeSato/krr/kernel"
	"github.com/YuminosukeSato/krr/metrics"
	"github.com/YuminosukeSato/krr/pkg/errors"
	"github.com/YuminosukeSato/krr/pkg/log"
	"gonum.org/v1/gonum/mat"
)

const modelName = "KernelRidgeRegression"

// KernelRidgeRegression is a kernel ridge regressor.
type KernelRidgeRegression struct {
	state *model.StateManager

	kernel kernel.Kernel
	labels *features.Labels

	// ハイパーパラメータ
	tau     float64
	solver  Solver
	epsilon float64
	maxIter int

	logger log.Logger

	// 学習結果
	alphas *mat.VecDense
	train  *features.Dense
}

// NewKernelRidgeRegression ties a kernel and training labels into an untrained model.
// The kernel must be initialized on (train, train) before Train is called.
func NewKernelRidgeRegression(k kernel.Kernel, labels *features.Labels, opts ...Option) *KernelRidgeRegression {
	m := &KernelRidgeRegression{
		state:   model.NewStateManager(),
		kernel:  k,
		labels:  labels,
		tau:     DefaultTau,
		solver:  SolverCholesky,
		epsilon: DefaultEpsilon,
		maxIter: DefaultMaxIter,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.GetLogger()
	}
	m.logger = m.logger.With(log.ModelNameKey, modelName)
	return m
}

func (m *KernelRidgeRegression) validateParams() error {
	if m.kernel == nil {
		return errors.NewValidationError("kernel", "a kernel is required", nil)
	}
	if !(m.tau > 0) {
		return errors.NewValidationError("tau", "must be positive", m.tau)
	}
	if m.solver != SolverCholesky && m.solver != SolverGaussSeidel {
		return errors.NewValidationError("solver", "unknown solver", m.solver.String())
	}
	if m.solver == SolverGaussSeidel {
		if !(m.epsilon > 0) {
			return errors.NewValidationError("epsilon", "must be positive", m.epsilon)
		}
		if m.maxIter < 1 {
			return errors.NewValidationError("max_iter", "must be >= 1", m.maxIter)
		}
	}
	return nil
}

// Train solves for the dual coefficients using the kernel's lhs as training
// data. If the kernel's rhs is not the lhs, the kernel is re-initialized on
// (lhs, lhs) first.
func (m *KernelRidgeRegression) Train() error {
	const op = "KernelRidgeRegression.Train"
	start := time.Now()

	if err := m.validateParams(); err != nil {
		return err
	}
	if !m.kernel.IsInitialized() {
		return errors.NewModelError(op, "kernel must be initialized with training features", errors.ErrKernelNotInitialized)
	}
	if m.labels == nil {
		return errors.NewValueError(op, "labels are required")
	}

	train := m.kernel.Lhs()
	n := train.NumVectors()
	if m.labels.Len() != n {
		return errors.NewDimensionError(op, n, m.labels.Len(), 0)
	}
	if m.kernel.Rhs() != train {
		if err := m.kernel.Init(train, train); err != nil {
			return err
		}
	}

	K, err := m.kernel.Matrix()
	if err != nil {
		return errors.Wrap(err, "computing training kernel matrix")
	}
	if err := errors.CheckMatrix(op, K, 0); err != nil {
		return err
	}

	M := regularizedGram(K, m.tau)
	y := m.labels.Vec()

	var alphas *mat.VecDense
	iterations := 0
	switch m.solver {
	case SolverCholesky:
		alphas, err = solveCholesky(M, y)
		if err != nil {
			m.logger.Error("Training failed", err, log.ErrorCodeKey, log.ErrorSingularMatrix,
				log.SuggestionKey, "increase tau")
			return err
		}
	case SolverGaussSeidel:
		var delta float64
		var converged bool
		alphas, iterations, delta, converged, err = solveGaussSeidel(M, y, m.epsilon, m.maxIter)
		if err != nil {
			return err
		}
		if !converged {
			errors.Warn(errors.NewConvergenceWarning("GaussSeidel", iterations, delta))
		}
	}

	if err := errors.CheckNumericalStability(op, alphas.RawVector().Data, iterations); err != nil {
		return err
	}

	m.alphas = alphas
	m.train = train
	m.state.SetFitted(train.NumFeatures(), n)

	m.logger.Info("Training completed",
		log.OperationKey, log.OperationTrain,
		log.KernelNameKey, m.kernel.Name(),
		log.SamplesKey, n,
		log.FeaturesKey, train.NumFeatures(),
		log.RegularizationKey, m.tau,
		log.SolverKey, m.solver.String(),
		log.IterationKey, iterations,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// checkApply verifies the model is trained and the kernel's lhs still holds
// the training vectors.
func (m *KernelRidgeRegression) checkApply(method string) error {
	if err := m.state.RequireFitted(modelName, method); err != nil {
		return err
	}
	if !m.kernel.IsInitialized() {
		return errors.NewModelError("KernelRidgeRegression."+method, "kernel not initialized", errors.ErrKernelNotInitialized)
	}
	if got := m.kernel.Lhs().NumVectors(); got != m.alphas.Len() {
		return errors.NewDimensionError("KernelRidgeRegression."+method, m.alphas.Len(), got, 0)
	}
	return nil
}

// Apply predicts every vector on the kernel's right-hand side.
// Right after Train this is the training data itself.
func (m *KernelRidgeRegression) Apply() (*features.Labels, error) {
	if err := m.checkApply("Apply"); err != nil {
		return nil, err
	}
	K, err := m.kernel.Matrix()
	if err != nil {
		return nil, errors.Wrap(err, "computing prediction kernel matrix")
	}

	_, nRhs := K.Dims()
	out := mat.NewVecDense(nRhs, nil)
	out.MulVec(K.T(), m.alphas)

	m.logger.Debug("Applied model",
		log.OperationKey, log.OperationApply,
		log.PredsKey, nRhs,
	)
	return features.NewLabels(out.RawVector().Data)
}

// ApplyOne predicts the rhs vector at idx.
func (m *KernelRidgeRegression) ApplyOne(idx int) (float64, error) {
	if err := m.checkApply("ApplyOne"); err != nil {
		return 0, err
	}
	if n := m.kernel.Rhs().NumVectors(); idx < 0 || idx >= n {
		return 0, errors.NewValueError("KernelRidgeRegression.ApplyOne",
			fmt.Sprintf("index %d out of range [0, %d)", idx, n))
	}
	var f float64
	for i := 0; i < m.alphas.Len(); i++ {
		f += m.alphas.AtVec(i) * m.kernel.Compute(i, idx)
	}
	if err := errors.CheckScalar("KernelRidgeRegression.ApplyOne", f, 0); err != nil {
		return 0, err
	}
	return f, nil
}

// ApplyTo re-initializes the kernel on (training vectors, data) and applies the model.
func (m *KernelRidgeRegression) ApplyTo(data *features.Dense) (*features.Labels, error) {
	if err := m.state.RequireFitted(modelName, "ApplyTo"); err != nil {
		return nil, err
	}
	if err := m.kernel.Init(m.train, data); err != nil {
		return nil, err
	}
	return m.Apply()
}

// Fit trains on X (n_samples × n_features) and y (n×1 or 1×n).
func (m *KernelRidgeRegression) Fit(X, y mat.Matrix) error {
	if m.kernel == nil {
		return errors.NewValidationError("kernel", "a kernel is required", nil)
	}
	r, _ := X.Dims()
	feats, err := features.NewDense(X)
	if err != nil {
		return err
	}
	labels, err := features.NewLabelsFromMatrix(y)
	if err != nil {
		return err
	}
	if labels.Len() != r {
		return errors.NewDimensionError("KernelRidgeRegression.Fit", r, labels.Len(), 0)
	}
	if err := m.kernel.Init(feats, feats); err != nil {
		return err
	}
	m.labels = labels
	m.state.Reset()
	return m.Train()
}

// Predict returns an n×1 matrix of predictions for X.
func (m *KernelRidgeRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := m.state.RequireFitted(modelName, "Predict"); err != nil {
		return nil, err
	}
	nFeatures, _ := m.state.Dimensions()
	if _, c := X.Dims(); c != nFeatures {
		return nil, errors.NewDimensionError("KernelRidgeRegression.Predict", nFeatures, c, 1)
	}
	feats, err := features.NewDense(X)
	if err != nil {
		return nil, err
	}
	out, err := m.ApplyTo(feats)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(out.Len(), 1, out.Values()), nil
}

// Score returns the R² of Predict(X) against y.
func (m *KernelRidgeRegression) Score(X, y mat.Matrix) (float64, error) {
	pred, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	truth, err := features.NewLabelsFromMatrix(y)
	if err != nil {
		return 0, err
	}
	predLabels, err := features.NewLabelsFromMatrix(pred)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(truth.Vec(), predLabels.Vec())
}

// IsFitted reports whether the model has been trained.
func (m *KernelRidgeRegression) IsFitted() bool {
	return m.state.IsFitted()
}

// Alphas returns a copy of the dual coefficients, or nil before training.
func (m *KernelRidgeRegression) Alphas() []float64 {
	if m.alphas == nil {
		return nil
	}
	return append([]float64(nil), m.alphas.RawVector().Data...)
}

// Tau returns the regularization strength.
func (m *KernelRidgeRegression) Tau() float64 { return m.tau }

// Kernel returns the kernel the model evaluates.
func (m *KernelRidgeRegression) Kernel() kernel.Kernel { return m.kernel }

// SetLabels replaces the training labels. The model must be retrained.
func (m *KernelRidgeRegression) SetLabels(labels *features.Labels) {
	m.labels = labels
	m.state.Reset()
}

// GetParams returns the hyperparameters.
func (m *KernelRidgeRegression) GetParams() map[string]interface{} {
	params := map[string]interface{}{
		"tau":      m.tau,
		"solver":   m.solver.String(),
		"epsilon":  m.epsilon,
		"max_iter": m.maxIter,
	}
	if m.kernel != nil {
		params["kernel"] = m.kernel.Name()
	}
	return params
}

// SetParams updates hyperparameters. Changing any of them untrains the model.
func (m *KernelRidgeRegression) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "tau":
			v, ok := value.(float64)
			if !ok || !(v > 0) {
				return errors.NewValidationError("tau", "must be a positive float64", value)
			}
			m.tau = v
		case "epsilon":
			v, ok := value.(float64)
			if !ok || !(v > 0) {
				return errors.NewValidationError("epsilon", "must be a positive float64", value)
			}
			m.epsilon = v
		case "max_iter":
			v, ok := value.(int)
			if !ok || v < 1 {
				return errors.NewValidationError("max_iter", "must be an int >= 1", value)
			}
			m.maxIter = v
		case "solver":
			name, ok := value.(string)
			if !ok {
				return errors.NewValidationError("solver", "must be a string", value)
			}
			s, err := ParseSolver(name)
			if err != nil {
				return errors.NewValidationError("solver", err.Error(), value)
			}
			m.solver = s
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	m.state.Reset()
	return nil
}

var (
	_ model.Regressor       = (*KernelRidgeRegression)(nil)
	_ model.KernelMachine   = (*KernelRidgeRegression)(nil)
	_ model.ParameterGetter = (*KernelRidgeRegression)(nil)
	_ model.ParameterSetter = (*KernelRidgeRegression)(nil)
)
