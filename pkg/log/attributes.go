// Package log defines standard attribute keys for kernel machine operations.
//
// Using the same keys everywhere keeps training and prediction logs
// filterable. Keys follow a dotted "category.name" convention.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "KernelRidgeRegression".
	ModelNameKey = "model.name"

	// OperationKey names the operation: "train", "apply", "predict", ...
	OperationKey = "ml.operation"

	// ComponentKey identifies the package emitting the record.
	ComponentKey = "ml.component"

	// PhaseKey indicates the lifecycle phase ("training", "inference", ...).
	PhaseKey = "ml.phase"
)

// Kernel context.
const (
	// KernelNameKey identifies the kernel function, e.g. "GaussianKernel".
	KernelNameKey = "kernel.name"

	// KernelWidthKey records the Gaussian kernel width.
	KernelWidthKey = "kernel.width"

	// KernelLhsKey and KernelRhsKey record the number of vectors on each side.
	KernelLhsKey = "kernel.lhs"
	KernelRhsKey = "kernel.rhs"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the dimensionality of each sample.
	FeaturesKey = "data.features"
)

// Performance and quality.
const (
	// DurationMsKey records the execution time in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records an error measure such as MSE.
	LossKey = "metrics.loss"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// IterationKey records the iteration count of an iterative solver.
	IterationKey = "training.iteration"
)

// Prediction output.
const (
	// PredsKey is the number of predictions made.
	PredsKey = "preds.count"
)

// Error context.
const (
	// ErrorCodeKey carries one of the Error* codes below.
	ErrorCodeKey = "error.code"

	// SuggestionKey gives a hint for resolving the problem.
	SuggestionKey = "error.suggestion"
)

// Hyperparameters and configuration.
const (
	// RegularizationKey records tau, the ridge regularization strength.
	RegularizationKey = "hyperparams.regularization"

	// SolverKey records the linear solver used for training.
	SolverKey = "hyperparams.solver"

	// RandomSeedKey records the seed used to generate data.
	RandomSeedKey = "config.random_seed"

	// OutputPathKey records where an artifact was written.
	OutputPathKey = "output.path"
)

// Standard values.
const (
	OperationTrain    = "train"
	OperationApply    = "apply"
	OperationPredict  = "predict"
	OperationScore    = "score"
	OperationGenerate = "generate"
	OperationRender   = "render"

	PhaseTraining      = "training"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"
	PhaseReporting     = "reporting"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorConvergence       = "CONVERGENCE_FAILURE"
	ErrorSingularMatrix    = "SINGULAR_MATRIX"
)
