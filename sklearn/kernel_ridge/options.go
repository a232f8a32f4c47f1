package kernel_ridge

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/krr/pkg/log"
)

// Solver selects how (K + tau·I) α = y is solved during training.
type Solver int

const (
	// SolverCholesky factorizes the regularized Gram matrix directly.
	SolverCholesky Solver = iota
	// SolverGaussSeidel iterates until the largest coefficient change is below epsilon.
	SolverGaussSeidel
)

func (s Solver) String() string {
	switch s {
	case SolverCholesky:
		return "cholesky"
	case SolverGaussSeidel:
		return "gauss_seidel"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// ParseSolver converts "cholesky" or "gauss_seidel" to a Solver.
func ParseSolver(name string) (Solver, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "_")) {
	case "cholesky", "":
		return SolverCholesky, nil
	case "gauss_seidel", "gaussseidel":
		return SolverGaussSeidel, nil
	default:
		return SolverCholesky, fmt.Errorf("unknown solver %q", name)
	}
}

// デフォルトのハイパーパラメータ
const (
	DefaultTau     = 1e-3
	DefaultEpsilon = 1e-4
	DefaultMaxIter = 1000
)

// Option は KernelRidgeRegression の設定オプション
type Option func(*KernelRidgeRegression)

// WithTau は正則化の強さ tau を設定
func WithTau(tau float64) Option {
	return func(m *KernelRidgeRegression) {
		m.tau = tau
	}
}

// WithSolver は学習時の線形ソルバーを設定
func WithSolver(s Solver) Option {
	return func(m *KernelRidgeRegression) {
		m.solver = s
	}
}

// WithEpsilon は Gauss-Seidel の収束判定の閾値を設定
func WithEpsilon(eps float64) Option {
	return func(m *KernelRidgeRegression) {
		m.epsilon = eps
	}
}

// WithMaxIter は Gauss-Seidel の最大反復回数を設定
func WithMaxIter(n int) Option {
	return func(m *KernelRidgeRegression) {
		m.maxIter = n
	}
}

// WithLogger はログ出力先を設定
func WithLogger(l log.Logger) Option {
	return func(m *KernelRidgeRegression) {
		m.logger = l
	}
}
