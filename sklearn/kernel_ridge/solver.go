package kernel_ridge

import (
	"math"

	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// regularizedGram returns (K + K^T)/2 + tau·I as a symmetric matrix.
func regularizedGram(K mat.Matrix, tau float64) *mat.SymDense {
	n, _ := K.Dims()
	M := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		M.SetSym(i, i, K.At(i, i)+tau)
		for j := i + 1; j < n; j++ {
			M.SetSym(i, j, 0.5*(K.At(i, j)+K.At(j, i)))
		}
	}
	return M
}

func solveCholesky(M *mat.SymDense, y *mat.VecDense) (*mat.VecDense, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(M); !ok {
		return nil, errors.NewModelError("KernelRidgeRegression.Train",
			"regularized kernel matrix is not positive definite", errors.ErrSingularMatrix)
	}
	alpha := mat.NewVecDense(y.Len(), nil)
	if err := chol.SolveVecTo(alpha, y); err != nil {
		return nil, errors.NewModelError("KernelRidgeRegression.Train", "cholesky solve failed", err)
	}
	return alpha, nil
}

// solveGaussSeidel returns the last iterate and the number of sweeps done.
// converged is false when maxIter sweeps did not bring the largest update below eps.
func solveGaussSeidel(M *mat.SymDense, y *mat.VecDense, eps float64, maxIter int) (alpha *mat.VecDense, iters int, delta float64, converged bool, err error) {
	n := y.Len()
	alpha = mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		if M.At(i, i) <= 0 {
			return nil, 0, 0, false, errors.NewModelError("KernelRidgeRegression.Train",
				"non-positive diagonal in regularized kernel matrix", errors.ErrSingularMatrix)
		}
	}

	for iters = 1; iters <= maxIter; iters++ {
		delta = 0
		for i := 0; i < n; i++ {
			s := y.AtVec(i)
			for j := 0; j < n; j++ {
				if j != i {
					s -= M.At(i, j) * alpha.AtVec(j)
				}
			}
			next := s / M.At(i, i)
			if d := math.Abs(next - alpha.AtVec(i)); d > delta {
				delta = d
			}
			alpha.SetVec(i, next)
		}
		if delta < eps {
			return alpha, iters, delta, true, nil
		}
	}
	return alpha, maxIter, delta, false, nil
}
