// Package krr provides kernel machines for Go with a feature/label/kernel
// API and a scikit-learn-like surface on top.
//
// A kernel is initialized on two feature sets. A kernel machine trains with
// the kernel on (train, train) and predicts on whatever the kernel's
// right-hand side currently is.
//
// # Installation
//
//	go get github.com/YuminosukeSato/krr
//
// # Quick Start
//
// Kernel ridge regression on a noisy sine wave:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/krr/core/features"
//	    "github.com/YuminosukeSato/krr/datasets"
//	    "github.com/YuminosukeSato/krr/kernel"
//	    "github.com/YuminosukeSato/krr/sklearn/kernel_ridge"
//	)
//
//	func main() {
//	    X, Y, err := datasets.SineData(datasets.DefaultSineConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    feat, _ := features.NewDenseFromColumns(X)
//	    lab, _ := features.NewLabelsFromMatrix(Y)
//
//	    gk, _ := kernel.NewGaussian(1.0)
//	    if err := gk.Init(feat, feat); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    krr := kernel_ridge.NewKernelRidgeRegression(gk, lab, kernel_ridge.WithTau(1e-3))
//	    if err := krr.Train(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, _ := krr.Apply()
//	    fmt.Println("train output:", out.Values()[:5])
//	}
//
// # Packages
//
//   - core/features: Dense feature vectors and regression Labels
//   - kernel: Gaussian, Linear and Polynomial kernels and Gram matrices
//   - sklearn/kernel_ridge: KernelRidgeRegression (Cholesky or Gauss-Seidel)
//   - sklearn/drift: quadratic-time MMD two-sample test
//   - datasets: sine data, prediction ranges and mean-shift generators
//   - metrics: MSE, RMSE, MAE, R²
//   - preprocessing: StandardScaler
//   - plotting: figures rendered with gonum/plot
//   - pipeline: the sine regression demo end to end
//   - core/model: shared interfaces, state management and weight persistence
//   - core/parallel: parallel processing utilities
//   - pkg/errors, pkg/log: structured errors, warnings and logging
//
// # scikit-learn Compatibility
//
// KernelRidgeRegression also implements Fit, Predict and Score:
//
//	gk, _ := kernel.NewGaussian(1.0)
//	m := kernel_ridge.NewKernelRidgeRegression(gk, nil)
//	err := m.Fit(X, y)          // X: n_samples × n_features
//	pred, err := m.Predict(XTest)
//
// # Performance
//
// Gram matrices are filled row-parallel once the left-hand side has more
// than 256 vectors. Smaller problems stay on one goroutine.
//
// # License
//
// krr is released under the MIT License.
package krr
