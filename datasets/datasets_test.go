package datasets_test

import (
	"math"
	"sort"
	"testing"

	"github.com/YuminosukeSato/krr/core/features"
	"github.com/YuminosukeSato/krr/datasets"
	"github.com/YuminosukeSato/krr/kernel"
	"github.com/YuminosukeSato/krr/pkg/errors"
	"github.com/YuminosukeSato/krr/sklearn/kernel_ridge"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestSineData(t *testing.T) {
	cfg := datasets.DefaultSineConfig()
	X, Y, err := datasets.SineData(cfg)
	if err != nil {
		t.Fatalf("SineData: %v", err)
	}

	r, c := X.Dims()
	if r != 1 || c != cfg.Samples {
		t.Fatalf("X dims = %d×%d, want 1×%d", r, c, cfg.Samples)
	}
	if r, c := Y.Dims(); r != 1 || c != cfg.Samples {
		t.Fatalf("Y dims = %d×%d, want 1×%d", r, c, cfg.Samples)
	}

	xs := mat.Row(nil, 0, X)
	if !sort.Float64sAreSorted(xs) {
		t.Error("inputs should be sorted")
	}
	for i, x := range xs {
		if x < cfg.Low || x >= cfg.High {
			t.Errorf("x[%d] = %v outside [%v, %v)", i, x, cfg.Low, cfg.High)
		}
		// ノイズは σ=0.05 なので 5σ を超えることはまずない
		if d := math.Abs(Y.At(0, i) - math.Sin(x)); d > 0.25 {
			t.Errorf("y[%d] deviates from sin(x) by %v", i, d)
		}
	}
}

func TestSineData_Reproducible(t *testing.T) {
	cfg := datasets.DefaultSineConfig()
	X1, Y1, _ := datasets.SineData(cfg)
	X2, Y2, _ := datasets.SineData(cfg)
	if !mat.Equal(X1, X2) || !mat.Equal(Y1, Y2) {
		t.Error("same seed should produce the same data")
	}

	cfg.Seed = 2
	X3, _, _ := datasets.SineData(cfg)
	if mat.Equal(X1, X3) {
		t.Error("different seeds should produce different data")
	}
}

func TestSineData_NoiseFree(t *testing.T) {
	cfg := datasets.SineConfig{Samples: 20, Low: -1, High: 1, Noise: 0, Seed: 7}
	X, Y, err := datasets.SineData(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < cfg.Samples; i++ {
		if Y.At(0, i) != math.Sin(X.At(0, i)) {
			t.Fatalf("y[%d] = %v, want sin(x) = %v", i, Y.At(0, i), math.Sin(X.At(0, i)))
		}
	}
}

func TestSineData_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  datasets.SineConfig
	}{
		{"no samples", datasets.SineConfig{Samples: 0, Low: -1, High: 1}},
		{"empty range", datasets.SineConfig{Samples: 5, Low: 1, High: 1}},
		{"negative noise", datasets.SineConfig{Samples: 5, Low: -1, High: 1, Noise: -0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := datasets.SineData(tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestComputeOutputIsolinesSine(t *testing.T) {
	X, Y, err := datasets.SineData(datasets.DefaultSineConfig())
	if err != nil {
		t.Fatal(err)
	}
	feat, _ := features.NewDenseFromColumns(X)
	lab, _ := features.NewLabelsFromMatrix(Y)
	gk, _ := kernel.NewGaussian(1.0)
	if err := gk.Init(feat, feat); err != nil {
		t.Fatal(err)
	}
	krr := kernel_ridge.NewKernelRidgeRegression(gk, lab, kernel_ridge.WithTau(1e-3))
	if err := krr.Train(); err != nil {
		t.Fatal(err)
	}

	XE, YE, err := datasets.ComputeOutputIsolinesSine(krr, gk, feat, datasets.DefaultIsolineConfig())
	if err != nil {
		t.Fatalf("ComputeOutputIsolinesSine: %v", err)
	}
	if _, c := XE.Dims(); c != 500 || len(YE) != 500 {
		t.Fatalf("got %d inputs and %d outputs, want 500", c, len(YE))
	}
	if gk.Rhs().NumVectors() != 500 {
		t.Error("kernel rhs should be the prediction range")
	}

	for _, i := range []int{0, 200, 499} {
		if d := math.Abs(YE[i] - math.Sin(XE.At(0, i))); d > 0.1 {
			t.Errorf("prediction at %v off by %v", XE.At(0, i), d)
		}
	}

	one, err := krr.ApplyOne(200)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(one-YE[200]) > 1e-12 {
		t.Errorf("ApplyOne(200) = %v, want %v", one, YE[200])
	}
}

type doubler struct{}

func (doubler) Transform(X mat.Matrix) (mat.Matrix, error) {
	var out mat.Dense
	out.Scale(2, X)
	return &out, nil
}

func TestComputeOutputIsolinesSine_Scaler(t *testing.T) {
	train, _ := features.NewDenseFromSlice([]float64{-1, 0, 1})
	lab, _ := features.NewLabels([]float64{1, 2, 3})
	lk := kernel.NewLinear()
	if err := lk.Init(train, train); err != nil {
		t.Fatal(err)
	}
	krr := kernel_ridge.NewKernelRidgeRegression(lk, lab)
	if err := krr.Train(); err != nil {
		t.Fatal(err)
	}

	cfg := datasets.IsolineConfig{Samples: 10, Low: 0, High: 1, Seed: 5, Scaler: doubler{}}
	XE, _, err := datasets.ComputeOutputIsolinesSine(krr, lk, train, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		got := lk.Rhs().Vector(i)[0]
		if want := 2 * XE.At(0, i); got != want {
			t.Fatalf("rhs[%d] = %v, want scaled input %v", i, got, want)
		}
		if x := XE.At(0, i); x < 0 || x >= 1 {
			t.Fatalf("XE should stay unscaled, got %v", x)
		}
	}
}

func TestMeanShiftGenerator(t *testing.T) {
	gen, err := datasets.NewMeanShiftGenerator(2.0, 3, 1, 42)
	if err != nil {
		t.Fatalf("NewMeanShiftGenerator: %v", err)
	}
	if gen.Dimension() != 3 {
		t.Errorf("Dimension() = %d, want 3", gen.Dimension())
	}

	m, err := gen.Sample(5000)
	if err != nil {
		t.Fatal(err)
	}
	for j, want := range []float64{0, 2, 0} {
		mean, std := stat.MeanStdDev(mat.Col(nil, j, m), nil)
		if math.Abs(mean-want) > 0.1 {
			t.Errorf("mean of dimension %d = %v, want ~%v", j, mean, want)
		}
		if math.Abs(std-1) > 0.1 {
			t.Errorf("std of dimension %d = %v, want ~1", j, std)
		}
	}

	if len(gen.Next()) != 3 {
		t.Error("Next() should return a vector of the configured dimension")
	}
}

func TestMeanShiftGenerator_Validation(t *testing.T) {
	_, err := datasets.NewMeanShiftGenerator(1, 2, 2, 0)
	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("dimShift == dim: expected ValidationError, got %v", err)
	}
	if _, err := datasets.NewMeanShiftGenerator(1, 0, 0, 0); err == nil {
		t.Error("zero dimension should be rejected")
	}

	gen, _ := datasets.NewMeanShiftGenerator(1, 2, 0, 0)
	if _, err := gen.Sample(0); err == nil {
		t.Error("Sample(0) should be rejected")
	}
}
