package preprocessing

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler(t *testing.T) {
	tests := []struct {
		name      string
		withMean  bool
		withStd   bool
		X         *mat.Dense
		wantMean  []float64
		wantScale []float64
	}{
		{
			name:      "mean and std",
			withMean:  true,
			withStd:   true,
			X:         mat.NewDense(4, 2, []float64{1, 10, 2, 10, 3, 10, 4, 10}),
			wantMean:  []float64{2.5, 10},
			wantScale: []float64{math.Sqrt(1.25), 1},
		},
		{
			name:      "std only",
			withMean:  false,
			withStd:   true,
			X:         mat.NewDense(2, 1, []float64{-1, 1}),
			wantMean:  []float64{0},
			wantScale: []float64{1},
		},
		{
			name:      "mean only",
			withMean:  true,
			withStd:   false,
			X:         mat.NewDense(2, 1, []float64{2, 6}),
			wantMean:  []float64{4},
			wantScale: []float64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStandardScaler(tt.withMean, tt.withStd)
			Xs, err := s.FitTransform(tt.X)
			if err != nil {
				t.Fatalf("FitTransform: %v", err)
			}
			for j := range tt.wantMean {
				if math.Abs(s.Mean[j]-tt.wantMean[j]) > 1e-12 {
					t.Errorf("Mean[%d] = %v, want %v", j, s.Mean[j], tt.wantMean[j])
				}
				if math.Abs(s.Scale[j]-tt.wantScale[j]) > 1e-12 {
					t.Errorf("Scale[%d] = %v, want %v", j, s.Scale[j], tt.wantScale[j])
				}
			}

			back, err := s.InverseTransform(Xs)
			if err != nil {
				t.Fatalf("InverseTransform: %v", err)
			}
			if !mat.EqualApprox(back, tt.X, 1e-12) {
				t.Errorf("InverseTransform(Transform(X)) = %v, want %v", mat.Formatted(back), mat.Formatted(tt.X))
			}
		})
	}
}

func TestStandardScaler_ZeroMeanUnitVariance(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{-2, -1, 0, 3, 5})
	Xs, err := NewStandardScalerDefault().FitTransform(X)
	if err != nil {
		t.Fatal(err)
	}
	var sum, sq float64
	for i := 0; i < 5; i++ {
		v := Xs.At(i, 0)
		sum += v
		sq += v * v
	}
	if math.Abs(sum/5) > 1e-12 {
		t.Errorf("mean after scaling = %v, want 0", sum/5)
	}
	if math.Abs(sq/5-1) > 1e-12 {
		t.Errorf("variance after scaling = %v, want 1", sq/5)
	}
}

func TestStandardScaler_Errors(t *testing.T) {
	s := NewStandardScalerDefault()

	if _, err := s.Transform(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Error("Transform before Fit should fail")
	} else {
		var nf *errors.NotFittedError
		if !errors.As(err, &nf) {
			t.Errorf("expected NotFittedError, got %T", err)
		}
	}

	if err := s.Fit(&mat.Dense{}); err == nil {
		t.Error("Fit on empty data should fail")
	}

	if err := s.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})); err != nil {
		t.Fatal(err)
	}
	_, err := s.Transform(mat.NewDense(1, 3, []float64{1, 2, 3}))
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("expected DimensionError, got %v", err)
	}
}

func TestStandardScaler_String(t *testing.T) {
	s := NewStandardScalerDefault()
	if got := s.String(); got != "StandardScaler(with_mean=true, with_std=true)" {
		t.Errorf("String() = %q", got)
	}
	_ = s.Fit(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}))
	if got := s.String(); got != "StandardScaler(with_mean=true, with_std=true, n_features=3)" {
		t.Errorf("String() = %q", got)
	}
	if p := s.GetParams(); p["with_mean"] != true || p["with_std"] != true {
		t.Errorf("GetParams() = %v", p)
	}
}
