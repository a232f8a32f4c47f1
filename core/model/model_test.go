package model

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YuminosukeSato/krr/pkg/errors"
)

func sampleWeights() *ModelWeights {
	return &ModelWeights{
		ModelType:       "KernelRidgeRegression",
		Version:         "1.0",
		Coefficients:    []float64{0.5, -0.25},
		SupportVectors:  [][]float64{{-1}, {1}},
		Kernel:          "GaussianKernel",
		KernelParams:    map[string]interface{}{"width": 1.0},
		Hyperparameters: map[string]interface{}{"tau": 1e-3},
		IsFitted:        true,
	}
}

func TestStateManager(t *testing.T) {
	s := NewStateManager()
	if s.IsFitted() {
		t.Fatal("new StateManager should not be fitted")
	}

	err := s.RequireFitted("KernelRidgeRegression", "Apply")
	var nf *errors.NotFittedError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFittedError, got %v", err)
	}

	s.SetFitted(1, 100)
	if err := s.RequireFitted("KernelRidgeRegression", "Apply"); err != nil {
		t.Errorf("RequireFitted after SetFitted: %v", err)
	}
	if f, n := s.Dimensions(); f != 1 || n != 100 {
		t.Errorf("Dimensions() = (%d, %d), want (1, 100)", f, n)
	}

	state := s.GetState()
	s.Reset()
	if s.IsFitted() {
		t.Error("Reset should clear fitted state")
	}
	s.SetState(state)
	if !s.IsFitted() {
		t.Error("SetState should restore fitted state")
	}
}

func TestModelWeights_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(mw *ModelWeights)
		wantErr string
	}{
		{"valid", func(mw *ModelWeights) {}, ""},
		{"missing type", func(mw *ModelWeights) { mw.ModelType = "" }, "model_type"},
		{"missing kernel", func(mw *ModelWeights) { mw.Kernel = "" }, "kernel is required"},
		{"no coefficients", func(mw *ModelWeights) {
			mw.Coefficients = nil
			mw.SupportVectors = nil
		}, "must have coefficients"},
		{"vector count", func(mw *ModelWeights) { mw.SupportVectors = mw.SupportVectors[:1] }, "support vectors"},
		{"ragged vectors", func(mw *ModelWeights) { mw.SupportVectors[1] = []float64{1, 2} }, "features"},
		{"featureless vectors", func(mw *ModelWeights) { mw.SupportVectors = [][]float64{{}, {}} }, "at least one feature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := sampleWeights()
			tt.mutate(mw)
			err := mw.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestModelWeights_Clone(t *testing.T) {
	mw := sampleWeights()
	clone := mw.Clone()

	clone.Coefficients[0] = 99
	clone.SupportVectors[0][0] = 99
	clone.KernelParams["width"] = 2.0

	if mw.Coefficients[0] != 0.5 || mw.SupportVectors[0][0] != -1 || mw.KernelParams["width"] != 1.0 {
		t.Error("Clone should not share storage with the original")
	}
}

func TestReadWeights_FeaturelessVectors(t *testing.T) {
	data := `{"model_type":"KernelRidgeRegression","version":"1.0.0","coefficients":[1],` +
		`"support_vectors":[[]],"kernel":"GaussianKernel","is_fitted":true}`
	_, err := ReadWeights(strings.NewReader(data))
	if err == nil {
		t.Fatal("ReadWeights should reject support vectors without features")
	}
	var valErr *errors.ValueError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValueError, got %T: %v", err, err)
	}
}

func TestWeightsPersistence(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWeights(sampleWeights(), &buf); err != nil {
		t.Fatalf("WriteWeights: %v", err)
	}

	got, err := ReadWeights(&buf)
	if err != nil {
		t.Fatalf("ReadWeights: %v", err)
	}
	if got.Kernel != "GaussianKernel" || got.KernelParams["width"] != 1.0 {
		t.Errorf("unexpected kernel after round trip: %s %v", got.Kernel, got.KernelParams)
	}

	path := filepath.Join(t.TempDir(), "krr.json")
	if err := SaveWeights(sampleWeights(), path); err != nil {
		t.Fatalf("SaveWeights: %v", err)
	}
	loaded, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("LoadWeights: %v", err)
	}
	if len(loaded.Coefficients) != 2 || loaded.Coefficients[1] != -0.25 {
		t.Errorf("Coefficients = %v", loaded.Coefficients)
	}

	bad := sampleWeights()
	bad.Version = ""
	if err := WriteWeights(bad, &buf); err == nil {
		t.Error("WriteWeights should reject invalid weights")
	}
}
