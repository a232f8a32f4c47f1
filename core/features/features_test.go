package features

import (
	"testing"

	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestNewDense(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})

	d, err := NewDense(X)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	if d.NumVectors() != 3 || d.NumFeatures() != 2 {
		t.Errorf("got %d×%d, want 3×2", d.NumVectors(), d.NumFeatures())
	}
	if v := d.Vector(1); v[0] != 3 || v[1] != 4 {
		t.Errorf("Vector(1) = %v, want [3 4]", v)
	}

	// 入力を変更してもコピーには影響しない
	X.Set(1, 0, 100)
	if d.Vector(1)[0] != 3 {
		t.Error("NewDense should copy its input")
	}
}

func TestNewDenseFromColumns(t *testing.T) {
	X := mat.NewDense(1, 4, []float64{-1, 0, 1, 2})

	d, err := NewDenseFromColumns(X)
	if err != nil {
		t.Fatalf("NewDenseFromColumns failed: %v", err)
	}
	if d.NumVectors() != 4 || d.NumFeatures() != 1 {
		t.Fatalf("got %d×%d, want 4×1", d.NumVectors(), d.NumFeatures())
	}
	col := d.Column(0)
	for i, want := range []float64{-1, 0, 1, 2} {
		if col[i] != want {
			t.Errorf("Column(0)[%d] = %v, want %v", i, col[i], want)
		}
	}
}

func TestNewDense_Empty(t *testing.T) {
	if _, err := NewDenseFromSlice(nil); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}
	if _, err := NewLabels(nil); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}
}

func TestNewLabelsFromMatrix(t *testing.T) {
	tests := []struct {
		name    string
		y       mat.Matrix
		want    []float64
		wantErr bool
	}{
		{"column", mat.NewDense(3, 1, []float64{1, 2, 3}), []float64{1, 2, 3}, false},
		{"row", mat.NewDense(1, 3, []float64{4, 5, 6}), []float64{4, 5, 6}, false},
		{"matrix", mat.NewDense(2, 2, []float64{1, 2, 3, 4}), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLabelsFromMatrix(tt.y)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if l.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", l.Len(), len(tt.want))
			}
			for i, w := range tt.want {
				if l.At(i) != w {
					t.Errorf("At(%d) = %v, want %v", i, l.At(i), w)
				}
			}
		})
	}
}

func TestLabels_ValuesIsCopy(t *testing.T) {
	l, err := NewLabels([]float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	v := l.Values()
	v[0] = 42
	if l.At(0) != 1 {
		t.Error("Values() should return a copy")
	}
	if l.Vec().AtVec(1) != 2 {
		t.Error("Vec() should mirror the labels")
	}
}
