package plotting

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/krr/pkg/errors"
)

func sineFigure(t *testing.T) *Figure {
	t.Helper()
	xs := make([]float64, 50)
	ys := make([]float64, 50)
	for i := range xs {
		xs[i] = -2 + 4*float64(i)/49
		ys[i] = math.Sin(xs[i])
	}

	f := NewFigure("KernelRidgeRegression on Sine")
	if err := f.Scatter("train data", xs, ys, TabRed); err != nil {
		t.Fatalf("Scatter: %v", err)
	}
	if err := f.Line("train output", xs, ys, TabBlue); err != nil {
		t.Fatalf("Line: %v", err)
	}
	if err := f.Marker("", xs[20], ys[20], TabGreen); err != nil {
		t.Fatalf("Marker: %v", err)
	}
	return f
}

func TestFigure_Render(t *testing.T) {
	tests := []struct {
		format string
		prefix []byte
	}{
		{"png", []byte("\x89PNG")},
		{"svg", []byte("<?xml")},
		{"PDF", []byte("%PDF")},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f := sineFigure(t)
			var buf bytes.Buffer
			if err := f.Render(&buf, 4, 3, tt.format); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), tt.prefix) {
				t.Errorf("output starts with %q, want %q", buf.Bytes()[:8], tt.prefix)
			}
		})
	}
}

func TestFigure_Save(t *testing.T) {
	f := sineFigure(t)
	if f.Len() != 3 {
		t.Errorf("Len() = %d, want 3", f.Len())
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := f.Save(path, 6.4, 4.8); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("saved file is empty")
	}
}

func TestFigure_Errors(t *testing.T) {
	f := NewFigure("errors")

	err := f.Line("bad", []float64{1, 2}, []float64{1}, TabBlue)
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("length mismatch: expected DimensionError, got %v", err)
	}

	err = f.Scatter("empty", nil, nil, TabRed)
	var valErr *errors.ValueError
	if !errors.As(err, &valErr) {
		t.Errorf("empty series: expected ValueError, got %v", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, 4, 3, "png"); err == nil {
		t.Error("rendering a figure without series should fail")
	}

	f = sineFigure(t)
	if err := f.Render(&buf, 0, 3, "png"); err == nil {
		t.Error("zero width should fail")
	}
	if err := f.Render(&buf, 4, 3, "bmp"); err == nil {
		t.Error("unsupported format should fail")
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]string{
		"out.png":         "png",
		"/tmp/figure.SVG": "svg",
		"noext":           "",
		"dir.v1/plot.pdf": "pdf",
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %q, want %q", path, got, want)
		}
	}
}
