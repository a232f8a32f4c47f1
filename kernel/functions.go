package kernel

import (
	"math"

	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

const (
	GaussianName   = "GaussianKernel"
	LinearName     = "LinearKernel"
	PolynomialName = "PolynomialKernel"
)

// Gaussian is the RBF kernel k(x, y) = exp(-||x - y||² / width).
type Gaussian struct {
	base
	width float64
}

// NewGaussian returns a Gaussian kernel. Width must be positive and finite.
func NewGaussian(width float64) (*Gaussian, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, errors.NewValidationError("width", "must be positive and finite", width)
	}
	g := &Gaussian{width: width}
	g.base = base{name: GaussianName, fn: g.eval}
	return g, nil
}

func (g *Gaussian) eval(x, y []float64) float64 {
	var sq float64
	for i := range x {
		d := x[i] - y[i]
		sq += d * d
	}
	return errors.StabilizeExp(-sq / g.width)
}

// Width returns the kernel width.
func (g *Gaussian) Width() float64 { return g.width }

func (g *Gaussian) Params() map[string]interface{} {
	return map[string]interface{}{"width": g.width}
}

// Linear is the kernel k(x, y) = <x, y>.
type Linear struct {
	base
}

// NewLinear returns a linear kernel.
func NewLinear() *Linear {
	return &Linear{base: base{name: LinearName, fn: floats.Dot}}
}

func (l *Linear) Params() map[string]interface{} {
	return map[string]interface{}{}
}

// Polynomial is the kernel k(x, y) = (<x, y> + c)^degree.
type Polynomial struct {
	base
	degree int
	c      float64
}

// NewPolynomial returns a polynomial kernel. Degree must be at least 1.
func NewPolynomial(degree int, c float64) (*Polynomial, error) {
	if degree < 1 {
		return nil, errors.NewValidationError("degree", "must be >= 1", degree)
	}
	p := &Polynomial{degree: degree, c: c}
	p.base = base{name: PolynomialName, fn: p.eval}
	return p, nil
}

func (p *Polynomial) eval(x, y []float64) float64 {
	return math.Pow(floats.Dot(x, y)+p.c, float64(p.degree))
}

func (p *Polynomial) Params() map[string]interface{} {
	return map[string]interface{}{"degree": p.degree, "c": p.c}
}
