// Package plotting renders regression results with gonum/plot.
//
// A Figure collects scatter, line and marker series and writes them as
// an image. Series with a non-empty label appear in the legend.
package plotting

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Tableau palette colors.
var (
	TabBlue   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	TabOrange = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	TabGreen  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	TabRed    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

const (
	scatterRadius = 3
	markerRadius  = 6
	lineWidth     = 1.5
)

// Figure is a single 2-D plot.
type Figure struct {
	p      *plot.Plot
	series int
}

// NewFigure returns an empty figure with the given title.
func NewFigure(title string) *Figure {
	p := plot.New()
	p.Title.Text = title
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())
	return &Figure{p: p}
}

// SetAxisLabels labels the x and y axes.
func (f *Figure) SetAxisLabels(x, y string) {
	f.p.X.Label.Text = x
	f.p.Y.Label.Text = y
}

// Len returns the number of series added so far.
func (f *Figure) Len() int { return f.series }

// Scatter adds points drawn as filled circles.
func (f *Figure) Scatter(label string, xs, ys []float64, c color.Color) error {
	pts, err := points("Figure.Scatter", xs, ys)
	if err != nil {
		return err
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "plotting: scatter")
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(scatterRadius)
	f.add(label, s, s)
	return nil
}

// Line adds a polyline through the points in order.
func (f *Figure) Line(label string, xs, ys []float64, c color.Color) error {
	pts, err := points("Figure.Line", xs, ys)
	if err != nil {
		return err
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "plotting: line")
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(lineWidth)
	f.add(label, l, l)
	return nil
}

// Marker adds a single "+" glyph at (x, y).
func (f *Figure) Marker(label string, x, y float64, c color.Color) error {
	pts, err := points("Figure.Marker", []float64{x}, []float64{y})
	if err != nil {
		return err
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "plotting: marker")
	}
	s.GlyphStyle.Shape = draw.PlusGlyph{}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(markerRadius)
	f.add(label, s, s)
	return nil
}

func (f *Figure) add(label string, p plot.Plotter, thumb plot.Thumbnailer) {
	f.p.Add(p)
	if label != "" {
		f.p.Legend.Add(label, thumb)
	}
	f.series++
}

// Save writes the figure to path. The format follows the file extension
// (png, svg, pdf, eps, jpg, tif). width and height are in inches.
func (f *Figure) Save(path string, width, height float64) error {
	if err := f.checkSize(width, height); err != nil {
		return err
	}
	if err := f.p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "plotting: save %s", path)
	}
	return nil
}

// Render renders the figure in format ("png", "svg", ...) to w.
func (f *Figure) Render(w io.Writer, width, height float64, format string) error {
	if err := f.checkSize(width, height); err != nil {
		return err
	}
	wt, err := f.p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, strings.ToLower(format))
	if err != nil {
		return errors.Wrapf(err, "plotting: format %q", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "plotting: write")
	}
	return nil
}

// FormatOf returns the image format implied by path's extension.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func (f *Figure) checkSize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return errors.NewValidationError("size", "width and height must be positive",
			fmt.Sprintf("%gx%g", width, height))
	}
	if f.series == 0 {
		return errors.NewValueError("Figure.Render", "figure has no series")
	}
	return nil
}

func points(op string, xs, ys []float64) (plotter.XYs, error) {
	if len(xs) != len(ys) {
		return nil, errors.NewDimensionError(op, len(xs), len(ys), 0)
	}
	if len(xs) == 0 {
		return nil, errors.NewValueError(op, "series is empty")
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts, nil
}
