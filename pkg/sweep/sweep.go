// Package sweep tabulates and plots how pack sizing tracks a range of
// desired voltages for one cell profile.
//
// Rounding to whole cells makes the actual pack voltage a staircase over the
// desired voltage. [Compute] samples that staircase and [Plot] draws it with
// gonum/plot, next to the ideal line, as SVG or PNG.
package sweep

import (
	"bytes"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/errors"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// MaxPoints bounds the number of samples in one sweep.
const MaxPoints = 5000

// Chart dimensions.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Options describes the sweep range.
type Options struct {
	Cell cells.Spec
	Min  float64 // lowest desired voltage
	Max  float64 // highest desired voltage
	Step float64
}

// Point is one sample of the sweep.
type Point struct {
	Desired float64 `json:"desired"`
	Actual  float64 `json:"actual"`
	Series  int     `json:"series"`
}

// Deviation returns Actual - Desired.
func (p Point) Deviation() float64 { return p.Actual - p.Desired }

// Compute samples desired voltages from Min to Max inclusive.
func Compute(opts Options) ([]Point, error) {
	if err := errors.ValidatePositive("min voltage", opts.Min); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive("max voltage", opts.Max); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive("step", opts.Step); err != nil {
		return nil, err
	}
	if opts.Max < opts.Min {
		return nil, errors.New(errors.ErrCodeInvalidInput, "max voltage %g is below min voltage %g", opts.Max, opts.Min)
	}
	// Checked as a float: tiny steps overflow int.
	q := math.Floor((opts.Max-opts.Min)/opts.Step + 1e-9)
	if !(q < MaxPoints) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "sweep has %.0f points (max %d); increase the step", q+1, MaxPoints)
	}
	n := int(q) + 1

	points := make([]Point, 0, n)
	for i := range n {
		v := opts.Min + float64(i)*opts.Step
		cfg := sizing.Compute(sizing.Request{Voltage: v, Capacity: opts.Cell.Capacity, Cell: opts.Cell})
		points = append(points, Point{Desired: v, Actual: cfg.Voltage, Series: cfg.Series})
	}
	return points, nil
}

// Plot draws points as an SVG or PNG chart.
func Plot(points []Point, cell cells.Spec, format string, w, h vg.Length) ([]byte, error) {
	if format != "svg" && format != "png" {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid sweep format: %q (must be one of: png, svg)", format)
	}
	if len(points) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no points to plot")
	}

	p := plot.New()
	p.Title.Text = "Pack voltage for " + cell.Name
	p.X.Label.Text = "Desired voltage (V)"
	p.Y.Label.Text = "Actual voltage (V)"
	p.Add(plotter.NewGrid())

	actual := make(plotter.XYs, len(points))
	ideal := make(plotter.XYs, len(points))
	for i, pt := range points {
		actual[i] = plotter.XY{X: pt.Desired, Y: pt.Actual}
		ideal[i] = plotter.XY{X: pt.Desired, Y: pt.Desired}
	}

	actualLine, err := plotter.NewLine(actual)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build actual line")
	}
	actualLine.StepStyle = plotter.MidStep
	actualLine.LineStyle.Width = vg.Points(1.5)
	actualLine.LineStyle.Color = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}

	idealLine, err := plotter.NewLine(ideal)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build ideal line")
	}
	idealLine.LineStyle.Color = color.Gray{Y: 0x80}
	idealLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(idealLine, actualLine)
	p.Legend.Add("actual", actualLine)
	p.Legend.Add("ideal", idealLine)
	p.Legend.Top = true
	p.Legend.Left = true

	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s", format)
	}
	return buf.Bytes(), nil
}
