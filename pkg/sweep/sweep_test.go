package sweep

import (
	"bytes"
	"testing"

	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/errors"
)

func balanced(t *testing.T) cells.Spec {
	t.Helper()
	c, err := cells.Default().Get("balanced")
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCompute(t *testing.T) {
	points, err := Compute(Options{Cell: balanced(t), Min: 3.7, Max: 11.1, Step: 3.7})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("len = %d, want 3", len(points))
	}
	for i, pt := range points {
		if pt.Series != i+1 {
			t.Errorf("points[%d].Series = %d, want %d", i, pt.Series, i+1)
		}
		if d := pt.Deviation(); d > 1e-9 || d < -1e-9 {
			t.Errorf("points[%d] deviation = %g, want 0", i, d)
		}
	}
}

func TestComputeRoundsHalfUp(t *testing.T) {
	// 5.6 / 3.7 ≈ 1.51 rounds to 2 cells.
	points, err := Compute(Options{Cell: balanced(t), Min: 5.6, Max: 5.6, Step: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 1 || points[0].Series != 2 {
		t.Errorf("points = %+v, want a single 2S sample", points)
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero step", Options{Min: 1, Max: 2}},
		{"inverted", Options{Min: 10, Max: 5, Step: 1}},
		{"negative min", Options{Min: -1, Max: 5, Step: 1}},
		{"too many points", Options{Min: 1, Max: 100, Step: 0.001}},
		{"step overflows point count", Options{Min: 1, Max: 100, Step: 1e-20}},
		{"huge range", Options{Min: 1, Max: 1e300, Step: 1e-10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Cell = balanced(t)
			_, err := Compute(tt.opts)
			if got := errors.GetCode(err); got != errors.ErrCodeInvalidInput {
				t.Errorf("code = %q, want %q (err %v)", got, errors.ErrCodeInvalidInput, err)
			}
		})
	}
}

func TestPlotSVG(t *testing.T) {
	cell := balanced(t)
	points, err := Compute(Options{Cell: cell, Min: 10, Max: 60, Step: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	data, err := Plot(points, cell, "svg", DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("output is not svg")
	}
}

func TestPlotRejects(t *testing.T) {
	cell := balanced(t)
	if _, err := Plot([]Point{{Desired: 1, Actual: 3.7, Series: 1}}, cell, "gif", DefaultWidth, DefaultHeight); errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("gif: err = %v", err)
	}
	if _, err := Plot(nil, cell, "svg", DefaultWidth, DefaultHeight); errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("empty: err = %v", err)
	}
}
