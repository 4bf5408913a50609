package sizing

import (
	"math"
	"testing"

	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/errors"
)

const eps = 1e-9

func cell(t *testing.T, id string) cells.Spec {
	t.Helper()
	s, err := cells.Default().Get(id)
	if err != nil {
		t.Fatalf("Get(%q) error: %v", id, err)
	}
	return s
}

func TestComputeExamples(t *testing.T) {
	tests := []struct {
		name         string
		req          Request
		wantSeries   int
		wantParallel int
		wantTotal    int
		wantVoltage  float64
		wantCapacity float64
	}{
		{
			name:       "48V 15Ah balanced",
			req:        Request{Voltage: 48, Capacity: 15, Cell: cell(t, "balanced")},
			wantSeries: 13, wantParallel: 5, wantTotal: 65,
			wantVoltage: 48.1, wantCapacity: 15.0,
		},
		{
			name:       "single cell floors at 1P",
			req:        Request{Voltage: 3.7, Capacity: 1, Cell: cell(t, "very_high_power")},
			wantSeries: 1, wantParallel: 1, wantTotal: 1,
			wantVoltage: 3.7, wantCapacity: 1.5,
		},
		{
			name:       "near-zero targets",
			req:        Request{Voltage: 0.01, Capacity: 0.01, Cell: cell(t, "balanced")},
			wantSeries: 1, wantParallel: 1, wantTotal: 1,
			wantVoltage: 3.7, wantCapacity: 3.0,
		},
		{
			name:       "capacity half rounds away from zero",
			req:        Request{Voltage: 7.4, Capacity: 4.5, Cell: cell(t, "balanced")},
			wantSeries: 2, wantParallel: 2, wantTotal: 4,
			wantVoltage: 7.4, wantCapacity: 6.0,
		},
		{
			name:       "100V 100Ah high capacity",
			req:        Request{Voltage: 100, Capacity: 100, Cell: cell(t, "high_capacity")},
			wantSeries: 27, wantParallel: 29, wantTotal: 783,
			wantVoltage: 99.9, wantCapacity: 101.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.req)
			if got.Series != tt.wantSeries {
				t.Errorf("Series = %d, want %d", got.Series, tt.wantSeries)
			}
			if got.Parallel != tt.wantParallel {
				t.Errorf("Parallel = %d, want %d", got.Parallel, tt.wantParallel)
			}
			if got.TotalCells != tt.wantTotal {
				t.Errorf("TotalCells = %d, want %d", got.TotalCells, tt.wantTotal)
			}
			if math.Abs(got.Voltage-tt.wantVoltage) > eps {
				t.Errorf("Voltage = %v, want %v", got.Voltage, tt.wantVoltage)
			}
			if math.Abs(got.Capacity-tt.wantCapacity) > eps {
				t.Errorf("Capacity = %v, want %v", got.Capacity, tt.wantCapacity)
			}
			if got.Cell != tt.req.Cell {
				t.Errorf("Cell = %v, want %v", got.Cell, tt.req.Cell)
			}
		})
	}
}

func TestComputeProperties(t *testing.T) {
	for _, c := range cells.Default().All() {
		for v := 0.5; v <= 120; v += 3.3 {
			for a := 0.25; a <= 110; a += 7.75 {
				got := Compute(Request{Voltage: v, Capacity: a, Cell: c})

				wantS := int(math.Max(1, math.Round(v/c.Voltage)))
				wantP := int(math.Max(1, math.Round(a/c.Capacity)))
				if got.Series != wantS || got.Parallel != wantP {
					t.Fatalf("%s V=%v C=%v: got %dS%dP, want %dS%dP", c.ID, v, a, got.Series, got.Parallel, wantS, wantP)
				}
				if got.Series < 1 || got.Parallel < 1 {
					t.Fatalf("counts must be >= 1, got %s", got.Label())
				}
				if got.TotalCells != got.Series*got.Parallel {
					t.Fatalf("TotalCells = %d, want %d", got.TotalCells, got.Series*got.Parallel)
				}
				if math.Abs(got.Voltage-float64(got.Series)*c.Voltage) > eps {
					t.Fatalf("Voltage = %v, want S×V_c", got.Voltage)
				}
				if math.Abs(got.Capacity-float64(got.Parallel)*c.Capacity) > eps {
					t.Fatalf("Capacity = %v, want P×C_c", got.Capacity)
				}
			}
		}
	}
}

func TestComputeDegenerateCell(t *testing.T) {
	got := Compute(Request{Voltage: 48, Capacity: 15, Cell: cells.Spec{ID: "zero"}})
	if got.Series != 1 || got.Parallel != 1 {
		t.Errorf("zero-rated cell: got %s, want 1S1P", got.Label())
	}

	got = Compute(Request{Voltage: math.NaN(), Capacity: 15, Cell: cell(t, "balanced")})
	if got.Series != 1 {
		t.Errorf("NaN voltage: Series = %d, want 1", got.Series)
	}
}

func TestLabelAndSummary(t *testing.T) {
	c := Compute(Request{Voltage: 48, Capacity: 15, Cell: cell(t, "balanced")})

	if got := c.Label(); got != "13S5P" {
		t.Errorf("Label() = %q, want %q", got, "13S5P")
	}
	if got, want := c.Summary(), "13S5P · 48.1 V · 15.0 Ah · 65 cells"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if got := c.Energy(); math.Abs(got-721.5) > 1e-6 {
		t.Errorf("Energy() = %v, want 721.5", got)
	}
}

func TestRequestValidate(t *testing.T) {
	good := cell(t, "balanced")
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"valid", Request{Voltage: 48, Capacity: 15, Cell: good}, false},
		{"zero voltage", Request{Voltage: 0, Capacity: 15, Cell: good}, true},
		{"negative capacity", Request{Voltage: 48, Capacity: -1, Cell: good}, true},
		{"NaN voltage", Request{Voltage: math.NaN(), Capacity: 15, Cell: good}, true},
		{"bad cell", Request{Voltage: 48, Capacity: 15, Cell: cells.Spec{ID: "x", Voltage: 3.7}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("code = %v, want INVALID_INPUT", errors.GetCode(err))
			}
		})
	}
}
