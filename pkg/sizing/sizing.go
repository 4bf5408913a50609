// Package sizing maps a desired pack voltage and capacity onto a series and
// parallel cell count for a given cell profile.
//
// [Compute] is a total function: it never fails and always returns at least a
// 1S1P pack. Range checks belong to the caller, which is expected to run
// [Request.Validate] and [Clamp] on raw user input first.
package sizing

import (
	"fmt"
	"math"

	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/errors"
)

// Request is the user's target for a pack.
type Request struct {
	Voltage  float64    `json:"voltage"`  // desired pack volts
	Capacity float64    `json:"capacity"` // desired pack amp-hours
	Cell     cells.Spec `json:"cell"`
}

// Validate rejects values the arithmetic cannot handle: non-finite or
// non-positive targets and a cell profile with a non-positive rating.
func (r Request) Validate() error {
	if err := errors.ValidatePositive("voltage", r.Voltage); err != nil {
		return err
	}
	if err := errors.ValidatePositive("capacity", r.Capacity); err != nil {
		return err
	}
	if err := errors.ValidatePositive("cell voltage", r.Cell.Voltage); err != nil {
		return err
	}
	return errors.ValidatePositive("cell capacity", r.Cell.Capacity)
}

// Configuration is the pack derived from a Request.
type Configuration struct {
	Series     int        `json:"series"`
	Parallel   int        `json:"parallel"`
	TotalCells int        `json:"total_cells"`
	Voltage    float64    `json:"voltage"`  // series × cell voltage
	Capacity   float64    `json:"capacity"` // parallel × cell capacity
	Cell       cells.Spec `json:"cell"`
}

// Compute sizes the pack. Counts are rounded half away from zero and floored
// at one.
func Compute(req Request) Configuration {
	s := count(req.Voltage, req.Cell.Voltage)
	p := count(req.Capacity, req.Cell.Capacity)
	return Configuration{
		Series:     s,
		Parallel:   p,
		TotalCells: s * p,
		Voltage:    float64(s) * req.Cell.Voltage,
		Capacity:   float64(p) * req.Cell.Capacity,
		Cell:       req.Cell,
	}
}

// count returns max(1, round(want/per)). A quotient that is not a finite
// number (zero rating, NaN input) also collapses to 1.
func count(want, per float64) int {
	q := math.Round(want / per)
	if math.IsNaN(q) || q < 1 {
		return 1
	}
	if q > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(q)
}

// Label returns the conventional pack name, e.g. "13S5P".
func (c Configuration) Label() string {
	return fmt.Sprintf("%dS%dP", c.Series, c.Parallel)
}

// Summary returns a one-line description with one decimal for volts and
// amp-hours, e.g. "13S5P · 48.1 V · 15.0 Ah · 65 cells".
func (c Configuration) Summary() string {
	return fmt.Sprintf("%s · %.1f V · %.1f Ah · %d cells", c.Label(), c.Voltage, c.Capacity, c.TotalCells)
}

// Energy returns the nominal pack energy in watt-hours.
func (c Configuration) Energy() float64 {
	return c.Voltage * c.Capacity
}
