package layout

import (
	"fmt"

	"github.com/matzehuels/cellstack/pkg/errors"
)

// Display caps. Packs beyond these counts are drawn clamped.
const (
	MaxSeries   = 20
	MaxParallel = 15
)

// Mode is the caller's layout preference.
type Mode string

const (
	// ModeAuto draws a single row for 1P packs with more than one cell, and a
	// grid otherwise.
	ModeAuto Mode = "auto"
	// ModeGrid always draws S rows of P cells.
	ModeGrid Mode = "grid"
	// ModeRow draws a single horizontal row. Only valid for 1P packs.
	ModeRow Mode = "row"
)

// Modes lists the accepted modes in display order.
var Modes = []Mode{ModeAuto, ModeGrid, ModeRow}

// ParseMode converts a user supplied string to a Mode. The empty string maps
// to ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeGrid, ModeRow:
		return Mode(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "invalid layout mode: %q (must be one of: auto, grid, row)", s)
}

// Next returns the mode after m in Modes, wrapping around.
func (m Mode) Next() Mode {
	for i, x := range Modes {
		if x == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeAuto
}

// Orientation is the geometry actually drawn.
type Orientation string

const (
	OrientationGrid Orientation = "grid"
	OrientationRow  Orientation = "row"
)

// Side names the edge a connector or terminal sits on. Grid scenes use left
// and right, row scenes use top and bottom.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Polarity of a bus bar or terminal.
type Polarity string

const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
)

// Cell is one cell slot. In a grid Row is the series group and Col the
// position within the parallel group; in a row scene Row is always 0.
type Cell struct {
	Row, Col int
	Rect
}

// BusBar joins same-polarity ends of the cells in one parallel group.
type BusBar struct {
	Row      int
	Polarity Polarity
	Rect
}

// Connector links series group Index to group Index+1.
type Connector struct {
	Index int
	Side  Side
	Rect
}

// Terminal is an external pack contact and the wire leading to it.
type Terminal struct {
	Polarity Polarity
	Side     Side
	CX, CY   float64
	R        float64
	Wire     Segment
}

// Scene is the fully positioned diagram for one configuration.
type Scene struct {
	Mode        Mode
	Orientation Orientation

	// Series and Parallel are the requested counts.
	Series, Parallel int
	// RenderedSeries and RenderedParallel are the clamped counts drawn.
	RenderedSeries, RenderedParallel int
	// LimitReached is set when either requested count exceeds its cap.
	LimitReached bool

	Width, Height float64

	Cells      []Cell
	BusBars    []BusBar
	Connectors []Connector
	Positive   Terminal
	Negative   Terminal
}

// Compute lays out a pack of series × parallel cells.
//
// It returns an INVALID_INPUT error when either count is below one and an
// INVALID_MODE error for an unknown mode or for ModeRow with more than one
// parallel cell. Everything else succeeds.
func Compute(series, parallel int, mode Mode) (Scene, error) {
	if err := errors.ValidateCount("series count", series); err != nil {
		return Scene{}, err
	}
	if err := errors.ValidateCount("parallel count", parallel); err != nil {
		return Scene{}, err
	}
	s, p, limited := Clamp(series, parallel)
	o, err := Resolve(mode, s, p)
	if err != nil {
		return Scene{}, err
	}

	var sc Scene
	if o == OrientationRow {
		sc = row(s)
	} else {
		sc = grid(s, p)
	}
	sc.Mode = mode
	sc.Series, sc.Parallel = series, parallel
	sc.LimitReached = limited
	return sc, nil
}

// Clamp caps counts to the display limits and reports whether any cap applied.
func Clamp(series, parallel int) (s, p int, limited bool) {
	s, p = min(series, MaxSeries), min(parallel, MaxParallel)
	return s, p, series > MaxSeries || parallel > MaxParallel
}

// Resolve picks the orientation for mode given the clamped counts.
func Resolve(mode Mode, series, parallel int) (Orientation, error) {
	switch mode {
	case ModeGrid:
		return OrientationGrid, nil
	case ModeRow:
		if parallel != 1 {
			return "", errors.New(errors.ErrCodeInvalidMode, "row layout requires a single parallel cell, got %dP", parallel)
		}
		return OrientationRow, nil
	case ModeAuto, "":
		if parallel == 1 && series > 1 {
			return OrientationRow, nil
		}
		return OrientationGrid, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "invalid layout mode: %q", mode)
}

// ConnectorSide returns the edge of series connector i. Grid connectors sit
// on the right after even rows and on the left after odd rows; row connectors
// sit at the bottom after even cells and at the top after odd cells.
func ConnectorSide(o Orientation, i int) Side {
	even := i%2 == 0
	switch {
	case o == OrientationRow && even:
		return SideBottom
	case o == OrientationRow:
		return SideTop
	case even:
		return SideRight
	default:
		return SideLeft
	}
}

// ExitSide returns the side the negative terminal leaves a pack of n series
// groups: the side of the last connector, or the default side when n == 1.
func ExitSide(o Orientation, n int) Side {
	if n > 1 {
		return ConnectorSide(o, n-2)
	}
	if o == OrientationRow {
		return SideBottom
	}
	return SideRight
}

// LastConnector returns the final series connector, if any.
func (s Scene) LastConnector() (Connector, bool) {
	if len(s.Connectors) == 0 {
		return Connector{}, false
	}
	return s.Connectors[len(s.Connectors)-1], true
}

// Key identifies the drawn geometry, e.g. "grid-13x5". Two scenes with the
// same key have identical elements.
func (s Scene) Key() string {
	return fmt.Sprintf("%s-%dx%d", s.Orientation, s.RenderedSeries, s.RenderedParallel)
}
