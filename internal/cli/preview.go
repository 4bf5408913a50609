package cli

import (
	"strings"

	"github.com/matzehuels/cellstack/pkg/layout"
)

// Preview glyphs.
const (
	glyphCell     = '█'
	glyphBus      = '═'
	glyphPositive = '+'
	glyphNegative = '−'
)

// renderPreview draws a scene with one character per cell. Series
// connectors are brackets on the side the diagram puts them, and the
// terminals sit where the diagram places them.
func renderPreview(sc layout.Scene) string {
	if sc.Orientation == layout.OrientationRow {
		return previewRow(sc)
	}
	return previewGrid(sc)
}

// previewGrid draws one line per series group, positive terminal on top.
func previewGrid(sc layout.Scene) string {
	s, p := sc.RenderedSeries, sc.RenderedParallel
	firstCol, lastCol := 2, 2*p
	cv := newCanvas(s+2, 2*p+3)

	cv.set(0, firstCol, glyphPositive)
	for r := 0; r < s; r++ {
		y := r + 1
		for c := 0; c < p; c++ {
			cv.set(y, firstCol+2*c, glyphCell)
			if c > 0 {
				cv.set(y, firstCol+2*c-1, glyphBus)
			}
		}
		// Connector r joins rows r and r+1; the one above joins r-1 and r.
		if r < s-1 {
			if layout.ConnectorSide(layout.OrientationGrid, r) == layout.SideRight {
				cv.set(y, lastCol+2, '┐')
			} else {
				cv.set(y, 0, '┌')
			}
		}
		if r > 0 {
			if layout.ConnectorSide(layout.OrientationGrid, r-1) == layout.SideRight {
				cv.set(y, lastCol+2, '┘')
			} else {
				cv.set(y, 0, '└')
			}
		}
	}

	x := lastCol
	if sc.Negative.Side == layout.SideLeft {
		x = firstCol
	}
	cv.set(s+1, x, glyphNegative)
	return cv.String()
}

// previewRow draws the cells side by side with top connectors above and
// bottom connectors below.
func previewRow(sc layout.Scene) string {
	s := sc.RenderedSeries
	last := 2 * (s - 1)
	cv := newCanvas(5, 2*s-1)

	cv.set(0, 0, glyphPositive)
	for i := 0; i < s; i++ {
		cv.set(2, 2*i, glyphCell)
	}
	for _, c := range sc.Connectors {
		y := 3
		open, end := '└', '┘'
		if c.Side == layout.SideTop {
			y, open, end = 1, '┌', '┐'
		}
		x := 2 * c.Index
		cv.set(y, x, open)
		cv.set(y, x+1, '─')
		cv.set(y, x+2, end)
	}
	if sc.Negative.Side == layout.SideTop {
		cv.set(0, last, glyphNegative)
	} else {
		cv.set(4, last, glyphNegative)
	}
	return cv.String()
}

type canvas [][]rune

func newCanvas(h, w int) canvas {
	cv := make(canvas, h)
	for i := range cv {
		cv[i] = []rune(strings.Repeat(" ", w))
	}
	return cv
}

func (cv canvas) set(y, x int, r rune) {
	if y >= 0 && y < len(cv) && x >= 0 && x < len(cv[y]) {
		cv[y][x] = r
	}
}

// String joins the lines, trimming trailing blanks and empty trailing lines.
func (cv canvas) String() string {
	lines := make([]string, len(cv))
	for i, l := range cv {
		lines[i] = strings.TrimRight(string(l), " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
