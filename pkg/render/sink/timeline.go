package sink

import "github.com/matzehuels/cellstack/pkg/layout"

// Entrance timing in seconds.
const (
	baseDelay      = 0.1
	rowStep        = 0.2  // per grid row
	gridCellStep   = 0.03 // per cell within a grid row
	rowCellStep    = 0.1  // per cell in a row scene
	connectorLag   = rowStep / 2
	badgeLag       = 0.3
	wireDuration   = 0.5
	popDuration    = 0.5
	busDuration    = 0.4
	strapDuration  = 0.3
	popOrigin      = "center"
	barOrigin      = "left center"
	strapOriginTop = "center top"
)

// timeline computes entrance delays for the parts of one scene.
type timeline struct {
	row    bool
	series int
}

func newTimeline(sc layout.Scene) timeline {
	return timeline{row: sc.Orientation == layout.OrientationRow, series: sc.RenderedSeries}
}

func (t timeline) rowDelay(r int) float64 {
	return baseDelay + float64(r)*rowStep
}

func (t timeline) cell(c layout.Cell) float64 {
	if t.row {
		return baseDelay + float64(c.Col)*rowCellStep
	}
	return t.rowDelay(c.Row) + float64(c.Col)*gridCellStep
}

func (t timeline) busBar(b layout.BusBar) float64 {
	return t.rowDelay(b.Row)
}

func (t timeline) connector(c layout.Connector) float64 {
	if t.row {
		return baseDelay + float64(c.Index)*rowCellStep + rowCellStep/2
	}
	return t.rowDelay(c.Index) + connectorLag
}

// wire returns when a terminal's lead starts drawing. The negative lead
// follows the last series group.
func (t timeline) wire(p layout.Polarity) float64 {
	if p == layout.Positive {
		return baseDelay
	}
	if t.row {
		return baseDelay + float64(t.series)*rowCellStep
	}
	return baseDelay + float64(t.series)*rowStep
}

func (t timeline) badge(p layout.Polarity) float64 {
	return t.wire(p) + badgeLag
}
