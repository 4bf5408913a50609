package layout

// Vertical centres of the row connectors, just outside the cell ends.
const (
	rowConnectorBottom = cellTop + CellHeight + BusBarOffset
	rowConnectorTop    = cellTop - BusBarOffset
)

// row lays out s single cells side by side. The count is already clamped.
func row(s int) Scene {
	sc := Scene{
		Orientation:      OrientationRow,
		RenderedSeries:   s,
		RenderedParallel: 1,
		Width:            contentWidth(s) + 2*Padding,
		Height:           CellHeight + 2*Padding + 2*TerminalOffset,
		Cells:            make([]Cell, 0, s),
		Connectors:       make([]Connector, 0, s-1),
	}

	for i := 0; i < s; i++ {
		x := Padding + float64(i)*pitchX
		sc.Cells = append(sc.Cells, Cell{
			Col:  i,
			Rect: Rect{X: x, Y: cellTop, W: CellWidth, H: CellHeight},
		})
		if i == s-1 {
			break
		}
		side := ConnectorSide(OrientationRow, i)
		cy := rowConnectorTop
		if side == SideBottom {
			cy = rowConnectorBottom
		}
		sc.Connectors = append(sc.Connectors, Connector{
			Index: i,
			Side:  side,
			Rect:  Rect{X: x + CellWidth, Y: cy - BusBarHeight/2, W: CellGapX, H: BusBarHeight},
		})
	}

	first := Padding + CellWidth/2
	sc.Positive = Terminal{
		Polarity: Positive,
		Side:     SideTop,
		CX:       first,
		CY:       cellTop - TerminalOffset,
		R:        TerminalRadius,
		Wire:     Segment{X1: first, Y1: cellTop, X2: first, Y2: cellTop - TerminalOffset},
	}

	side := ExitSide(OrientationRow, s)
	x := Padding + float64(s-1)*pitchX + CellWidth/2
	t := Terminal{Polarity: Negative, Side: side, CX: x, R: TerminalRadius}
	if side == SideBottom {
		edge := cellTop + CellHeight
		t.CY = edge + TerminalOffset
		t.Wire = Segment{X1: x, Y1: edge, X2: x, Y2: edge + TerminalOffset}
	} else {
		t.CY = cellTop - TerminalOffset
		t.Wire = Segment{X1: x, Y1: cellTop, X2: x, Y2: cellTop - TerminalOffset}
	}
	sc.Negative = t
	return sc
}
