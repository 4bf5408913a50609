package layout

// grid lays out s rows of p cells. Counts are already clamped.
func grid(s, p int) Scene {
	w := contentWidth(p)
	leftX := Padding + CellWidth/2
	rightX := Padding + w - CellWidth/2

	sc := Scene{
		Orientation:      OrientationGrid,
		RenderedSeries:   s,
		RenderedParallel: p,
		Width:            w + 2*Padding,
		Height:           float64(s)*CellHeight + float64(s-1)*CellGapY + 2*Padding + 2*TerminalOffset,
		Cells:            make([]Cell, 0, s*p),
		Connectors:       make([]Connector, 0, s-1),
	}

	for r := 0; r < s; r++ {
		y := rowY(r)
		for c := 0; c < p; c++ {
			sc.Cells = append(sc.Cells, Cell{
				Row:  r,
				Col:  c,
				Rect: Rect{X: Padding + float64(c)*pitchX, Y: y, W: CellWidth, H: CellHeight},
			})
		}
		if p > 1 {
			span := Rect{X: leftX, W: rightX - leftX, H: BusBarHeight}
			pos, neg := span, span
			pos.Y = y - BusBarOffset
			neg.Y = y + CellHeight + BusBarOffset - BusBarHeight
			sc.BusBars = append(sc.BusBars,
				BusBar{Row: r, Polarity: Positive, Rect: pos},
				BusBar{Row: r, Polarity: Negative, Rect: neg},
			)
		}
		if r < s-1 {
			side := ConnectorSide(OrientationGrid, r)
			x := leftX
			if side == SideRight {
				x = rightX - ConnectorWidth
			}
			sc.Connectors = append(sc.Connectors, Connector{
				Index: r,
				Side:  side,
				Rect: Rect{
					X: x,
					Y: y + CellHeight + BusBarOffset,
					W: ConnectorWidth,
					H: CellGapY - 2*BusBarOffset,
				},
			})
		}
	}

	top := rowY(0)
	sc.Positive = Terminal{
		Polarity: Positive,
		Side:     SideLeft,
		CX:       leftX,
		CY:       top - TerminalOffset,
		R:        TerminalRadius,
		Wire:     Segment{X1: leftX, Y1: top - BusBarOffset, X2: leftX, Y2: top - TerminalOffset},
	}

	side := ExitSide(OrientationGrid, s)
	x := rightX
	if side == SideLeft {
		x = leftX
	}
	bottom := rowY(s-1) + CellHeight + BusBarOffset
	sc.Negative = Terminal{
		Polarity: Negative,
		Side:     side,
		CX:       x,
		CY:       bottom + TerminalOffset,
		R:        TerminalRadius,
		Wire:     Segment{X1: x, Y1: bottom, X2: x, Y2: bottom + TerminalOffset},
	}
	return sc
}

func rowY(r int) float64 {
	return cellTop + float64(r)*pitchY
}
