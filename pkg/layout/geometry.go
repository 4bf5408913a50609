package layout

import "math"

// Rect is an axis-aligned rectangle. Y grows downwards.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Segment is a straight wire between two points.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.X2-s.X1, s.Y2-s.Y1)
}

// Geometry constants in SVG user units.
const (
	CellWidth      = 32.0
	CellHeight     = 64.0
	CellGapX       = 24.0
	CellGapY       = 32.0
	Padding        = 20.0
	BusBarOffset   = 8.0 // distance from the cell edge to the outer edge of a bus bar
	BusBarHeight   = 6.0
	ConnectorWidth = 12.0
	TerminalRadius = 12.0
	TerminalOffset = 40.0 // length of the wire between pack and terminal
	WireWidth      = 4.0
)

const (
	pitchX  = CellWidth + CellGapX
	pitchY  = CellHeight + CellGapY
	cellTop = Padding + TerminalOffset
)

func contentWidth(n int) float64 {
	return float64(n)*CellWidth + float64(n-1)*CellGapX
}
