package sink

import (
	"encoding/json"

	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name (e.g., "slate", "blueprint") in the
// JSON output so a client can render the same scene the same way.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Configuration jsonConfig      `json:"configuration"`
	Style         string          `json:"style,omitempty"`
	Mode          string          `json:"mode"`
	Orientation   string          `json:"orientation"`
	Requested     jsonCounts      `json:"requested"`
	Rendered      jsonCounts      `json:"rendered"`
	LimitReached  bool            `json:"limit_reached"`
	Width         float64         `json:"width"`
	Height        float64         `json:"height"`
	Cells         []jsonCell      `json:"cells"`
	BusBars       []jsonBusBar    `json:"bus_bars"`
	Connectors    []jsonConnector `json:"connectors"`
	Terminals     []jsonTerminal  `json:"terminals"`
}

type jsonConfig struct {
	Label      string  `json:"label"`
	Series     int     `json:"series"`
	Parallel   int     `json:"parallel"`
	TotalCells int     `json:"total_cells"`
	Voltage    float64 `json:"voltage"`
	Capacity   float64 `json:"capacity"`
	Energy     float64 `json:"energy_wh"`
	Cell       string  `json:"cell"`
}

type jsonCounts struct {
	Series   int `json:"series"`
	Parallel int `json:"parallel"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonCell struct {
	Row int `json:"row"`
	Col int `json:"col"`
	jsonRect
}

type jsonBusBar struct {
	Row      int    `json:"row"`
	Polarity string `json:"polarity"`
	jsonRect
}

type jsonConnector struct {
	Index int    `json:"index"`
	Side  string `json:"side"`
	jsonRect
}

type jsonTerminal struct {
	Polarity string     `json:"polarity"`
	Side     string     `json:"side"`
	CX       float64    `json:"cx"`
	CY       float64    `json:"cy"`
	R        float64    `json:"r"`
	Wire     [4]float64 `json:"wire"`
}

// RenderJSON exports the configuration and scene geometry as indented JSON.
func RenderJSON(cfg sizing.Configuration, sc layout.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Configuration: jsonConfig{
			Label:      cfg.Label(),
			Series:     cfg.Series,
			Parallel:   cfg.Parallel,
			TotalCells: cfg.TotalCells,
			Voltage:    cfg.Voltage,
			Capacity:   cfg.Capacity,
			Energy:     cfg.Energy(),
			Cell:       cfg.Cell.ID,
		},
		Style:        r.style,
		Mode:         string(sc.Mode),
		Orientation:  string(sc.Orientation),
		Requested:    jsonCounts{Series: sc.Series, Parallel: sc.Parallel},
		Rendered:     jsonCounts{Series: sc.RenderedSeries, Parallel: sc.RenderedParallel},
		LimitReached: sc.LimitReached,
		Width:        sc.Width,
		Height:       sc.Height,
		Cells:        make([]jsonCell, 0, len(sc.Cells)),
		BusBars:      make([]jsonBusBar, 0, len(sc.BusBars)),
		Connectors:   make([]jsonConnector, 0, len(sc.Connectors)),
		Terminals:    []jsonTerminal{toJSONTerminal(sc.Positive), toJSONTerminal(sc.Negative)},
	}
	for _, c := range sc.Cells {
		out.Cells = append(out.Cells, jsonCell{Row: c.Row, Col: c.Col, jsonRect: toJSONRect(c.Rect)})
	}
	for _, b := range sc.BusBars {
		out.BusBars = append(out.BusBars, jsonBusBar{Row: b.Row, Polarity: string(b.Polarity), jsonRect: toJSONRect(b.Rect)})
	}
	for _, c := range sc.Connectors {
		out.Connectors = append(out.Connectors, jsonConnector{Index: c.Index, Side: string(c.Side), jsonRect: toJSONRect(c.Rect)})
	}

	return json.MarshalIndent(out, "", "  ")
}

func toJSONRect(r layout.Rect) jsonRect {
	return jsonRect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

func toJSONTerminal(t layout.Terminal) jsonTerminal {
	return jsonTerminal{
		Polarity: string(t.Polarity),
		Side:     string(t.Side),
		CX:       t.CX,
		CY:       t.CY,
		R:        t.R,
		Wire:     [4]float64{t.Wire.X1, t.Wire.Y1, t.Wire.X2, t.Wire.Y2},
	}
}
