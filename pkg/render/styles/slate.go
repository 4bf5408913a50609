package styles

import (
	"bytes"
	"fmt"
)

// Slate colours.
const (
	slatePositive     = "#38bdf8"
	slateNegative     = "#fb923c"
	slateBadgeFill    = "#0f172a"
	slateConnectorRim = "#475569"
	slateCellFill     = "#334155"
	slateCellRim      = "#64748b"
	slateCapFill      = "#64748b"
)

// Slate is the dark palette of the web visualizer.
type Slate struct{}

func (Slate) Name() string       { return "slate" }
func (Slate) Background() string { return "#0f172a" }

func (Slate) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <pattern id="nickel-texture" patternUnits="userSpaceOnUse" width="6" height="6" patternTransform="rotate(45)">
      <rect width="6" height="6" fill="#cbd5e1"/><line x1="0" y1="0" x2="0" y2="6" stroke="#94a3b8" stroke-width="1"/>
    </pattern>
    <linearGradient id="positive-bus-gradient" x1="0" y1="0" x2="0" y2="1"><stop offset="0%" stop-color="#7dd3fc"/><stop offset="50%" stop-color="#38bdf8"/><stop offset="100%" stop-color="#0ea5e9"/></linearGradient>
    <linearGradient id="negative-bus-gradient" x1="0" y1="0" x2="0" y2="1"><stop offset="0%" stop-color="#fdba74"/><stop offset="50%" stop-color="#fb923c"/><stop offset="100%" stop-color="#f97316"/></linearGradient>
  </defs>
`)
}

func (Slate) RenderConnector(buf *bytes.Buffer, c Connector) {
	fmt.Fprintf(buf, `  <rect id="%s" class="connector" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="url(#nickel-texture)" stroke="%s" stroke-width="1.5" rx="2"%s/>`+"\n",
		c.ID, c.X, c.Y, c.W, c.H, slateConnectorRim, c.Anim.Attr())
}

func (Slate) RenderTerminal(buf *bytes.Buffer, t Terminal) {
	color, glyph, size := slateNegative, MinusSign, 22.0
	if t.Positive {
		color, glyph, size = slatePositive, PlusSign, 18.0
	}
	fmt.Fprintf(buf, `  <line id="%s-wire" class="wire" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="4" stroke-linecap="round"%s/>`+"\n",
		t.ID, t.X1, t.Y1, t.X2, t.Y2, color, t.WireAnim.Attr())
	fmt.Fprintf(buf, `  <g id="%s" class="terminal"%s><circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`,
		t.ID, t.BadgeAnim.Attr(), t.CX, t.CY, t.R, slateBadgeFill, color)
	writeGlyph(buf, t.CX, t.CY, size, color, glyph)
	buf.WriteString("</g>\n")
}

func (Slate) RenderBusBar(buf *bytes.Buffer, b BusBar) {
	fill := "url(#negative-bus-gradient)"
	if b.Positive {
		fill = "url(#positive-bus-gradient)"
	}
	fmt.Fprintf(buf, `  <rect id="%s" class="bus" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" rx="3"%s/>`+"\n",
		b.ID, b.X, b.Y, b.W, b.H, fill, b.Anim.Attr())
}

func (Slate) RenderCell(buf *bytes.Buffer, c Cell) {
	fmt.Fprintf(buf, `  <g id="%s" class="cell"%s>`, c.ID, c.Anim.Attr())
	fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="8" fill="%s" stroke="%s" stroke-width="2"/>`,
		c.X+1, c.Y+1, c.W-2, c.H-2, slateCellFill, slateCellRim)
	fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="4" rx="1" fill="%s"/>`,
		c.X+c.W/4, c.Y+4, c.W/2, slateCapFill)
	writeGlyph(buf, c.X+c.W/2, c.Y+c.H*0.3, 16, slatePositive, PlusSign)
	writeGlyph(buf, c.X+c.W/2, c.Y+c.H*0.8, 20, slateNegative, MinusSign)
	buf.WriteString("</g>\n")
}

func (Slate) RenderNotice(buf *bytes.Buffer, n Notice) {
	writeNotice(buf, n, "#422006", "#a16207", "#fde047", "#fde68a")
}
