package styles

import (
	"bytes"
	"fmt"
)

const (
	inkColor   = "#1f2937"
	paperColor = "#ffffff"
)

// Blueprint draws monochrome line art on white. The negative bus is hatched
// so polarity stays readable without colour.
type Blueprint struct{}

func (Blueprint) Name() string       { return "blueprint" }
func (Blueprint) Background() string { return paperColor }

func (Blueprint) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <defs>
    <pattern id="negative-hatch" patternUnits="userSpaceOnUse" width="4" height="4" patternTransform="rotate(45)">
      <rect width="4" height="4" fill="%s"/><line x1="0" y1="0" x2="0" y2="4" stroke="%s" stroke-width="1.5"/>
    </pattern>
  </defs>
`, paperColor, inkColor)
}

func (Blueprint) RenderConnector(buf *bytes.Buffer, c Connector) {
	fmt.Fprintf(buf, `  <rect id="%s" class="connector" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1.5"%s/>`+"\n",
		c.ID, c.X, c.Y, c.W, c.H, paperColor, inkColor, c.Anim.Attr())
}

func (Blueprint) RenderTerminal(buf *bytes.Buffer, t Terminal) {
	glyph := MinusSign
	if t.Positive {
		glyph = PlusSign
	}
	fmt.Fprintf(buf, `  <line id="%s-wire" class="wire" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"%s/>`+"\n",
		t.ID, t.X1, t.Y1, t.X2, t.Y2, inkColor, t.WireAnim.Attr())
	fmt.Fprintf(buf, `  <g id="%s" class="terminal"%s><circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`,
		t.ID, t.BadgeAnim.Attr(), t.CX, t.CY, t.R, paperColor, inkColor)
	writeGlyph(buf, t.CX, t.CY, 18, inkColor, glyph)
	buf.WriteString("</g>\n")
}

func (Blueprint) RenderBusBar(buf *bytes.Buffer, b BusBar) {
	fill := "url(#negative-hatch)"
	if b.Positive {
		fill = inkColor
	}
	fmt.Fprintf(buf, `  <rect id="%s" class="bus" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="0.5"%s/>`+"\n",
		b.ID, b.X, b.Y, b.W, b.H, fill, inkColor, b.Anim.Attr())
}

func (Blueprint) RenderCell(buf *bytes.Buffer, c Cell) {
	fmt.Fprintf(buf, `  <g id="%s" class="cell"%s>`, c.ID, c.Anim.Attr())
	fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s" stroke-width="1.5"/>`,
		c.X+1, c.Y+1, c.W-2, c.H-2, paperColor, inkColor)
	fmt.Fprintf(buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`,
		c.X+4, c.Y+c.H/2, c.X+c.W-4, c.Y+c.H/2, inkColor)
	writeGlyph(buf, c.X+c.W/2, c.Y+c.H*0.25, 14, inkColor, PlusSign)
	writeGlyph(buf, c.X+c.W/2, c.Y+c.H*0.75, 16, inkColor, MinusSign)
	buf.WriteString("</g>\n")
}

func (Blueprint) RenderNotice(buf *bytes.Buffer, n Notice) {
	writeNotice(buf, n, paperColor, inkColor, inkColor, inkColor)
}
