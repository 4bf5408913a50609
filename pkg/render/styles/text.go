package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Glyphs printed on cells and terminal badges.
const (
	PlusSign  = "+"
	MinusSign = "−"
)

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func writeGlyph(buf *bytes.Buffer, x, y, size float64, fill, glyph string) {
	fmt.Fprintf(buf, `<text x="%.1f" y="%.1f" fill="%s" font-family="sans-serif" font-size="%.0f" font-weight="bold" text-anchor="middle" dy=".35em">%s</text>`,
		x, y, fill, size, glyph)
}

func writeNotice(buf *bytes.Buffer, n Notice, fill, stroke, titleColor, bodyColor string) {
	fmt.Fprintf(buf, `  <g id="notice"><rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="8" fill="%s" stroke="%s"/>`,
		n.X, n.Y, n.W, n.H, fill, stroke)
	cx := n.X + n.W/2
	fmt.Fprintf(buf, `<text x="%.1f" y="%.1f" fill="%s" font-family="sans-serif" font-size="13" font-weight="bold" text-anchor="middle">%s</text>`,
		cx, n.Y+n.H*0.42, titleColor, EscapeXML(n.Title))
	fmt.Fprintf(buf, `<text x="%.1f" y="%.1f" fill="%s" font-family="sans-serif" font-size="11" text-anchor="middle">%s</text></g>`+"\n",
		cx, n.Y+n.H*0.78, bodyColor, EscapeXML(n.Body))
}
