package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/render/styles"
)

const animationCSS = `
    @keyframes draw-line { to { stroke-dashoffset: 0; } }
    @keyframes grow-x { from { transform: scaleX(0); } to { transform: scaleX(1); } }
    @keyframes grow-y { from { transform: scaleY(0); } to { transform: scaleY(1); } }
    @keyframes fade-in-pop { from { opacity: 0; transform: scale(0.5); } to { opacity: 1; transform: scale(1); } }
    line, rect, g { transform-box: fill-box; }`

// Limit notice text and geometry.
const (
	NoticeTitle    = "Visualization Limit Reached"
	noticeHeight   = 56.0
	noticeMinWidth = 300.0
	noticeMargin   = 10.0
)

// NoticeBody returns the advisory line shown for clamped packs.
func NoticeBody() string {
	return fmt.Sprintf("Displaying %dS x %dP max for performance.", layout.MaxSeries, layout.MaxParallel)
}

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  styles.Style
	static bool
	notice bool
	title  string
}

// WithStyle sets the visual style. The default is [styles.Slate].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithStatic drops the flow animations and the embedded keyframes.
func WithStatic() SVGOption { return func(r *svgRenderer) { r.static = true } }

// WithNotice adds the "limited for performance" banner to packs whose scene
// was clamped. It has no effect on unclamped scenes.
func WithNotice() SVGOption { return func(r *svgRenderer) { r.notice = true } }

// WithTitle sets the document <title>, which viewers show as a tooltip.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG draws the scene as a standalone SVG document. The output is a
// pure function of the scene and options.
func RenderSVG(sc layout.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	width, height := sc.Width, sc.Height
	var offsetX, offsetY float64
	showNotice := r.notice && sc.LimitReached
	if showNotice {
		if width < noticeMinWidth {
			offsetX = (noticeMinWidth - width) / 2
			width = noticeMinWidth
		}
		offsetY = noticeHeight
		height += noticeHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" data-layout="%s">`+"\n",
		width, height, width, height, sc.Key())
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}
	if !r.static {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", animationCSS)
	}
	r.style.RenderDefs(&buf)
	if bg := r.style.Background(); bg != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", bg)
	}
	if showNotice {
		r.style.RenderNotice(&buf, styles.Notice{
			X:     noticeMargin,
			Y:     noticeMargin,
			W:     width - 2*noticeMargin,
			H:     noticeHeight - 2*noticeMargin,
			Title: NoticeTitle,
			Body:  NoticeBody(),
		})
	}

	translated := offsetX != 0 || offsetY != 0
	if translated {
		fmt.Fprintf(&buf, `  <g transform="translate(%.1f %.1f)">`+"\n", offsetX, offsetY)
	}
	renderContent(&buf, &r, sc)
	if translated {
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Slate{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// renderContent draws back to front: connectors, terminals, bus bars, cells.
func renderContent(buf *bytes.Buffer, r *svgRenderer, sc layout.Scene) {
	tl := newTimeline(sc)
	animate := !r.static

	for _, c := range sc.Connectors {
		r.style.RenderConnector(buf, buildConnector(sc, c, tl, animate))
	}
	r.style.RenderTerminal(buf, buildTerminal(sc.Positive, tl, animate))
	r.style.RenderTerminal(buf, buildTerminal(sc.Negative, tl, animate))
	for _, b := range sc.BusBars {
		r.style.RenderBusBar(buf, buildBusBar(b, tl, animate))
	}
	for _, c := range sc.Cells {
		r.style.RenderCell(buf, buildCell(c, tl, animate))
	}
}

func buildCell(c layout.Cell, tl timeline, animate bool) styles.Cell {
	out := styles.Cell{
		ID: fmt.Sprintf("cell-%d-%d", c.Row, c.Col),
		X:  c.X, Y: c.Y, W: c.W, H: c.H,
	}
	if animate {
		out.Anim = styles.Anim{Name: styles.FadeInPop, Duration: popDuration, Delay: tl.cell(c), Origin: popOrigin}
	}
	return out
}

func buildBusBar(b layout.BusBar, tl timeline, animate bool) styles.BusBar {
	prefix := "neg"
	if b.Polarity == layout.Positive {
		prefix = "pos"
	}
	out := styles.BusBar{
		ID:       fmt.Sprintf("%s-bus-%d", prefix, b.Row),
		Positive: b.Polarity == layout.Positive,
		X:        b.X, Y: b.Y, W: b.W, H: b.H,
	}
	if animate {
		out.Anim = styles.Anim{Name: styles.GrowX, Duration: busDuration, Delay: tl.busBar(b), Origin: barOrigin}
	}
	return out
}

func buildConnector(sc layout.Scene, c layout.Connector, tl timeline, animate bool) styles.Connector {
	out := styles.Connector{
		ID: fmt.Sprintf("series-%d", c.Index),
		X:  c.X, Y: c.Y, W: c.W, H: c.H,
	}
	if !animate {
		return out
	}
	out.Anim = styles.Anim{Name: styles.GrowY, Duration: strapDuration, Delay: tl.connector(c), Origin: strapOriginTop}
	if sc.Orientation == layout.OrientationRow {
		out.Anim.Name, out.Anim.Origin = styles.GrowX, barOrigin
	}
	return out
}

func buildTerminal(t layout.Terminal, tl timeline, animate bool) styles.Terminal {
	out := styles.Terminal{
		ID:       "terminal-" + string(t.Polarity),
		Positive: t.Polarity == layout.Positive,
		CX:       t.CX, CY: t.CY, R: t.R,
		X1: t.Wire.X1, Y1: t.Wire.Y1, X2: t.Wire.X2, Y2: t.Wire.Y2,
	}
	if animate {
		out.WireAnim = styles.Anim{Name: styles.DrawLine, Duration: wireDuration, Delay: tl.wire(t.Polarity), Dash: t.Wire.Length()}
		out.BadgeAnim = styles.Anim{Name: styles.FadeInPop, Duration: popDuration, Delay: tl.badge(t.Polarity), Origin: popOrigin}
	}
	return out
}
