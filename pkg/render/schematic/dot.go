package schematic

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/render"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// Options configures schematic rendering.
type Options struct {
	// Detailed adds the group capacity and the cumulative tap voltage to
	// each group label. When false, only the group name and width are shown.
	Detailed bool
}

// Node identifiers for the pack terminals and the elided run of groups.
const (
	PositiveNode = "pack+"
	NegativeNode = "pack-"
	ElidedNode   = "more"
)

// MaxGroups is the number of series groups drawn. Longer chains keep the
// first MaxGroups-1 groups and the last one, joined by an [ElidedNode].
const MaxGroups = layout.MaxSeries

// GroupNode returns the node identifier of series group i (zero based).
func GroupNode(i int) string { return "S" + strconv.Itoa(i+1) }

// ToDOT converts a pack configuration to Graphviz DOT format. The result can
// be rendered with [RenderSVG], [RenderPDF] or [RenderPNG].
func ToDOT(cfg sizing.Configuration, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	nodes := chain(cfg, opts.Detailed)
	fmt.Fprintf(&buf, "  %q [%s];\n", PositiveNode, strings.Join(terminalAttrs(true), ", "))
	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.id, n.attrs)
	}
	fmt.Fprintf(&buf, "  %q [%s];\n", NegativeNode, strings.Join(terminalAttrs(false), ", "))

	buf.WriteString("\n")
	prev := PositiveNode
	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %q -> %q;\n", prev, n.id)
		prev = n.id
	}
	fmt.Fprintf(&buf, "  %q -> %q;\n", prev, NegativeNode)

	buf.WriteString("}\n")
	return buf.String()
}

type chainNode struct {
	id, attrs string
}

// chain lists the nodes between the terminals, at most MaxGroups+1 of them.
func chain(cfg sizing.Configuration, detailed bool) []chainNode {
	series := max(cfg.Series, 0)
	group := func(i int) chainNode {
		return chainNode{GroupNode(i), fmt.Sprintf("label=%q", fmtLabel(cfg, i, detailed))}
	}

	if series <= MaxGroups {
		nodes := make([]chainNode, 0, series)
		for i := range series {
			nodes = append(nodes, group(i))
		}
		return nodes
	}

	nodes := make([]chainNode, 0, MaxGroups+1)
	for i := range MaxGroups - 1 {
		nodes = append(nodes, group(i))
	}
	hidden := series - MaxGroups
	nodes = append(nodes, chainNode{ElidedNode, fmt.Sprintf(`label=%q, shape=plaintext, style=""`, fmt.Sprintf("… %d more", hidden))})
	return append(nodes, group(series-1))
}

func fmtLabel(cfg sizing.Configuration, i int, detailed bool) string {
	label := fmt.Sprintf("%s · %dP", GroupNode(i), cfg.Parallel)
	if !detailed {
		return label
	}
	parts := []string{
		fmt.Sprintf("%.1f Ah", cfg.Capacity),
		fmt.Sprintf("tap %.1f V", float64(cfg.Series-i)*cfg.Cell.Voltage),
	}
	if cfg.Cell.ID != "" {
		parts = append(parts, cfg.Cell.ID)
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func terminalAttrs(positive bool) []string {
	if positive {
		return []string{`label="+"`, "shape=circle", "fillcolor=\"#38bdf8\"", "fontcolor=white"}
	}
	return []string{`label="−"`, "shape=circle", "fillcolor=\"#fb923c\"", "fontcolor=white"}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox swaps Graphviz's point-based root element for one sized
// in user units so the schematic scales like the pack diagram.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
