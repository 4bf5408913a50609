// Package schematic renders a pack as a node-link wiring schematic.
//
// Where the [sink] package draws every cell in place, a schematic collapses
// each parallel group into one node and follows the series current path from
// the positive terminal to the negative terminal:
//
//	(+) -> S1 -> S2 -> ... -> Sn -> (−)
//
// Chains longer than [MaxGroups] keep their first groups and the last one,
// with a single "… N more" node standing in for the rest.
//
// Node placement is left to Graphviz. [ToDOT] produces the DOT source and
// [RenderSVG] lays it out with the embedded Graphviz engine, so no external
// binary is needed for SVG output.
//
//	dot := schematic.ToDOT(cfg, schematic.Options{Detailed: true})
//	svg, err := schematic.RenderSVG(ctx, dot)
//
// [sink]: github.com/matzehuels/cellstack/pkg/render/sink
package schematic
