// Package render turns laid-out battery packs into images.
//
// # Overview
//
// The rendering pipeline takes a [layout.Scene] and produces visual outputs:
//
//   - Pack diagrams (in [sink]): the animated wiring view with cells, bus
//     bars, series connectors and terminals
//   - Visual styles (in [styles]): colour palettes and element shapes
//   - Schematic diagrams (in [schematic]): a Graphviz node-link view of the
//     series groups and terminals
//   - Generic format conversion (SVG to PDF/PNG, in this package)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Animations are not
// meaningful in raster or print output, so callers convert static SVGs.
//
//	svg := sink.RenderSVG(scene, sink.WithStatic())
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [layout.Scene]: github.com/matzehuels/cellstack/pkg/layout#Scene
// [sink]: github.com/matzehuels/cellstack/pkg/render/sink
// [styles]: github.com/matzehuels/cellstack/pkg/render/styles
// [schematic]: github.com/matzehuels/cellstack/pkg/render/schematic
package render
