// Package sink writes laid-out packs to output formats.
//
// # Overview
//
// After [layout.Compute] has positioned every part of a pack, this package
// serializes the [layout.Scene] to a concrete format:
//
//   - [RenderSVG]: the animated wiring diagram (or a static one for print)
//   - [RenderJSON]: the configuration and scene geometry for other tools
//   - [RenderPNG]: raster image, via rsvg-convert
//   - [RenderPDF]: vector document, via rsvg-convert
//
// # SVG Rendering
//
// Parts are drawn back to front so that cells overlap the strips welded to
// them: series connectors, terminals (wire and badge), bus bars, then cells.
// Each part carries a staggered entrance animation so the pack assembles
// itself row by row:
//
//	svg := sink.RenderSVG(scene,
//	    sink.WithStyle(styles.Blueprint{}),
//	    sink.WithNotice(),
//	    sink.WithTitle("13S5P"),
//	)
//
// [WithStatic] drops the animation so the document renders fully in viewers
// and converters that ignore CSS animations.
//
// # Limit Notice
//
// When a scene was clamped to the display caps, [WithNotice] adds a banner
// above the pack stating that only the capped size is shown.
//
// [layout.Compute]: github.com/matzehuels/cellstack/pkg/layout#Compute
// [layout.Scene]: github.com/matzehuels/cellstack/pkg/layout#Scene
package sink
