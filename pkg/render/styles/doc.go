// Package styles defines the visual appearance of pack diagrams.
//
// A [Style] draws the individual parts of a diagram (cells, bus bars, series
// connectors, terminals and the advisory banner) into an SVG buffer. The
// [sink] package decides what to draw, where, and when it animates; the style
// only decides how it looks.
//
// Two styles ship with cellstack:
//
//   - [Slate]: the dark palette of the web visualizer, with sky-blue
//     positive bus bars, orange negative bus bars and nickel-strip hatching
//     on the series connectors
//   - [Blueprint]: monochrome line art on white, suited to print and PDF
//
// Use [Lookup] to resolve a style by name.
//
// [sink]: github.com/matzehuels/cellstack/pkg/render/sink
package styles
