// Package layout positions the drawable parts of a battery pack diagram.
//
// [Compute] turns a series count S, a parallel count P and a [Mode] into a
// [Scene]: cell slots, bus bars, series connectors and the two pack
// terminals, all in SVG user units with the origin at the top-left corner.
// The function is pure; the same inputs always produce the same scene, which
// makes scenes safe to cache and to snapshot in tests.
//
// # Orientations
//
// A grid scene stacks S rows of P cells. Every row gets a positive bus bar
// above and a negative bus bar below (when P > 1), and consecutive rows are
// joined by a series connector that alternates between the right edge (after
// even rows) and the left edge (after odd rows), the serpentine wiring used
// when packs are welded by hand.
//
// A row scene places S single cells side by side. Connectors alternate
// between the bottom edge (after even cells) and the top edge (after odd
// cells).
//
// In both orientations the positive terminal sits above the first cell and the
// negative terminal leaves the pack on the side of the last series connector.
// A pack without connectors (S = 1) puts its negative terminal below the
// rightmost cell.
//
// # Display caps
//
// Only [MaxSeries] rows and [MaxParallel] columns are drawn. Larger packs are
// clamped for display and flagged with [Scene.LimitReached]; the requested
// counts are kept on the scene so callers can still report them.
package layout
