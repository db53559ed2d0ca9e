// Package grid holds the layout model built by the flow engine: sections that
// contain rows that contain items.
//
// All objects live in arenas owned by [Info] and refer to each other by
// integer handles ([SectionID], [RowID], [ItemID]) instead of pointers. A
// section whose items all share one size takes the fixed-size fast path: it
// stores only a count and the size, never materialises rows or items, and
// computes positions by arithmetic.
//
// Geometry is computed in two axes. "Along" is the axis items are packed on
// inside a row (x for vertical scrolling), "across" is the axis rows are
// stacked on (y for vertical scrolling). Frames are nested: item frames are
// relative to their row, row, header and footer frames are relative to their
// section, and section frames are absolute.
package grid
