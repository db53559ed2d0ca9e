// Package geom provides the float geometry primitives used by the layout
// engines: points, sizes, rectangles, edge insets and transforms.
//
// All types are small values. Rectangles use a top-left origin; the right and
// bottom edges are exclusive for containment tests.
package geom
