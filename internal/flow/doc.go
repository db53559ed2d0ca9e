// Package flow implements the flow layout: items are packed into rows
// along the scrolling dimension, sections are stacked with optional
// headers and footers, and rows are aligned per section.
//
// Sizes come from the layout's configured defaults unless the context
// delegate implements one of the optional sizing interfaces (ItemSizer,
// SectionInsetter, LineSpacer, InteritemSpacer, HeaderSizer, FooterSizer).
// Sections whose items all share a size use the fixed-size fast path of
// package grid.
package flow
