package flow

import (
	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/index"
)

// ItemSizer supplies per-item sizes.
type ItemSizer interface {
	SizeForItem(p index.Path) geom.Size
}

// SectionInsetter supplies per-section insets.
type SectionInsetter interface {
	InsetForSection(section int) geom.Insets
}

// LineSpacer supplies the minimum spacing between rows of a section.
type LineSpacer interface {
	LineSpacingForSection(section int) float64
}

// InteritemSpacer supplies the minimum spacing between items of a row.
type InteritemSpacer interface {
	InteritemSpacingForSection(section int) float64
}

// HeaderSizer supplies the header reference size of a section. Only the
// extent along the scrolling axis is used.
type HeaderSizer interface {
	HeaderSizeForSection(section int) geom.Size
}

// FooterSizer is the footer counterpart of HeaderSizer.
type FooterSizer interface {
	FooterSizeForSection(section int) geom.Size
}
