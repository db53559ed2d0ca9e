package flow

import (
	"fmt"

	"github.com/grindlemire/go-collection/internal/debug"
	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/grid"
	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
)

// FloatingHeaderZIndex is the z-index given to headers when floating
// headers are enabled, so they draw above the cells scrolling under them.
const FloatingHeaderZIndex = 1024

var errInvalid = layout.ErrInvalidGeometry

// Layout is the flow layout engine. It implements layout.Layout.
type Layout struct {
	itemSize         geom.Size
	lineSpacing      float64
	interitemSpacing float64
	sectionInset     geom.Insets
	headerSize       geom.Size
	footerSize       geom.Size
	direction        Direction
	rightToLeft      bool
	alignment        grid.RowAlignment
	floating         bool

	info    *grid.Info
	bounds  geom.Rect
	invalid bool
}

var _ layout.Layout = (*Layout)(nil)

// New creates a flow layout with the given options applied over the
// defaults.
func New(opts ...Option) (*Layout, error) {
	l := &Layout{
		itemSize:         geom.Sz(50, 50),
		lineSpacing:      10,
		interitemSpacing: 10,
		alignment:        grid.DefaultRowAlignment(),
		invalid:          true,
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Direction returns the scrolling direction.
func (l *Layout) Direction() Direction { return l.direction }

// Info returns the grid computed by the last successful Prepare, or nil.
// The result must be treated as read-only.
func (l *Layout) Info() *grid.Info { return l.info }

// Prepared reports whether geometry is current for the last Prepare.
func (l *Layout) Prepared() bool { return l.info != nil && !l.invalid }

// Prepare builds a new grid for ctx and swaps it in only if it computes
// without error.
func (l *Layout) Prepare(ctx layout.Context) error {
	bounds := ctx.Bounds()
	inf := grid.New()
	inf.Horizontal = l.direction == Horizontal
	inf.RightToLeft = l.rightToLeft
	inf.RowAlignment = l.alignment
	inf.UsesFloatingHeaderFooter = l.floating
	inf.Dimension = l.packingExtent(bounds)

	delegate := ctx.Delegate()
	sizer, _ := delegate.(ItemSizer)
	insetter, _ := delegate.(SectionInsetter)
	liner, _ := delegate.(LineSpacer)
	spacer, _ := delegate.(InteritemSpacer)
	headers, _ := delegate.(HeaderSizer)
	footers, _ := delegate.(FooterSizer)

	sections := ctx.NumberOfSections()
	for s := range sections {
		sec := inf.AddSection()
		sec.Margins = l.sectionInset
		if insetter != nil {
			sec.Margins = insetter.InsetForSection(s)
		}
		sec.LineSpacing = l.lineSpacing
		if liner != nil {
			sec.LineSpacing = liner.LineSpacingForSection(s)
		}
		sec.InteritemSpacing = l.interitemSpacing
		if spacer != nil {
			sec.InteritemSpacing = spacer.InteritemSpacingForSection(s)
		}

		header, footer := l.headerSize, l.footerSize
		if headers != nil {
			header = headers.HeaderSizeForSection(s)
		}
		if footers != nil {
			footer = footers.FooterSizeForSection(s)
		}
		if !header.Valid() || !footer.Valid() {
			return fmt.Errorf("flow: section %d: %w: header %v footer %v", s, errInvalid, header, footer)
		}
		sec.HeaderDimension = l.acrossOf(header)
		sec.FooterDimension = l.acrossOf(footer)

		n := ctx.NumberOfItems(s)
		if n < 0 {
			return fmt.Errorf("flow: section %d: %w: %d items", s, layout.ErrInconsistentDataSource, n)
		}
		sid := sec.ID()
		if sizer == nil {
			inf.SetFixedItems(sid, n, l.itemSize)
			continue
		}
		sizes := make([]geom.Size, n)
		uniform := true
		for i := range sizes {
			sizes[i] = sizer.SizeForItem(index.At(s, i))
			uniform = uniform && sizes[i] == sizes[0]
		}
		if uniform && n > 0 {
			inf.SetFixedItems(sid, n, sizes[0])
			continue
		}
		for _, size := range sizes {
			inf.AddItem(sid, size)
		}
	}

	if err := inf.Compute(); err != nil {
		debug.Log("flow: prepare failed: %v", err)
		return fmt.Errorf("flow: %w", err)
	}
	l.info = inf
	l.bounds = bounds
	l.invalid = false
	if debug.Enabled() {
		size, _ := inf.ContentSize()
		debug.Log("flow: prepared %d sections, content %v", sections, size)
	}
	return nil
}

// Invalidate marks the geometry stale. Queries keep answering from the last
// successful Prepare until the next one succeeds.
func (l *Layout) Invalidate() {
	l.invalid = true
}

// ShouldInvalidateForBoundsChange reports true when the packing extent
// changes, and on any move when headers float.
func (l *Layout) ShouldInvalidateForBoundsChange(oldBounds, newBounds geom.Rect) bool {
	if l.packingExtent(oldBounds) != l.packingExtent(newBounds) {
		return true
	}
	return l.floating && oldBounds != newBounds
}

// Snapshot returns a copy of the prepared geometry.
func (l *Layout) Snapshot() layout.Geometry {
	c := *l
	if l.info != nil {
		c.info = l.info.Snapshot()
	}
	return &c
}

// ContentSize returns the size of the prepared content.
func (l *Layout) ContentSize() geom.Size {
	if l.info == nil {
		return geom.Size{}
	}
	size, _ := l.info.ContentSize()
	return size
}

// AttributesInRect returns headers, cells and footers intersecting r in
// section order.
func (l *Layout) AttributesInRect(r geom.Rect) []*layout.Attributes {
	if l.info == nil {
		return nil
	}

	var cells []*layout.Attributes
	l.info.VisitItems(r, func(p index.Path, frame geom.Rect) {
		a := layout.NewCellAttributes(p)
		a.SetFrame(frame)
		cells = append(cells, a)
	})

	var out []*layout.Attributes
	for s := range l.info.NumberOfSections() {
		if a, ok := l.header(s, r); ok && a.Frame().Intersects(r) {
			out = append(out, a)
		}
		for len(cells) > 0 && cells[0].IndexPath.Section == s {
			out = append(out, cells[0])
			cells = cells[1:]
		}
		if a, ok := l.footer(s); ok && a.Frame().Intersects(r) {
			out = append(out, a)
		}
	}
	return out
}

// AttributesForItem returns the attributes of the cell at p.
func (l *Layout) AttributesForItem(p index.Path) (*layout.Attributes, bool) {
	if l.info == nil {
		return nil, false
	}
	frame, ok := l.info.FrameForItem(p)
	if !ok {
		return nil, false
	}
	a := layout.NewCellAttributes(p)
	a.SetFrame(frame)
	return a, true
}

// AttributesForSupplementary returns header or footer attributes for the
// section of p. Floating headers are pinned against the prepared bounds.
func (l *Layout) AttributesForSupplementary(kind string, p index.Path) (*layout.Attributes, bool) {
	if l.info == nil {
		return nil, false
	}
	switch kind {
	case layout.KindSectionHeader:
		return l.header(p.Section, l.bounds)
	case layout.KindSectionFooter:
		return l.footer(p.Section)
	}
	return nil, false
}

// AttributesForDecoration always reports false: flow layouts have no
// decoration views.
func (l *Layout) AttributesForDecoration(string, index.Path) (*layout.Attributes, bool) {
	return nil, false
}

func (l *Layout) header(section int, visible geom.Rect) (*layout.Attributes, bool) {
	frame, ok := l.info.HeaderFrame(section)
	if !ok {
		return nil, false
	}
	a := layout.NewSupplementaryAttributes(layout.KindSectionHeader, index.SectionPath(section))
	if l.floating {
		sec, _ := l.info.SectionFrame(section)
		frame = l.pin(frame, sec, visible)
		a.ZIndex = FloatingHeaderZIndex
	}
	a.SetFrame(frame)
	return a, true
}

func (l *Layout) footer(section int) (*layout.Attributes, bool) {
	frame, ok := l.info.FooterFrame(section)
	if !ok {
		return nil, false
	}
	a := layout.NewSupplementaryAttributes(layout.KindSectionFooter, index.SectionPath(section))
	a.SetFrame(frame)
	return a, true
}

// pin moves a header frame to the leading edge of visible, without leaving
// its section.
func (l *Layout) pin(frame, section, visible geom.Rect) geom.Rect {
	if l.direction == Horizontal {
		x := max(frame.X, min(visible.X, section.MaxX()-frame.Width))
		return geom.NewRect(x, frame.Y, frame.Width, frame.Height)
	}
	y := max(frame.Y, min(visible.Y, section.MaxY()-frame.Height))
	return geom.NewRect(frame.X, y, frame.Width, frame.Height)
}

// packingExtent is the bounds extent rows are packed against.
func (l *Layout) packingExtent(r geom.Rect) float64 {
	if l.direction == Horizontal {
		return r.Height
	}
	return r.Width
}

// acrossOf is the extent of s along the scrolling axis.
func (l *Layout) acrossOf(s geom.Size) float64 {
	if l.direction == Horizontal {
		return s.Width
	}
	return s.Height
}
