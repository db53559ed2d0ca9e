// Package list implements a single-column list layout with section headers,
// footers and optional separator decoration views between rows.
package list

import (
	"fmt"
	"slices"
	"sort"

	"github.com/grindlemire/go-collection/internal/debug"
	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
)

// KindSeparator is the decoration kind drawn below every row except the last
// of its section.
const KindSeparator = "separator"

// RowHeighter supplies per-row heights.
type RowHeighter interface {
	HeightForRow(p index.Path) float64
}

// HeaderHeighter supplies per-section header heights.
type HeaderHeighter interface {
	HeightForHeader(section int) float64
}

// FooterHeighter supplies per-section footer heights.
type FooterHeighter interface {
	HeightForFooter(section int) float64
}

// Option is a functional option for configuring a Layout.
type Option func(*Layout) error

func lengthOption(name string, set func(*Layout, float64)) func(float64) Option {
	return func(v float64) Option {
		return func(l *Layout) error {
			if !geom.ValidLength(v) {
				return fmt.Errorf("%w: %s %v", layout.ErrInvalidGeometry, name, v)
			}
			set(l, v)
			return nil
		}
	}
}

var (
	// WithRowHeight sets the default row height. Default is 44.
	WithRowHeight = lengthOption("row height", func(l *Layout, v float64) { l.rowHeight = v })
	// WithHeaderHeight sets the default section header height.
	WithHeaderHeight = lengthOption("header height", func(l *Layout, v float64) { l.headerHeight = v })
	// WithFooterHeight sets the default section footer height.
	WithFooterHeight = lengthOption("footer height", func(l *Layout, v float64) { l.footerHeight = v })
	// WithSeparatorHeight enables separators of the given height.
	WithSeparatorHeight = lengthOption("separator height", func(l *Layout, v float64) { l.separator = v })
)

type section struct {
	origin float64
	header float64
	footer float64
	// rows[i] is the offset of row i from the section origin
	rows    []float64
	heights []float64
	extent  float64
}

// Layout is the list layout engine. It implements layout.Layout.
type Layout struct {
	rowHeight    float64
	headerHeight float64
	footerHeight float64
	separator    float64

	sections []section
	width    float64
	invalid  bool
}

var _ layout.Layout = (*Layout)(nil)

// New creates a list layout.
func New(opts ...Option) (*Layout, error) {
	l := &Layout{rowHeight: 44, invalid: true}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Prepare computes row offsets for every section in ctx.
func (l *Layout) Prepare(ctx layout.Context) error {
	width := ctx.Bounds().Width
	if !geom.ValidLength(width) {
		return fmt.Errorf("list: %w: width %v", layout.ErrInvalidGeometry, width)
	}
	delegate := ctx.Delegate()
	rows, _ := delegate.(RowHeighter)
	headers, _ := delegate.(HeaderHeighter)
	footers, _ := delegate.(FooterHeighter)

	n := ctx.NumberOfSections()
	sections := make([]section, n)
	var y float64
	for s := range sections {
		sec := &sections[s]
		sec.origin = y
		sec.header, sec.footer = l.headerHeight, l.footerHeight
		if headers != nil {
			sec.header = headers.HeightForHeader(s)
		}
		if footers != nil {
			sec.footer = footers.HeightForFooter(s)
		}
		if !geom.ValidLength(sec.header) || !geom.ValidLength(sec.footer) {
			return fmt.Errorf("list: section %d: %w: header %v footer %v", s, layout.ErrInvalidGeometry, sec.header, sec.footer)
		}

		count := ctx.NumberOfItems(s)
		if count < 0 {
			return fmt.Errorf("list: section %d: %w: %d items", s, layout.ErrInconsistentDataSource, count)
		}
		sec.rows = make([]float64, count)
		sec.heights = make([]float64, count)
		pos := sec.header
		for i := range count {
			h := l.rowHeight
			if rows != nil {
				h = rows.HeightForRow(index.At(s, i))
			}
			if !geom.ValidLength(h) {
				return fmt.Errorf("list: row %v: %w: height %v", index.At(s, i), layout.ErrInvalidGeometry, h)
			}
			if i > 0 {
				pos += l.separator
			}
			sec.rows[i] = pos
			sec.heights[i] = h
			pos += h
		}
		sec.extent = pos + sec.footer
		y += sec.extent
	}

	l.sections = sections
	l.width = width
	l.invalid = false
	debug.Log("list: prepared %d sections, height %v", n, y)
	return nil
}

// Invalidate marks the geometry stale; queries keep answering from the last
// successful Prepare.
func (l *Layout) Invalidate() { l.invalid = true }

// ShouldInvalidateForBoundsChange reports true when the width changes.
func (l *Layout) ShouldInvalidateForBoundsChange(oldBounds, newBounds geom.Rect) bool {
	return oldBounds.Width != newBounds.Width
}

// Snapshot returns a copy of the prepared geometry.
func (l *Layout) Snapshot() layout.Geometry {
	c := *l
	c.sections = make([]section, len(l.sections))
	for i, s := range l.sections {
		s.rows = slices.Clone(s.rows)
		s.heights = slices.Clone(s.heights)
		c.sections[i] = s
	}
	return &c
}

// ContentSize returns the list width by the sum of section heights.
func (l *Layout) ContentSize() geom.Size {
	if len(l.sections) == 0 {
		return geom.Size{}
	}
	last := l.sections[len(l.sections)-1]
	return geom.Sz(l.width, last.origin+last.extent)
}

// AttributesInRect returns headers, rows, separators and footers that
// intersect r, in section order.
func (l *Layout) AttributesInRect(r geom.Rect) []*layout.Attributes {
	var out []*layout.Attributes
	for s := range l.sections {
		sec := &l.sections[s]
		if sec.origin > r.MaxY() || sec.origin+sec.extent < r.Y {
			continue
		}
		if a, ok := l.header(s); ok && a.Frame().Intersects(r) {
			out = append(out, a)
		}
		// first row whose bottom reaches into r
		lo, hi := r.Y-sec.origin, r.MaxY()-sec.origin
		first := sort.Search(len(sec.rows), func(i int) bool {
			return sec.rows[i]+sec.heights[i]+l.separator >= lo
		})
		for i := first; i < len(sec.rows) && sec.rows[i] <= hi; i++ {
			p := index.At(s, i)
			if a := l.row(p); a.Frame().Intersects(r) {
				out = append(out, a)
			}
			if a, ok := l.separatorFor(p); ok && a.Frame().Intersects(r) {
				out = append(out, a)
			}
		}
		if a, ok := l.footer(s); ok && a.Frame().Intersects(r) {
			out = append(out, a)
		}
	}
	return out
}

// AttributesForItem returns the attributes of the row at p.
func (l *Layout) AttributesForItem(p index.Path) (*layout.Attributes, bool) {
	if !l.has(p) {
		return nil, false
	}
	return l.row(p), true
}

// AttributesForSupplementary returns header or footer attributes.
func (l *Layout) AttributesForSupplementary(kind string, p index.Path) (*layout.Attributes, bool) {
	switch kind {
	case layout.KindSectionHeader:
		return l.header(p.Section)
	case layout.KindSectionFooter:
		return l.footer(p.Section)
	}
	return nil, false
}

// AttributesForDecoration returns the separator below the row at p.
func (l *Layout) AttributesForDecoration(kind string, p index.Path) (*layout.Attributes, bool) {
	if kind != KindSeparator || !l.has(p) {
		return nil, false
	}
	return l.separatorFor(p)
}

func (l *Layout) has(p index.Path) bool {
	return p.Section >= 0 && p.Section < len(l.sections) &&
		p.Item >= 0 && p.Item < len(l.sections[p.Section].rows)
}

func (l *Layout) row(p index.Path) *layout.Attributes {
	sec := &l.sections[p.Section]
	a := layout.NewCellAttributes(p)
	a.SetFrame(geom.NewRect(0, sec.origin+sec.rows[p.Item], l.width, sec.heights[p.Item]))
	return a
}

func (l *Layout) separatorFor(p index.Path) (*layout.Attributes, bool) {
	sec := &l.sections[p.Section]
	if l.separator <= 0 || p.Item == len(sec.rows)-1 {
		return nil, false
	}
	a := layout.NewDecorationAttributes(KindSeparator, p)
	a.SetFrame(geom.NewRect(0, sec.origin+sec.rows[p.Item]+sec.heights[p.Item], l.width, l.separator))
	a.ZIndex = -1
	return a, true
}

func (l *Layout) header(s int) (*layout.Attributes, bool) {
	if s < 0 || s >= len(l.sections) || l.sections[s].header <= 0 {
		return nil, false
	}
	sec := &l.sections[s]
	a := layout.NewSupplementaryAttributes(layout.KindSectionHeader, index.SectionPath(s))
	a.SetFrame(geom.NewRect(0, sec.origin, l.width, sec.header))
	return a, true
}

func (l *Layout) footer(s int) (*layout.Attributes, bool) {
	if s < 0 || s >= len(l.sections) || l.sections[s].footer <= 0 {
		return nil, false
	}
	sec := &l.sections[s]
	a := layout.NewSupplementaryAttributes(layout.KindSectionFooter, index.SectionPath(s))
	a.SetFrame(geom.NewRect(0, sec.origin+sec.extent-sec.footer, l.width, sec.footer))
	return a, true
}
