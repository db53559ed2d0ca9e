// Package viewdata caches the counts and geometry a collection presents.
//
// A Data pulls item counts from its source, prepares the active layout over
// that snapshot and answers presentation queries from an immutable copy of
// the result. Invalidate drops the cache; the next Validate rebuilds it.
package viewdata

import (
	"fmt"
	"slices"
	"sort"

	"github.com/grindlemire/go-collection/internal/debug"
	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
)

// Source supplies item counts.
type Source interface {
	NumberOfItems(section int) int
}

// SectionCounter is implemented by sources with more than one section.
// Sources without it have exactly one section.
type SectionCounter interface {
	NumberOfSections() int
}

// Data is the cache between a data source and a layout.
type Data struct {
	source   Source
	layout   layout.Layout
	delegate any
	bounds   geom.Rect

	counts  []int
	offsets []int
	snap    layout.Geometry

	generation uint64
	prepared   bool
	// fallback is set when a Validate failed and queries are answered from
	// the last good cache.
	fallback bool

	memoRect  geom.Rect
	memo      []*layout.Attributes
	memoValid bool
}

// New returns a Data over source and l. Nothing is fetched until Validate.
func New(source Source, l layout.Layout) *Data {
	return &Data{source: source, layout: l}
}

// Layout returns the active layout.
func (d *Data) Layout() layout.Layout { return d.layout }

// SetLayout replaces the active layout and invalidates.
func (d *Data) SetLayout(l layout.Layout) {
	d.layout = l
	d.Invalidate()
}

// SetDelegate sets the sizing delegate handed to the layout.
func (d *Data) SetDelegate(v any) {
	d.delegate = v
	d.Invalidate()
}

// Bounds returns the bounds the layout is prepared against.
func (d *Data) Bounds() geom.Rect { return d.bounds }

// SetBounds updates the bounds and invalidates when the layout asks for it.
// It reports whether it invalidated.
func (d *Data) SetBounds(r geom.Rect) bool {
	old := d.bounds
	d.bounds = r
	if old == r || !d.layout.ShouldInvalidateForBoundsChange(old, r) {
		d.memoValid = false
		return false
	}
	d.Invalidate()
	return true
}

// Generation is bumped by every Invalidate.
func (d *Data) Generation() uint64 { return d.generation }

// Prepared reports whether the cache is current.
func (d *Data) Prepared() bool { return d.prepared }

// Invalidate drops counts and geometry. Queries fail with
// layout.ErrNotPrepared until the next Validate.
func (d *Data) Invalidate() {
	d.generation++
	d.prepared = false
	d.fallback = false
	d.memoValid = false
	d.layout.Invalidate()
}

// Validate rebuilds the cache if it was invalidated and memoises the
// attributes for rect. Calling it again without an Invalidate in between
// fetches nothing from the source.
//
// On error the previous cache stays in place and keeps answering queries.
func (d *Data) Validate(rect geom.Rect) error {
	if !d.prepared {
		if err := d.prepare(); err != nil {
			d.fallback = d.snap != nil
			debug.Log("viewdata: validate generation %d failed: %v", d.generation, err)
			return err
		}
	}
	if !d.memoValid || d.memoRect != rect {
		d.memo = d.snap.AttributesInRect(rect)
		d.memoRect = rect
		d.memoValid = true
	}
	return nil
}

func (d *Data) prepare() error {
	counts, err := d.pull()
	if err != nil {
		return err
	}
	ctx := layout.StaticContext{Counts: counts, Rect: d.bounds, Sizing: d.delegate}
	if err := d.layout.Prepare(ctx); err != nil {
		return fmt.Errorf("viewdata: %w", err)
	}
	again, err := d.pull()
	if err != nil {
		return err
	}
	if !slices.Equal(counts, again) {
		return fmt.Errorf("viewdata: %w: counts changed from %v to %v during prepare",
			layout.ErrInconsistentDataSource, counts, again)
	}

	d.counts = counts
	d.offsets = make([]int, len(counts)+1)
	for s, n := range counts {
		d.offsets[s+1] = d.offsets[s] + n
	}
	d.snap = d.layout.Snapshot()
	d.prepared = true
	d.fallback = false
	d.memoValid = false
	debug.Log("viewdata: prepared generation %d, %d sections, %d items",
		d.generation, len(counts), d.offsets[len(counts)])
	return nil
}

func (d *Data) pull() ([]int, error) {
	sections := 1
	if sc, ok := d.source.(SectionCounter); ok {
		sections = sc.NumberOfSections()
	}
	if sections < 0 {
		return nil, fmt.Errorf("viewdata: %w: %d sections", layout.ErrInconsistentDataSource, sections)
	}
	counts := make([]int, sections)
	for s := range counts {
		n := d.source.NumberOfItems(s)
		if n < 0 {
			return nil, fmt.Errorf("viewdata: %w: section %d has %d items", layout.ErrInconsistentDataSource, s, n)
		}
		counts[s] = n
	}
	return counts, nil
}

func (d *Data) ready() error {
	if d.prepared || d.fallback {
		return nil
	}
	return layout.ErrNotPrepared
}

// Geometry returns the immutable geometry of the current cache.
func (d *Data) Geometry() (layout.Geometry, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	return d.snap, nil
}

// Counts returns a copy of the count snapshot.
func (d *Data) Counts() ([]int, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	return slices.Clone(d.counts), nil
}

// NumberOfSections returns the number of sections in the snapshot.
func (d *Data) NumberOfSections() (int, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	return len(d.counts), nil
}

// NumberOfItems returns the number of items of a section in the snapshot.
func (d *Data) NumberOfItems(section int) (int, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	if section < 0 || section >= len(d.counts) {
		return 0, fmt.Errorf("%w: section %d", layout.ErrNoSuchElement, section)
	}
	return d.counts[section], nil
}

// TotalItems returns the number of items over all sections.
func (d *Data) TotalItems() (int, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	return d.offsets[len(d.counts)], nil
}

// ContentSize returns the size of the prepared content.
func (d *Data) ContentSize() (geom.Size, error) {
	if err := d.ready(); err != nil {
		return geom.Size{}, err
	}
	return d.snap.ContentSize(), nil
}

// ContentRect returns the content size as a rectangle at the origin.
func (d *Data) ContentRect() (geom.Rect, error) {
	size, err := d.ContentSize()
	if err != nil {
		return geom.Rect{}, err
	}
	return geom.RectFrom(geom.Point{}, size), nil
}

// AttributesInRect returns copies of the attributes of every element that
// intersects rect.
func (d *Data) AttributesInRect(rect geom.Rect) ([]*layout.Attributes, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	src := d.memo
	if !d.memoValid || d.memoRect != rect {
		src = d.snap.AttributesInRect(rect)
	}
	out := make([]*layout.Attributes, 0, len(src))
	for _, a := range src {
		if a.Frame().Intersects(rect) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

// AttributesForItem returns the attributes of the cell at p.
func (d *Data) AttributesForItem(p index.Path) (*layout.Attributes, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	a, ok := d.snap.AttributesForItem(p)
	if !ok {
		return nil, fmt.Errorf("%w: item %v", layout.ErrNoSuchElement, p)
	}
	return a.Clone(), nil
}

// AttributesForSupplementary returns the attributes of a supplementary view.
func (d *Data) AttributesForSupplementary(kind string, p index.Path) (*layout.Attributes, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	a, ok := d.snap.AttributesForSupplementary(kind, p)
	if !ok {
		return nil, fmt.Errorf("%w: %s %v", layout.ErrNoSuchElement, kind, p)
	}
	return a.Clone(), nil
}

// AttributesForDecoration returns the attributes of a decoration view.
func (d *Data) AttributesForDecoration(kind string, p index.Path) (*layout.Attributes, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	a, ok := d.snap.AttributesForDecoration(kind, p)
	if !ok {
		return nil, fmt.Errorf("%w: %s %v", layout.ErrNoSuchElement, kind, p)
	}
	return a.Clone(), nil
}

// RectForItem returns the frame of the cell at p.
func (d *Data) RectForItem(p index.Path) (geom.Rect, error) {
	a, err := d.AttributesForItem(p)
	if err != nil {
		return geom.Rect{}, err
	}
	return a.Frame(), nil
}

// IndexPathAtPoint returns the cell whose frame contains pt.
func (d *Data) IndexPathAtPoint(pt geom.Point) (index.Path, error) {
	if err := d.ready(); err != nil {
		return index.Path{}, err
	}
	hit := geom.NewRect(pt.X-0.5, pt.Y-0.5, 1, 1)
	for _, a := range d.snap.AttributesInRect(hit) {
		if a.IsCell() && a.Frame().Contains(pt) {
			return a.IndexPath, nil
		}
	}
	return index.Path{}, fmt.Errorf("%w: no item at %v", layout.ErrNoSuchElement, pt)
}

// GlobalIndex returns the position of p when all sections are laid end to
// end.
func (d *Data) GlobalIndex(p index.Path) (int, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	if p.Section < 0 || p.Section >= len(d.counts) || p.Item < 0 || p.Item >= d.counts[p.Section] {
		return 0, fmt.Errorf("%w: item %v", layout.ErrNoSuchElement, p)
	}
	return d.offsets[p.Section] + p.Item, nil
}

// PathForGlobalIndex is the inverse of GlobalIndex.
func (d *Data) PathForGlobalIndex(n int) (index.Path, error) {
	if err := d.ready(); err != nil {
		return index.Path{}, err
	}
	total := d.offsets[len(d.counts)]
	if n < 0 || n >= total {
		return index.Path{}, fmt.Errorf("%w: global index %d of %d", layout.ErrNoSuchElement, n, total)
	}
	// last section starting at or before n; empty sections share offsets
	s := sort.Search(len(d.counts), func(i int) bool { return d.offsets[i+1] > n })
	return index.At(s, n-d.offsets[s]), nil
}
