package collection

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-collection/internal/debug"
	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/layout"
	"github.com/grindlemire/go-collection/internal/reuse"
	"github.com/grindlemire/go-collection/internal/viewdata"
)

// View is whatever the data source presents an element with. The
// collection never builds views itself.
type View = any

// DataSource supplies item counts and cell views.
type DataSource interface {
	NumberOfItems(section int) int
	CellForItem(cv *CollectionView, p IndexPath) (View, error)
}

// SectionCounter is implemented by data sources with more than one section.
type SectionCounter interface {
	NumberOfSections() int
}

// SupplementarySource is implemented by data sources that present headers
// and footers.
type SupplementarySource interface {
	SupplementaryForElement(cv *CollectionView, kind string, p IndexPath) (View, error)
}

// Element pairs the attributes of a visible element with its view. View is
// nil for decoration views and for supplementary views the data source does
// not present.
type Element struct {
	Attributes *Attributes
	View       View
}

// CollectionView presents a data source through a layout.
type CollectionView struct {
	source   DataSource
	data     *viewdata.Data
	delegate any
	bounds   geom.Rect
	pool     *reuse.Pool[View]

	batch    batchContext
	updates  []Update
	onUpdate func(Update)
}

// counts adapts a DataSource to viewdata.Source, forwarding the optional
// section count.
type counts struct {
	source DataSource
}

func (c counts) NumberOfItems(section int) int { return c.source.NumberOfItems(section) }

func (c counts) NumberOfSections() int {
	if sc, ok := c.source.(SectionCounter); ok {
		return sc.NumberOfSections()
	}
	return 1
}

// New creates a collection view. Nothing is fetched from source until the
// first query.
func New(source DataSource, l Layout, opts ...Option) (*CollectionView, error) {
	if source == nil {
		return nil, errors.New("collection: nil data source")
	}
	if l == nil {
		return nil, errors.New("collection: nil layout")
	}
	cv := &CollectionView{
		source: source,
		pool:   reuse.New[View](),
	}
	for _, opt := range opts {
		if err := opt(cv); err != nil {
			return nil, err
		}
	}
	cv.data = viewdata.New(counts{source}, l)
	cv.data.SetDelegate(cv.delegate)
	cv.data.SetBounds(cv.bounds)
	return cv, nil
}

// validate revalidates the cache if anything invalidated it.
func (cv *CollectionView) validate() error {
	return cv.data.Validate(cv.bounds)
}

// Layout returns the active layout.
func (cv *CollectionView) Layout() Layout { return cv.data.Layout() }

// SetLayout replaces the layout. Geometry is recomputed on the next query.
func (cv *CollectionView) SetLayout(l Layout) {
	cv.data.SetLayout(l)
	debug.Log("collection: layout replaced")
}

// Bounds returns the visible rect.
func (cv *CollectionView) Bounds() geom.Rect { return cv.bounds }

// SetBounds moves or resizes the visible rect. The layout decides whether
// that needs a new layout pass.
func (cv *CollectionView) SetBounds(r geom.Rect) error {
	if !r.Size().Valid() {
		return fmt.Errorf("%w: bounds %v", ErrInvalidGeometry, r)
	}
	cv.bounds = r
	if cv.data.SetBounds(r) {
		debug.Log("collection: bounds %v invalidated the layout", r)
	}
	return nil
}

// ReloadData drops all cached counts and geometry and recycles every
// visible view.
func (cv *CollectionView) ReloadData() {
	cv.data.Invalidate()
	cv.pool.RecycleAll()
}

// NumberOfSections returns the number of sections.
func (cv *CollectionView) NumberOfSections() (int, error) {
	if err := cv.validate(); err != nil {
		return 0, err
	}
	return cv.data.NumberOfSections()
}

// NumberOfItems returns the number of items in a section.
func (cv *CollectionView) NumberOfItems(section int) (int, error) {
	if err := cv.validate(); err != nil {
		return 0, err
	}
	return cv.data.NumberOfItems(section)
}

// ContentSize returns the size of the whole content.
func (cv *CollectionView) ContentSize() (geom.Size, error) {
	if err := cv.validate(); err != nil {
		return geom.Size{}, err
	}
	return cv.data.ContentSize()
}

// LayoutAttributesForElements returns the attributes of every element
// intersecting rect.
func (cv *CollectionView) LayoutAttributesForElements(rect geom.Rect) ([]*Attributes, error) {
	if err := cv.validate(); err != nil {
		return nil, err
	}
	return cv.data.AttributesInRect(rect)
}

// LayoutAttributesForItem returns the attributes of the cell at p.
func (cv *CollectionView) LayoutAttributesForItem(p IndexPath) (*Attributes, error) {
	if err := cv.validate(); err != nil {
		return nil, err
	}
	return cv.data.AttributesForItem(p)
}

// LayoutAttributesForSupplementaryElement returns the attributes of a
// header or footer.
func (cv *CollectionView) LayoutAttributesForSupplementaryElement(kind string, p IndexPath) (*Attributes, error) {
	if err := cv.validate(); err != nil {
		return nil, err
	}
	return cv.data.AttributesForSupplementary(kind, p)
}

// LayoutAttributesForDecorationView returns the attributes of a decoration
// view.
func (cv *CollectionView) LayoutAttributesForDecorationView(kind string, p IndexPath) (*Attributes, error) {
	if err := cv.validate(); err != nil {
		return nil, err
	}
	return cv.data.AttributesForDecoration(kind, p)
}

// IndexPathAtPoint returns the item whose frame contains pt.
func (cv *CollectionView) IndexPathAtPoint(pt geom.Point) (IndexPath, error) {
	if err := cv.validate(); err != nil {
		return IndexPath{}, err
	}
	return cv.data.IndexPathAtPoint(pt)
}

// RegisterCell installs the factory used by DequeueReusableCell for reuseID.
func (cv *CollectionView) RegisterCell(reuseID string, f func(reuseID string) View) {
	cv.pool.Register(layout.KindCell, reuseID, f)
}

// RegisterSupplementary installs the factory for a header or footer kind.
func (cv *CollectionView) RegisterSupplementary(kind, reuseID string, f func(reuseID string) View) {
	cv.pool.Register(kind, reuseID, f)
}

// DequeueReusableCell returns a recycled or new cell view and records it as
// presenting p.
func (cv *CollectionView) DequeueReusableCell(reuseID string, p IndexPath) (View, error) {
	v, _, err := cv.pool.Dequeue(layout.KindCell, reuseID)
	if err != nil {
		return nil, err
	}
	cv.pool.Show(layout.CellKey(p), layout.KindCell, reuseID, v)
	return v, nil
}

// DequeueReusableSupplementary is the header and footer counterpart of
// DequeueReusableCell.
func (cv *CollectionView) DequeueReusableSupplementary(kind, reuseID string, p IndexPath) (View, error) {
	v, _, err := cv.pool.Dequeue(kind, reuseID)
	if err != nil {
		return nil, err
	}
	cv.pool.Show(layout.SupplementaryKey(kind, p), kind, reuseID, v)
	return v, nil
}

// VisibleElements returns the elements intersecting rect with their views.
// Views of elements that were visible before and still are keep their view;
// new ones are requested from the data source, and views of elements that
// left rect are recycled.
func (cv *CollectionView) VisibleElements(rect geom.Rect) ([]Element, error) {
	attrs, err := cv.LayoutAttributesForElements(rect)
	if err != nil {
		return nil, err
	}

	keep := make(map[ItemKey]bool, len(attrs))
	for _, a := range attrs {
		keep[a.Key()] = true
	}
	cv.pool.Recycle(keep)

	out := make([]Element, 0, len(attrs))
	for _, a := range attrs {
		v, err := cv.viewFor(a)
		if err != nil {
			return nil, fmt.Errorf("collection: view for %v: %w", a.Key(), err)
		}
		out = append(out, Element{Attributes: a, View: v})
	}
	return out, nil
}

func (cv *CollectionView) viewFor(a *Attributes) (View, error) {
	key := a.Key()
	if v, ok := cv.pool.Visible(key); ok {
		return v, nil
	}

	var (
		v   View
		err error
	)
	switch a.Category() {
	case layout.CategoryCell:
		v, err = cv.source.CellForItem(cv, a.IndexPath)
	case layout.CategorySupplementaryView:
		ss, ok := cv.source.(SupplementarySource)
		if !ok {
			return nil, nil
		}
		v, err = ss.SupplementaryForElement(cv, a.ElementKind(), a.IndexPath)
	case layout.CategoryDecorationView:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// views the data source built without dequeuing are tracked too
	if _, ok := cv.pool.Visible(key); !ok && v != nil {
		cv.pool.Show(key, a.ElementKind(), "", v)
	}
	return v, nil
}

// VisibleKeys returns the keys of elements that currently have a view.
func (cv *CollectionView) VisibleKeys() []ItemKey {
	return cv.pool.VisibleKeys()
}

// ReuseStats returns how many views were created and how many were reused.
func (cv *CollectionView) ReuseStats() (created, reused int) {
	return cv.pool.Stats()
}

var _ viewdata.SectionCounter = counts{}
