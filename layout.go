// layout.go re-exports types from the internal packages.
// Any changes to those types must be mirrored here.
package collection

import (
	"github.com/grindlemire/go-collection/internal/flow"
	"github.com/grindlemire/go-collection/internal/geom"
	"github.com/grindlemire/go-collection/internal/grid"
	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
	"github.com/grindlemire/go-collection/internal/list"
	"github.com/grindlemire/go-collection/internal/reuse"
	"github.com/grindlemire/go-collection/internal/update"
)

// Rect represents a rectangle with position and dimensions.
type Rect = geom.Rect

// Size represents a width/height pair.
type Size = geom.Size

// Point is a position in content coordinates.
type Point = geom.Point

// Insets represents spacing on four sides.
type Insets = geom.Insets

// IndexPath addresses an item (section, item) or a whole section.
type IndexPath = index.Path

// At returns the path of an item.
func At(section, item int) IndexPath { return index.At(section, item) }

// SectionPath returns the path of a whole section.
func SectionPath(section int) IndexPath { return index.SectionPath(section) }

// Attributes describes where and how one element is presented.
type Attributes = layout.Attributes

// ItemKey identifies an element in reuse bookkeeping.
type ItemKey = layout.ItemKey

// Geometry is a read-only view of prepared layout geometry.
type Geometry = layout.Geometry

// Layout is the interface layout engines implement.
type Layout = layout.Layout

// UpdateItem is one reconciled update of a batch.
type UpdateItem = update.Item

// Action is what an UpdateItem does.
type Action = update.Action

const (
	ActionNone   = update.ActionNone
	ActionInsert = update.ActionInsert
	ActionDelete = update.ActionDelete
	ActionReload = update.ActionReload
	ActionMove   = update.ActionMove
)

// UpdateMap holds the index maps of a committed batch.
type UpdateMap = update.Result

// Element kinds.
const (
	KindCell          = layout.KindCell
	KindSectionHeader = layout.KindSectionHeader
	KindSectionFooter = layout.KindSectionFooter
	KindSeparator     = list.KindSeparator
)

// Errors returned by collection views; match them with errors.Is.
var (
	ErrInvalidGeometry        = layout.ErrInvalidGeometry
	ErrNotPrepared            = layout.ErrNotPrepared
	ErrInconsistentDataSource = layout.ErrInconsistentDataSource
	ErrConflictingUpdate      = layout.ErrConflictingUpdate
	ErrInvalidUpdateItem      = layout.ErrInvalidUpdateItem
	ErrNoSuchElement          = layout.ErrNoSuchElement
	ErrUnknownReuseIdentifier = reuse.ErrUnknownReuseIdentifier
)

// FlowOption configures a flow layout.
type FlowOption = flow.Option

// RowAlignment configures row alignment of a flow layout.
type RowAlignment = grid.RowAlignment

// Alignment positions the items of a row.
type Alignment = grid.Alignment

const (
	AlignLeft     = grid.AlignLeft
	AlignCentered = grid.AlignCentered
	AlignRight    = grid.AlignRight
	AlignJustify  = grid.AlignJustify
)

// DefaultRowAlignment justifies every row but the last.
func DefaultRowAlignment() RowAlignment { return grid.DefaultRowAlignment() }

// Direction is the scrolling direction of a flow layout.
type Direction = flow.Direction

const (
	Vertical   = flow.Vertical
	Horizontal = flow.Horizontal
)

// Flow layout options.
var (
	WithItemSize            = flow.WithItemSize
	WithLineSpacing         = flow.WithLineSpacing
	WithInteritemSpacing    = flow.WithInteritemSpacing
	WithSectionInset        = flow.WithSectionInset
	WithHeaderReferenceSize = flow.WithHeaderReferenceSize
	WithFooterReferenceSize = flow.WithFooterReferenceSize
	WithScrollDirection     = flow.WithScrollDirection
	WithRightToLeft         = flow.WithRightToLeft
	WithRowAlignment        = flow.WithRowAlignment
	WithFloatingHeaders     = flow.WithFloatingHeaders
)

// FlowLayout is the flow layout engine.
type FlowLayout = flow.Layout

// NewFlowLayout returns a flow layout.
func NewFlowLayout(opts ...FlowOption) (*FlowLayout, error) { return flow.New(opts...) }

// Flow layout delegate interfaces. A delegate passed with WithDelegate
// implements any subset of them.
type (
	ItemSizer       = flow.ItemSizer
	SectionInsetter = flow.SectionInsetter
	LineSpacer      = flow.LineSpacer
	InteritemSpacer = flow.InteritemSpacer
	HeaderSizer     = flow.HeaderSizer
	FooterSizer     = flow.FooterSizer
)

// ListOption configures a list layout.
type ListOption = list.Option

// List layout options.
var (
	WithRowHeight       = list.WithRowHeight
	WithHeaderHeight    = list.WithHeaderHeight
	WithFooterHeight    = list.WithFooterHeight
	WithSeparatorHeight = list.WithSeparatorHeight
)

// ListLayout is the single-column list layout engine.
type ListLayout = list.Layout

// NewListLayout returns a single-column list layout.
func NewListLayout(opts ...ListOption) (*ListLayout, error) { return list.New(opts...) }

// List layout delegate interfaces.
type (
	RowHeighter    = list.RowHeighter
	HeaderHeighter = list.HeaderHeighter
	FooterHeighter = list.FooterHeighter
)
