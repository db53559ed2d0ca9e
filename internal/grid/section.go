package grid

import (
	"slices"

	"github.com/grindlemire/go-collection/internal/geom"
)

// Section is one group of items together with its header, footer, margins and
// spacing. Exactly one item representation is active: item handles plus rows
// on the variable-size path, or a count plus ItemSize on the fixed-size path.
//
// Fields may be set directly while the owning Info is being built. Changing
// them afterwards requires Info.Invalidate.
type Section struct {
	id    SectionID
	items []ItemID
	rows  []RowID

	// FixedItemSize selects the fast path; set through Info.SetFixedItems.
	FixedItemSize bool
	ItemSize      geom.Size
	fixedCount    int

	// InteritemSpacing is the minimum gap between items of a row, LineSpacing
	// the gap between rows.
	InteritemSpacing float64
	LineSpacing      float64
	Margins          geom.Insets

	Frame           geom.Rect
	HeaderFrame     geom.Rect
	FooterFrame     geom.Rect
	HeaderDimension float64
	FooterDimension float64
	RowAlignment    RowAlignment

	// Packing state from the last compute. Margins and gaps are measured on
	// the packing axis; OtherMargin is the margin before the first row.
	OtherMargin        float64
	BeginMargin        float64
	EndMargin          float64
	ActualGap          float64
	LastRowBeginMargin float64
	LastRowEndMargin   float64
	LastRowActualGap   float64
	LastRowIncomplete  bool
	ItemsByRowCount    int
	IncompleteRow      int

	// fast path cache: row pitch and per-column offsets for full rows and for
	// the last row
	rowsOrigin    float64
	rowPitch      float64
	rowCount      int
	commonOffsets []float64
	lastOffsets   []float64

	valid bool
}

// ID returns the section's handle, which is also its section index.
func (s *Section) ID() SectionID { return s.id }

// ItemsCount returns the number of items in the active representation.
func (s *Section) ItemsCount() int {
	if s.FixedItemSize {
		return s.fixedCount
	}
	return len(s.items)
}

// Items returns the item handles of a variable-size section in item order.
// The slice must not be modified.
func (s *Section) Items() []ItemID { return s.items }

// RowCount returns the number of rows after the last compute.
func (s *Section) RowCount() int {
	if s.FixedItemSize {
		return s.rowCount
	}
	return len(s.rows)
}

// Valid reports whether the section geometry is current.
func (s *Section) Valid() bool { return s.valid }

func (s *Section) clone() Section {
	c := *s
	c.items = slices.Clone(s.items)
	c.rows = slices.Clone(s.rows)
	c.commonOffsets = slices.Clone(s.commonOffsets)
	c.lastOffsets = slices.Clone(s.lastOffsets)
	return c
}
