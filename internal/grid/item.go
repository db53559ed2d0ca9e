package grid

import "github.com/grindlemire/go-collection/internal/geom"

// SectionID, RowID and ItemID are handles into the arenas of an Info.
type (
	SectionID int
	RowID     int
	ItemID    int
)

// NoRow marks an item that has not been packed into a row yet.
const NoRow RowID = -1

// Item is one entry of a variable-size section.
type Item struct {
	Section SectionID
	Row     RowID
	// Frame is relative to the owning row once the section is computed.
	// Before that only its size is meaningful.
	Frame geom.Rect
}

// Row is a line of items packed along the layout dimension.
type Row struct {
	Section SectionID
	Index   int
	Items   []ItemID

	// ItemCount equals len(Items) for materialised rows. Rows synthesised for
	// fixed-size sections have no Items and only carry the count.
	ItemCount     int
	FixedItemSize bool

	Size geom.Size
	// Frame is relative to the owning section.
	Frame geom.Rect
	// Complete is set once the packing pass moved on to the next row.
	Complete bool

	valid bool
}

// Invalidate marks the row geometry as stale.
func (r *Row) Invalidate() {
	r.valid = false
}

// Valid reports whether the row geometry is current.
func (r *Row) Valid() bool {
	return r.valid
}
