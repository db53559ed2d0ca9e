package layout

import "errors"

var (
	// ErrInvalidGeometry is returned for negative or NaN sizes, insets, spacing
	// or dimensions.
	ErrInvalidGeometry = errors.New("layout: invalid geometry")

	// ErrNotPrepared is returned by queries issued before the first validate.
	ErrNotPrepared = errors.New("layout: not prepared")

	// ErrInconsistentDataSource is returned when data source counts are
	// negative, change while being read, or disagree with a batch of updates.
	ErrInconsistentDataSource = errors.New("layout: inconsistent data source")

	// ErrConflictingUpdate is returned when a batch contains a section operation
	// and an item operation inside that same section.
	ErrConflictingUpdate = errors.New("layout: conflicting update")

	// ErrInvalidUpdateItem is returned for out-of-range or duplicate index paths
	// in a batch, and for moves that do not move anything.
	ErrInvalidUpdateItem = errors.New("layout: invalid update item")

	// ErrNoSuchElement is returned when a query names an element that is not in
	// the current snapshot.
	ErrNoSuchElement = errors.New("layout: no such element")
)
