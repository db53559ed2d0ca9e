package collection

import (
	"fmt"

	"github.com/grindlemire/go-collection/internal/debug"
	"github.com/grindlemire/go-collection/internal/layout"
	"github.com/grindlemire/go-collection/internal/update"
)

// Batch updates:
//
// Changes to the data source are announced with the insert, delete, move
// and reload methods. Inside PerformBatchUpdates they are collected and
// reconciled together when the outermost call returns:
//
//	err := cv.PerformBatchUpdates(func() error {
//	    model.Remove(0, 2)
//	    model.Insert(0, 0, "new")
//	    if err := cv.DeleteItems(collection.At(0, 2)); err != nil {
//	        return err
//	    }
//	    return cv.InsertItems(collection.At(0, 0))
//	})
//
// Outside a batch each method is a batch of its own.

// Update is the outcome of one committed batch.
type Update struct {
	// Items are the reconciled updates in application order.
	Items []UpdateItem
	// Map translates paths between the numbering before and after the batch.
	Map *UpdateMap
	// Before and After are the geometry snapshots on either side of the
	// batch, for animating between them.
	Before Geometry
	After  Geometry
}

// batchContext tracks nesting of PerformBatchUpdates.
type batchContext struct {
	depth     int // nesting depth (0 = not batching)
	pending   update.Batch
	oldCounts []int
	before    layout.Geometry
	failed    error
}

// PerformBatchUpdates runs fn and reconciles every update announced while it
// runs. Nested calls are flattened into the outermost one, which is the only
// one that commits. If fn returns an error nothing is committed and the
// cache is rebuilt from scratch on the next query.
//
// If fn panics, the batch state is cleaned up before the panic propagates.
func (cv *CollectionView) PerformBatchUpdates(fn func() error) error {
	b := &cv.batch
	if b.depth == 0 {
		if err := cv.validate(); err != nil {
			return fmt.Errorf("collection: batch: %w", err)
		}
		counts, err := cv.data.Counts()
		if err != nil {
			return fmt.Errorf("collection: batch: %w", err)
		}
		before, err := cv.data.Geometry()
		if err != nil {
			return fmt.Errorf("collection: batch: %w", err)
		}
		b.oldCounts = counts
		b.before = before
		b.pending.Reset()
		b.failed = nil
	}
	b.depth++

	// The handler runs after the batch is closed so anything it announces
	// is committed as a batch of its own.
	var done *Update
	defer func() {
		if done != nil && cv.onUpdate != nil {
			cv.onUpdate(*done)
		}
	}()

	committed := false
	defer func() {
		b.depth--
		if b.depth == 0 && !committed {
			// fn panicked or failed
			b.pending.Reset()
			b.oldCounts = nil
			b.before = nil
			b.failed = nil
			cv.ReloadData()
		}
	}()

	if fn != nil {
		if err := fn(); err != nil {
			if b.depth > 1 {
				b.failed = err
			}
			return err
		}
	}
	if b.depth > 1 {
		return nil
	}
	if b.failed != nil {
		return b.failed
	}
	committed = true
	u, err := cv.commit()
	if err != nil {
		return err
	}
	done = u
	return nil
}

// commit reconciles the pending batch against the counts the data source
// reports now. A rejected batch leaves the new counts in place but drops
// every visible view, since their paths can no longer be trusted.
func (cv *CollectionView) commit() (*Update, error) {
	b := &cv.batch
	defer func() {
		b.pending.Reset()
		b.oldCounts = nil
		b.before = nil
	}()

	cv.data.Invalidate()
	if err := cv.validate(); err != nil {
		cv.pool.RecycleAll()
		return nil, fmt.Errorf("collection: batch: %w", err)
	}
	newCounts, err := cv.data.Counts()
	if err != nil {
		cv.pool.RecycleAll()
		return nil, fmt.Errorf("collection: batch: %w", err)
	}

	res, err := update.Reconcile(&b.pending, b.oldCounts, newCounts)
	if err != nil {
		debug.Log("collection: batch of %d ops rejected: %v", b.pending.Len(), err)
		cv.pool.RecycleAll()
		return nil, err
	}

	after, err := cv.data.Geometry()
	if err != nil {
		return nil, err
	}
	u := Update{Items: res.Items, Map: res, Before: b.before, After: after}
	cv.updates = append(cv.updates, u)
	cv.pool.Remap(res.MapOld)
	debug.Log("collection: committed %d updates", len(res.Items))
	return &u, nil
}

// announce runs add against the open batch, or commits what it adds as a
// batch of its own.
func (cv *CollectionView) announce(add func(b *update.Batch)) error {
	if cv.batch.depth > 0 {
		add(&cv.batch.pending)
		return nil
	}
	return cv.PerformBatchUpdates(func() error {
		add(&cv.batch.pending)
		return nil
	})
}

// InsertSections announces sections inserted at the given indexes (new
// numbering).
func (cv *CollectionView) InsertSections(sections ...int) error {
	return cv.announce(func(b *update.Batch) { b.InsertSections(sections...) })
}

// DeleteSections announces sections deleted at the given indexes (old
// numbering).
func (cv *CollectionView) DeleteSections(sections ...int) error {
	return cv.announce(func(b *update.Batch) { b.DeleteSections(sections...) })
}

// ReloadSections announces sections whose contents changed in place.
func (cv *CollectionView) ReloadSections(sections ...int) error {
	return cv.announce(func(b *update.Batch) { b.ReloadSections(sections...) })
}

// MoveSection announces a section moved from one index to another.
func (cv *CollectionView) MoveSection(from, to int) error {
	return cv.announce(func(b *update.Batch) { b.MoveSection(from, to) })
}

// InsertItems announces items inserted at the given paths (new numbering).
func (cv *CollectionView) InsertItems(paths ...IndexPath) error {
	return cv.announce(func(b *update.Batch) { b.InsertItems(paths...) })
}

// DeleteItems announces items deleted at the given paths (old numbering).
func (cv *CollectionView) DeleteItems(paths ...IndexPath) error {
	return cv.announce(func(b *update.Batch) { b.DeleteItems(paths...) })
}

// ReloadItems announces items whose contents changed in place.
func (cv *CollectionView) ReloadItems(paths ...IndexPath) error {
	return cv.announce(func(b *update.Batch) { b.ReloadItems(paths...) })
}

// MoveItem announces an item moved from one path to another.
func (cv *CollectionView) MoveItem(from, to IndexPath) error {
	return cv.announce(func(b *update.Batch) { b.MoveItem(from, to) })
}

// Updates returns every committed batch in order.
func (cv *CollectionView) Updates() []Update {
	out := make([]Update, len(cv.updates))
	copy(out, cv.updates)
	return out
}
