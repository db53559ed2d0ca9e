// Package collection presents section-grouped items through a pluggable
// layout engine.
//
// Users import this package for the public API: the CollectionView façade,
// data source and delegate interfaces, batch updates and view reuse. Layout
// engines live in internal packages and are built with NewFlowLayout and
// NewListLayout.
//
// Queries validate lazily: the first query after a change pulls counts from
// the data source, prepares the layout and caches the result.
//
// Batch updates:
//
//	err := cv.PerformBatchUpdates(func() error {
//	    items = slices.Delete(items, 2, 3)
//	    items = slices.Insert(items, 0, "new")
//	    if err := cv.DeleteItems(collection.At(0, 2)); err != nil {
//	        return err
//	    }
//	    return cv.InsertItems(collection.At(0, 0))
//	})
//
// Nested PerformBatchUpdates calls are flattened into the outermost one.
package collection
