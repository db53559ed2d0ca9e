package collection

import (
	"fmt"

	"github.com/grindlemire/go-collection/internal/geom"
)

// Option is a functional option for configuring a CollectionView.
type Option func(*CollectionView) error

// WithDelegate sets the sizing delegate. Layout engines type-assert it
// against the optional sizing interfaces they understand.
func WithDelegate(d any) Option {
	return func(cv *CollectionView) error {
		cv.delegate = d
		return nil
	}
}

// WithBounds sets the initial visible rect. Width (or height, for
// horizontal layouts) is the extent rows are packed against.
func WithBounds(r geom.Rect) Option {
	return func(cv *CollectionView) error {
		if !r.Size().Valid() {
			return fmt.Errorf("%w: bounds %v", ErrInvalidGeometry, r)
		}
		cv.bounds = r
		return nil
	}
}

// WithUpdateHandler sets a callback invoked after every committed batch.
func WithUpdateHandler(fn func(Update)) Option {
	return func(cv *CollectionView) error {
		cv.onUpdate = fn
		return nil
	}
}
