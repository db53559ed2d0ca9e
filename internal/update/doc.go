// Package update reconciles a batch of insert, delete, reload and move
// operations against old and new item counts.
//
// Reconcile validates the whole batch, orders it so that it can be replayed
// one item at a time (deletions from the back, then moves, then insertions
// from the front) and computes old-to-new and new-to-old index maps. A batch
// is accepted or rejected as a whole.
package update
