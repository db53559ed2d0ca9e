// Package layout defines the vocabulary shared by every layout engine:
// per-element [Attributes], the [ItemKey] used to address elements in reuse
// caches, and the [Layout] capability interface that engines implement.
//
// Engines (flow, list) live in their own packages and depend only on this one.
// The cache in package viewdata drives an engine exclusively through [Layout].
package layout
