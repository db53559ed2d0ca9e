// Package reuse keeps views for off-screen elements so they can be handed
// out again instead of being rebuilt, and tracks which view currently shows
// which element.
package reuse

import (
	"errors"
	"fmt"
	"slices"

	"github.com/grindlemire/go-collection/internal/index"
	"github.com/grindlemire/go-collection/internal/layout"
)

// ErrUnknownReuseIdentifier is returned when dequeuing a reuse identifier
// nothing was registered for.
var ErrUnknownReuseIdentifier = errors.New("reuse: unknown reuse identifier")

// Factory builds a new view for a reuse identifier.
type Factory[V any] func(reuseID string) V

// class is a registered (element kind, reuse identifier) pair. Cells use
// layout.KindCell as their kind.
type class struct {
	kind    string
	reuseID string
}

type shown[V any] struct {
	class class
	view  V
}

// Pool hands out views per reuse class and remembers which are visible.
type Pool[V any] struct {
	factories map[class]Factory[V]
	free      map[class][]V
	visible   map[layout.ItemKey]shown[V]

	created int
	reused  int
}

// New returns an empty pool.
func New[V any]() *Pool[V] {
	return &Pool[V]{
		factories: make(map[class]Factory[V]),
		free:      make(map[class][]V),
		visible:   make(map[layout.ItemKey]shown[V]),
	}
}

// Register installs the factory for a kind and reuse identifier, replacing
// any earlier registration.
func (p *Pool[V]) Register(kind, reuseID string, f Factory[V]) {
	p.factories[class{kind, reuseID}] = f
}

// Dequeue returns a free view of the class, or a new one from its factory.
// The boolean reports whether the view was reused.
func (p *Pool[V]) Dequeue(kind, reuseID string) (V, bool, error) {
	c := class{kind, reuseID}
	if free := p.free[c]; len(free) > 0 {
		v := free[len(free)-1]
		var zero V
		free[len(free)-1] = zero
		p.free[c] = free[:len(free)-1]
		p.reused++
		return v, true, nil
	}
	f, ok := p.factories[c]
	if !ok {
		var zero V
		return zero, false, fmt.Errorf("%w: %q (kind %q)", ErrUnknownReuseIdentifier, reuseID, kind)
	}
	p.created++
	return f(reuseID), false, nil
}

// Enqueue returns a view to the free list of its class.
func (p *Pool[V]) Enqueue(kind, reuseID string, v V) {
	c := class{kind, reuseID}
	p.free[c] = append(p.free[c], v)
}

// Show records v as the view presenting the element k.
func (p *Pool[V]) Show(k layout.ItemKey, kind, reuseID string, v V) {
	p.visible[k] = shown[V]{class: class{kind, reuseID}, view: v}
}

// Visible returns the view presenting k.
func (p *Pool[V]) Visible(k layout.ItemKey) (V, bool) {
	s, ok := p.visible[k]
	return s.view, ok
}

// Recycle moves every visible view whose key is not in keep to its free list
// and returns how many were recycled.
func (p *Pool[V]) Recycle(keep map[layout.ItemKey]bool) int {
	n := 0
	for k, s := range p.visible {
		if keep[k] {
			continue
		}
		p.Enqueue(s.class.kind, s.class.reuseID, s.view)
		delete(p.visible, k)
		n++
	}
	return n
}

// RecycleAll moves every visible view to its free list.
func (p *Pool[V]) RecycleAll() int {
	return p.Recycle(nil)
}

// Remap rekeys visible views after a batch update. mapOld returns the new
// path of an old one; views whose element did not survive are recycled.
func (p *Pool[V]) Remap(mapOld func(index.Path) (index.Path, bool)) {
	next := make(map[layout.ItemKey]shown[V], len(p.visible))
	for k, s := range p.visible {
		np, ok := mapOld(k.IndexPath)
		if !ok {
			p.Enqueue(s.class.kind, s.class.reuseID, s.view)
			continue
		}
		k.IndexPath = np
		next[k] = s
	}
	p.visible = next
}

// VisibleKeys returns the keys of all visible elements ordered by index path,
// then category, then identifier.
func (p *Pool[V]) VisibleKeys() []layout.ItemKey {
	keys := make([]layout.ItemKey, 0, len(p.visible))
	for k := range p.visible {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)
	return keys
}

func compareKeys(a, b layout.ItemKey) int {
	if c := index.Compare(a.IndexPath, b.IndexPath); c != 0 {
		return c
	}
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}
	switch {
	case a.Identifier < b.Identifier:
		return -1
	case a.Identifier > b.Identifier:
		return 1
	}
	return 0
}

// Stats returns how many views were created and how many were reused.
func (p *Pool[V]) Stats() (created, reused int) {
	return p.created, p.reused
}

// FreeCount returns the number of free views of a class.
func (p *Pool[V]) FreeCount(kind, reuseID string) int {
	return len(p.free[class{kind, reuseID}])
}
