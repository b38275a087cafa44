// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package catalog

// Prefetched holds a to-many association materialised by a batch query.
//
// The zero value is an association that was never loaded. It reads as empty:
// accessors index into memory only and never fall back to a lookup.
type Prefetched[T any] struct {
	items  []T
	loaded bool
}

// Prefetch wraps items loaded for one parent row.
func Prefetch[T any](items []T) Prefetched[T] {
	if items == nil {
		items = []T{}
	}
	return Prefetched[T]{items: items, loaded: true}
}

// Loaded reports whether the association was populated by the storage layer.
func (p Prefetched[T]) Loaded() bool { return p.loaded }

// All returns the loaded items in their stored order.
func (p Prefetched[T]) All() []T { return p.items }

// Len returns the number of loaded items.
func (p Prefetched[T]) Len() int { return len(p.items) }

// First returns a pointer to the first loaded item, or nil.
func (p Prefetched[T]) First() *T {
	if len(p.items) == 0 {
		return nil
	}
	return &p.items[0]
}
