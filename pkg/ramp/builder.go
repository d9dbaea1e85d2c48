package ramp

import "slices"

// Builder accumulates (key, value) pairs in arbitrary key order and
// produces a [Table] on Finish. Use it when a producer discovers keys
// out of order - for example, per-layer edge lists are discovered while
// scanning edges, not while scanning layers.
//
// The zero value is ready to use.
type Builder[T any] struct {
	items []builderItem[T]
}

type builderItem[T any] struct {
	key   uint32
	value T
}

// NewBuilder creates a builder with preallocated storage for capacity
// pairs.
func NewBuilder[T any](capacity int) *Builder[T] {
	return &Builder[T]{items: make([]builderItem[T], 0, capacity)}
}

// Push records a value under key. Keys may arrive in any order and may
// repeat; values pushed under the same key keep their relative order.
func (b *Builder[T]) Push(key uint32, value T) {
	b.items = append(b.items, builderItem[T]{key: key, value: value})
}

// Finish sorts the recorded pairs by key and assembles the table. Keys
// that were never pushed get empty value lists; the key space runs from
// 0 through the largest key pushed. An empty builder produces an empty
// table.
//
// The sort is stable, so insertion order within each key is preserved.
func (b *Builder[T]) Finish() *Table[T] {
	items := b.items
	b.items = nil
	slices.SortStableFunc(items, func(a, c builderItem[T]) int {
		return int(a.key) - int(c.key)
	})
	if len(items) == 0 {
		return New[T]()
	}

	numKeys := int(items[len(items)-1].key) + 1
	t := WithCapacity[T](numKeys, len(items))
	for _, it := range items {
		// Close out any skipped keys as empty entries.
		for t.NumKeys() < int(it.key) {
			t.FinishKey()
		}
		t.PushValue(it.value)
	}
	for t.NumKeys() < numKeys {
		t.FinishKey()
	}
	return t
}
