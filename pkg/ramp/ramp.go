// Package ramp provides a compact multimap from a dense integer key
// space to variable-length ordered value lists.
//
// # Overview
//
// A [Table] stores all values in one contiguous slice, with a second
// slice of offsets marking where each key's run of values begins. This
// is the classic CSR (compressed sparse row) layout: looking up a key
// is two offset reads and a subslice, values for a key stay in
// insertion order, and the whole table is exactly two allocations.
//
// Every other structure in this module is built on a Table: a graph is
// a Table from vertex to out-neighbors, a layering is a Table from
// layer to vertex list, and so on.
//
// # Building
//
// Tables are append-only and built one key at a time. [Table.PushValue]
// appends a value for the key currently being built; [Table.FinishKey]
// closes that key and moves on to the next:
//
//	t := ramp.New[string]()
//	t.PushValue("a")
//	t.PushValue("b")
//	t.FinishKey() // key 0 -> ["a", "b"]
//	t.FinishKey() // key 1 -> []
//
// Producers that discover keys out of order use a [Builder] instead,
// which buffers (key, value) pairs and sorts them on [Builder.Finish].
//
// # Failure Semantics
//
// Out-of-range keys and malformed offset tables are programming errors,
// not runtime conditions; the package panics rather than returning
// errors. Producers are expected to uphold the invariants.
package ramp

import (
	"fmt"
	"iter"
	"slices"
)

// Table is a mapping from the dense key space [0, NumKeys) to ordered
// value lists, stored as an offset slice plus a flat value slice.
//
// Invariants: the offset slice is non-decreasing, starts at 0, and its
// last element equals the number of values. The values for key k live
// at values[index[k]:index[k+1]].
//
// The zero value is not usable; create tables with [New],
// [WithCapacity], or [FromRaw].
type Table[T any] struct {
	index  []uint32
	values []T
}

// New creates an empty table with zero keys and zero values.
func New[T any]() *Table[T] {
	return &Table[T]{index: []uint32{0}}
}

// WithCapacity creates an empty table with preallocated storage for
// numKeys keys and numValues values. Sizing tables up front keeps the
// hot construction loops free of reallocation.
func WithCapacity[T any](numKeys, numValues int) *Table[T] {
	index := make([]uint32, 1, numKeys+1)
	return &Table[T]{
		index:  index,
		values: make([]T, 0, numValues),
	}
}

// FromRaw assembles a table directly from an offset slice and a value
// slice, for producers (such as counting sorts) that compute both in
// place. The offset slice must be non-decreasing, start at 0, and end
// at len(values); FromRaw panics otherwise.
func FromRaw[T any](index []uint32, values []T) *Table[T] {
	if len(index) == 0 || index[0] != 0 {
		panic("ramp: offset slice must start at 0")
	}
	for i := 1; i < len(index); i++ {
		if index[i] < index[i-1] {
			panic(fmt.Sprintf("ramp: offset slice decreases at %d", i))
		}
	}
	if int(index[len(index)-1]) != len(values) {
		panic("ramp: final offset must equal value count")
	}
	return &Table[T]{index: index, values: values}
}

// PushValue appends a value for the key currently under construction.
// The value is not associated with any key until [Table.FinishKey].
func (t *Table[T]) PushValue(v T) {
	t.values = append(t.values, v)
}

// FinishKey closes out the current key, associating every value pushed
// since the previous FinishKey with it, and returns the new key's index.
func (t *Table[T]) FinishKey() int {
	t.index = append(t.index, uint32(len(t.values)))
	return len(t.index) - 2
}

// PushEntry appends all of values under a single new key.
func (t *Table[T]) PushEntry(values ...T) {
	t.values = append(t.values, values...)
	t.FinishKey()
}

// Clear removes all keys and values, retaining allocated storage.
func (t *Table[T]) Clear() {
	t.values = t.values[:0]
	t.index = t.index[:1]
	t.index[0] = 0
}

// NumKeys returns the number of keys in the table.
func (t *Table[T]) NumKeys() int { return len(t.index) - 1 }

// NumValues returns the total number of values across all keys.
func (t *Table[T]) NumValues() int { return len(t.values) }

// EntryRange returns the half-open range [start, end) into the value
// slice occupied by key. It panics if key is out of range.
func (t *Table[T]) EntryRange(key int) (start, end int) {
	if key < 0 || key >= t.NumKeys() {
		panic(fmt.Sprintf("ramp: key %d out of range [0, %d)", key, t.NumKeys()))
	}
	return int(t.index[key]), int(t.index[key+1])
}

// EntryValues returns the values stored under key, in insertion order.
// The returned slice is a view into the table; callers may reorder its
// elements in place but must not append to it. Panics if key is out of
// range.
func (t *Table[T]) EntryValues(key int) []T {
	start, end := t.EntryRange(key)
	return t.values[start:end:end]
}

// AllValues returns the flat value slice, spanning every key in order.
func (t *Table[T]) AllValues() []T { return t.values }

// Entries yields (key, values) for every key in ascending key order,
// including keys with empty value lists.
func (t *Table[T]) Entries() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for k := 0; k < t.NumKeys(); k++ {
			if !yield(k, t.EntryValues(k)) {
				return
			}
		}
	}
}

// Pairs yields (key, value) for every value in the table, in key order
// and then insertion order within a key.
func (t *Table[T]) Pairs() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k := 0; k < t.NumKeys(); k++ {
			start, end := t.EntryRange(k)
			for i := start; i < end; i++ {
				if !yield(k, t.values[i]) {
					return
				}
			}
		}
	}
}

// Equal reports whether two tables hold the same keys and values.
func Equal[T comparable](a, b *Table[T]) bool {
	return slices.Equal(a.index, b.index) && slices.Equal(a.values, b.values)
}
