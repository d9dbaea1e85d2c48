// Package optvec provides a dense vector of optional values backed by
// one contiguous value slice and a presence bitmap.
//
// A [Vec] is semantically a slice of optional values, but absent slots
// cost one bit each instead of a discriminant per element, and present
// values can be compacted to the front of the slice in place. That
// compaction is what the disjoint-subgraph builder relies on: it writes
// vertices into scattered slots and then converts the result to a plain
// dense slice without reallocating.
package optvec

import "github.com/bits-and-blooms/bitset"

// Vec is a fixed-length vector of optional values. The zero value is an
// empty vector; use [NewWithLen] for a vector of a given length with
// every slot absent.
type Vec[T any] struct {
	values  []T
	present *bitset.BitSet
}

// NewWithLen creates a vector of length n with all slots absent.
func NewWithLen[T any](n int) *Vec[T] {
	return &Vec[T]{
		values:  make([]T, n),
		present: bitset.New(uint(n)),
	}
}

// Len returns the number of slots, present or absent.
func (v *Vec[T]) Len() int { return len(v.values) }

// Set stores value at slot i and marks it present.
func (v *Vec[T]) Set(i int, value T) {
	v.values[i] = value
	v.present.Set(uint(i))
}

// Unset marks slot i absent.
func (v *Vec[T]) Unset(i int) {
	var zero T
	v.values[i] = zero
	v.present.Clear(uint(i))
}

// Get returns the value at slot i and whether it is present.
func (v *Vec[T]) Get(i int) (T, bool) {
	if !v.present.Test(uint(i)) {
		var zero T
		return zero, false
	}
	return v.values[i], true
}

// Count returns the number of present slots.
func (v *Vec[T]) Count() int { return int(v.present.Count()) }

// Compact moves every present value to the front of the vector,
// preserving relative order, and returns the number kept. After Compact
// the first n slots are present and the rest are absent.
func (v *Vec[T]) Compact() int {
	keep := 0
	for i := range v.values {
		if v.present.Test(uint(i)) {
			if i != keep {
				v.values[keep] = v.values[i]
			}
			keep++
		}
	}
	var zero T
	for i := keep; i < len(v.values); i++ {
		v.values[i] = zero
		v.present.Clear(uint(i))
	}
	for i := 0; i < keep; i++ {
		v.present.Set(uint(i))
	}
	return keep
}

// TakeCompacted compacts the vector and returns the dense prefix of
// present values, sharing the vector's backing array. The vector must
// not be used afterward.
func (v *Vec[T]) TakeCompacted() []T {
	n := v.Compact()
	out := v.values[:n]
	v.values = nil
	v.present = nil
	return out
}
