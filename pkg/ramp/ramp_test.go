package ramp

import (
	"slices"
	"testing"
)

func TestTableBuild(t *testing.T) {
	tbl := New[int]()
	tbl.PushValue(10)
	tbl.PushValue(11)
	if key := tbl.FinishKey(); key != 0 {
		t.Errorf("FinishKey() = %d, want 0", key)
	}
	tbl.FinishKey() // key 1, empty
	tbl.PushEntry(12)

	if got := tbl.NumKeys(); got != 3 {
		t.Errorf("NumKeys() = %d, want 3", got)
	}
	if got := tbl.NumValues(); got != 3 {
		t.Errorf("NumValues() = %d, want 3", got)
	}
	if got := tbl.EntryValues(0); !slices.Equal(got, []int{10, 11}) {
		t.Errorf("EntryValues(0) = %v, want [10 11]", got)
	}
	if got := tbl.EntryValues(1); len(got) != 0 {
		t.Errorf("EntryValues(1) = %v, want empty", got)
	}
	if got := tbl.EntryValues(2); !slices.Equal(got, []int{12}) {
		t.Errorf("EntryValues(2) = %v, want [12]", got)
	}
}

func TestTableOutOfRangePanics(t *testing.T) {
	tbl := New[int]()
	tbl.PushEntry(1)

	defer func() {
		if recover() == nil {
			t.Error("EntryValues(1) on single-key table did not panic")
		}
	}()
	tbl.EntryValues(1)
}

func TestTableClear(t *testing.T) {
	tbl := New[int]()
	tbl.PushEntry(1, 2, 3)
	tbl.Clear()
	if tbl.NumKeys() != 0 || tbl.NumValues() != 0 {
		t.Errorf("after Clear: NumKeys=%d NumValues=%d, want 0 0", tbl.NumKeys(), tbl.NumValues())
	}
	tbl.PushEntry(4)
	if got := tbl.EntryValues(0); !slices.Equal(got, []int{4}) {
		t.Errorf("EntryValues(0) after Clear = %v, want [4]", got)
	}
}

func TestTableEntries(t *testing.T) {
	tbl := New[int]()
	tbl.PushEntry(1, 2)
	tbl.FinishKey()
	tbl.PushEntry(3)

	var keys []int
	var lens []int
	for k, vals := range tbl.Entries() {
		keys = append(keys, k)
		lens = append(lens, len(vals))
	}
	if !slices.Equal(keys, []int{0, 1, 2}) {
		t.Errorf("Entries keys = %v, want [0 1 2]", keys)
	}
	if !slices.Equal(lens, []int{2, 0, 1}) {
		t.Errorf("Entries lens = %v, want [2 0 1]", lens)
	}
}

func TestTablePairs(t *testing.T) {
	tbl := New[string]()
	tbl.PushEntry("a", "b")
	tbl.FinishKey()
	tbl.PushEntry("c")

	type pair struct {
		key int
		val string
	}
	var got []pair
	for k, v := range tbl.Pairs() {
		got = append(got, pair{k, v})
	}
	want := []pair{{0, "a"}, {0, "b"}, {2, "c"}}
	if !slices.Equal(got, want) {
		t.Errorf("Pairs = %v, want %v", got, want)
	}
}

func TestFromRaw(t *testing.T) {
	tbl := FromRaw([]uint32{0, 2, 2, 3}, []int{7, 8, 9})
	if got := tbl.EntryValues(0); !slices.Equal(got, []int{7, 8}) {
		t.Errorf("EntryValues(0) = %v, want [7 8]", got)
	}
	if got := tbl.EntryValues(2); !slices.Equal(got, []int{9}) {
		t.Errorf("EntryValues(2) = %v, want [9]", got)
	}
}

func TestFromRawMalformedPanics(t *testing.T) {
	tests := []struct {
		name   string
		index  []uint32
		values []int
	}{
		{"Decreasing", []uint32{0, 2, 1}, []int{1, 2}},
		{"NonZeroStart", []uint32{1, 2}, []int{1, 2}},
		{"BadFinal", []uint32{0, 1}, []int{1, 2}},
		{"Empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("FromRaw(%v, %v) did not panic", tt.index, tt.values)
				}
			}()
			FromRaw(tt.index, tt.values)
		})
	}
}

func TestBuilderOutOfOrder(t *testing.T) {
	b := NewBuilder[string](4)
	b.Push(2, "x")
	b.Push(0, "a")
	b.Push(2, "y")
	b.Push(0, "b")

	tbl := b.Finish()
	if got := tbl.NumKeys(); got != 3 {
		t.Errorf("NumKeys() = %d, want 3", got)
	}
	// Stable: insertion order within a key survives the sort.
	if got := tbl.EntryValues(0); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("EntryValues(0) = %v, want [a b]", got)
	}
	if got := tbl.EntryValues(1); len(got) != 0 {
		t.Errorf("EntryValues(1) = %v, want empty", got)
	}
	if got := tbl.EntryValues(2); !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("EntryValues(2) = %v, want [x y]", got)
	}
}

func TestBuilderEmpty(t *testing.T) {
	var b Builder[int]
	tbl := b.Finish()
	if tbl.NumKeys() != 0 || tbl.NumValues() != 0 {
		t.Errorf("empty builder: NumKeys=%d NumValues=%d, want 0 0", tbl.NumKeys(), tbl.NumValues())
	}
}

func TestBuilderSkippedLeadingKeys(t *testing.T) {
	b := NewBuilder[int](1)
	b.Push(3, 42)
	tbl := b.Finish()
	if got := tbl.NumKeys(); got != 4 {
		t.Errorf("NumKeys() = %d, want 4", got)
	}
	for k := 0; k < 3; k++ {
		if got := tbl.EntryValues(k); len(got) != 0 {
			t.Errorf("EntryValues(%d) = %v, want empty", k, got)
		}
	}
	if got := tbl.EntryValues(3); !slices.Equal(got, []int{42}) {
		t.Errorf("EntryValues(3) = %v, want [42]", got)
	}
}
