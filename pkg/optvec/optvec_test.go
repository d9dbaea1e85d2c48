package optvec

import (
	"slices"
	"testing"
)

func TestSetGetUnset(t *testing.T) {
	v := NewWithLen[string](4)
	if v.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", v.Len())
	}
	if _, ok := v.Get(2); ok {
		t.Error("Get(2) present on fresh vector")
	}

	v.Set(2, "x")
	got, ok := v.Get(2)
	if !ok || got != "x" {
		t.Errorf("Get(2) = %q, %v, want x, true", got, ok)
	}
	if v.Count() != 1 {
		t.Errorf("Count() = %d, want 1", v.Count())
	}

	v.Unset(2)
	if _, ok := v.Get(2); ok {
		t.Error("Get(2) present after Unset")
	}
}

func TestCompactStable(t *testing.T) {
	v := NewWithLen[int](6)
	v.Set(1, 10)
	v.Set(3, 30)
	v.Set(4, 40)

	if n := v.Compact(); n != 3 {
		t.Fatalf("Compact() = %d, want 3", n)
	}
	for i, want := range []int{10, 30, 40} {
		got, ok := v.Get(i)
		if !ok || got != want {
			t.Errorf("Get(%d) = %d, %v, want %d, true", i, got, ok, want)
		}
	}
	for i := 3; i < 6; i++ {
		if _, ok := v.Get(i); ok {
			t.Errorf("Get(%d) present after Compact", i)
		}
	}
}

func TestCompactAllAbsent(t *testing.T) {
	v := NewWithLen[int](3)
	if n := v.Compact(); n != 0 {
		t.Errorf("Compact() = %d, want 0", n)
	}
}

func TestTakeCompacted(t *testing.T) {
	v := NewWithLen[int](5)
	v.Set(4, 2)
	v.Set(0, 1)
	got := v.TakeCompacted()
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("TakeCompacted() = %v, want [1 2]", got)
	}
}
