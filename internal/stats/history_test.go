package stats

import (
	"slices"
	"testing"
)

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for _, v := range []int{5, 7, 9, 11} {
		h.Push(v)
	}
	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3", h.Len())
	}
	if got := h.Values(nil); !slices.Equal(got, []int{7, 9, 11}) {
		t.Fatalf("values = %v, want [7 9 11]", got)
	}
	if last, ok := h.Last(); !ok || last != 11 {
		t.Fatalf("last = %d, %v", last, ok)
	}
	if d := h.Delta(); d != 4 {
		t.Fatalf("delta = %d, want 4", d)
	}
}

func TestHistoryRange(t *testing.T) {
	h := NewHistory(10)
	if lo, hi := h.Range(); lo != 0 || hi != 0 {
		t.Fatalf("empty range = (%d,%d)", lo, hi)
	}
	for _, v := range []int{40, 10, 90, 30} {
		h.Push(v)
	}
	if lo, hi := h.Range(); lo != 10 || hi != 90 {
		t.Fatalf("range = (%d,%d), want (10,90)", lo, hi)
	}
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(0)
	if h.Limit() != 1 {
		t.Fatalf("limit = %d, want fallback 1", h.Limit())
	}
	h.Push(1)
	h.Push(2)
	if got := h.Values(nil); !slices.Equal(got, []int{2}) {
		t.Fatalf("values = %v, want [2]", got)
	}
	h.Reset()
	if h.Len() != 0 || h.Delta() != 0 {
		t.Fatal("reset should empty the window")
	}
	if _, ok := h.Last(); ok {
		t.Fatal("empty history has no last sample")
	}
}
