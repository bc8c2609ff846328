package core

import (
	"errors"
	"testing"
)

func TestIndexCoordBijection(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 3}, {5, 2}, {2, 7}, {100, 100}} {
		g := NewGrid(dims[0], dims[1])
		for i := 0; i < g.Len(); i++ {
			c := g.Coord(i)
			if got := g.Index(c.X, c.Y); got != i {
				t.Fatalf("%dx%d: Index(Coord(%d)) = %d", g.W, g.H, i, got)
			}
		}
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if got := g.Coord(g.Index(x, y)); got != (Coord{x, y}) {
					t.Fatalf("%dx%d: Coord(Index(%d,%d)) = %+v", g.W, g.H, x, y, got)
				}
			}
		}
	}
}

func TestNeighborCountsByPosition(t *testing.T) {
	g := NewGrid(5, 4)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			edgeX := x == 0 || x == g.W-1
			edgeY := y == 0 || y == g.H-1
			wantCross, wantFull := 4, 8
			switch {
			case edgeX && edgeY:
				wantCross, wantFull = 2, 3
			case edgeX || edgeY:
				wantCross, wantFull = 3, 5
			}
			cross := g.CrossNeighbors(x, y)
			full := g.FullNeighbors(x, y)
			if len(cross) != wantCross {
				t.Fatalf("(%d,%d): %d cross neighbors, want %d", x, y, len(cross), wantCross)
			}
			if len(full) != wantFull {
				t.Fatalf("(%d,%d): %d full neighbors, want %d", x, y, len(full), wantFull)
			}
			seen := map[Coord]bool{}
			for _, n := range full {
				if !g.InBounds(n.X, n.Y) {
					t.Fatalf("(%d,%d): neighbor %+v out of bounds", x, y, n)
				}
				if n == (Coord{x, y}) {
					t.Fatalf("(%d,%d): cell listed as its own neighbor", x, y)
				}
				if seen[n] {
					t.Fatalf("(%d,%d): neighbor %+v listed twice", x, y, n)
				}
				seen[n] = true
			}
		}
	}
}

func TestCrossNeighborOrder(t *testing.T) {
	g := NewGrid(3, 3)
	got := g.CrossNeighbors(1, 1)
	want := []Coord{{1, 0}, {1, 2}, {0, 1}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("neighbor %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSingleCellHasNoNeighbors(t *testing.T) {
	g := NewGrid(1, 1)
	if n := g.FullNeighbors(0, 0); len(n) != 0 {
		t.Fatalf("expected no neighbors, got %v", n)
	}
}

func TestAppendReusesBuffer(t *testing.T) {
	g := NewGrid(4, 4)
	buf := make([]Coord, 0, 8)
	buf = g.AppendFull(buf[:0], 1, 1)
	if len(buf) != 8 {
		t.Fatalf("expected 8 neighbors, got %d", len(buf))
	}
	buf = g.AppendCross(buf[:0], 0, 0)
	if len(buf) != 2 {
		t.Fatalf("expected 2 neighbors after reuse, got %d", len(buf))
	}
}

func expectRangePanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("panic value %v is not a *RangeError", err)
		}
	}()
	fn()
}

func TestOutOfRangePanics(t *testing.T) {
	g := NewGrid(3, 2)
	expectRangePanic(t, func() { g.Index(3, 0) })
	expectRangePanic(t, func() { g.Index(0, -1) })
	expectRangePanic(t, func() { g.Coord(6) })
	expectRangePanic(t, func() { g.Coord(-1) })
}
