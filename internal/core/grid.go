package core

import "fmt"

// Coord is an in-bounds (x, y) position on a Grid.
type Coord struct {
	X, Y int
}

// RangeError is the panic value raised when a caller hands Grid an index or
// coordinate outside its bounds.
type RangeError struct {
	Op    string
	X, Y  int
	Index int
	W, H  int
}

func (e *RangeError) Error() string {
	if e.Op == "coord" || e.Op == "cell" {
		return fmt.Sprintf("core: %s: index %d out of range for %dx%d grid", e.Op, e.Index, e.W, e.H)
	}
	return fmt.Sprintf("core: %s: (%d,%d) out of range for %dx%d grid", e.Op, e.X, e.Y, e.W, e.H)
}

// Grid maps between linear row-major indices and 2D coordinates. It holds no
// cell data; simulations keep their own layers sized g.Len().
type Grid struct {
	W, H int
}

// NewGrid returns the addressing for a w*h grid. Negative dimensions are
// treated as zero.
func NewGrid(w, h int) Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Grid{W: w, H: h}
}

// Len is the number of cells.
func (g Grid) Len() int { return g.W * g.H }

// InBounds reports whether (x, y) lies on the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index returns the linear index y*W + x. It panics with a *RangeError when
// (x, y) is out of bounds.
func (g Grid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(&RangeError{Op: "index", X: x, Y: y, W: g.W, H: g.H})
	}
	return y*g.W + x
}

// Coord returns the coordinate of index i. It panics with a *RangeError when
// i is not in [0, Len()).
func (g Grid) Coord(i int) Coord {
	g.CheckIndex("coord", i)
	return Coord{X: i % g.W, Y: i / g.W}
}

// CheckIndex panics with a *RangeError tagged op when i is not a valid index.
func (g Grid) CheckIndex(op string, i int) {
	if i < 0 || i >= g.Len() {
		panic(&RangeError{Op: op, Index: i, W: g.W, H: g.H})
	}
}

// AppendCross appends the in-bounds orthogonal neighbors of (x, y) to dst in
// the order up, down, left, right and returns the extended slice.
func (g Grid) AppendCross(dst []Coord, x, y int) []Coord {
	if y > 0 {
		dst = append(dst, Coord{x, y - 1})
	}
	if y < g.H-1 {
		dst = append(dst, Coord{x, y + 1})
	}
	if x > 0 {
		dst = append(dst, Coord{x - 1, y})
	}
	if x < g.W-1 {
		dst = append(dst, Coord{x + 1, y})
	}
	return dst
}

// AppendFull appends the cross neighbors of (x, y) followed by the in-bounds
// diagonals (up-left, up-right, down-left, down-right).
func (g Grid) AppendFull(dst []Coord, x, y int) []Coord {
	dst = g.AppendCross(dst, x, y)
	up, down := y > 0, y < g.H-1
	left, right := x > 0, x < g.W-1
	if up && left {
		dst = append(dst, Coord{x - 1, y - 1})
	}
	if up && right {
		dst = append(dst, Coord{x + 1, y - 1})
	}
	if down && left {
		dst = append(dst, Coord{x - 1, y + 1})
	}
	if down && right {
		dst = append(dst, Coord{x + 1, y + 1})
	}
	return dst
}

// CrossNeighbors returns a freshly allocated slice of the cross neighbors.
func (g Grid) CrossNeighbors(x, y int) []Coord { return g.AppendCross(make([]Coord, 0, 4), x, y) }

// FullNeighbors returns a freshly allocated slice of the full neighbors.
func (g Grid) FullNeighbors(x, y int) []Coord { return g.AppendFull(make([]Coord, 0, 8), x, y) }
