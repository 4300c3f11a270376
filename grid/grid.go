// Package grid models the rectangular playing field a pathfinding
// search operates on: R×C cells of Empty, Wall, or Weight terrain.
//
// A Grid is rectangular by construction (FromCells rejects ragged
// input) and deep-copies any caller-supplied cells, so a search can
// treat it as immutable for the duration of a call. Degenerate grids
// (zero rows or zero columns) are valid values; the search engine
// answers them with an immediate "not found".
package grid

import "fmt"

// Grid is a fixed-size R×C matrix of cell kinds.
// The zero value is a valid 0×0 grid.
type Grid struct {
	rows, cols int
	cells      [][]Kind
}

// New returns a rows×cols grid of Empty cells.
// Returns ErrNegativeDimension if either dimension is negative.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrNegativeDimension, rows, cols)
	}
	if rows == 0 || cols == 0 {
		// Degenerate but valid: keep both dimensions observable.
		return &Grid{rows: rows, cols: cols}, nil
	}
	cells := make([][]Kind, rows)
	for x := 0; x < rows; x++ {
		cells[x] = make([]Kind, cols)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// FromCells builds a grid from a 2D kind slice, deep-copying the input
// to ensure immutability. Returns ErrRagged if any row length differs
// from the first row's.
// Complexity: O(R×C) time and memory.
func FromCells(cells [][]Kind) (*Grid, error) {
	rows := len(cells)
	if rows == 0 {
		return &Grid{}, nil
	}
	cols := len(cells[0])
	dup := make([][]Kind, rows)
	for x, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, x, len(row), cols)
		}
		dup[x] = make([]Kind, cols)
		copy(dup[x], row)
	}

	return &Grid{rows: rows, cols: cols, cells: dup}, nil
}

// Rows returns the number of rows R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns C.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within [0,R)×[0,C).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.rows && p.Y >= 0 && p.Y < g.cols
}

// KindAt returns the kind of the cell at p.
// Out-of-bounds points report Wall, so callers never step outside.
func (g *Grid) KindAt(p Point) Kind {
	if !g.InBounds(p) {
		return Wall
	}

	return g.cells[p.X][p.Y]
}

// CostAt returns the per-step cost of entering the cell at p.
func (g *Grid) CostAt(p Point) int { return g.KindAt(p).Cost() }

// Set paints the cell at p. It is intended for grid editing before a
// search runs; a grid must not be mutated during a search call.
// Out-of-bounds points are ignored.
func (g *Grid) Set(p Point, k Kind) {
	if g.InBounds(p) {
		g.cells[p.X][p.Y] = k
	}
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	dup := &Grid{rows: g.rows, cols: g.cols}
	if g.cells == nil {
		return dup
	}
	dup.cells = make([][]Kind, g.rows)
	for x := range g.cells {
		dup.cells[x] = make([]Kind, g.cols)
		copy(dup.cells[x], g.cells[x])
	}

	return dup
}

// neighborOffsets is the fixed 4-connected enumeration order:
// up, down, left, right. This order is load-bearing: DFS pushes the
// reverse of it so that pops explore up first.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors4 returns the up-to-4 orthogonally adjacent in-bounds
// points of p, in the fixed order up, down, left, right.
// Walls are included; filtering them is the search's concern.
func (g *Grid) Neighbors4(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range neighborOffsets {
		n := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}
