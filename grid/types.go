// Package grid defines core types, sentinel errors, and cell-addressing
// helpers for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for grid construction and identifier parsing.
var (
	// ErrNegativeDimension indicates a negative row or column count.
	ErrNegativeDimension = errors.New("grid: dimensions must be non-negative")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")
	// ErrBadRune indicates an unknown cell character in an ASCII layout.
	ErrBadRune = errors.New("grid: unknown cell character")
	// ErrBadID indicates a malformed "x,y" cell identifier.
	ErrBadID = errors.New("grid: malformed cell identifier")
)

// Per-step traversal costs by cell kind.
const (
	// EmptyCost is the cost of stepping onto an Empty cell.
	EmptyCost = 1
	// WeightCost is the cost of stepping onto a Weight cell.
	WeightCost = 5
)

// Kind classifies a cell's terrain.
type Kind uint8

const (
	// Empty is open terrain, traversable at cost 1.
	Empty Kind = iota
	// Wall is impassable terrain; walls are never enqueued by a search.
	Wall
	// Weight is heavy terrain, traversable at cost 5.
	Weight
)

// Cost returns the per-step cost of entering a cell of this kind.
// Walls are filtered out before expansion and are never queried;
// for completeness they report 0.
func (k Kind) Cost() int {
	switch k {
	case Weight:
		return WeightCost
	case Wall:
		return 0
	default:
		return EmptyCost
	}
}

// Passable reports whether a search may step onto a cell of this kind.
func (k Kind) Passable() bool { return k != Wall }

// String returns a single-character label: "." Empty, "#" Wall, "~" Weight.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "#"
	case Weight:
		return "~"
	default:
		return "."
	}
}

// Point identifies a grid cell by (row, column) coordinates.
type Point struct {
	X int // row index
	Y int // column index
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// ID returns the canonical "x,y" cell identifier. Two points address
// the same cell iff their identifiers are equal; every map and set in
// the search engine is keyed by this form.
func (p Point) ID() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// String implements fmt.Stringer with the "(x,y)" form.
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// ParseID is the inverse of Point.ID. It accepts exactly two
// comma-separated integers and returns ErrBadID otherwise.
func ParseID(id string) (Point, error) {
	sep := strings.IndexByte(id, ',')
	if sep < 0 {
		return Point{}, fmt.Errorf("%w: %q", ErrBadID, id)
	}
	x, err := strconv.Atoi(id[:sep])
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadID, id)
	}
	y, err := strconv.Atoi(id[sep+1:])
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadID, id)
	}

	return Point{X: x, Y: y}, nil
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|, the admissible heuristic
// used by Greedy and A* on a 4-connected grid.
func Manhattan(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}
