package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleParse builds a grid from ASCII art and reads it back.
func ExampleParse() {
	g, err := grid.Parse(`
..#.
.~#.
....
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Rows(), g.Cols())
	fmt.Println(g.KindAt(grid.Pt(1, 1)))
	fmt.Println(g)
	// Output:
	// 3 4
	// ~
	// ..#.
	// .~#.
	// ....
}

// ExampleGrid_Neighbors4 shows the fixed enumeration order that the
// search algorithms rely on: up, down, left, right.
func ExampleGrid_Neighbors4() {
	g, _ := grid.New(3, 3)
	fmt.Println(g.Neighbors4(grid.Pt(1, 1)))
	fmt.Println(g.Neighbors4(grid.Pt(0, 0)))
	// Output:
	// [(0,1) (2,1) (1,0) (1,2)]
	// [(1,0) (0,1)]
}

// ExampleManhattan computes the heuristic used by Greedy and A*.
func ExampleManhattan() {
	fmt.Println(grid.Manhattan(grid.Pt(0, 0), grid.Pt(4, 7)))
	// Output:
	// 11
}
