package grid

import (
	"fmt"
	"strings"
)

// Parse builds a grid from an ASCII layout, one row per line:
//
//	'.' or ' '  Empty
//	'#'         Wall
//	'~'         Weight
//
// Leading and trailing blank lines are ignored; every remaining line
// must have the same length (ErrRagged). Unknown characters yield
// ErrBadRune. Handy for test fixtures and CLI input.
func Parse(layout string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(layout, "\r\n", "\n"), "\n")
	// trim blank lines at both ends
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return &Grid{}, nil
	}

	cols := len([]rune(lines[0]))
	cells := make([][]Kind, len(lines))
	for x, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRagged, x, len(runes), cols)
		}
		cells[x] = make([]Kind, cols)
		for y, r := range runes {
			switch r {
			case '.', ' ':
				cells[x][y] = Empty
			case '#':
				cells[x][y] = Wall
			case '~':
				cells[x][y] = Weight
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadRune, r, x, y)
			}
		}
	}

	return &Grid{rows: len(cells), cols: cols, cells: cells}, nil
}

// String renders the grid in the same ASCII form Parse accepts.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for x := 0; x < g.rows; x++ {
		for y := 0; y < g.cols; y++ {
			b.WriteString(g.cells[x][y].String())
		}
		if x+1 < g.rows {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
