package tetris

import (
	"errors"
	"fmt"
)

// Grid is a rectangular occupancy matrix indexed as Grid[row][col].
// Row 0 is the top of the piece.
type Grid [][]bool

// Shape is one of the playable piece geometries.
type Shape struct {
	Name string
	Grid Grid
}

/*
.	I			Z			S			O

.	O O O O		O O X		X O O		O O
.				X O O		O O X		O O

.	T			J			L

.	O O O		O X X		X X O
.	X O X		O O O		O O O
*/

// AllShapes returns the seven shapes in a stable order. Each call returns
// fresh grids so callers can't alter the catalog.
func AllShapes() []Shape {
	return []Shape{
		{Name: "I", Grid: Grid{
			{true, true, true, true},
		}},
		{Name: "Z", Grid: Grid{
			{true, true, false},
			{false, true, true},
		}},
		{Name: "S", Grid: Grid{
			{false, true, true},
			{true, true, false},
		}},
		{Name: "O", Grid: Grid{
			{true, true},
			{true, true},
		}},
		{Name: "T", Grid: Grid{
			{true, true, true},
			{false, true, false},
		}},
		{Name: "J", Grid: Grid{
			{true, false, false},
			{true, true, true},
		}},
		{Name: "L", Grid: Grid{
			{false, false, true},
			{true, true, true},
		}},
	}
}

func (g Grid) Height() int { return len(g) }

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) copy() Grid {
	c := make(Grid, len(g))
	for i := range g {
		c[i] = make([]bool, len(g[i]))
		copy(c[i], g[i])
	}
	return c
}

// Rotate returns a new grid turned 90° clockwise. The receiver is left
// untouched. A h×w grid becomes w×h.
//
//	O X X		O O
//	O O O	->	O X
//				O X
func (g Grid) Rotate() Grid {
	h, w := g.Height(), g.Width()
	rotated := make(Grid, w)
	for r := range rotated {
		rotated[r] = make([]bool, h)
		for c := range h {
			rotated[r][c] = g[h-1-c][r]
		}
	}
	return rotated
}

// Equal reports whether both grids have the same size and occupancy.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(o[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// validate checks the grid is rectangular, non-empty and tightly bound:
// no edge row or column is entirely empty.
func (g Grid) validate() error {
	if g.Height() == 0 || g.Width() == 0 {
		return errors.New("grid is empty")
	}
	rowUsed := make([]bool, g.Height())
	colUsed := make([]bool, g.Width())
	for r, row := range g {
		if len(row) != g.Width() {
			return fmt.Errorf("row %d has %d columns, want %d", r, len(row), g.Width())
		}
		for c, cell := range row {
			if cell {
				rowUsed[r] = true
				colUsed[c] = true
			}
		}
	}
	if !rowUsed[0] || !rowUsed[len(rowUsed)-1] {
		return errors.New("grid has an empty edge row")
	}
	if !colUsed[0] || !colUsed[len(colUsed)-1] {
		return errors.New("grid has an empty edge column")
	}
	return nil
}
