package tetris

import (
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
)

// Board holds the locked cells. It's sparse: only occupied cells are stored,
// keyed by their packed (x, y) position. x is always within [0, cols); y is
// not bounded above by the visible window but only [0, rows) is ever
// observable through Snapshot and collision checks.
//
//	.	0 1 2 3 4 5 6 7 8 9
//	0	. . . . . . . . . .
//	..
//	18	. . . X . . . . . .
//	19	X X . X X X . X X X
type Board struct {
	cols, rows int
	cells      *intmap.Map[int64, Color]
}

type cell struct {
	x, y  int
	color Color
}

func NewBoard(cols, rows int) *Board {
	return &Board{
		cols:  cols,
		rows:  rows,
		cells: intmap.New[int64, Color](cols * rows),
	}
}

func key(x, y int) int64 { return int64(y)<<32 | int64(uint32(x)) }

func unkey(k int64) (x, y int) { return int(int32(k)), int(k >> 32) }

// At returns the color locked at x, y and whether the cell is occupied.
func (b *Board) At(x, y int) (Color, bool) {
	return b.cells.Get(key(x, y))
}

// Len is the number of locked cells.
func (b *Board) Len() int { return b.cells.Len() }

// set locks a single cell. It panics if x is outside the board or c is
// Empty: both mean a caller skipped a collision check.
func (b *Board) set(x, y int, c Color) {
	if x < 0 || x >= b.cols {
		panic(fmt.Sprintf("tetris: cell x=%d outside board width %d", x, b.cols))
	}
	if c == Empty {
		panic(fmt.Sprintf("tetris: locking empty color at %d,%d", x, y))
	}
	b.cells.Put(key(x, y), c)
}

// Collides reports whether any cell of t is left, right or below the board,
// or overlaps a locked cell. Cells above the top row don't collide.
func (b *Board) Collides(t *Tetromino) bool {
	collision := false
	t.cells(func(x, y int) bool {
		if x < 0 || x >= b.cols || y >= b.rows {
			collision = true
			return false
		}
		if c, ok := b.At(x, y); ok && c != Empty {
			collision = true
			return false
		}
		return true
	})
	return collision
}

// Lock copies every occupied cell of t into the board with t's color.
// Callers must check Collides first. It panics, leaving the board
// untouched, if t has a cell outside the board width or no color.
func (b *Board) Lock(t *Tetromino) {
	if t.Color == Empty {
		panic(fmt.Sprintf("tetris: locking %s with an empty color", t.Shape))
	}
	t.cells(func(x, y int) bool {
		if x < 0 || x >= b.cols {
			panic(fmt.Sprintf("tetris: locking %s with cell x=%d outside board width %d", t.Shape, x, b.cols))
		}
		return true
	})
	t.cells(func(x, y int) bool {
		b.set(x, y, t.Color)
		return true
	})
}

// ClearFullRows removes every visible row that is completely occupied and
// drops the cells above it, returning how many rows were removed. Each
// remaining cell moves down by the number of cleared rows beneath it.
func (b *Board) ClearFullRows() int {
	var full []int
	for y := range b.rows {
		if b.isFull(y) {
			full = append(full, y)
		}
	}
	if len(full) == 0 {
		return 0
	}

	var remaining []cell
	b.cells.ForEach(func(k int64, c Color) bool {
		x, y := unkey(k)
		if !slices.Contains(full, y) {
			remaining = append(remaining, cell{x: x, y: y, color: c})
		}
		return true
	})

	// full is ascending: the cleared rows below y are the ones after the
	// insertion point of y.
	b.cells.Clear()
	for _, c := range remaining {
		i, _ := slices.BinarySearch(full, c.y)
		b.set(c.x, c.y+len(full)-i, c.color)
	}
	return len(full)
}

func (b *Board) isFull(y int) bool {
	for x := range b.cols {
		if _, ok := b.At(x, y); !ok {
			return false
		}
	}
	return true
}

// Snapshot returns a dense rows x cols copy of the visible board indexed as
// [y][x], with Empty for free cells.
func (b *Board) Snapshot() [][]Color {
	stack := make([][]Color, b.rows)
	for y := range stack {
		stack[y] = make([]Color, b.cols)
	}
	b.cells.ForEach(func(k int64, c Color) bool {
		x, y := unkey(k)
		if y >= 0 && y < b.rows {
			stack[y][x] = c
		}
		return true
	})
	return stack
}
