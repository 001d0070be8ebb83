package tetris

// Tetromino is the falling piece. X and Y locate the top-left cell of its
// Grid on the board; Y grows downwards.
//
//	.	0 1 2 3 4 5 6 7 8 9		.	0 1 2
//	0	X X X O X X X X X X		0	O X X
//	1	X X X O O O X X X X		1	O O O
//	2	X X X X X X X X X X
type Tetromino struct {
	Grid   Grid
	X, Y   int
	GhostY int
	Color  Color
	Shape  string
}

// Rand is the random source used to draw shapes and colors.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// spawn places s centered on a board cols wide at the top row and gives
// it a color from the palette.
func spawn(s Shape, cols int, palette []Color, r Rand) *Tetromino {
	if err := s.Grid.validate(); err != nil {
		panic("tetris: spawn " + s.Name + ": " + err.Error())
	}
	return &Tetromino{
		Grid:  s.Grid.copy(),
		X:     cols/2 - s.Grid.Width()/2,
		Y:     0,
		Color: palette[r.IntN(len(palette))],
		Shape: s.Name,
	}
}

// Moved returns a copy shifted by dx, dy. The receiver is not modified.
func (t *Tetromino) Moved(dx, dy int) *Tetromino {
	c := *t
	c.X += dx
	c.Y += dy
	return &c
}

// Rotated returns a copy turned clockwise around its anchor.
func (t *Tetromino) Rotated() *Tetromino {
	c := *t
	c.Grid = t.Grid.Rotate()
	return &c
}

// cells calls fn with the absolute board position of every occupied cell
// until fn returns false.
func (t *Tetromino) cells(fn func(x, y int) bool) {
	for iy, row := range t.Grid {
		for ix, c := range row {
			if c && !fn(t.X+ix, t.Y+iy) {
				return
			}
		}
	}
}

func (t *Tetromino) copy() *Tetromino {
	if t == nil {
		return nil
	}
	c := *t
	c.Grid = t.Grid.copy()
	return &c
}
