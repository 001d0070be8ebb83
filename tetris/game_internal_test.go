package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(g *Game)
		wantScore int
		wantLines int
	}{
		{
			// 	.	0 1 2 3 4 5 6 7 8 9
			// 	19	X X X X X X O O O O
			name: "one row",
			setup: func(g *Game) {
				for x := range 6 {
					g.board.set(x, 19, Blue)
				}
				g.tetromino.X, g.tetromino.Y = 6, 19
			},
			wantScore: 10,
			wantLines: 1,
		},
		{
			// 	.	0 1 2 3 4 5 6 7 8 9
			// 	16	X X X X X X X X X O
			// 	17	X X X X X X X X X O
			// 	18	X X X X X X X X X O
			// 	19	X X X X X X X X X O
			name: "four rows at once score without bonus",
			setup: func(g *Game) {
				for y := 16; y < 20; y++ {
					for x := range 9 {
						g.board.set(x, y, Blue)
					}
				}
				g.tetromino = g.tetromino.Rotated()
				g.tetromino.X, g.tetromino.Y = 9, 16
			},
			wantScore: 40,
			wantLines: 4,
		},
		{
			name: "locking without full rows",
			setup: func(g *Game) {
				g.tetromino.Y = 19
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewTestGame("I")
			tt.setup(g)
			g.Tick(g.fallInterval)
			assert.Equal(t, tt.wantScore, g.score)
			assert.Equal(t, tt.wantLines, g.lines)
			assert.Equal(t, 0, g.tetromino.Y, "wanted a new tetromino at the top")
			assert.Equal(t, Running, g.mode)
		})
	}
}

func TestSpawnCollisionEndsTheGame(t *testing.T) {
	// 	.	0 1 2 3 4 5 6 7 8 9
	// 	0	. . . . . C . . . .		next I spawns over C
	// 	19	O O O O . . . . . .
	g := NewTestGame("I")
	g.board.set(5, 0, Cyan)
	g.tetromino.X, g.tetromino.Y = 0, 19
	g.Tick(g.fallInterval)
	require.Equal(t, GameOver, g.mode)

	cells := g.board.Len()
	g.Action(MoveRight)
	g.Tick(10 * g.fallInterval)
	assert.Equal(t, cells, g.board.Len())
	assert.Equal(t, 3, g.tetromino.X)
	assert.Equal(t, 0, g.tetromino.Y)
}

func TestSpeedUpFloor(t *testing.T) {
	g := NewTestGame("I")
	for range 20 {
		g.speedUp()
	}
	assert.Equal(t, 100, g.fallInterval)
	assert.Equal(t, 9, g.level)
}

func TestGhost(t *testing.T) {
	g := NewTestGame("O")
	assert.Equal(t, 18, g.tetromino.GhostY)
	g.board.set(4, 10, Red)
	g.Action(MoveLeft)
	g.Action(MoveRight)
	g.Tick(0)
	assert.Equal(t, 8, g.tetromino.GhostY)
}

func TestRandomDrawOrder(t *testing.T) {
	// shape first, then color.
	g, err := NewConfigurableGame(DefaultConfig(), &SequenceRand{Values: []int{3, 2}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "O", g.tetromino.Shape)
	assert.Equal(t, Blue, g.tetromino.Color)
}
