package tetris_test

import (
	"testing"

	"blockfall/tetris"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// topOut ticks game until a spawned piece has no room.
func topOut(t *testing.T, game *tetris.Game) {
	t.Helper()
	for i := 0; game.Read().Mode != tetris.GameOver; i++ {
		require.Less(t, i, 10_000, "game never ended")
		game.Tick(500)
	}
}

func assertEmptyStack(t *testing.T, stack [][]tetris.Color) {
	t.Helper()
	for _, row := range stack {
		for _, c := range row {
			if !assert.Equal(t, tetris.Empty, c, "wanted an empty stack, got %v", stack) {
				return
			}
		}
	}
}

func TestMoveLeftToTheWall(t *testing.T) {
	game := tetris.NewTestGame("I")
	require.Equal(t, 3, game.Read().Tetromino.X)
	for range 3 {
		game.Action(tetris.MoveLeft)
	}
	game.Tick(0)
	assert.Equal(t, 0, game.Read().Tetromino.X)
	game.Action(tetris.MoveLeft)
	game.Tick(0)
	assert.Equal(t, 0, game.Read().Tetromino.X, "wanted the fourth move left to be rejected")
}

func TestRejectedActionsLeaveTetrominoUnchanged(t *testing.T) {
	game := tetris.NewTestGame("I")
	for range 19 {
		game.Action(tetris.SoftDrop)
	}
	game.Tick(0)
	before := game.Read().Tetromino
	require.Equal(t, 19, before.Y)

	for _, a := range []tetris.Action{tetris.SoftDrop, tetris.Rotate} {
		game.Action(a)
		game.Tick(0)
		assert.Equal(t, before, game.Read().Tetromino, "%s", a)
	}
}

func TestSoftDropDoesNotLock(t *testing.T) {
	game := tetris.NewTestGame("O")
	for range 30 {
		game.Action(tetris.SoftDrop)
	}
	game.Tick(0)
	r := game.Read()
	assert.Equal(t, 18, r.Tetromino.Y)
	assertEmptyStack(t, r.Stack)
}

func TestFallInterval(t *testing.T) {
	t.Run("speeds up once per level interval", func(t *testing.T) {
		t.Parallel()
		game := tetris.NewTestGame("I")
		for range 102 {
			game.Tick(100)
		}
		assert.Equal(t, 450, game.Read().FallInterval)
		assert.Equal(t, 2, game.Read().Level)
		for range 99 {
			game.Tick(100)
		}
		assert.Equal(t, 450, game.Read().FallInterval, "wanted 450ms until the level timer passes 10s again")
		game.Tick(100)
		assert.Equal(t, 400, game.Read().FallInterval)
	})

	t.Run("one long tick speeds up once", func(t *testing.T) {
		t.Parallel()
		game := tetris.NewTestGame("I")
		game.Tick(25_000)
		assert.Equal(t, 450, game.Read().FallInterval)
	})

	t.Run("exactly the level interval doesn't speed up", func(t *testing.T) {
		t.Parallel()
		game := tetris.NewTestGame("I")
		game.Tick(10_000)
		assert.Equal(t, 500, game.Read().FallInterval)
	})
}

func TestFall(t *testing.T) {
	game := tetris.NewTestGame("I")
	game.Tick(499)
	assert.Equal(t, 0, game.Read().Tetromino.Y, "wanted no fall before the interval")
	game.Tick(1)
	assert.Equal(t, 1, game.Read().Tetromino.Y)
	game.Tick(499)
	assert.Equal(t, 1, game.Read().Tetromino.Y, "wanted the fall timer to restart")
}

func TestPause(t *testing.T) {
	game := tetris.NewTestGame("T")
	game.Action(tetris.TogglePause)
	game.Tick(0)
	before := game.Read()
	require.Equal(t, tetris.Paused, before.Mode)

	game.Action(tetris.MoveLeft)
	game.Action(tetris.Rotate)
	game.Tick(20_000)
	assert.Equal(t, before, game.Read(), "paused game changed")

	game.Action(tetris.TogglePause)
	game.Action(tetris.MoveLeft)
	game.Tick(0)
	r := game.Read()
	assert.Equal(t, tetris.Running, r.Mode)
	assert.Equal(t, before.Tetromino.X-1, r.Tetromino.X, "wanted actions after resuming to apply")
	assert.Equal(t, 500, r.FallInterval, "wanted paused time not to count")
}

func TestGameOverAndReplay(t *testing.T) {
	game := tetris.NewTestGame("I")
	topOut(t, game)

	over := game.Read()
	game.Action(tetris.MoveLeft)
	game.Action(tetris.TogglePause)
	game.Tick(60_000)
	assert.Equal(t, over, game.Read(), "game over state changed")

	game.Action(tetris.Replay)
	game.Tick(0)
	r := game.Read()
	assert.Equal(t, tetris.Running, r.Mode)
	assert.Zero(t, r.Score)
	assert.Zero(t, r.Lines)
	assert.Equal(t, 1, r.Level)
	assert.Equal(t, 500, r.FallInterval)
	assert.NotEqual(t, over.Session, r.Session, "wanted a new session")
	assertEmptyStack(t, r.Stack)
}

func TestReplayIgnoredWhileRunning(t *testing.T) {
	game := tetris.NewTestGame("I")
	session := game.Read().Session
	game.Action(tetris.Replay)
	game.Tick(0)
	assert.Equal(t, session, game.Read().Session, "wanted replay to be ignored while running")
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, game *tetris.Game)
	}{
		{name: "while running"},
		{
			name: "while paused",
			setup: func(_ *testing.T, game *tetris.Game) {
				game.Action(tetris.TogglePause)
				game.Tick(0)
			},
		},
		{
			name: "before other actions",
			setup: func(_ *testing.T, game *tetris.Game) {
				game.Action(tetris.MoveLeft)
				game.Tick(0)
			},
		},
		{name: "after game over", setup: topOut},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			game := tetris.NewTestGame("I")
			if tt.setup != nil {
				tt.setup(t, game)
			}
			before := game.Read()

			game.Action(tetris.MoveLeft)
			game.Action(tetris.Quit)
			game.Tick(1000)
			require.True(t, game.Done())

			game.Action(tetris.MoveRight)
			game.Action(tetris.Replay)
			game.Tick(1000)
			assert.True(t, game.Done())
			assert.Equal(t, before, game.Read(), "wanted no changes after quit")
		})
	}
}

func TestReadIsACopy(t *testing.T) {
	game := tetris.NewTestGame("I")
	r := game.Read()
	r.Stack[19][0] = tetris.Red
	r.Tetromino.Grid[0][0] = false
	r.Tetromino.X = 9

	got := game.Read()
	assert.Equal(t, tetris.Empty, got.Stack[19][0])
	assert.True(t, got.Tetromino.Grid[0][0])
	assert.Equal(t, 3, got.Tetromino.X)
}

func TestNewConfigurableGame(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Palette = nil
	_, err := tetris.NewConfigurableGame(cfg, &tetris.SequenceRand{}, nil)
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)

	_, err = tetris.NewConfigurableGame(tetris.DefaultConfig(), nil, nil)
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig, "wanted an error for a nil random source")

	assert.Equal(t, tetris.Running, tetris.NewGame(nil).Read().Mode)
}

func TestNegativeTickPanics(t *testing.T) {
	assert.Panics(t, func() { tetris.NewTestGame("I").Tick(-1) })
}
