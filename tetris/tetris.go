// Package tetris contains the logic of the game: the shape catalog, the
// falling piece, the board of locked cells and the Game that drives them
// with elapsed time and player actions. It doesn't render or read input.
package tetris

type Action string

const (
	MoveLeft    Action = "left"   // Moves the Tetromino one step to the left.
	MoveRight   Action = "right"  // Moves the Tetromino one step to the right.
	SoftDrop    Action = "down"   // Moves the Tetromino one step down.
	Rotate      Action = "rotate" // Rotates the Tetromino clockwise.
	TogglePause Action = "pause"  // Pauses a running game or resumes a paused one.
	Replay      Action = "replay" // Starts over after game over.
	Quit        Action = "quit"   // Ends the session from any mode.
)

type Mode int

const (
	Running Mode = iota
	Paused
	GameOver
)

func (m Mode) String() string {
	switch m {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Tetris is a read-only copy of the game returned by Game.Read.
type Tetris struct {
	// Stack is the playfield indexed as [y][x], y = 0 being the top row.
	// An empty Color is an empty cell.
	Stack     [][]Color
	Tetromino *Tetromino

	Score        int
	Lines        int
	Level        int
	FallInterval int
	Mode         Mode
	Session      string
}
