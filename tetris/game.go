package tetris

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Game is the engine. It owns the board, the falling Tetromino and the
// score, and only changes when Tick is called. Actions are queued by
// Action and applied on the next Tick.
//
// A Game is driven by a single goroutine; it's not safe for concurrent use.
type Game struct {
	cfg    Config
	rand   Rand
	base   *slog.Logger
	logger *slog.Logger

	board     *Board
	tetromino *Tetromino
	queue     []Action

	session      string
	mode         Mode
	score        int
	lines        int
	level        int
	fallInterval int
	fallTimer    int
	levelTimer   int
	done         bool
}

// NewGame returns a game with the default config and a time seeded random
// source. A nil logger discards everything.
func NewGame(l *slog.Logger) *Game {
	seed := uint64(time.Now().UnixNano())
	g, err := NewConfigurableGame(DefaultConfig(), rand.New(rand.NewPCG(seed, seed>>1)), l)
	if err != nil {
		panic(err) // the default config is always valid
	}
	return g
}

func NewConfigurableGame(cfg Config, r Rand, l *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	g := &Game{cfg: cfg, rand: r, base: l}
	g.reset()
	return g, nil
}

// Action queues a for the next Tick. Any number of actions can be queued
// between ticks; they're applied in the order they arrive.
func (g *Game) Action(a Action) {
	if g.done {
		return
	}
	g.queue = append(g.queue, a)
}

// Tick advances the game by delta milliseconds:
//   - a queued Quit ends the session before anything else happens.
//   - while running, delta feeds the fall and level timers. Once the level
//     timer passes the level interval the pieces fall faster.
//   - queued actions are applied in order. Moves that collide are dropped.
//   - once the fall timer reaches the fall interval the Tetromino moves one
//     row down, or locks, clears full rows and the next one spawns.
//
// It panics if delta is negative.
func (g *Game) Tick(delta int) {
	if delta < 0 {
		panic(fmt.Sprintf("tetris: negative tick delta %d", delta))
	}
	if g.done {
		return
	}
	if slices.Contains(g.queue, Quit) {
		g.queue = nil
		g.done = true
		g.logger.Info("quit", slog.Int("score", g.score), slog.String("mode", g.mode.String()))
		return
	}

	if g.mode == Running {
		g.fallTimer += delta
		g.levelTimer += delta
		if g.levelTimer > g.cfg.LevelInterval {
			g.levelTimer = 0
			g.speedUp()
		}
	}

	queue := g.queue
	g.queue = nil
	for _, a := range queue {
		g.apply(a)
	}

	if g.mode == Running && g.fallTimer >= g.fallInterval {
		g.fallTimer = 0
		g.fall()
	}
}

// Done reports whether the session was ended with Quit.
func (g *Game) Done() bool { return g.done }

// Read returns a copy of the current game that's safe to keep around.
func (g *Game) Read() *Tetris {
	return &Tetris{
		Stack:        g.board.Snapshot(),
		Tetromino:    g.tetromino.copy(),
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.level,
		FallInterval: g.fallInterval,
		Mode:         g.mode,
		Session:      g.session,
	}
}

func (g *Game) apply(a Action) {
	switch g.mode {
	case Running:
		switch a {
		case MoveLeft:
			g.try(g.tetromino.Moved(-1, 0))
		case MoveRight:
			g.try(g.tetromino.Moved(1, 0))
		case SoftDrop:
			g.try(g.tetromino.Moved(0, 1))
		case Rotate:
			g.try(g.tetromino.Rotated())
		case TogglePause:
			g.mode = Paused
			g.logger.Info("paused")
		}
	case Paused:
		if a == TogglePause {
			g.mode = Running
			g.logger.Info("resumed")
		}
	case GameOver:
		if a == Replay {
			g.logger.Info("replay")
			g.reset()
		}
	}
}

// try replaces the Tetromino with t unless t collides, in which case the
// current one is kept untouched.
func (g *Game) try(t *Tetromino) bool {
	if g.board.Collides(t) {
		return false
	}
	g.tetromino = t
	g.setGhost()
	return true
}

func (g *Game) fall() {
	if g.try(g.tetromino.Moved(0, 1)) {
		return
	}
	g.board.Lock(g.tetromino)
	cleared := g.board.ClearFullRows()
	g.lines += cleared
	g.score += cleared * g.cfg.PointsPerRow
	g.logger.Debug("locked",
		slog.String("shape", g.tetromino.Shape),
		slog.Int("x", g.tetromino.X),
		slog.Int("y", g.tetromino.Y),
		slog.Int("cleared", cleared),
		slog.Int("score", g.score),
	)
	g.next()
}

// next spawns a new Tetromino. If it has no room the game is over.
func (g *Game) next() {
	s := g.cfg.Shapes[g.rand.IntN(len(g.cfg.Shapes))]
	g.tetromino = spawn(s, g.cfg.Cols, g.cfg.Palette, g.rand)
	if g.board.Collides(g.tetromino) {
		g.mode = GameOver
		g.logger.Info("game over", slog.Int("score", g.score), slog.Int("lines", g.lines))
		return
	}
	g.setGhost()
	g.logger.Debug("spawned", slog.String("shape", s.Name), slog.String("color", string(g.tetromino.Color)))
}

func (g *Game) speedUp() {
	if g.fallInterval <= g.cfg.MinFallInterval {
		return
	}
	g.fallInterval = max(g.fallInterval-g.cfg.FallIntervalStep, g.cfg.MinFallInterval)
	g.level++
	g.logger.Debug("speed up", slog.Int("level", g.level), slog.Int("interval", g.fallInterval))
}

// setGhost records the lowest row the Tetromino could drop to.
func (g *Game) setGhost() {
	d := 0
	for !g.board.Collides(g.tetromino.Moved(0, d+1)) {
		d++
	}
	g.tetromino.GhostY = g.tetromino.Y + d
}

func (g *Game) reset() {
	g.session = uuid.NewString()
	g.logger = g.base.With(slog.String("session", g.session))
	g.board = NewBoard(g.cfg.Cols, g.cfg.Rows)
	g.mode = Running
	g.score = 0
	g.lines = 0
	g.level = 1
	g.fallInterval = g.cfg.InitialFallInterval
	g.fallTimer = 0
	g.levelTimer = 0
	g.logger.Info("new game", slog.Int("cols", g.cfg.Cols), slog.Int("rows", g.cfg.Rows))
	g.next()
}
