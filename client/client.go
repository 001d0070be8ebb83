// Package client is a terminal front end for the tetris engine. It turns
// key presses into tetris actions, ticks the game with the real time that
// passed between frames and draws the result.
package client

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"blockfall/tetris"

	"github.com/eiannone/keyboard"
)

const defaultFrame = 16 * time.Millisecond

type tetrisGame interface {
	Action(tetris.Action)
	Tick(int)
	Read() *tetris.Tetris
	Done() bool
}

type renderer interface {
	frame(*tetris.Tetris)
}

type Client struct {
	tetris tetrisGame
	render renderer
	logger *slog.Logger
	kbCh   <-chan keyboard.KeyEvent
	ticker Ticker
	clock  *clock
}

type Options struct {
	NoGhost bool
	// Frame is the time between redraws. Defaults to 16ms.
	Frame time.Duration
}

func (o *Options) frame() time.Duration {
	if o == nil || o.Frame <= 0 {
		return defaultFrame
	}
	return o.Frame
}

// New opens the keyboard and prepares the renderer. Close must be called
// to give the terminal back.
func New(l *slog.Logger, g tetrisGame, o *Options) (*Client, error) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	r, err := newRender(os.Stdout, l, o != nil && o.NoGhost)
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}
	kb, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Client{
		tetris: g,
		render: r,
		logger: l,
		kbCh:   kb,
		ticker: newWrappedTicker(o.frame()),
		clock:  &clock{},
	}, nil
}

// Start runs the game until it's quit. Keys and frames are handled on the
// calling goroutine only, so the game is never touched concurrently.
func (c *Client) Start() error {
	defer c.ticker.Stop()
	c.render.frame(c.tetris.Read())
	for {
		select {
		case event, ok := <-c.kbCh:
			if !ok {
				return errors.New("keyboard events channel closed unexpectedly")
			}
			if event.Err != nil {
				return fmt.Errorf("failed to read keyboard: %w", event.Err)
			}
			if a, ok := toAction(event); ok {
				c.logger.Debug("key", slog.String("action", string(a)))
				c.tetris.Action(a)
			}
		case now := <-c.ticker.C():
			c.tetris.Tick(c.clock.elapsed(now))
			if c.tetris.Done() {
				return nil
			}
			c.render.frame(c.tetris.Read())
		}
	}
}

// Close releases the keyboard.
func (c *Client) Close() {
	if err := keyboard.Close(); err != nil {
		c.logger.Error("unable to close keyboard", slog.String("error", err.Error()))
	}
}

func toAction(event keyboard.KeyEvent) (tetris.Action, bool) {
	switch {
	case event.Key == keyboard.KeyArrowLeft || event.Rune == 'a':
		return tetris.MoveLeft, true
	case event.Key == keyboard.KeyArrowRight || event.Rune == 'd':
		return tetris.MoveRight, true
	case event.Key == keyboard.KeyArrowDown || event.Rune == 's':
		return tetris.SoftDrop, true
	case event.Key == keyboard.KeyArrowUp || event.Rune == 'w' || event.Rune == 'e':
		return tetris.Rotate, true
	case event.Key == keyboard.KeySpace || event.Rune == 'p':
		return tetris.TogglePause, true
	case event.Rune == 'r':
		return tetris.Replay, true
	case event.Key == keyboard.KeyCtrlC || event.Key == keyboard.KeyEsc || event.Rune == 'q':
		return tetris.Quit, true
	}
	return "", false
}
