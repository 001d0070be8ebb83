package tetris

import (
	"errors"
	"fmt"
)

// Color identifies a locked cell or a piece. An empty string is an empty cell.
type Color string

const (
	Empty   Color = ""
	Red     Color = "red"
	Green   Color = "green"
	Blue    Color = "blue"
	Yellow  Color = "yellow"
	Cyan    Color = "cyan"
	Magenta Color = "magenta"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything a Game needs that doesn't change during play.
// Intervals are in milliseconds.
type Config struct {
	Cols, Rows int
	Palette    []Color
	Shapes     []Shape

	InitialFallInterval int
	MinFallInterval     int
	FallIntervalStep    int
	// LevelInterval is the amount of running time after which the
	// fall interval is reduced by FallIntervalStep.
	LevelInterval int
	PointsPerRow  int
}

func DefaultConfig() Config {
	return Config{
		Cols:                10,
		Rows:                20,
		Palette:             []Color{Red, Green, Blue, Yellow, Cyan, Magenta},
		Shapes:              AllShapes(),
		InitialFallInterval: 500,
		MinFallInterval:     100,
		FallIntervalStep:    50,
		LevelInterval:       10_000,
		PointsPerRow:        10,
	}
}

// Validate reports the first problem found in c wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Cols <= 0 || c.Rows <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Cols, c.Rows)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	case len(c.Shapes) == 0:
		return fmt.Errorf("%w: no shapes", ErrInvalidConfig)
	case c.MinFallInterval <= 0 || c.InitialFallInterval < c.MinFallInterval:
		return fmt.Errorf("%w: fall interval %d must be >= minimum %d > 0", ErrInvalidConfig, c.InitialFallInterval, c.MinFallInterval)
	case c.FallIntervalStep < 0:
		return fmt.Errorf("%w: negative fall interval step", ErrInvalidConfig)
	case c.LevelInterval <= 0:
		return fmt.Errorf("%w: level interval must be positive", ErrInvalidConfig)
	case c.PointsPerRow < 0:
		return fmt.Errorf("%w: negative points per row", ErrInvalidConfig)
	}
	for _, p := range c.Palette {
		if p == Empty {
			return fmt.Errorf("%w: palette contains the empty color", ErrInvalidConfig)
		}
	}
	for _, s := range c.Shapes {
		if err := s.Grid.validate(); err != nil {
			return fmt.Errorf("%w: shape %q: %v", ErrInvalidConfig, s.Name, err)
		}
		if s.Grid.Width() > c.Cols || s.Grid.Height() > c.Rows {
			return fmt.Errorf("%w: shape %q doesn't fit the board", ErrInvalidConfig, s.Name)
		}
	}
	return nil
}
