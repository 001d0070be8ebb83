package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"blockfall/client"
	"blockfall/tetris"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[?25h\r\n"
)

func main() {
	var (
		cols    = flag.Int("cols", 10, "board width in cells")
		rows    = flag.Int("rows", 20, "board height in cells")
		seed    = flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
		logFile = flag.String("log", "", "write JSON logs to this file")
		debug   = flag.Bool("debug", false, "log debug events")
		noGhost = flag.Bool("noghost", false, "hide the ghost piece")
		frame   = flag.Duration("frame", 16*time.Millisecond, "time between redraws")
	)
	flag.Parse()

	opts := &client.Options{NoGhost: *noGhost, Frame: *frame}
	if err := run(*cols, *rows, *seed, *logFile, *debug, opts); err != nil {
		log.Fatal(err)
	}
}

func run(cols, rows int, seed uint64, logFile string, debug bool, opts *client.Options) error {
	logger, closeLog, err := newLogger(logFile, debug)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tetris.DefaultConfig()
	cfg.Cols, cfg.Rows = cols, rows
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", slog.Int("cols", cols), slog.Int("rows", rows), slog.Uint64("seed", seed))
	game, err := tetris.NewConfigurableGame(cfg, rand.New(rand.NewPCG(seed, seed>>1)), logger)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	c, err := client.New(logger, game, opts)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer c.Close()

	fmt.Print(hideCursor)
	defer fmt.Print(showCursor)
	if err := c.Start(); err != nil {
		logger.Error("client stopped", slog.String("error", err.Error()))
		return err
	}
	r := game.Read()
	logger.Info("bye", slog.Int("score", r.Score), slog.Int("lines", r.Lines))
	return nil
}

// newLogger logs to path, or nowhere when path is empty: the terminal is
// busy drawing the game.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	closer := func() {
		if err := f.Close(); err != nil {
			log.Printf("unable to close log file: %v", err)
		}
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})), closer, nil
}
