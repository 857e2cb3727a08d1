// cmd/skyfire-tui/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"go-skyfire/internal/app"
	"go-skyfire/internal/audio"
	"go-skyfire/internal/config"
	"go-skyfire/internal/defs"
	"go-skyfire/internal/event"
	"go-skyfire/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "skyfire-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	seed := flag.Int64("seed", 0, "PRNG seed (0 = time based)")
	mute := flag.Bool("mute", false, "start muted")
	logPath := flag.String("log", "", "log file (the terminal belongs to the game)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger, closeLog, err := newLogger(*logPath, *verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	library, err := defs.Default()
	if err != nil {
		return fmt.Errorf("load tiers: %w", err)
	}
	game, err := app.NewGame(config.Default(), library, *seed, app.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	dispatcher := event.NewDispatcher()
	sound := audio.NewSoundManager(audio.DefaultConfig())
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*mute)
	sound.Subscribe(dispatcher)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()

	renderer := terminal.NewRenderer(library)
	renderer.Muted = sound.Muted()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "seed", game.Seed())
	session := terminal.NewSession(game, screen, renderer, dispatcher, sound, logger)
	if err := session.Run(ctx); err != nil {
		return err
	}
	fs := game.Snapshot()
	logger.Info("finished", "score", fs.Player.Score, "wave", fs.Wave.Number, "tick", fs.Tick)
	fmt.Printf("score %d, wave %d\n", fs.Player.Score, fs.Wave.Number)
	return nil
}

func newLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())
	return logger, closeFn, nil
}
