// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"go-skyfire/internal/app"
	"go-skyfire/internal/audio"
	"go-skyfire/internal/config"
	"go-skyfire/internal/defs"
	"go-skyfire/internal/event"
	"go-skyfire/internal/state"
	"go-skyfire/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("skyfire", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("skyfire", flag.ContinueOnError)
	seed := flags.Int64("seed", 0, "PRNG seed (0 = time based)")
	tiers := flags.String("tiers", "", "tier table JSON (default: embedded)")
	mute := flags.Bool("mute", false, "start muted")
	menu := flags.Bool("menu", true, "start from the attract-mode menu")
	verbose := flags.Bool("v", false, "debug logging and on-screen counters")
	if err := flags.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	library, err := loadLibrary(*tiers)
	if err != nil {
		return fmt.Errorf("load tiers: %w", err)
	}
	rules := config.Default()

	sprites, err := render.LoadSprites(library, rules.PlayerWidth, rules.PlayerHeight)
	if err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}

	dispatcher := event.NewDispatcher()
	sound := audio.NewSoundManager(audio.DefaultConfig())
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*mute)
	sound.Subscribe(dispatcher)

	res := &state.Resources{
		Rules:      rules,
		Library:    library,
		Seed:       *seed,
		Sprites:    sprites,
		Dispatcher: dispatcher,
		Sound:      sound,
		Logger:     logger,
		Debug:      *verbose,
	}
	sm, err := newStateMachine(res, *menu)
	if err != nil {
		return err
	}

	logger.Info("starting", "seed", *seed, "tiers", len(library.Tiers))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Skyfire")
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// newStateMachine открывает меню или сразу игру.
func newStateMachine(res *state.Resources, menu bool) (*state.StateMachine, error) {
	sm := state.NewStateMachine()
	if menu {
		m, err := state.NewMenuState(sm, res)
		if err != nil {
			return nil, fmt.Errorf("create menu: %w", err)
		}
		sm.SetState(m)
		return sm, nil
	}
	sim, err := app.NewGame(res.Rules, res.Library, res.Seed, app.WithLogger(res.Logger))
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	sm.SetState(state.NewGameState(sm, res, sim))
	return sm, nil
}

func loadLibrary(path string) (*defs.Library, error) {
	if path == "" {
		return defs.Default()
	}
	return defs.LoadFile(path)
}
