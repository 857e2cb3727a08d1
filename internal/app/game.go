// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"

	"go-skyfire/internal/component"
	"go-skyfire/internal/config"
	"go-skyfire/internal/defs"
	"go-skyfire/internal/entity"
	"go-skyfire/internal/event"
	"go-skyfire/internal/system"
	"go-skyfire/internal/utils"
)

// Intent — абстрактный ввод игрока на один тик.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
}

// Game holds the simulation state and the systems that advance it.
// It is not safe for concurrent use: a single loop owns it.
type Game struct {
	Rules           config.Rules
	Library         *defs.Library
	World           *entity.World
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher

	PlayerSystem     *system.PlayerSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	CollisionSystem  *system.CollisionSystem
	CleanupSystem    *system.CleanupSystem
	WaveSystem       *system.WaveSystem
	StateSystem      *system.StateSystem

	frame  event.Frame
	logger *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used by the game and its systems.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGame validates the rules and tier table and builds a ready-to-step game.
// A zero seed picks a time-based one; Seed reports the value in use.
func NewGame(rules config.Rules, library *defs.Library, seed int64, opts ...Option) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	if err := library.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	for _, def := range library.Tiers {
		if def.Width > rules.FieldWidth {
			return nil, fmt.Errorf("failed to create game: %w: %q wider than the field", defs.ErrInvalidTier, def.ID)
		}
	}

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Rules:           rules,
		Library:         library,
		World:           world,
		Rng:             utils.NewPRNGService(seed),
		EventDispatcher: eventDispatcher,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.ProjectileSystem = system.NewProjectileSystem(world, rules)
	g.PlayerSystem = system.NewPlayerSystem(world, rules, g.ProjectileSystem, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(world, rules, g.ProjectileSystem)
	g.CombatSystem = system.NewCombatSystem(world, g.Rng, g.ProjectileSystem)
	g.CollisionSystem = system.NewCollisionSystem(world, rules, eventDispatcher)
	g.CleanupSystem = system.NewCleanupSystem(world, rules, g.ProjectileSystem, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(world, rules, library, g.Rng, eventDispatcher, g.logger)
	g.StateSystem = system.NewStateSystem(world, eventDispatcher, g.logger)

	g.frame.Record(eventDispatcher)
	g.start()
	g.logger.Debug("game created", "seed", g.Rng.Seed(), "tiers", len(library.Tiers))
	return g, nil
}

// Seed returns the seed the PRNG was created with.
func (g *Game) Seed() int64 {
	return g.Rng.Seed()
}

// Step advances the simulation by one tick and returns the resulting snapshot.
// After game over it only returns the terminal snapshot until Reset.
func (g *Game) Step(deltaTime float64, in Intent) FrameState {
	if g.World.Phase == component.Over {
		return g.snapshot(event.Frame{})
	}
	deltaTime = utils.Clamp(deltaTime, 0, g.Rules.MaxDeltaTime)
	scale := g.Rules.TickScale(deltaTime)
	g.World.Tick++

	g.PlayerSystem.ApplyIntent(in.MoveLeft, in.MoveRight, in.Fire)
	g.PlayerSystem.Update(scale)
	g.MovementSystem.Update(scale)
	g.CombatSystem.Update()
	g.PlayerSystem.TryFire()
	g.CollisionSystem.Update()
	g.CleanupSystem.Update()
	g.WaveSystem.Update(deltaTime * 1000)
	g.StateSystem.Update()

	out := g.snapshot(g.frame.Clone())
	g.frame.Clear()
	return out
}

// Reset returns the game to its initial state with the same seed, so a reset
// followed by the same inputs replays the same session.
func (g *Game) Reset() {
	g.World.Clear()
	g.Rng.Reseed()
	g.frame.Clear()
	g.start()
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset})
	g.logger.Info("game reset", "seed", g.Rng.Seed())
}

// Snapshot returns the current state without advancing it.
func (g *Game) Snapshot() FrameState {
	return g.snapshot(g.frame.Clone())
}

// TickDelta — длительность одного тика в секундах.
func (g *Game) TickDelta() float64 {
	return 1 / g.Rules.TickRate
}

// Over reports whether the game reached its terminal state.
func (g *Game) Over() bool {
	return g.World.Phase == component.Over
}

func (g *Game) start() {
	g.PlayerSystem.Spawn()
	g.WaveSystem.Start()
}
