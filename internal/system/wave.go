// internal/system/wave.go
package system

import (
	"log/slog"

	"go-skyfire/internal/component"
	"go-skyfire/internal/config"
	"go-skyfire/internal/defs"
	"go-skyfire/internal/entity"
	"go-skyfire/internal/event"
	"go-skyfire/internal/utils"
)

// WaveSystem — планировщик появления врагов. Волна закрывается, когда список врагов
// опустел и в этой волне уже кто-то появлялся. Каждая следующая волна сложнее:
// больше врагов одновременно, короче пауза, но не дальше потолка и пола из правил.
type WaveSystem struct {
	world           *entity.World
	rules           config.Rules
	library         *defs.Library
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewWaveSystem(world *entity.World, rules config.Rules, library *defs.Library, rng *utils.PRNGService,
	eventDispatcher *event.Dispatcher, logger *slog.Logger) *WaveSystem {
	return &WaveSystem{
		world:           world,
		rules:           rules,
		library:         library,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Start выставляет первую волну.
func (s *WaveSystem) Start() {
	*s.world.Wave = component.Wave{
		Number:     1,
		Cap:        s.rules.InitialCap,
		IntervalMs: s.rules.InitialIntervalMs,
	}
}

func (s *WaveSystem) Update(deltaMs float64) {
	wave := s.world.Wave
	live := len(s.world.Enemies)

	if live == 0 && wave.SpawnedThisWave > 0 {
		s.advance(wave)
		s.spawnEnemy(wave)
		return
	}

	wave.ElapsedMs += deltaMs
	if wave.ElapsedMs >= wave.IntervalMs && live < wave.Cap {
		s.spawnEnemy(wave)
	}
}

func (s *WaveSystem) advance(wave *component.Wave) {
	wave.Number++
	wave.Cap = min(wave.Cap+s.rules.CapStep, s.rules.CapCeiling)
	wave.IntervalMs = max(wave.IntervalMs-s.rules.IntervalStepMs, s.rules.IntervalFloorMs)
	wave.SpawnedThisWave = 0
	s.logger.Debug("wave advanced", "wave", wave.Number, "cap", wave.Cap, "interval_ms", wave.IntervalMs)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveAdvanced, Data: event.WaveAdvancedData{Wave: wave.Number}})
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	wave.ElapsedMs = 0
	tierID := s.rng.ChooseWeighted(s.library.SpawnTable)
	def, err := s.library.Tier(tierID)
	if err != nil {
		s.logger.Error("enemy definition not found", "tier", tierID, "err", err)
		return
	}

	x := s.rng.Float64() * max(s.rules.FieldWidth-def.Width, 0)
	dir := component.DirRight
	if s.rng.Bool() {
		dir = component.DirLeft
	}
	e := component.NewEnemy(s.world.NewEntity(), def, component.Position{X: x, Y: s.rules.EnemySpawnY}, dir, s.rules.TicksPerFrame)
	s.world.AddEnemy(e)
	wave.SpawnedThisWave++
	wave.TotalSpawned++
}
