// internal/system/state.go
package system

import (
	"log/slog"

	"go-skyfire/internal/component"
	"go-skyfire/internal/entity"
	"go-skyfire/internal/event"
)

// StateSystem переводит игру в фазу Over, когда взрыв игрока доигран.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher, logger *slog.Logger) *StateSystem {
	return &StateSystem{world: world, eventDispatcher: eventDispatcher, logger: logger}
}

// Update возвращает true на тике перехода в GameOver.
func (s *StateSystem) Update() bool {
	if s.world.Phase == component.Over || s.world.Player.State != component.GameOver {
		return false
	}
	s.SwitchToGameOver()
	return true
}

func (s *StateSystem) SwitchToGameOver() {
	s.world.Phase = component.Over
	p := s.world.Player
	s.logger.Info("game over", "score", p.Score, "kills", p.Kills, "wave", s.world.Wave.Number, "tick", s.world.Tick)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Score: p.Score, Wave: s.world.Wave.Number},
	})
}
