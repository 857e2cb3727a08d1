// internal/system/cleanup.go
package system

import (
	"go-skyfire/internal/component"
	"go-skyfire/internal/config"
	"go-skyfire/internal/entity"
	"go-skyfire/internal/event"
)

// CleanupSystem — фаза удаления. Всё, что умерло в этом тике, исчезает только здесь,
// поэтому остальные системы могут спокойно итерировать по спискам.
type CleanupSystem struct {
	world           *entity.World
	rules           config.Rules
	projectiles     *ProjectileSystem
	eventDispatcher *event.Dispatcher
}

func NewCleanupSystem(world *entity.World, rules config.Rules, projectiles *ProjectileSystem, eventDispatcher *event.Dispatcher) *CleanupSystem {
	return &CleanupSystem{world: world, rules: rules, projectiles: projectiles, eventDispatcher: eventDispatcher}
}

func (s *CleanupSystem) Update() {
	p := s.world.Player
	p.Projectiles = s.projectiles.Prune(p.Projectiles)

	kept := s.world.Enemies[:0]
	for _, e := range s.world.Enemies {
		if e.State == component.Removed {
			continue
		}
		// верхний край ушёл за низ поля
		if e.Y > s.rules.FieldHeight {
			e.Escaped = true
			e.State = component.Removed
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: event.EnemyEscapedData{Tier: e.Tier}})
			continue
		}
		e.Projectiles = s.projectiles.Prune(e.Projectiles)
		kept = append(kept, e)
	}
	for i := len(kept); i < len(s.world.Enemies); i++ {
		s.world.Enemies[i] = nil
	}
	s.world.Enemies = kept
}
