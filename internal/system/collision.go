// internal/system/collision.go
package system

import (
	"go-skyfire/internal/config"
	"go-skyfire/internal/entity"
	"go-skyfire/internal/event"
)

// CollisionSystem сводит пули с целями. Два прохода, оба в порядке вставки:
// сначала пули игрока против активных врагов, затем пули каждого активного
// врага против игрока. Пуля расходуется при первом попадании и больше не проверяется.
type CollisionSystem struct {
	world           *entity.World
	rules           config.Rules
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, rules config.Rules, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, rules: rules, eventDispatcher: eventDispatcher}
}

func (s *CollisionSystem) Update() {
	s.resolvePlayerShots()
	s.resolveEnemyShots()
}

func (s *CollisionSystem) resolvePlayerShots() {
	p := s.world.Player
	for _, shot := range p.Projectiles {
		if !shot.Alive {
			continue
		}
		rect := shot.Rect()
		for _, e := range s.world.Enemies {
			if !e.IsActive() || !rect.Overlaps(e.Rect()) {
				continue
			}
			shot.Consume()
			if e.ApplyDamage(1) {
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.EnemyDestroyed,
					Data: event.EnemyDestroyedData{Tier: e.Tier, Score: e.Score},
				})
			} else {
				e.Flash.Start()
			}
			break
		}
	}
}

func (s *CollisionSystem) resolveEnemyShots() {
	p := s.world.Player
	for _, e := range s.world.Enemies {
		if !e.IsActive() {
			continue
		}
		for _, shot := range e.Projectiles {
			if !p.IsActive() || p.IsInvincible() {
				return
			}
			if !shot.Alive || !shot.Rect().Overlaps(p.Rect()) {
				continue
			}
			shot.Consume()
			hit := p.TakeHit(s.invincibilityGrant())
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.PlayerHit,
				Data: event.PlayerHitData{Lethal: hit.Lethal, Shielded: hit.Shielded},
			})
			break
		}
	}
}

// invincibilityGrant — длина окна для таймера игрока. Таймер уменьшается в фазе
// игрока раньше коллизий, поэтому к окну добавляется тик самого попадания.
func (s *CollisionSystem) invincibilityGrant() int {
	if s.rules.InvincibilityTicks == 0 {
		return 0
	}
	return s.rules.InvincibilityTicks + 1
}
