// internal/system/movement.go
package system

import (
	"go-skyfire/internal/component"
	"go-skyfire/internal/config"
	"go-skyfire/internal/entity"
)

// MovementSystem двигает врагов и их пули. Активный враг качается по горизонтали,
// разворачиваясь у краёв поля, и медленно сползает вниз.
type MovementSystem struct {
	world       *entity.World
	rules       config.Rules
	projectiles *ProjectileSystem
}

func NewMovementSystem(world *entity.World, rules config.Rules, projectiles *ProjectileSystem) *MovementSystem {
	return &MovementSystem{world: world, rules: rules, projectiles: projectiles}
}

func (s *MovementSystem) Update(scale float64) {
	for _, e := range s.world.Enemies {
		e.Flash.Tick()
		switch e.State {
		case component.Active:
			s.sweep(e, scale)
		case component.Destroying:
			e.AdvanceAnimation()
		}
		s.projectiles.Advance(e.Projectiles, scale)
	}
}

func (s *MovementSystem) sweep(e *component.Enemy, scale float64) {
	maxX := s.rules.FieldWidth - e.W
	e.X += float64(e.Direction) * e.Speed * scale
	if e.X > maxX {
		e.X = maxX
		e.Direction = component.DirLeft
	} else if e.X < 0 {
		e.X = 0
		e.Direction = component.DirRight
	}
	e.Y += e.Speed * s.rules.EnemyDriftRatio * scale
}
