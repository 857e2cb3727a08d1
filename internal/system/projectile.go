// internal/system/projectile.go
package system

import (
	"go-skyfire/internal/component"
	"go-skyfire/internal/config"
	"go-skyfire/internal/entity"
)

// ProjectileSystem создаёт, двигает и отсеивает снаряды.
// Снаряды живут в списке того актёра, который их выпустил.
type ProjectileSystem struct {
	world *entity.World
	rules config.Rules
}

func NewProjectileSystem(world *entity.World, rules config.Rules) *ProjectileSystem {
	return &ProjectileSystem{world: world, rules: rules}
}

// SpawnPlayerShot добавляет пулю по центру над кораблём игрока.
func (s *ProjectileSystem) SpawnPlayerShot(p *component.Player) *component.Projectile {
	size := component.Size{W: s.rules.PlayerShotWidth, H: s.rules.PlayerShotHeight}
	pos := component.Position{
		X: p.X + p.W/2 - size.W/2,
		Y: p.Y - size.H,
	}
	shot := component.NewProjectile(s.world.NewEntity(), component.SidePlayer, p.ID, pos, size, s.rules.PlayerShotSpeed)
	p.Projectiles = append(p.Projectiles, shot)
	return shot
}

// SpawnEnemyShot добавляет пулю по центру под врагом.
func (s *ProjectileSystem) SpawnEnemyShot(e *component.Enemy) *component.Projectile {
	size := component.Size{W: s.rules.EnemyShotWidth, H: s.rules.EnemyShotHeight}
	pos := component.Position{
		X: e.X + e.W/2 - size.W/2,
		Y: e.Y + e.H,
	}
	shot := component.NewProjectile(s.world.NewEntity(), component.SideEnemy, e.ID, pos, size, s.rules.EnemyShotSpeed)
	e.Projectiles = append(e.Projectiles, shot)
	return shot
}

// Advance двигает все живые пули из списка.
func (s *ProjectileSystem) Advance(shots []*component.Projectile, scale float64) {
	for _, p := range shots {
		if p.Alive {
			p.Advance(scale)
		}
	}
}

// Prune убирает израсходованные пули и пули, покинувшие поле. Порядок сохраняется.
func (s *ProjectileSystem) Prune(shots []*component.Projectile) []*component.Projectile {
	kept := shots[:0]
	for _, p := range shots {
		if !p.Alive || !p.Rect().Within(s.rules.FieldWidth, s.rules.FieldHeight) {
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(shots); i++ {
		shots[i] = nil
	}
	return kept
}
