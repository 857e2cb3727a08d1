// internal/system/combat.go
package system

import (
	"go-skyfire/internal/entity"
	"go-skyfire/internal/utils"
)

// CombatSystem решает, кто стреляет в этом тике. Каждый активный враг тянет
// равномерное число из [1, Range] и стреляет, если оно попало в окно [Low, High].
type CombatSystem struct {
	world       *entity.World
	rng         *utils.PRNGService
	projectiles *ProjectileSystem
}

func NewCombatSystem(world *entity.World, rng *utils.PRNGService, projectiles *ProjectileSystem) *CombatSystem {
	return &CombatSystem{world: world, rng: rng, projectiles: projectiles}
}

// Update возвращает число выстрелов врагов за тик.
func (s *CombatSystem) Update() int {
	fired := 0
	for _, e := range s.world.Enemies {
		if !e.IsActive() || e.FireOdds.Range <= 0 {
			continue
		}
		roll := s.rng.RangeInt(1, e.FireOdds.Range)
		if roll >= e.FireOdds.Low && roll <= e.FireOdds.High {
			s.projectiles.SpawnEnemyShot(e)
			fired++
		}
	}
	return fired
}
