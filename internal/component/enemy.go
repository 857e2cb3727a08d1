// internal/component/enemy.go
package component

import (
	"go-skyfire/internal/defs"
	"go-skyfire/internal/types"
)

// Enemy представляет вражеский корабль. Параметры копируются из тира при появлении.
type Enemy struct {
	ID   types.EntityID
	Tier string
	Lifecycle
	Position
	Size
	Speed       float64
	Direction   Direction
	Score       int
	FireOdds    defs.FireOdds
	Projectiles []*Projectile
	Flash       HitFlash
	Escaped     bool // ушёл за нижний край поля
}

// NewEnemy создаёт врага по определению тира.
func NewEnemy(id types.EntityID, def defs.TierDefinition, pos Position, dir Direction, ticksPerFrame int) *Enemy {
	return &Enemy{
		ID:        id,
		Tier:      def.ID,
		Lifecycle: NewLifecycle(def.Health, def.ExplosionFrames, ticksPerFrame, Removed),
		Position:  pos,
		Size:      Size{W: def.Width, H: def.Height},
		Speed:     def.Speed,
		Direction: dir,
		Score:     def.Score,
		FireOdds:  def.FireOdds,
	}
}

// Rect returns the bounding rectangle.
func (e *Enemy) Rect() Rect {
	return RectAt(e.Position, e.Size)
}
