// internal/component/projectile.go
package component

import (
	"math"

	"go-skyfire/internal/types"
)

// Side — чья это пуля.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "player"
}

// Projectile представляет летящий снаряд. Пули игрока летят вверх, пули врагов вниз.
type Projectile struct {
	ID      types.EntityID
	Owner   Side
	OwnerID types.EntityID
	Position
	Size
	VY    float64 // px per tick
	Alive bool
}

// NewProjectile выводит знак скорости из стороны, так что пуля игрока
// не может лететь вниз и наоборот.
func NewProjectile(id types.EntityID, owner Side, ownerID types.EntityID, pos Position, size Size, speed float64) *Projectile {
	vy := math.Abs(speed)
	if owner == SidePlayer {
		vy = -vy
	}
	return &Projectile{
		ID:       id,
		Owner:    owner,
		OwnerID:  ownerID,
		Position: pos,
		Size:     size,
		VY:       vy,
		Alive:    true,
	}
}

// Rect returns the bounding rectangle.
func (p *Projectile) Rect() Rect {
	return RectAt(p.Position, p.Size)
}

// Advance сдвигает пулю на scale тиков.
func (p *Projectile) Advance(scale float64) {
	p.Y += p.VY * scale
}

// Consume помечает пулю израсходованной. Возвращает false, если она уже была израсходована.
func (p *Projectile) Consume() bool {
	if !p.Alive {
		return false
	}
	p.Alive = false
	return true
}
