// internal/entity/world.go
package entity

import (
	"go-skyfire/internal/component"
	"go-skyfire/internal/types"
)

// World хранит все живые сущности симуляции. Порядок слайсов равен порядку
// вставки и определяет порядок проверки столкновений.
type World struct {
	NextID  types.EntityID
	Tick    uint64
	Player  *component.Player
	Enemies []*component.Enemy
	Wave    *component.Wave
	Phase   component.Phase
}

func NewWorld() *World {
	return &World{
		NextID: 1,
		Wave:   &component.Wave{},
	}
}

// NewEntity выдаёт следующий ID.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Clear удаляет всех врагов и пули и сбрасывает счётчики.
func (w *World) Clear() {
	w.NextID = 1
	w.Tick = 0
	w.Player = nil
	w.Enemies = nil
	w.Wave = &component.Wave{}
	w.Phase = component.Playing
}

// AddEnemy добавляет врага в конец списка.
func (w *World) AddEnemy(e *component.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// ProjectileCount — число пуль всех владельцев.
func (w *World) ProjectileCount() int {
	n := 0
	if w.Player != nil {
		n += len(w.Player.Projectiles)
	}
	for _, e := range w.Enemies {
		n += len(e.Projectiles)
	}
	return n
}

// ActiveEnemies — враги в состоянии Active.
func (w *World) ActiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.IsActive() {
			n++
		}
	}
	return n
}
