// internal/component/movement.go
package component

// Position — компонент позиции (левый верхний угол, y растёт вниз)
type Position struct {
	X, Y float64
}

// Size — размер ограничивающего прямоугольника
type Size struct {
	W, H float64
}

// Rect — осевой прямоугольник для проверки столкновений.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps — строгое пересечение: касание рёбер столкновением не считается.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Within сообщает, пересекается ли прямоугольник с полем [0,w]x[0,h].
func (r Rect) Within(w, h float64) bool {
	return r.Overlaps(Rect{W: w, H: h})
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectAt собирает прямоугольник из позиции и размера.
func RectAt(p Position, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Direction горизонтального движения врага.
type Direction int

const (
	DirRight Direction = 1
	DirLeft  Direction = -1
)

// Flip разворачивает направление.
func (d Direction) Flip() Direction {
	return -d
}

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}
