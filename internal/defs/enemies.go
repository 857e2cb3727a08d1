// internal/defs/enemies.go
package defs

import "image/color"

// FireOdds задаёт окно выстрела: враг стреляет, если равномерное число
// из [1, Range] попадает в [Low, High].
type FireOdds struct {
	Low   int `json:"low"`
	High  int `json:"high"`
	Range int `json:"range"`
}

// Chance возвращает вероятность выстрела за один тик.
func (o FireOdds) Chance() float64 {
	if o.Range <= 0 || o.High < o.Low {
		return 0
	}
	return float64(o.High-o.Low+1) / float64(o.Range)
}

// Visuals contains parameters for rendering an enemy tier.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Glyph  string     `json:"glyph"`  // terminal frontend
	Sprite string     `json:"sprite"` // embedded SVG name
}

// TierDefinition holds all the static data for a specific tier of enemy craft.
type TierDefinition struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Health          int      `json:"health"`
	Speed           float64  `json:"speed"` // px per tick
	Score           int      `json:"score"`
	FireOdds        FireOdds `json:"fire_odds"`
	Width           float64  `json:"width"`
	Height          float64  `json:"height"`
	ExplosionFrames int      `json:"explosion_frames"`
	Visuals         Visuals  `json:"visuals"`
}
