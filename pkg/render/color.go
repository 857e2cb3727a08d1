// pkg/render/color.go
package render

import (
	"image/color"

	"go-skyfire/internal/config"
)

// FieldColors holds the palette used to draw the playfield.
type FieldColors struct {
	Background      color.RGBA
	Star            color.RGBA
	Player          color.RGBA
	Shield          color.RGBA
	PlayerShot      color.RGBA
	EnemyShot       color.RGBA
	Explosion       color.RGBA
	HealthBarBack   color.RGBA
	HealthBarFill   color.RGBA
	FlashTint       color.RGBA
	StrokeIncrement uint8
}

// DefaultFieldColors собирает палитру из config.
func DefaultFieldColors() FieldColors {
	return FieldColors{
		Background:      config.BackgroundColor,
		Star:            config.StarColor,
		Player:          config.PlayerColor,
		Shield:          config.ShieldColor,
		PlayerShot:      config.PlayerShotColor,
		EnemyShot:       config.EnemyShotColor,
		Explosion:       config.ExplosionColor,
		HealthBarBack:   config.HealthBarBack,
		HealthBarFill:   config.HealthBarFill,
		FlashTint:       color.RGBA{255, 255, 255, 255},
		StrokeIncrement: 40,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds delta to every channel, saturating at 255.
func LightenColor(c color.RGBA, delta uint8) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+int(delta))),
		G: uint8(min(255, int(c.G)+int(delta))),
		B: uint8(min(255, int(c.B)+int(delta))),
		A: c.A,
	}
}

// FadeColor scales alpha by k in [0, 1].
func FadeColor(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
