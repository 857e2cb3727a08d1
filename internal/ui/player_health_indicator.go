// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-skyfire/internal/config"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 7.0
	HealthCircleSpacing = 4.0
	ShieldDiamondSize   = 7.0
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков и щит ромбами справа.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// CellCenter возвращает центр j-го кружка.
func (i *PlayerHealthIndicator) CellCenter(j int) (float32, float32) {
	row := j / HealthCols
	col := j % HealthCols
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	return i.X + HealthCircleRadius + float32(col)*step, i.Y + HealthCircleRadius + float32(row)*step
}

// Width — ширина сетки здоровья.
func (i *PlayerHealthIndicator) Width(maxHealth int) float32 {
	cols := min(maxHealth, HealthCols)
	return float32(cols)*(HealthCircleRadius*2+HealthCircleSpacing) - HealthCircleSpacing
}

// Draw рисует индикатор.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth, shield, shieldMax int) {
	for j := 0; j < maxHealth; j++ {
		cx, cy := i.CellCenter(j)
		var c color.Color = config.HeartEmptyColor
		if j < health {
			c = config.HeartColor
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	x := i.X + i.Width(maxHealth) + HealthCircleSpacing*3
	cy := i.Y + HealthCircleRadius
	for j := 0; j < shieldMax; j++ {
		cx := x + ShieldDiamondSize + float32(j)*(ShieldDiamondSize*2+HealthCircleSpacing)
		var path vector.Path
		path.MoveTo(cx, cy-ShieldDiamondSize)
		path.LineTo(cx+ShieldDiamondSize, cy)
		path.LineTo(cx, cy+ShieldDiamondSize)
		path.LineTo(cx-ShieldDiamondSize, cy)
		path.Close()
		var c color.Color = config.HeartEmptyColor
		if j < shield {
			c = config.ShieldColor
		}
		fillPath(screen, &path, c)
	}
}
