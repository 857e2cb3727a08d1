// internal/ui/shield_progress_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ShieldProgressIndicator показывает, сколько убийств осталось до восстановления щита.
type ShieldProgressIndicator struct {
	X, Y float32
}

const (
	progressBarWidth  = 118
	progressBarHeight = 8
	borderWidth       = 1
)

var (
	progressFill = color.RGBA{120, 220, 255, 220}
	borderColor  = color.White
)

func NewShieldProgressIndicator(x, y float32) *ShieldProgressIndicator {
	return &ShieldProgressIndicator{X: x, Y: y}
}

// Progress — доля пути до следующего восстановления, [0, 1).
func Progress(kills, restoreEvery int) float64 {
	if restoreEvery <= 0 {
		return 0
	}
	return float64(kills%restoreEvery) / float64(restoreEvery)
}

// Draw отрисовывает полосу. При restoreEvery == 0 ничего не рисует.
func (i *ShieldProgressIndicator) Draw(screen *ebiten.Image, kills, restoreEvery int) {
	if restoreEvery <= 0 {
		return
	}
	vector.StrokeRect(screen, i.X, i.Y, progressBarWidth, progressBarHeight, borderWidth, borderColor, true)
	fillWidth := float32(float64(progressBarWidth-borderWidth*2) * Progress(kills, restoreEvery))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, progressBarHeight-borderWidth*2, progressFill, true)
	}
}
