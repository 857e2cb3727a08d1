// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-skyfire/internal/config"
	"go-skyfire/pkg/utils"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	MilestoneColor   color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны; X — центр текста.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.UIColorBlue,
		MilestoneColor:   config.GameOverColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// Label возвращает подпись для волны.
func (i *WaveIndicator) Label(waveNumber int) string {
	return utils.ToRoman(waveNumber)
}

// TextColor — каждая десятая волна выделяется.
func (i *WaveIndicator) TextColor(waveNumber int) color.RGBA {
	if waveNumber > 0 && waveNumber%10 == 0 {
		return i.MilestoneColor
	}
	return i.Color
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, face font.Face) {
	if waveNumber <= 0 {
		return
	}
	label := i.Label(waveNumber)
	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2
	y := i.Y + bounds.Dy()

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, y, i.TextColor(waveNumber))
}
