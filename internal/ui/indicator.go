// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SoundIndicator — кружок звука: залит, когда звук включён; клик переключает mute.
type SoundIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
	OnColor       color.Color
	OffColor      color.Color
}

func NewSoundIndicator(x, y, radius float32, on, off color.Color) *SoundIndicator {
	return &SoundIndicator{X: x, Y: y, Radius: radius, OnColor: on, OffColor: off}
}

// Draw отрисовывает индикатор.
func (i *SoundIndicator) Draw(screen *ebiten.Image, muted bool) {
	r := i.Radius * clickPulse(i.LastClickTime)
	if muted {
		vector.DrawFilledCircle(screen, i.X, i.Y, r, i.OffColor, true)
		vector.StrokeLine(screen, i.X-r*0.7, i.Y-r*0.7, i.X+r*0.7, i.Y+r*0.7, 2, color.White, true)
	} else {
		vector.DrawFilledCircle(screen, i.X, i.Y, r, i.OnColor, true)
	}
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

// Contains проверяет, был ли клик внутри индикатора.
func (i *SoundIndicator) Contains(x, y int) bool {
	return insideCircle(i.X, i.Y, i.Radius, x, y)
}

func (i *SoundIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
