// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает множитель скорости симуляции (сколько тиков за кадр).
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Multipliers   []int
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, multipliers []int, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		Multipliers: multipliers,
		StateColors: stateColors,
	}
}

// Multiplier — текущий множитель.
func (b *SpeedButton) Multiplier() int {
	if len(b.Multipliers) == 0 {
		return 1
	}
	return b.Multipliers[b.CurrentState]
}

func (b *SpeedButton) ToggleState() {
	if len(b.Multipliers) == 0 {
		return
	}
	b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	b.LastClickTime = time.Now()
}

// Contains использует круг, так как форма сложная.
func (b *SpeedButton) Contains(x, y int) bool {
	return insideCircle(b.X, b.Y, b.Size*1.5, x, y)
}

// Draw рисует два треугольника «перемотки».
func (b *SpeedButton) Draw(screen *ebiten.Image) {
	size := b.Size * clickPulse(b.LastClickTime)
	var c color.Color = color.White
	if len(b.StateColors) > 0 {
		c = b.StateColors[b.CurrentState%len(b.StateColors)]
	}

	height := size * 1.2
	width := size
	offset := width * 0.8
	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, c)
	}
}
