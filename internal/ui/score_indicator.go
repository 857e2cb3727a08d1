// internal/ui/score_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreIndicator печатает счёт, выровненный по правому краю в точке X.
type ScoreIndicator struct {
	X, Y  int
	Color color.Color
}

func NewScoreIndicator(x, y int, c color.Color) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, Color: c}
}

func (s *ScoreIndicator) Draw(screen *ebiten.Image, score int, face font.Face) {
	label := strconv.Itoa(score)
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, s.X-bounds.Dx(), s.Y+bounds.Dy(), s.Color)
}
