// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-skyfire/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState лежит поверх GameState: симуляция не шагает, последний кадр рисуется под затемнением.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{stateMachine: sm, game: game}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	click := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(click && s.game.pause.Contains(x, y)) {
		s.Resume()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.stateMachine.Quit()
	}
}

// Resume возвращает управление игре; кнопку паузы «отжимаем» там же.
func (s *PauseState) Resume() {
	s.game.pause.TogglePause()
	s.stateMachine.Pop()
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	w, h := float32(s.game.res.Rules.FieldWidth), float32(s.game.res.Rules.FieldHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, config.OverlayColor, false)
	drawCenteredText(screen, s.game.res.Face, "PAUSED", int(w)/2, int(h)/2, config.PausedTitleColor)
	drawCenteredText(screen, s.game.res.Face, "P resume  Q quit", int(w)/2, int(h)/2+24, config.TextLightColor)
}

func (s *PauseState) Exit() {}
