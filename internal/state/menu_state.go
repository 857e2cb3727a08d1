// internal/state/menu_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-skyfire/internal/app"
	"go-skyfire/internal/config"
	"go-skyfire/internal/interfaces"
	"go-skyfire/internal/pilot"
	"go-skyfire/internal/ui"
	"go-skyfire/pkg/render"
)

// MenuState — заставка: за меню летает автопилот, пробел или START запускают игру.
// Демо-игра звук не трогает: её события никуда не раздаются.
type MenuState struct {
	sm       *StateMachine
	res      *Resources
	demo     interfaces.Simulation
	pilot    *pilot.Autopilot
	last     app.FrameState
	renderer *render.FieldRenderer
	start    *ui.Button
	cursorX  int
	cursorY  int
}

func NewMenuState(sm *StateMachine, res *Resources) (*MenuState, error) {
	res.defaults()
	demo, err := res.NewSimulation(res.Seed)
	if err != nil {
		return nil, err
	}
	w, h := int(res.Rules.FieldWidth), int(res.Rules.FieldHeight)
	return &MenuState{
		sm:       sm,
		res:      res,
		demo:     demo,
		pilot:    pilot.New(),
		last:     demo.Snapshot(),
		renderer: res.fieldRenderer(),
		start:    ui.NewButton(image.Rect(w/2-70, h/2+20, w/2+70, h/2+52), "START", res.Face),
	}, nil
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.cursorX, m.cursorY = ebiten.CursorPosition()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && m.start.Contains(m.cursorX, m.cursorY)) {
		if err := m.StartGame(); err != nil {
			m.res.Logger.Error("start game", "err", err)
			m.sm.Quit()
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
		return
	}
	m.Advance(deltaTime)
}

// Advance шагает демо-игру автопилотом; после game over демо начинается заново.
func (m *MenuState) Advance(deltaTime float64) {
	if m.demo.Over() {
		m.demo.Reset()
	}
	m.last = m.demo.Step(deltaTime, m.pilot.Next(m.last))
}

// StartGame переключает машину на настоящую игру.
func (m *MenuState) StartGame() error {
	sim, err := m.res.NewSimulation(m.res.Seed)
	if err != nil {
		return err
	}
	m.sm.SetState(NewGameState(m.sm, m.res, sim))
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.renderer.Draw(screen, m.last)
	w, h := float32(m.res.Rules.FieldWidth), float32(m.res.Rules.FieldHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, config.OverlayColor, false)
	drawCenteredText(screen, m.res.Face, "SKYFIRE", int(w)/2, int(h)/2-30, config.UIColorBlue)
	drawCenteredText(screen, m.res.Face, "arrows move  space fire  p pause  m mute", int(w)/2, int(h)/2, config.TextLightColor)
	m.start.Draw(screen, m.cursorX, m.cursorY)
}

func (m *MenuState) Exit() {}
