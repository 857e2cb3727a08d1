// internal/state/game_state.go
package state

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-skyfire/internal/app"
	"go-skyfire/internal/component"
	"go-skyfire/internal/config"
	"go-skyfire/internal/interfaces"
	"go-skyfire/internal/ui"
	"go-skyfire/pkg/render"
)

var speedMultipliers = []int{1, 2, 4}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	res      *Resources
	sim      interfaces.Simulation
	last     app.FrameState
	renderer *render.FieldRenderer
	wave     *ui.WaveIndicator
	health   *ui.PlayerHealthIndicator
	progress *ui.ShieldProgressIndicator
	score    *ui.ScoreIndicator
	sound    *ui.SoundIndicator
	pause    *ui.PauseButton
	speed    *ui.SpeedButton
	restart  *ui.Button
	quit     *ui.Button
	cursorX  int
	cursorY  int
}

func NewGameState(sm *StateMachine, res *Resources, sim interfaces.Simulation) *GameState {
	res.defaults()
	w, h := int(res.Rules.FieldWidth), int(res.Rules.FieldHeight)
	m := int(config.HUDMargin)
	top := float32(config.HUDMargin)

	gs := &GameState{
		sm:       sm,
		res:      res,
		sim:      sim,
		last:     sim.Snapshot(),
		renderer: res.fieldRenderer(),
		wave:     ui.NewWaveIndicator(w/2, m),
		health:   ui.NewPlayerHealthIndicator(top, top),
		progress: ui.NewShieldProgressIndicator(top, top+2*ui.HealthCircleRadius+8),
		score:    ui.NewScoreIndicator(w-m-64, m, config.TextLightColor),
		sound:    ui.NewSoundIndicator(float32(w-m-8), top+8, 8, config.UIColorBlue, config.HeartEmptyColor),
		pause:    ui.NewPauseButton(float32(w-m-8), top+36, 8, config.TextLightColor, config.UIColorBlue),
		speed:    ui.NewSpeedButton(float32(w-m-4), top+64, 8, speedMultipliers, []color.Color{config.TextLightColor, config.UIColorBlue, config.GameOverColor}),
		restart:  ui.NewButton(image.Rect(w/2-70, h/2+30, w/2+70, h/2+62), "RESTART", res.Face),
		quit:     ui.NewButton(image.Rect(w/2-70, h/2+72, w/2+70, h/2+104), "QUIT", res.Face),
	}
	return gs
}

func (g *GameState) Enter() {
	g.pause.SetPaused(false)
}

// Last — последний показанный кадр.
func (g *GameState) Last() app.FrameState {
	return g.last
}

func (g *GameState) Update(deltaTime float64) {
	g.cursorX, g.cursorY = ebiten.CursorPosition()
	click := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if inpututil.IsKeyJustPressed(ebiten.KeyM) || (click && g.sound.Contains(g.cursorX, g.cursorY)) {
		g.toggleMute()
	}
	if g.sim.Over() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyR), click && g.restart.Contains(g.cursorX, g.cursorY):
			g.Restart()
		case inpututil.IsKeyJustPressed(ebiten.KeyQ), click && g.quit.Contains(g.cursorX, g.cursorY):
			g.sm.Quit()
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(click && g.pause.Contains(g.cursorX, g.cursorY)) {
		g.pause.TogglePause()
		g.sm.Push(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) || (click && g.speed.Contains(g.cursorX, g.cursorY)) {
		g.speed.ToggleState()
	}

	g.Advance(deltaTime, readIntent())
}

func readIntent() app.Intent {
	return app.Intent{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:      ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// Advance делает столько шагов, сколько велит множитель скорости,
// и раздаёт события каждого шага. Останавливается на game over.
func (g *GameState) Advance(deltaTime float64, in app.Intent) {
	for i := 0; i < g.speed.Multiplier(); i++ {
		g.last = g.sim.Step(deltaTime, in)
		g.last.Events.Dispatch(g.res.Dispatcher)
		if g.sim.Over() {
			return
		}
	}
}

// Restart начинает игру заново тем же seed.
func (g *GameState) Restart() {
	g.sim.Reset()
	g.last = g.sim.Snapshot()
}

func (g *GameState) toggleMute() {
	if g.res.Sound == nil {
		return
	}
	g.res.Sound.SetMuted(!g.res.Sound.Muted())
	g.sound.HandleClick()
}

func (g *GameState) muted() bool {
	return g.res.Sound == nil || g.res.Sound.Muted()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	fs := g.last
	g.renderer.Draw(screen, fs)
	g.drawHUD(screen, fs)

	if fs.Phase == component.Over {
		g.drawGameOver(screen, fs)
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image, fs app.FrameState) {
	p := fs.Player
	g.health.Draw(screen, p.HP, p.MaxHP, p.Shield, p.ShieldMax)
	g.progress.Draw(screen, p.Kills, g.res.Rules.ShieldRestoreKills)
	g.wave.Draw(screen, fs.Wave.Number, g.res.Face)
	g.score.Draw(screen, p.Score, g.res.Face)
	g.sound.Draw(screen, g.muted())
	g.pause.Draw(screen)
	g.speed.Draw(screen)

	if g.res.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  tick %d  enemies %d  shots %d  cap %d  x%d",
			ebiten.ActualTPS(), fs.Tick, len(fs.Enemies), len(fs.Projectiles), fs.Wave.Cap, g.speed.Multiplier()),
			int(config.HUDMargin), int(g.res.Rules.FieldHeight)-20)
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image, fs app.FrameState) {
	w, h := float32(g.res.Rules.FieldWidth), float32(g.res.Rules.FieldHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, config.OverlayColor, false)

	drawCenteredText(screen, g.res.Face, "GAME OVER", int(w)/2, int(h)/2-40, config.GameOverColor)
	drawCenteredText(screen, g.res.Face, fmt.Sprintf("score %d  wave %s", fs.Player.Score, g.wave.Label(fs.Wave.Number)), int(w)/2, int(h)/2-10, config.TextLightColor)
	g.restart.Draw(screen, g.cursorX, g.cursorY)
	g.quit.Draw(screen, g.cursorX, g.cursorY)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

func drawCenteredText(screen *ebiten.Image, face font.Face, s string, cx, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, c)
}
