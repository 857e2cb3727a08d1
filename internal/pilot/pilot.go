// internal/pilot/pilot.go
package pilot

import (
	"math"

	"go-skyfire/internal/app"
	"go-skyfire/internal/component"
	"go-skyfire/internal/interfaces"
)

// Autopilot — детерминированный источник ввода: уходит от вражеских пуль,
// подводит корабль под ближайшего активного врага и стреляет, когда он над ним.
// Используется для заставки в меню, проверки детерминизма и тестов.
type Autopilot struct {
	DodgeDistance float64 // как далеко над кораблём смотреть на пули
	AimTolerance  float64
}

func New() *Autopilot {
	return &Autopilot{DodgeDistance: 140, AimTolerance: 12}
}

// Next выбирает намерение по последнему снимку.
func (a *Autopilot) Next(fs app.FrameState) app.Intent {
	p := fs.Player
	if p.State != component.Active {
		return app.Intent{}
	}
	px, _ := p.Rect.Center()

	if dir := a.dodge(fs); dir != 0 {
		return app.Intent{MoveLeft: dir < 0, MoveRight: dir > 0, Fire: true}
	}

	target, ok := a.target(fs, px)
	if !ok {
		return app.Intent{}
	}
	in := app.Intent{}
	switch {
	case target < px-a.AimTolerance:
		in.MoveLeft = true
	case target > px+a.AimTolerance:
		in.MoveRight = true
	}
	in.Fire = math.Abs(target-px) <= a.AimTolerance*3
	return in
}

// dodge возвращает -1/1, если над кораблём опасная пуля, иначе 0.
func (a *Autopilot) dodge(fs app.FrameState) int {
	p := fs.Player.Rect
	px, _ := p.Center()
	for _, s := range fs.Projectiles {
		if s.Owner != component.SideEnemy {
			continue
		}
		if s.Rect.Y+s.Rect.H < p.Y-a.DodgeDistance || s.Rect.Y > p.Y+p.H {
			continue
		}
		if s.Rect.X+s.Rect.W < p.X || s.Rect.X > p.X+p.W {
			continue
		}
		sx, _ := s.Rect.Center()
		switch {
		case p.X <= 0:
			return 1
		case p.X+p.W >= fs.FieldWidth:
			return -1
		case sx >= px:
			return -1
		default:
			return 1
		}
	}
	return 0
}

func (a *Autopilot) target(fs app.FrameState, px float64) (float64, bool) {
	best, found := 0.0, false
	bestDist := math.Inf(1)
	for _, e := range fs.Enemies {
		if e.State != component.Active {
			continue
		}
		ex, _ := e.Rect.Center()
		if d := math.Abs(ex - px); d < bestDist {
			best, bestDist, found = ex, d, true
		}
	}
	return best, found
}

// Session — результат прогона автопилота.
type Session struct {
	Final app.FrameState
	Ticks int
	Kills int
	Hits  int
	Waves int
}

// Run крутит игру до game over или maxTicks с фиксированным шагом.
// Каждый снимок отдаётся в observe, если тот не nil.
func Run(g interfaces.Simulation, a *Autopilot, maxTicks int, observe func(app.FrameState) error) (Session, error) {
	var s Session
	fs := g.Snapshot()
	for s.Ticks < maxTicks && fs.Phase != component.Over {
		fs = g.Step(g.TickDelta(), a.Next(fs))
		s.Ticks++
		s.Kills += len(fs.Events.EnemiesDestroyed)
		s.Hits += len(fs.Events.PlayerHits)
		if fs.Events.WaveAdvanced > 0 {
			s.Waves++
		}
		if observe != nil {
			if err := observe(fs); err != nil {
				return s, err
			}
		}
	}
	s.Final = fs
	return s, nil
}
