// internal/interfaces/game.go
package interfaces

import "go-skyfire/internal/app"

// Simulation — то, чем фронтенды и автопилот управляют игрой.
// *app.Game реализует его; тесты могут подставить свою реализацию.
type Simulation interface {
	Step(deltaTime float64, in app.Intent) app.FrameState
	Snapshot() app.FrameState
	Reset()
	Over() bool
	TickDelta() float64
}

var _ Simulation = (*app.Game)(nil)
