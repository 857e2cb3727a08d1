// internal/state/resources.go
package state

import (
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-skyfire/internal/app"
	"go-skyfire/internal/config"
	"go-skyfire/internal/defs"
	"go-skyfire/internal/event"
	"go-skyfire/internal/interfaces"
	"go-skyfire/pkg/render"
)

// Muter is implemented by the sound manager.
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

// Resources — общее для всех состояний: правила, тиры, спрайты, шрифт и звук.
type Resources struct {
	Rules      config.Rules
	Library    *defs.Library
	Seed       int64
	Sprites    *render.SpriteSet // nil — рисовать прямоугольниками
	Face       font.Face
	Dispatcher *event.Dispatcher // сюда уходят события каждого кадра (звук)
	Sound      Muter
	Logger     *slog.Logger
	Debug      bool // печатать TPS и счётчики поверх поля
}

func (r *Resources) defaults() {
	if r.Face == nil {
		r.Face = basicfont.Face7x13
	}
	if r.Dispatcher == nil {
		r.Dispatcher = event.NewDispatcher()
	}
	if r.Logger == nil {
		r.Logger = slog.Default()
	}
}

// NewSimulation собирает новую игру по ресурсам.
func (r *Resources) NewSimulation(seed int64) (interfaces.Simulation, error) {
	return app.NewGame(r.Rules, r.Library, seed, app.WithLogger(r.Logger))
}

func (r *Resources) fieldRenderer() *render.FieldRenderer {
	return render.NewFieldRenderer(r.Library, r.Sprites, render.DefaultFieldColors(), r.Rules.FieldWidth, r.Rules.FieldHeight, r.Seed)
}
