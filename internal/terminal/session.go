// internal/terminal/session.go
package terminal

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"go-skyfire/internal/app"
	"go-skyfire/internal/event"
)

// Screen — то, что сессии нужно от tcell.Screen.
type Screen interface {
	Canvas
	PollEvent() tcell.Event
	Fini()
}

// Muter is implemented by the sound manager.
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

// Session связывает игру, экран и ввод. Два горизонта: горутина опроса клавиш
// и цикл тиков; обе завершаются вместе через errgroup.
type Session struct {
	game       *app.Game
	screen     Screen
	renderer   *Renderer
	latch      *KeyLatch
	dispatcher *event.Dispatcher
	muter      Muter
	logger     *slog.Logger
	tickRate   float64
	paused     bool
}

func NewSession(game *app.Game, screen Screen, renderer *Renderer, dispatcher *event.Dispatcher, muter Muter, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &Session{
		game:       game,
		screen:     screen,
		renderer:   renderer,
		latch:      NewKeyLatch(DefaultHoldTicks),
		dispatcher: dispatcher,
		muter:      muter,
		logger:     logger,
		tickRate:   game.Rules.TickRate,
	}
}

// Run крутит игру до выхода пользователя или отмены ctx. Экран закрывается при выходе.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan Key, 64)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(keys)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return nil
			}
			kev, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			select {
			case keys <- KeyFromEvent(kev):
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer s.screen.Fini()
		ticker := time.NewTicker(time.Duration(float64(time.Second) / s.tickRate))
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return nil
			case k, ok := <-keys:
				if !ok {
					return nil
				}
				if s.HandleKey(k) {
					cancel()
					return nil
				}
			case now := <-ticker.C:
				s.Tick(now.Sub(last).Seconds())
				last = now
			}
		}
	})

	return g.Wait()
}

// HandleKey применяет одну клавишу. Возвращает true на выход.
func (s *Session) HandleKey(k Key) (quit bool) {
	switch k {
	case KeyQuit:
		s.logger.Info("quit requested", "tick", s.game.World.Tick)
		return true
	case KeyRestart:
		if s.game.Over() {
			s.game.Reset()
			s.latch.Release()
		}
	case KeyPause:
		if !s.game.Over() {
			s.paused = !s.paused
			s.renderer.Paused = s.paused
			s.latch.Release()
		}
	case KeyMute:
		if s.muter != nil {
			s.muter.SetMuted(!s.muter.Muted())
			s.renderer.Muted = s.muter.Muted()
		}
	default:
		s.latch.Press(k)
	}
	return false
}

// Tick продвигает игру на один шаг (если не пауза), раздаёт события и рисует кадр.
func (s *Session) Tick(deltaTime float64) app.FrameState {
	var fs app.FrameState
	if s.paused {
		fs = s.game.Snapshot()
	} else {
		fs = s.game.Step(deltaTime, s.latch.Intent())
		fs.Events.Dispatch(s.dispatcher)
		if fs.Events.WaveAdvanced > 0 {
			s.logger.Debug("wave", "number", fs.Events.WaveAdvanced)
		}
	}
	s.renderer.Draw(s.screen, fs)
	return fs
}
