package terminal

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-skyfire/internal/app"
	"go-skyfire/internal/component"
	"go-skyfire/internal/config"
	"go-skyfire/internal/defs"
	"go-skyfire/internal/event"
)

// fakeCanvas запоминает клетки вместо вывода в терминал.
type fakeCanvas struct {
	cols, rows int
	cells      map[[2]int]rune
	shown      int
}

func newFakeCanvas(cols, rows int) *fakeCanvas {
	return &fakeCanvas{cols: cols, rows: rows, cells: map[[2]int]rune{}}
}

func (f *fakeCanvas) Size() (int, int) { return f.cols, f.rows }
func (f *fakeCanvas) Clear()           { f.cells = map[[2]int]rune{} }
func (f *fakeCanvas) Show()            { f.shown++ }
func (f *fakeCanvas) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	f.cells[[2]int{x, y}] = r
}

func (f *fakeCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < f.cols; x++ {
		r, ok := f.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (f *fakeCanvas) count(r rune) int {
	n := 0
	for _, v := range f.cells {
		if v == r {
			n++
		}
	}
	return n
}

// fakeScreen отдаёт заранее заданные события, потом nil.
type fakeScreen struct {
	*fakeCanvas
	events []tcell.Event
	fini   bool
}

func (s *fakeScreen) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func (s *fakeScreen) Fini() { s.fini = true }

type fakeMuter struct{ muted bool }

func (m *fakeMuter) SetMuted(v bool) { m.muted = v }
func (m *fakeMuter) Muted() bool     { return m.muted }

func newGame(t *testing.T) (*app.Game, *defs.Library) {
	t.Helper()
	lib, err := defs.Default()
	require.NoError(t, err)
	g, err := app.NewGame(config.Default(), lib, 7)
	require.NoError(t, err)
	return g, lib
}

func TestDrawPlayerAndHUD(t *testing.T) {
	g, lib := newGame(t)
	c := newFakeCanvas(48, 66)
	NewRenderer(lib).Draw(c, g.Snapshot())

	assert.Equal(t, 1, c.shown)
	assert.Positive(t, c.count('A'))

	hud := c.row(0)
	assert.True(t, strings.HasPrefix(hud, "I ♥♥♥♥♥"), hud)
	assert.Contains(t, hud, "◆◆")
	assert.True(t, strings.HasSuffix(hud, "0"), hud)

	// игрок внизу по центру
	fs := g.Snapshot()
	col := int((fs.Player.Rect.X + fs.Player.Rect.W/2) * float64(c.cols) / fs.FieldWidth)
	found := false
	for y := 1; y < c.rows; y++ {
		if c.cells[[2]int{col, y}] == 'A' {
			found = true
			assert.Greater(t, y, c.rows/2)
		}
	}
	assert.True(t, found)
}

func TestDrawGameOver(t *testing.T) {
	_, lib := newGame(t)
	fs := app.FrameState{
		Phase:       component.Over,
		FieldWidth:  config.FieldWidth,
		FieldHeight: config.FieldHeight,
		Wave:        app.WaveState{Number: 4},
		Player:      app.PlayerState{State: component.GameOver, MaxHP: 5, Score: 120},
	}
	c := newFakeCanvas(40, 20)
	NewRenderer(lib).Draw(c, fs)

	assert.Contains(t, c.row(9), "GAME OVER")
	assert.Contains(t, c.row(10), "score 120")
	assert.Contains(t, c.row(11), "r restart")
	assert.True(t, strings.HasPrefix(c.row(0), "IV ·····"), c.row(0))
}

func TestDrawEnemyGlyphsAndShots(t *testing.T) {
	_, lib := newGame(t)
	fs := app.FrameState{
		FieldWidth:  config.FieldWidth,
		FieldHeight: config.FieldHeight,
		Wave:        app.WaveState{Number: 1},
		Player:      app.PlayerState{State: component.Active, HP: 5, MaxHP: 5},
		Enemies: []app.EnemyState{
			{Tier: "scout", Rect: component.Rect{X: 0, Y: 100, W: 51, H: 39}, State: component.Active, HP: 1, MaxHP: 1},
			{Tier: "fighter", Rect: component.Rect{X: 150, Y: 300, W: 70, H: 90}, State: component.Active, HP: 1, MaxHP: 2},
			{Tier: "bomber", Rect: component.Rect{X: 300, Y: 100, W: 110, H: 120}, State: component.Destroying, Frame: 1},
		},
		Projectiles: []app.ProjectileState{
			{Owner: component.SidePlayer, Rect: component.Rect{X: 200, Y: 400, W: 6, H: 18}},
			{Owner: component.SideEnemy, Rect: component.Rect{X: 100, Y: 300, W: 6, H: 14}},
		},
	}
	c := newFakeCanvas(48, 66)
	r := NewRenderer(lib)
	r.Paused = true
	r.Draw(c, fs)

	assert.Positive(t, c.count('v'))
	assert.Positive(t, c.count('#'))
	assert.Positive(t, c.count('|'))
	assert.Positive(t, c.count('!'))
	assert.Contains(t, c.row(33), "PAUSED")

	// полоска над fighter: половина '=' и половина '-'
	bar := c.row(30)
	assert.Equal(t, 3, strings.Count(bar, "="), bar)
	assert.Equal(t, 4, strings.Count(bar, "-"), bar)
	assert.Zero(t, strings.Count(c.row(10), "="), "single-hp tiers get no bar")
}

func TestSessionHandlesKeys(t *testing.T) {
	g, lib := newGame(t)
	screen := &fakeScreen{fakeCanvas: newFakeCanvas(48, 66)}
	muter := &fakeMuter{}
	s := NewSession(g, screen, NewRenderer(lib), event.NewDispatcher(), muter, nil)

	assert.False(t, s.HandleKey(KeyMute))
	assert.True(t, muter.muted)
	assert.True(t, s.renderer.Muted)

	assert.False(t, s.HandleKey(KeyPause))
	before := g.World.Tick
	s.Tick(1.0 / 60)
	assert.Equal(t, before, g.World.Tick, "paused session must not step")

	s.HandleKey(KeyPause)
	x := g.World.Player.X
	s.HandleKey(KeyRight)
	fs := s.Tick(1.0 / 60)
	assert.Equal(t, before+1, fs.Tick)
	assert.Greater(t, g.World.Player.X, x)

	assert.True(t, s.HandleKey(KeyQuit))
}

func TestSessionRestartOnlyAfterGameOver(t *testing.T) {
	g, lib := newGame(t)
	s := NewSession(g, &fakeScreen{fakeCanvas: newFakeCanvas(48, 66)}, NewRenderer(lib), nil, nil, nil)

	s.Tick(1.0 / 60)
	s.HandleKey(KeyRestart)
	assert.EqualValues(t, 1, g.World.Tick, "restart ignored while playing")

	g.World.Phase = component.Over
	s.HandleKey(KeyRestart)
	assert.False(t, g.Over())
	assert.EqualValues(t, 0, g.World.Tick)
}

func TestSessionRunEndsWhenInputCloses(t *testing.T) {
	g, lib := newGame(t)
	screen := &fakeScreen{fakeCanvas: newFakeCanvas(48, 66), events: []tcell.Event{nil}}
	s := NewSession(g, screen, NewRenderer(lib), nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, s.Run(ctx))
	assert.True(t, screen.fini)
}
