// internal/terminal/render.go
package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"go-skyfire/internal/app"
	"go-skyfire/internal/component"
	"go-skyfire/internal/config"
	"go-skyfire/internal/defs"
	"go-skyfire/pkg/utils"
)

// Canvas — часть tcell.Screen, которой пользуется рендер.
type Canvas interface {
	Size() (int, int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

const hudRows = 1

var (
	styleDefault    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePlayer     = styleDefault.Foreground(tcell.NewRGBColor(80, 200, 255))
	styleBlink      = styleDefault.Foreground(tcell.ColorGray)
	stylePlayerShot = styleDefault.Foreground(tcell.NewRGBColor(255, 240, 120))
	styleEnemyShot  = styleDefault.Foreground(tcell.NewRGBColor(255, 90, 90))
	styleExplosion  = styleDefault.Foreground(tcell.NewRGBColor(255, 160, 40))
	styleFlash      = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHeart      = styleDefault.Foreground(tcell.NewRGBColor(230, 60, 80))
	styleShield     = styleDefault.Foreground(tcell.NewRGBColor(120, 220, 255))
	styleWave       = styleDefault.Foreground(tcell.NewRGBColor(70, 130, 220)).Bold(true)
	styleGameOver   = styleDefault.Foreground(tcell.NewRGBColor(230, 50, 50)).Bold(true)
	styleHealth     = styleDefault.Foreground(tcell.NewRGBColor(40, 220, 60))
	styleHealthBack = styleDefault.Foreground(tcell.NewRGBColor(200, 30, 30))
)

var explosionGlyphs = []rune{'*', '#', '+', 'x', '.', '`'}

// Renderer рисует FrameState символами, масштабируя поле под размер терминала.
type Renderer struct {
	tiers  map[string]tierStyle
	Paused bool
	Muted  bool
}

type tierStyle struct {
	glyph rune
	style tcell.Style
}

func NewRenderer(library *defs.Library) *Renderer {
	r := &Renderer{tiers: make(map[string]tierStyle, len(library.Tiers))}
	for id, def := range library.Tiers {
		glyph := 'V'
		if g := []rune(def.Visuals.Glyph); len(g) > 0 {
			glyph = g[0]
		}
		c := def.Visuals.Color
		r.tiers[id] = tierStyle{glyph: glyph, style: styleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))}
	}
	return r
}

// viewport переводит координаты поля в клетки.
type viewport struct {
	sx, sy float64
	cols   int
	rows   int
}

func newViewport(fs app.FrameState, cols, rows int) viewport {
	fieldRows := rows - hudRows
	if fieldRows < 1 {
		fieldRows = 1
	}
	return viewport{
		sx:   float64(cols) / fs.FieldWidth,
		sy:   float64(fieldRows) / fs.FieldHeight,
		cols: cols,
		rows: rows,
	}
}

// cells возвращает прямоугольник клеток, минимум одна клетка.
func (v viewport) cells(r component.Rect) (x0, y0, x1, y1 int) {
	x0 = int(r.X * v.sx)
	y0 = int(r.Y*v.sy) + hudRows
	x1 = int((r.X + r.W) * v.sx)
	y1 = int((r.Y+r.H)*v.sy) + hudRows
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return
}

func (v viewport) set(c Canvas, x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < hudRows || x >= v.cols || y >= v.rows {
		return
	}
	c.SetContent(x, y, ch, nil, style)
}

func (v viewport) fill(c Canvas, r component.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := v.cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			v.set(c, x, y, ch, style)
		}
	}
}

// healthBar рисует полоску над врагом: заполненная часть пропорциональна HP.
func (v viewport) healthBar(c Canvas, r component.Rect, hp, maxHP int) {
	x0, y0, x1, _ := v.cells(r)
	filled := x0 + (x1-x0)*hp/maxHP
	for x := x0; x < x1; x++ {
		if x < filled {
			v.set(c, x, y0-1, '=', styleHealth)
		} else {
			v.set(c, x, y0-1, '-', styleHealthBack)
		}
	}
}

// Draw рисует кадр и показывает его.
func (r *Renderer) Draw(c Canvas, fs app.FrameState) {
	cols, rows := c.Size()
	c.Clear()
	v := newViewport(fs, cols, rows)

	for _, e := range fs.Enemies {
		ts, ok := r.tiers[e.Tier]
		if !ok {
			ts = tierStyle{glyph: '?', style: styleDefault}
		}
		switch {
		case e.State == component.Destroying:
			v.fill(c, e.Rect, explosionGlyph(e.Frame), styleExplosion)
		case e.Flash:
			v.fill(c, e.Rect, ts.glyph, styleFlash)
		default:
			v.fill(c, e.Rect, ts.glyph, ts.style)
		}
		if e.State == component.Active && e.MaxHP > 1 {
			v.healthBar(c, e.Rect, e.HP, e.MaxHP)
		}
	}

	p := fs.Player
	switch p.State {
	case component.Active:
		style := stylePlayer
		if p.Invincible && (p.InvTicks/config.InvincibleBlinkTicks)%2 == 1 {
			style = styleBlink
		}
		v.fill(c, p.Rect, 'A', style)
	case component.Destroying, component.GameOver:
		v.fill(c, p.Rect, explosionGlyph(p.Frame), styleExplosion)
	}

	for _, s := range fs.Projectiles {
		if s.Owner == component.SidePlayer {
			v.fill(c, s.Rect, '|', stylePlayerShot)
		} else {
			v.fill(c, s.Rect, '!', styleEnemyShot)
		}
	}

	r.drawHUD(c, fs, cols)
	if fs.Phase == component.Over {
		drawCentered(c, cols, rows/2-1, "GAME OVER", styleGameOver)
		drawCentered(c, cols, rows/2, fmt.Sprintf("score %d", p.Score), styleDefault)
		drawCentered(c, cols, rows/2+1, "r restart  q quit", styleDefault)
	} else if r.Paused {
		drawCentered(c, cols, rows/2, "PAUSED", styleWave)
	}
	c.Show()
}

func (r *Renderer) drawHUD(c Canvas, fs app.FrameState, cols int) {
	x := drawText(c, 0, 0, utils.ToRoman(fs.Wave.Number), styleWave) + 1
	p := fs.Player
	x = drawText(c, x, 0, strings.Repeat("♥", p.HP), styleHeart)
	x = drawText(c, x, 0, strings.Repeat("·", max(p.MaxHP-p.HP, 0)), styleDefault) + 1
	drawText(c, x, 0, strings.Repeat("◆", p.Shield), styleShield)

	right := fmt.Sprintf("%d", p.Score)
	if r.Muted {
		right = "muted " + right
	}
	drawText(c, cols-len([]rune(right)), 0, right, styleDefault)
}

func drawText(c Canvas, x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		c.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func drawCentered(c Canvas, cols, y int, s string, style tcell.Style) {
	drawText(c, (cols-len([]rune(s)))/2, y, s, style)
}

func explosionGlyph(frame int) rune {
	if frame < 0 {
		frame = 0
	}
	return explosionGlyphs[frame%len(explosionGlyphs)]
}
