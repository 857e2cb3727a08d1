// pkg/render/field_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-skyfire/internal/app"
	"go-skyfire/internal/component"
	"go-skyfire/internal/config"
	"go-skyfire/internal/defs"
	"go-skyfire/internal/utils"
)

const starCount = 60

type star struct {
	x, y  float64
	speed float64
	size  float32
}

type tierLook struct {
	sprite string
	color  color.RGBA
}

// FieldRenderer рисует игровое поле из FrameState: фон, врагов, игрока, снаряды,
// полоски здоровья и взрывы. Состояние игры он не трогает.
type FieldRenderer struct {
	colors  FieldColors
	sprites *SpriteSet
	tiers   map[string]tierLook
	stars   []star
	width   float64
	height  float64
}

// NewFieldRenderer раскладывает звёзды детерминированно по seed.
func NewFieldRenderer(library *defs.Library, sprites *SpriteSet, colors FieldColors, width, height float64, seed int64) *FieldRenderer {
	r := &FieldRenderer{
		colors:  colors,
		sprites: sprites,
		tiers:   make(map[string]tierLook, len(library.Tiers)),
		width:   width,
		height:  height,
	}
	for id, def := range library.Tiers {
		r.tiers[id] = tierLook{sprite: def.Visuals.Sprite, color: def.Visuals.Color}
	}
	rng := utils.NewPRNGService(seed)
	for i := 0; i < starCount; i++ {
		r.stars = append(r.stars, star{
			x:     rng.Float64() * width,
			y:     rng.Float64() * height,
			speed: 0.2 + rng.Float64()*0.8,
			size:  float32(1 + rng.Intn(2)),
		})
	}
	return r
}

// StarAt возвращает положение i-й звезды на тике tick. Звёзды медленно
// текут вниз и заворачиваются по высоте поля.
func (r *FieldRenderer) StarAt(i int, tick uint64) (x, y float64) {
	s := r.stars[i]
	y = s.y + s.speed*float64(tick)
	for y >= r.height {
		y -= r.height
	}
	return s.x, y
}

// Draw рисует кадр.
func (r *FieldRenderer) Draw(screen *ebiten.Image, fs app.FrameState) {
	screen.Fill(r.colors.Background)
	for i, s := range r.stars {
		x, y := r.StarAt(i, fs.Tick)
		vector.DrawFilledRect(screen, float32(x), float32(y), s.size, s.size, r.colors.Star, false)
	}

	for _, e := range fs.Enemies {
		r.drawEnemy(screen, e)
	}
	r.drawPlayer(screen, fs.Player)

	for _, p := range fs.Projectiles {
		c := r.colors.EnemyShot
		if p.Owner == component.SidePlayer {
			c = r.colors.PlayerShot
		}
		vector.DrawFilledRect(screen, float32(p.Rect.X), float32(p.Rect.Y), float32(p.Rect.W), float32(p.Rect.H), c, false)
	}
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyState) {
	if e.State != component.Active {
		r.drawExplosion(screen, e.Rect, e.Frame, e.Frames)
		return
	}
	look := r.tiers[e.Tier]
	r.drawSprite(screen, look.sprite, look.color, e.Rect, e.Flash, 1)

	if e.MaxHP > 1 {
		r.drawHealthBar(screen, e.Rect, e.HP, e.MaxHP)
	}
}

func (r *FieldRenderer) drawPlayer(screen *ebiten.Image, p app.PlayerState) {
	switch p.State {
	case component.Active:
		alpha := 1.0
		if p.Invincible && (p.InvTicks/config.InvincibleBlinkTicks)%2 == 1 {
			alpha = 0.35
		}
		r.drawSprite(screen, PlayerSprite, r.colors.Player, p.Rect, false, alpha)
		if p.Shield > 0 {
			cx, cy := p.Rect.Center()
			radius := float32(max(p.Rect.W, p.Rect.H)/2 + 6)
			width := float32(1 + p.Shield)
			vector.StrokeCircle(screen, float32(cx), float32(cy), radius, width, r.colors.Shield, true)
		}
	case component.Destroying, component.GameOver:
		r.drawExplosion(screen, p.Rect, p.Frame, p.Frames)
	}
}

func (r *FieldRenderer) drawSprite(screen *ebiten.Image, name string, fallback color.RGBA, rect component.Rect, flash bool, alpha float64) {
	img := r.sprites.Get(name)
	if img == nil {
		c := fallback
		if flash {
			c = r.colors.FlashTint
		}
		c = FadeColor(c, alpha)
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, false)
		vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 1, LightenColor(c, r.colors.StrokeIncrement), false)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.W/float64(b.Dx()), rect.H/float64(b.Dy()))
	op.GeoM.Translate(rect.X, rect.Y)
	if flash {
		// белая вспышка: яркость вверх, альфа как есть
		op.ColorScale.Scale(2, 2, 2, 1)
	}
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, op)
}

func (r *FieldRenderer) drawHealthBar(screen *ebiten.Image, rect component.Rect, hp, maxHP int) {
	x := float32(rect.X)
	y := float32(rect.Y - config.HealthBarOffset)
	w := float32(rect.W)
	vector.DrawFilledRect(screen, x, y, w, config.HealthBarHeight, r.colors.HealthBarBack, false)
	fill := w * float32(hp) / float32(maxHP)
	vector.DrawFilledRect(screen, x, y, fill, config.HealthBarHeight, r.colors.HealthBarFill, false)
}

// drawExplosion рисует расширяющееся и гаснущее кольцо по кадру анимации.
func (r *FieldRenderer) drawExplosion(screen *ebiten.Image, rect component.Rect, frame, frames int) {
	if frames <= 0 {
		frames = 1
	}
	progress := float64(frame+1) / float64(frames)
	cx, cy := rect.Center()
	radius := float32(max(rect.W, rect.H)/2) * utils.Lerp(0.4, 1, float32(progress))
	c := FadeColor(r.colors.Explosion, 1.1-progress)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, c, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), radius*1.2, 2, LightenColor(c, r.colors.StrokeIncrement), true)
}
