// internal/component/player.go
package component

import "go-skyfire/internal/types"

// Shield — вторичный пул очков, который тратится раньше HP.
type Shield struct {
	Points int
	Max    int
}

// Absorb снимает одно очко щита, если оно есть.
func (s *Shield) Absorb() bool {
	if s.Points <= 0 {
		return false
	}
	s.Points--
	return true
}

// Restore восполняет щит полностью.
func (s *Shield) Restore() {
	s.Points = s.Max
}

// HitResult описывает исход попадания по игроку.
type HitResult struct {
	Applied  bool // попадание засчитано
	Shielded bool
	Lethal   bool
}

// Player хранит состояние корабля игрока: жизненный цикл, щит, очки и пули.
type Player struct {
	ID types.EntityID
	Lifecycle
	Position
	Size
	Speed        float64
	Shield       Shield
	Score        int
	Kills        int
	FireCooldown int
	Projectiles  []*Projectile

	MoveDir   int // -1 влево, 1 вправо, 0 стоим
	WantsFire bool
}

// NewPlayer создаёт игрока с полным здоровьем и щитом.
func NewPlayer(id types.EntityID, hp, shield, frames, ticksPerFrame int, pos Position, size Size, speed float64) *Player {
	return &Player{
		ID:        id,
		Lifecycle: NewLifecycle(hp, frames, ticksPerFrame, GameOver),
		Position:  pos,
		Size:      size,
		Speed:     speed,
		Shield:    Shield{Points: shield, Max: shield},
	}
}

// Rect returns the bounding rectangle.
func (p *Player) Rect() Rect {
	return RectAt(p.Position, p.Size)
}

// TakeHit применяет одно попадание: сначала щит, потом HP.
// После нелетального попадания открывается окно неуязвимости.
func (p *Player) TakeHit(invincibilityTicks int) HitResult {
	if !p.IsActive() || p.IsInvincible() {
		return HitResult{}
	}
	if p.Shield.Absorb() {
		p.GrantInvincibility(invincibilityTicks)
		return HitResult{Applied: true, Shielded: true}
	}
	if p.ApplyDamage(1) {
		return HitResult{Applied: true, Lethal: true}
	}
	p.GrantInvincibility(invincibilityTicks)
	return HitResult{Applied: true}
}

// AwardKill начисляет очки. Щит восстанавливается на каждом restoreEvery-м убийстве.
func (p *Player) AwardKill(score, restoreEvery int) (shieldRestored bool) {
	p.Score += score
	p.Kills++
	if restoreEvery > 0 && p.Kills%restoreEvery == 0 && p.Shield.Max > 0 {
		p.Shield.Restore()
		return true
	}
	return false
}
