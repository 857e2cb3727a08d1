// internal/system/player_system.go
package system

import (
	"go-skyfire/internal/component"
	"go-skyfire/internal/config"
	"go-skyfire/internal/entity"
	"go-skyfire/internal/event"
	"go-skyfire/internal/utils"
)

// PlayerSystem отвечает за корабль игрока: ввод, движение, перезарядку,
// анимацию взрыва и начисление очков за убийства.
type PlayerSystem struct {
	world           *entity.World
	rules           config.Rules
	projectiles     *ProjectileSystem
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, rules config.Rules, projectiles *ProjectileSystem, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{
		world:           world,
		rules:           rules,
		projectiles:     projectiles,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, s)
	return s
}

// Spawn создаёт игрока внизу по центру поля.
func (s *PlayerSystem) Spawn() *component.Player {
	r := s.rules
	pos := component.Position{
		X: r.FieldWidth/2 - r.PlayerWidth/2,
		Y: r.FieldHeight - r.PlayerHeight - r.PlayerBottomMargin,
	}
	p := component.NewPlayer(s.world.NewEntity(), r.PlayerHP, r.ShieldPoints, r.PlayerExplosionFrames, r.TicksPerFrame,
		pos, component.Size{W: r.PlayerWidth, H: r.PlayerHeight}, r.PlayerSpeed)
	s.world.Player = p
	return p
}

// ApplyIntent запоминает намерение на текущий тик.
func (s *PlayerSystem) ApplyIntent(left, right, fire bool) {
	p := s.world.Player
	p.MoveDir = 0
	if left {
		p.MoveDir--
	}
	if right {
		p.MoveDir++
	}
	p.WantsFire = fire
}

// Update продвигает таймеры игрока, двигает его и его пули.
func (s *PlayerSystem) Update(scale float64) {
	p := s.world.Player
	p.TickInvincibility()
	switch p.State {
	case component.Active:
		if p.MoveDir != 0 {
			p.X = utils.Clamp(p.X+float64(p.MoveDir)*p.Speed*scale, 0, s.rules.FieldWidth-p.W)
		}
		if p.FireCooldown > 0 {
			p.FireCooldown--
		}
	case component.Destroying:
		p.AdvanceAnimation()
	}
	s.projectiles.Advance(p.Projectiles, scale)
}

// TryFire выпускает пулю, если игрок жив, хочет стрелять и перезарядился.
func (s *PlayerSystem) TryFire() bool {
	p := s.world.Player
	if !p.WantsFire || !p.IsActive() || p.FireCooldown > 0 {
		return false
	}
	s.projectiles.SpawnPlayerShot(p)
	p.FireCooldown = s.rules.FireCooldownTicks
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerFired})
	return true
}

// OnEvent начисляет очки за убитого врага.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	data, ok := e.Data.(event.EnemyDestroyedData)
	if !ok || s.world.Player == nil {
		return
	}
	if s.world.Player.AwardKill(data.Score, s.rules.ShieldRestoreKills) {
		s.eventDispatcher.Dispatch(event.Event{Type: event.ShieldRestored})
	}
}
