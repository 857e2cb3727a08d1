// internal/app/frame.go
package app

import (
	"go-skyfire/internal/component"
	"go-skyfire/internal/event"
	"go-skyfire/internal/types"
)

// FrameState — read-only снимок симуляции после тика. Всё копируется по значению,
// поэтому рендер и аудио не могут ничего изменить внутри игры.
type FrameState struct {
	Tick        uint64            `msgpack:"tick"`
	Seed        int64             `msgpack:"seed"`
	Phase       component.Phase   `msgpack:"phase"`
	FieldWidth  float64           `msgpack:"field_w"`
	FieldHeight float64           `msgpack:"field_h"`
	Wave        WaveState         `msgpack:"wave"`
	Player      PlayerState       `msgpack:"player"`
	Enemies     []EnemyState      `msgpack:"enemies"`
	Projectiles []ProjectileState `msgpack:"projectiles"`
	Events      event.Frame       `msgpack:"events"`
}

// WaveState is the scheduler part of a snapshot.
type WaveState struct {
	Number       int     `msgpack:"number"`
	Cap          int     `msgpack:"cap"`
	IntervalMs   float64 `msgpack:"interval_ms"`
	TotalSpawned int     `msgpack:"total_spawned"`
}

// PlayerState is the player part of a snapshot.
type PlayerState struct {
	ID         types.EntityID           `msgpack:"id"`
	Rect       component.Rect           `msgpack:"rect"`
	HP         int                      `msgpack:"hp"`
	MaxHP      int                      `msgpack:"max_hp"`
	Shield     int                      `msgpack:"shield"`
	ShieldMax  int                      `msgpack:"shield_max"`
	Score      int                      `msgpack:"score"`
	Kills      int                      `msgpack:"kills"`
	State      component.LifecycleState `msgpack:"state"`
	Frame      int                      `msgpack:"frame"`
	Frames     int                      `msgpack:"frames"`
	Invincible bool                     `msgpack:"invincible"`
	InvTicks   int                      `msgpack:"inv_ticks"`
}

// EnemyState is one enemy in a snapshot.
type EnemyState struct {
	ID     types.EntityID           `msgpack:"id"`
	Tier   string                   `msgpack:"tier"`
	Rect   component.Rect           `msgpack:"rect"`
	HP     int                      `msgpack:"hp"`
	MaxHP  int                      `msgpack:"max_hp"`
	State  component.LifecycleState `msgpack:"state"`
	Frame  int                      `msgpack:"frame"`
	Frames int                      `msgpack:"frames"`
	Flash  bool                     `msgpack:"flash"`
}

// ProjectileState is one live projectile in a snapshot.
type ProjectileState struct {
	ID    types.EntityID `msgpack:"id"`
	Owner component.Side `msgpack:"owner"`
	Rect  component.Rect `msgpack:"rect"`
}

func (g *Game) snapshot(events event.Frame) FrameState {
	w := g.World
	p := w.Player
	fs := FrameState{
		Tick:        w.Tick,
		Seed:        g.Rng.Seed(),
		Phase:       w.Phase,
		FieldWidth:  g.Rules.FieldWidth,
		FieldHeight: g.Rules.FieldHeight,
		Wave: WaveState{
			Number:       w.Wave.Number,
			Cap:          w.Wave.Cap,
			IntervalMs:   w.Wave.IntervalMs,
			TotalSpawned: w.Wave.TotalSpawned,
		},
		Player: PlayerState{
			ID:         p.ID,
			Rect:       p.Rect(),
			HP:         p.HP,
			MaxHP:      p.MaxHP,
			Shield:     p.Shield.Points,
			ShieldMax:  p.Shield.Max,
			Score:      p.Score,
			Kills:      p.Kills,
			State:      p.State,
			Frame:      p.FrameIndex,
			Frames:     p.Frames,
			Invincible: p.IsInvincible(),
			InvTicks:   p.Invincible,
		},
		Enemies:     make([]EnemyState, 0, len(w.Enemies)),
		Projectiles: make([]ProjectileState, 0, w.ProjectileCount()),
		Events:      events,
	}

	fs.Projectiles = appendProjectiles(fs.Projectiles, p.Projectiles)
	for _, e := range w.Enemies {
		fs.Enemies = append(fs.Enemies, EnemyState{
			ID:     e.ID,
			Tier:   e.Tier,
			Rect:   e.Rect(),
			HP:     e.HP,
			MaxHP:  e.MaxHP,
			State:  e.State,
			Frame:  e.FrameIndex,
			Frames: e.Frames,
			Flash:  e.Flash.Active(),
		})
		fs.Projectiles = appendProjectiles(fs.Projectiles, e.Projectiles)
	}
	return fs
}

func appendProjectiles(dst []ProjectileState, shots []*component.Projectile) []ProjectileState {
	for _, s := range shots {
		if !s.Alive {
			continue
		}
		dst = append(dst, ProjectileState{ID: s.ID, Owner: s.Owner, Rect: s.Rect()})
	}
	return dst
}
