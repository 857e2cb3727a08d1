// internal/event/frame.go
package event

// Frame собирает события одного тика. Это плоские данные, а не колбэки:
// симуляция отдаёт Frame в снимке, а аудио и UI сами решают, что с ним делать.
type Frame struct {
	PlayerFired      bool                 `msgpack:"player_fired"`
	EnemiesDestroyed []EnemyDestroyedData `msgpack:"enemies_destroyed"`
	EnemiesEscaped   []string             `msgpack:"enemies_escaped"`
	PlayerHits       []PlayerHitData      `msgpack:"player_hits"`
	ShieldRestored   bool                 `msgpack:"shield_restored"`
	WaveAdvanced     int                  `msgpack:"wave_advanced"` // 0 — волна не менялась
	GameOver         *GameOverData        `msgpack:"game_over,omitempty"`
	Reset            bool                 `msgpack:"reset"`
}

// Record подписывает Frame на все типы событий симуляции.
func (f *Frame) Record(d *Dispatcher) {
	d.SubscribeAll(f, PlayerFired, EnemyDestroyed, EnemyEscaped, PlayerHit, ShieldRestored, WaveAdvanced, GameOver, GameReset)
}

// OnEvent implements Listener.
func (f *Frame) OnEvent(e Event) {
	switch e.Type {
	case PlayerFired:
		f.PlayerFired = true
	case EnemyDestroyed:
		if data, ok := e.Data.(EnemyDestroyedData); ok {
			f.EnemiesDestroyed = append(f.EnemiesDestroyed, data)
		}
	case EnemyEscaped:
		if data, ok := e.Data.(EnemyEscapedData); ok {
			f.EnemiesEscaped = append(f.EnemiesEscaped, data.Tier)
		}
	case PlayerHit:
		if data, ok := e.Data.(PlayerHitData); ok {
			f.PlayerHits = append(f.PlayerHits, data)
		}
	case ShieldRestored:
		f.ShieldRestored = true
	case WaveAdvanced:
		if data, ok := e.Data.(WaveAdvancedData); ok {
			f.WaveAdvanced = data.Wave
		}
	case GameOver:
		if data, ok := e.Data.(GameOverData); ok {
			f.GameOver = &data
		}
	case GameReset:
		f.Reset = true
	}
}

// Clear готовит Frame к следующему тику.
func (f *Frame) Clear() {
	*f = Frame{}
}

// Clone возвращает копию, не разделяющую слайсы с оригиналом.
func (f *Frame) Clone() Frame {
	out := *f
	out.EnemiesDestroyed = append([]EnemyDestroyedData(nil), f.EnemiesDestroyed...)
	out.EnemiesEscaped = append([]string(nil), f.EnemiesEscaped...)
	out.PlayerHits = append([]PlayerHitData(nil), f.PlayerHits...)
	if f.GameOver != nil {
		g := *f.GameOver
		out.GameOver = &g
	}
	return out
}

// Empty сообщает, что за тик ничего не случилось.
func (f *Frame) Empty() bool {
	return !f.PlayerFired && len(f.EnemiesDestroyed) == 0 && len(f.EnemiesEscaped) == 0 &&
		len(f.PlayerHits) == 0 && !f.ShieldRestored && f.WaveAdvanced == 0 && f.GameOver == nil && !f.Reset
}

// Dispatch пересылает события кадра подписчикам d в фиксированном порядке.
func (f *Frame) Dispatch(d *Dispatcher) {
	if f.Reset {
		d.Dispatch(Event{Type: GameReset})
	}
	if f.PlayerFired {
		d.Dispatch(Event{Type: PlayerFired})
	}
	for _, data := range f.EnemiesDestroyed {
		d.Dispatch(Event{Type: EnemyDestroyed, Data: data})
	}
	for _, tier := range f.EnemiesEscaped {
		d.Dispatch(Event{Type: EnemyEscaped, Data: EnemyEscapedData{Tier: tier}})
	}
	for _, data := range f.PlayerHits {
		d.Dispatch(Event{Type: PlayerHit, Data: data})
	}
	if f.ShieldRestored {
		d.Dispatch(Event{Type: ShieldRestored})
	}
	if f.WaveAdvanced > 0 {
		d.Dispatch(Event{Type: WaveAdvanced, Data: WaveAdvancedData{Wave: f.WaveAdvanced}})
	}
	if f.GameOver != nil {
		d.Dispatch(Event{Type: GameOver, Data: *f.GameOver})
	}
}
