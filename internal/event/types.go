// internal/event/types.go
package event

const (
	EnemyDestroyed EventType = "EnemyDestroyed" // враг убит игроком, очки начислены
	EnemyEscaped   EventType = "EnemyEscaped"   // враг ушёл за нижний край
	PlayerHit      EventType = "PlayerHit"
	PlayerFired    EventType = "PlayerFired"
	ShieldRestored EventType = "ShieldRestored"
	WaveAdvanced   EventType = "WaveAdvanced"
	GameOver       EventType = "GameOver"
	GameReset      EventType = "GameReset"
)

// EnemyDestroyedData — полезная нагрузка EnemyDestroyed.
type EnemyDestroyedData struct {
	Tier  string
	Score int
}

// EnemyEscapedData — полезная нагрузка EnemyEscaped. Очков за побег нет.
type EnemyEscapedData struct {
	Tier string
}

// PlayerHitData — полезная нагрузка PlayerHit.
type PlayerHitData struct {
	Lethal   bool
	Shielded bool // попадание поглощено щитом
}

// WaveAdvancedData — полезная нагрузка WaveAdvanced.
type WaveAdvancedData struct {
	Wave int
}

// GameOverData — полезная нагрузка GameOver.
type GameOverData struct {
	Score int
	Wave  int
}
