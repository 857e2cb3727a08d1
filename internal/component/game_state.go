// internal/component/game_state.go
package component

// Phase — фаза игры целиком
type Phase int

const (
	Playing Phase = iota
	Over
)

func (p Phase) String() string {
	if p == Over {
		return "game_over"
	}
	return "playing"
}

// Wave хранит состояние планировщика появления врагов.
type Wave struct {
	Number          int
	Cap             int     // максимум врагов одновременно
	IntervalMs      float64 // пауза между появлениями
	ElapsedMs       float64
	SpawnedThisWave int
	TotalSpawned    int
}
