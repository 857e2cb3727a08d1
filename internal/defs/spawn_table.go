// internal/defs/spawn_table.go
package defs

// SpawnEntry представляет одну запись в таблице появления врагов.
// TierID - это ID тира, а Weight - его относительный шанс появления.
type SpawnEntry struct {
	TierID string `json:"tier_id"`
	Weight int    `json:"weight"`
}
