// internal/types/types.go
package types

// EntityID — сквозной идентификатор сущности. Монотонно растёт внутри одной игры
// и сбрасывается при Reset, поэтому одинаковые прогоны дают одинаковые ID.
type EntityID uint64
