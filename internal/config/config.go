// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
)

const (
	ScreenWidth  = 480
	ScreenHeight = 650
	FieldWidth   = 480.0
	FieldHeight  = 650.0
	TickRate     = 60
	MaxDeltaTime = 0.06

	PlayerHP              = 5
	PlayerSpeed           = 8.0 // px per tick
	PlayerWidth           = 66.0
	PlayerHeight          = 80.0
	PlayerBottomMargin    = 20.0
	PlayerExplosionFrames = 4
	TicksPerFrame         = 7
	FireCooldownTicks     = 10

	// Щит поглощает попадания раньше HP и восстанавливается каждые ShieldRestoreKills убийств.
	ShieldPoints       = 2
	ShieldRestoreKills = 5
	InvincibilityTicks = 30

	PlayerShotSpeed  = 18.0
	PlayerShotWidth  = 6.0
	PlayerShotHeight = 18.0
	EnemyShotSpeed   = 12.0
	EnemyShotWidth   = 6.0
	EnemyShotHeight  = 14.0

	EnemySpawnY     = 20.0
	EnemyDriftRatio = 0.2

	InitialEnemyCap         = 5
	EnemiesIncrementPerWave = 2
	MaxEnemyCap             = 15
	InitialSpawnInterval    = 1500.0 // ms
	SpawnIntervalDecrement  = 100.0
	MinSpawnInterval        = 500.0

	HealthBarHeight = 5.0
	HealthBarOffset = 10.0
	HUDMargin       = 12.0

	InvincibleBlinkTicks = 4 // тиков на фазу мигания
)

var (
	BackgroundColor  = color.RGBA{12, 14, 32, 255}
	StarColor        = color.RGBA{90, 100, 140, 255}
	PlayerColor      = color.RGBA{80, 200, 255, 255}
	ShieldColor      = color.RGBA{120, 220, 255, 110}
	PlayerShotColor  = color.RGBA{255, 240, 120, 255}
	EnemyShotColor   = color.RGBA{255, 90, 90, 255}
	ExplosionColor   = color.RGBA{255, 160, 40, 255}
	HealthBarBack    = color.RGBA{200, 30, 30, 255}
	HealthBarFill    = color.RGBA{40, 220, 60, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	UIColorBlue      = color.RGBA{70, 130, 220, 255}
	GameOverColor    = color.RGBA{230, 50, 50, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 150}
	HeartColor       = color.RGBA{230, 60, 80, 255}
	HeartEmptyColor  = color.RGBA{80, 40, 50, 255}
	PausedTitleColor = color.RGBA{255, 255, 255, 255}
)

// ErrInvalidRules возвращается Validate для несогласованного набора правил.
var ErrInvalidRules = errors.New("invalid rules")

// Rules собирает все настраиваемые параметры симуляции в одну структуру,
// чтобы разные варианты баланса можно было передавать в игру явно.
type Rules struct {
	FieldWidth   float64
	FieldHeight  float64
	TickRate     float64
	MaxDeltaTime float64

	PlayerHP              int
	PlayerSpeed           float64
	PlayerWidth           float64
	PlayerHeight          float64
	PlayerBottomMargin    float64
	PlayerExplosionFrames int
	TicksPerFrame         int
	FireCooldownTicks     int

	ShieldPoints       int // 0 отключает щит
	ShieldRestoreKills int // 0 отключает восстановление
	InvincibilityTicks int // 0 отключает неуязвимость после попадания

	PlayerShotSpeed  float64
	PlayerShotWidth  float64
	PlayerShotHeight float64
	EnemyShotSpeed   float64
	EnemyShotWidth   float64
	EnemyShotHeight  float64

	EnemySpawnY     float64
	EnemyDriftRatio float64

	InitialCap        int
	CapStep           int
	CapCeiling        int
	InitialIntervalMs float64
	IntervalStepMs    float64
	IntervalFloorMs   float64
}

// Default возвращает правила из константного блока выше.
func Default() Rules {
	return Rules{
		FieldWidth:            FieldWidth,
		FieldHeight:           FieldHeight,
		TickRate:              TickRate,
		MaxDeltaTime:          MaxDeltaTime,
		PlayerHP:              PlayerHP,
		PlayerSpeed:           PlayerSpeed,
		PlayerWidth:           PlayerWidth,
		PlayerHeight:          PlayerHeight,
		PlayerBottomMargin:    PlayerBottomMargin,
		PlayerExplosionFrames: PlayerExplosionFrames,
		TicksPerFrame:         TicksPerFrame,
		FireCooldownTicks:     FireCooldownTicks,
		ShieldPoints:          ShieldPoints,
		ShieldRestoreKills:    ShieldRestoreKills,
		InvincibilityTicks:    InvincibilityTicks,
		PlayerShotSpeed:       PlayerShotSpeed,
		PlayerShotWidth:       PlayerShotWidth,
		PlayerShotHeight:      PlayerShotHeight,
		EnemyShotSpeed:        EnemyShotSpeed,
		EnemyShotWidth:        EnemyShotWidth,
		EnemyShotHeight:       EnemyShotHeight,
		EnemySpawnY:           EnemySpawnY,
		EnemyDriftRatio:       EnemyDriftRatio,
		InitialCap:            InitialEnemyCap,
		CapStep:               EnemiesIncrementPerWave,
		CapCeiling:            MaxEnemyCap,
		InitialIntervalMs:     InitialSpawnInterval,
		IntervalStepMs:        SpawnIntervalDecrement,
		IntervalFloorMs:       MinSpawnInterval,
	}
}

// Validate проверяет правила один раз при старте. Ошибка фатальна.
func (r Rules) Validate() error {
	switch {
	case r.FieldWidth <= 0 || r.FieldHeight <= 0:
		return fmt.Errorf("%w: field %vx%v", ErrInvalidRules, r.FieldWidth, r.FieldHeight)
	case r.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %v", ErrInvalidRules, r.TickRate)
	case r.MaxDeltaTime <= 0:
		return fmt.Errorf("%w: max delta time %v", ErrInvalidRules, r.MaxDeltaTime)
	case r.PlayerHP <= 0:
		return fmt.Errorf("%w: player hp %d", ErrInvalidRules, r.PlayerHP)
	case r.PlayerWidth <= 0 || r.PlayerHeight <= 0 || r.PlayerWidth > r.FieldWidth:
		return fmt.Errorf("%w: player size %vx%v", ErrInvalidRules, r.PlayerWidth, r.PlayerHeight)
	case r.PlayerExplosionFrames <= 0 || r.TicksPerFrame <= 0:
		return fmt.Errorf("%w: explosion %d frames x %d ticks", ErrInvalidRules, r.PlayerExplosionFrames, r.TicksPerFrame)
	case r.ShieldPoints < 0 || r.ShieldRestoreKills < 0 || r.InvincibilityTicks < 0 || r.FireCooldownTicks < 0:
		return fmt.Errorf("%w: negative counter", ErrInvalidRules)
	case r.PlayerShotSpeed <= 0 || r.EnemyShotSpeed <= 0:
		return fmt.Errorf("%w: projectile speeds must be positive", ErrInvalidRules)
	case r.InitialCap <= 0 || r.CapStep < 0 || r.CapCeiling < r.InitialCap:
		return fmt.Errorf("%w: cap %d step %d ceiling %d", ErrInvalidRules, r.InitialCap, r.CapStep, r.CapCeiling)
	case r.IntervalFloorMs <= 0 || r.IntervalStepMs < 0 || r.InitialIntervalMs < r.IntervalFloorMs:
		return fmt.Errorf("%w: interval %v step %v floor %v", ErrInvalidRules, r.InitialIntervalMs, r.IntervalStepMs, r.IntervalFloorMs)
	}
	return nil
}

// TickScale переводит прошедшее время в долю тика.
func (r Rules) TickScale(deltaTime float64) float64 {
	return deltaTime * r.TickRate
}
