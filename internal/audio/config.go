// internal/audio/config.go
package audio

import "github.com/gopxl/beep"

// SoundType identifies one synthesized effect
type SoundType int

const (
	SoundShot SoundType = iota
	SoundExplosion
	SoundHit
	SoundShield
	SoundWave
	SoundGameOver
)

func (s SoundType) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundExplosion:
		return "explosion"
	case SoundHit:
		return "hit"
	case SoundShield:
		return "shield"
	case SoundWave:
		return "wave"
	case SoundGameOver:
		return "game_over"
	}
	return "unknown"
}

// Config holds audio settings
type Config struct {
	SampleRate    beep.SampleRate
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns the stock mix
func DefaultConfig() *Config {
	return &Config{
		SampleRate:   beep.SampleRate(44100),
		MasterVolume: 0.6,
		EffectVolumes: map[SoundType]float64{
			SoundShot:      0.25,
			SoundExplosion: 0.8,
			SoundHit:       0.7,
			SoundShield:    0.5,
			SoundWave:      0.6,
			SoundGameOver:  0.8,
		},
	}
}
