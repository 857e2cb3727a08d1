// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-skyfire/internal/event"
)

// SoundManager plays synthesized effects in response to simulation events.
// It is an event.Listener: subscribe it to a dispatcher and replay each
// FrameState's events into that dispatcher.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      map[SoundType]int
}

func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		played: make(map[SoundType]int),
	}
}

// Initialize opens the speaker. Without an audio device it returns an error
// and the manager stays silent; the game runs on regardless.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.cfg.SampleRate, sm.cfg.SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Subscribe registers the manager for every event it voices.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm, event.PlayerFired, event.EnemyDestroyed, event.PlayerHit,
		event.ShieldRestored, event.WaveAdvanced, event.GameOver)
}

// OnEvent implements event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerFired:
		sm.Play(SoundShot, 0)
	case event.EnemyDestroyed:
		score := 0
		if data, ok := e.Data.(event.EnemyDestroyedData); ok {
			score = data.Score
		}
		sm.Play(SoundExplosion, score)
	case event.PlayerHit:
		data, _ := e.Data.(event.PlayerHitData)
		switch {
		case data.Lethal:
			sm.Play(SoundExplosion, 60)
		case data.Shielded:
			sm.Play(SoundShield, 0)
		default:
			sm.Play(SoundHit, 0)
		}
	case event.ShieldRestored:
		sm.Play(SoundShield, 0)
	case event.WaveAdvanced:
		sm.Play(SoundWave, 0)
	case event.GameOver:
		sm.Play(SoundGameOver, 0)
	}
}

// Play queues one effect. weight only matters for explosions.
func (sm *SoundManager) Play(sound SoundType, weight int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := sm.create(sound, weight)
	if s == nil {
		return
	}
	sm.played[sound]++
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how many times an effect was queued.
func (sm *SoundManager) Played(sound SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[sound]
}

func (sm *SoundManager) create(sound SoundType, weight int) beep.Streamer {
	switch sound {
	case SoundShot:
		return CreateShotSound(sm.cfg)
	case SoundExplosion:
		return CreateExplosionSound(sm.cfg, weight)
	case SoundHit:
		return CreateHitSound(sm.cfg)
	case SoundShield:
		return CreateShieldSound(sm.cfg)
	case SoundWave:
		return CreateWaveSound(sm.cfg)
	case SoundGameOver:
		return CreateGameOverSound(sm.cfg)
	}
	return nil
}
