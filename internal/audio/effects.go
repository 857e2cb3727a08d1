// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator генерирует сырую волну с линейным сдвигом частоты от freq к freqEnd.
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates an oscillator with a frequency sweep. Noise is seeded,
// so the same effect always renders the same samples.
func NewOscillator(freq, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		freqEnd:  freqEnd,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope накладывает атаку и затухание на поток
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq, freqEnd float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, freqEnd, d, wave, rate), d, attack, release, rate)
}

// CreateShotSound — короткий писк выстрела игрока
func CreateShotSound(cfg *Config) beep.Streamer {
	rate := cfg.SampleRate
	s := tone(1400, 700, 70*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, WaveSquare, rate)
	return newVolume(s, cfg.EffectVolumes[SoundShot]*cfg.MasterVolume)
}

// CreateExplosionSound — шумовой хлопок; крупные тиры звучат ниже и дольше
func CreateExplosionSound(cfg *Config, score int) beep.Streamer {
	rate := cfg.SampleRate
	d := 250*time.Millisecond + time.Duration(score)*4*time.Millisecond
	noise := tone(0, 0, d, 3*time.Millisecond, d/2, WaveNoise, rate)
	rumble := tone(110, 40, d, 3*time.Millisecond, d/2, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.5))
	return newVolume(mixed, cfg.EffectVolumes[SoundExplosion]*cfg.MasterVolume)
}

// CreateHitSound — резкий гудок при попадании по игроку
func CreateHitSound(cfg *Config) beep.Streamer {
	rate := cfg.SampleRate
	s := tone(140, 90, 150*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, WaveSaw, rate)
	return newVolume(s, cfg.EffectVolumes[SoundHit]*cfg.MasterVolume)
}

// CreateShieldSound — мягкий звон, когда щит принял удар или восстановился
func CreateShieldSound(cfg *Config) beep.Streamer {
	rate := cfg.SampleRate
	fund := tone(660, 660, 180*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, WaveSine, rate)
	over := tone(1320, 1320, 180*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, WaveSine, rate)
	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, cfg.EffectVolumes[SoundShield]*cfg.MasterVolume)
}

// CreateWaveSound — две восходящие ноты на новую волну
func CreateWaveSound(cfg *Config) beep.Streamer {
	rate := cfg.SampleRate
	first := tone(523.25, 523.25, 110*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, WaveSine, rate)
	second := tone(783.99, 783.99, 180*time.Millisecond, 5*time.Millisecond, 90*time.Millisecond, WaveSine, rate)
	return newVolume(beep.Seq(first, second), cfg.EffectVolumes[SoundWave]*cfg.MasterVolume)
}

// CreateGameOverSound — нисходящая фраза из трёх нот
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := cfg.SampleRate
	notes := []float64{392, 311.13, 196}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		parts = append(parts, tone(f, f*0.97, 260*time.Millisecond, 10*time.Millisecond, 120*time.Millisecond, WaveSaw, rate))
	}
	return newVolume(beep.Seq(parts...), cfg.EffectVolumes[SoundGameOver]*cfg.MasterVolume)
}
