package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream of fixed length
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
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator note
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateShotSound generates a short high blip for player fire
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(1320, WaveSquare, constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)
	return newVolume(s, cfg.volumeFor(SoundShot))
}

// hitSound mixes a noise burst with a low body tone
func hitSound(body float64, rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newVolume(tone(0, WaveNoise, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate), 0.6),
		newVolume(tone(body, WaveSaw, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate), 0.4),
	)
}

// CreateEnemyHitSound generates the enemy destruction crunch
func CreateEnemyHitSound(cfg *AudioConfig) beep.Streamer {
	return newVolume(hitSound(110, beep.SampleRate(cfg.SampleRate)), cfg.volumeFor(SoundEnemyHit))
}

// CreateBossHitSound generates a metallic ping for a non-defeating boss hit
func CreateBossHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(660, WaveSaw, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)
	return newVolume(s, cfg.volumeFor(SoundBossHit))
}

// CreateBossDefeatSound alternates a low and a high hit, one every BossDefeatStep
func CreateBossDefeatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	gap := rate.N(constants.BossDefeatStep) - rate.N(constants.HitSoundDuration)

	parts := make([]beep.Streamer, 0, 4*constants.BossDefeatRepeats)
	for i := 0; i < constants.BossDefeatRepeats; i++ {
		parts = append(parts,
			hitSound(90, rate), generators.Silence(gap),
			hitSound(180, rate), generators.Silence(gap),
		)
	}
	return newVolume(beep.Seq(parts...), cfg.volumeFor(SoundBossDefeat))
}

// CreateConfirmSound generates a rising two-note jingle (E5, A5)
func CreateConfirmSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	first := tone(659.25, WaveSine, constants.ConfirmNoteDuration, constants.ConfirmNoteAttack, constants.ConfirmNoteRelease, rate)
	var second beep.Streamer
	if sine, err := generators.SineTone(rate, 880); err == nil {
		n := rate.N(constants.ConfirmNoteDuration)
		second = NewEnvelope(beep.Take(n, sine), constants.ConfirmNoteDuration, constants.ConfirmNoteAttack, constants.ConfirmNoteRelease, rate)
	} else {
		second = tone(880, WaveSine, constants.ConfirmNoteDuration, constants.ConfirmNoteAttack, constants.ConfirmNoteRelease, rate)
	}

	return newVolume(beep.Seq(first, second), cfg.volumeFor(SoundConfirm))
}

// GetSoundEffect builds a fresh streamer for a sound type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundEnemyHit:
		return CreateEnemyHitSound(cfg)
	case SoundBossHit:
		return CreateBossHitSound(cfg)
	case SoundBossDefeat:
		return CreateBossDefeatSound(cfg)
	case SoundConfirm:
		return CreateConfirmSound(cfg)
	default:
		return nil
	}
}
