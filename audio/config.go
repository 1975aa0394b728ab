package audio

import "github.com/lixenwraith/junie-fighter/constants"

// AudioConfig holds output and mix settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64 // Linear gain, 0..1
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the default mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundShot:       0.4,
			SoundEnemyHit:   0.7,
			SoundBossHit:    0.6,
			SoundBossDefeat: 0.8,
			SoundConfirm:    0.6,
		},
	}
}

// volumeFor returns the effective linear gain for a sound
func (c *AudioConfig) volumeFor(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return clamp01(v * c.MasterVolume)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
