package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate (Hz)
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Shot Sound Timing
const (
	ShotSoundDuration = 60 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond
)

// Hit Sound Timing
const (
	HitSoundDuration = 150 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 120 * time.Millisecond
)

// Boss Defeat Fanfare
const (
	// BossDefeatRepeats is the number of low/high pairs
	BossDefeatRepeats = 3

	// BossDefeatStep is the start-to-start spacing of fanfare tones
	BossDefeatStep = 200 * time.Millisecond
)

// Confirm Jingle Timing
const (
	ConfirmNoteDuration = 120 * time.Millisecond
	ConfirmNoteAttack   = 5 * time.Millisecond
	ConfirmNoteRelease  = 80 * time.Millisecond
)
