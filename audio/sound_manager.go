// Package audio synthesizes game sound cues on the speaker
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/events"
)

// SoundManager owns the speaker and mixes cues triggered by game events
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	logger      zerolog.Logger
	played      [soundTypeCount]int
}

// NewSoundManager creates an uninitialized manager; nil cfg takes defaults
func NewSoundManager(cfg *AudioConfig, logger zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker; disabled config leaves the manager silent without error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug().Int("sample_rate", sm.cfg.SampleRate).Msg("speaker ready")
	return nil
}

// Cleanup silences the mixer and closes the speaker
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

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play mixes in a fresh instance of the sound
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[s]++
}

// ToggleMute flips muting and returns the new state
// Sounds already in the mixer finish playing
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// PlayedCount returns how many times a sound reached the mixer
func (sm *SoundManager) PlayedCount(s SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[s]
}

// CueFor maps a game event to its sound
func CueFor(t events.EventType) (SoundType, bool) {
	switch t {
	case events.EventPlayerShot:
		return SoundShot, true
	case events.EventEnemyHit:
		return SoundEnemyHit, true
	case events.EventBossHit:
		return SoundBossHit, true
	case events.EventBossDefeated:
		return SoundBossDefeat, true
	case events.EventConfirm:
		return SoundConfirm, true
	default:
		return 0, false
	}
}

// EventTypes implements events.Handler
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPlayerShot,
		events.EventEnemyHit,
		events.EventBossHit,
		events.EventBossDefeated,
		events.EventConfirm,
	}
}

// HandleEvent implements events.Handler
func (sm *SoundManager) HandleEvent(ev events.GameEvent) {
	if s, ok := CueFor(ev.Type); ok {
		sm.Play(s)
	}
}
