package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot       SoundType = iota // Player fire
	SoundEnemyHit                    // Wave enemy destroyed
	SoundBossHit                     // Boss struck, not defeated
	SoundBossDefeat                  // Alternating fanfare
	SoundConfirm                     // Title and restart jingle
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundEnemyHit:
		return "enemy_hit"
	case SoundBossHit:
		return "boss_hit"
	case SoundBossDefeat:
		return "boss_defeat"
	case SoundConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}
