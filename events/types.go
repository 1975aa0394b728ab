package events

import "time"

// EventType identifies a gameplay notification
type EventType int

const (
	// EventPlayerShot signals a fighter bullet left the muzzle
	// Trigger: fire intent past cooldown with a free bullet slot | Payload: *ShotPayload
	EventPlayerShot EventType = iota

	// EventEnemyHit signals a wave enemy destroyed by a fighter bullet
	// Payload: *HitPayload
	EventEnemyHit

	// EventBossHit signals a fighter bullet struck the boss without defeating it
	// Payload: *BossHitPayload
	EventBossHit

	// EventBossDefeated signals the defeating hit on the boss
	// Payload: *HitPayload
	EventBossDefeated

	// EventConfirm signals an accepted confirm on the title or game over screen
	// Payload: nil
	EventConfirm

	// EventGameOver signals the round ended
	// Payload: *GameOverPayload
	EventGameOver

	// EventPhaseChanged signals a phase transition
	// Payload: *PhaseChangedPayload
	EventPhaseChanged
)

// String returns the event name for logs
func (t EventType) String() string {
	switch t {
	case EventPlayerShot:
		return "PlayerShot"
	case EventEnemyHit:
		return "EnemyHit"
	case EventBossHit:
		return "BossHit"
	case EventBossDefeated:
		return "BossDefeated"
	case EventConfirm:
		return "Confirm"
	case EventGameOver:
		return "GameOver"
	case EventPhaseChanged:
		return "PhaseChanged"
	default:
		return "Unknown"
	}
}

// GameEvent is one queued notification
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Tick that produced the event
	Timestamp time.Time
}

// ShotPayload carries the muzzle position of a fighter shot
type ShotPayload struct {
	X, Y float64
}

// HitPayload carries the center of a destroyed target and the resulting score
type HitPayload struct {
	X, Y  float64
	Score int
}

// BossHitPayload carries the boss hit count after the impact
type BossHitPayload struct {
	Hits int
}

// GameOverReason names what ended a round
type GameOverReason string

const (
	ReasonEnemyContact  GameOverReason = "enemy_contact"
	ReasonBulletContact GameOverReason = "enemy_bullet"
	ReasonBossContact   GameOverReason = "boss_contact"
	ReasonBossDefeated  GameOverReason = "boss_defeated"
)

// GameOverPayload carries the final score and cause
type GameOverPayload struct {
	Score  int
	Reason GameOverReason
}

// PhaseChangedPayload carries phase names on both sides of a transition
type PhaseChangedPayload struct {
	From, To string
}
