package game

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/junie-fighter/events"
)

// EventLogger writes every routed event to the log at debug level
type EventLogger struct {
	logger zerolog.Logger
}

func NewEventLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{logger: logger.With().Str("component", "events").Logger()}
}

func (l *EventLogger) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPlayerShot,
		events.EventEnemyHit,
		events.EventBossHit,
		events.EventBossDefeated,
		events.EventConfirm,
		events.EventGameOver,
		events.EventPhaseChanged,
	}
}

func (l *EventLogger) HandleEvent(ev events.GameEvent) {
	e := l.logger.Debug().Str("type", ev.Type.String()).Int64("frame", ev.Frame)
	switch p := ev.Payload.(type) {
	case *events.HitPayload:
		e = e.Int("score", p.Score)
	case *events.BossHitPayload:
		e = e.Int("hits", p.Hits)
	case *events.GameOverPayload:
		e = e.Int("score", p.Score).Str("reason", string(p.Reason))
	case *events.PhaseChangedPayload:
		e = e.Str("from", p.From).Str("to", p.To)
	}
	e.Msg("event")
}
