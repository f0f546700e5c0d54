package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilechase/engine"
)

// EventLogger writes game events to a logger. Agent steps and progress
// updates are frequent, so they only appear at trace level
type EventLogger struct {
	log *logrus.Logger
}

// NewEventLogger logs to l, or to Log when l is nil
func NewEventLogger(l *logrus.Logger) *EventLogger {
	if l == nil {
		l = Log
	}
	return &EventLogger{log: l}
}

func (el *EventLogger) OnEvent(e engine.Event) {
	fields := logrus.Fields{
		"event": e.Type.String(),
		"x":     e.Pos.X,
		"y":     e.Pos.Y,
	}
	if e.Player != engine.NoPlayer {
		fields["player"] = e.Player + 1
	}

	entry := el.log.WithFields(fields)
	switch e.Type {
	case engine.EventAgentMove:
		entry.WithField("role", e.Role.String()).Trace("agent moved")
	case engine.EventProgress:
		entry.WithField("progress", e.Value).Trace("speed progress")
	case engine.EventMove, engine.EventBacktrack:
		entry.Debug("player moved")
	case engine.EventTargetEaten:
		entry.WithField("score", int(e.Value)).Info("target eaten")
	case engine.EventTargetStolen:
		entry.WithField("misses", int(e.Value)).Info("target stolen")
	case engine.EventRunnerCaught:
		entry.WithField("misses", int(e.Value)).Info("runner caught")
	case engine.EventPlayerDied:
		entry.WithField("role", e.Role.String()).Info("player died")
	case engine.EventGameOver:
		entry.WithField("best", int(e.Value)).Info("game over")
	case engine.EventSpice:
		entry.WithField("misses", int(e.Value)).Info("spice")
	default:
		entry.Debug(e.Type.String())
	}
}
