package engine

import "github.com/lixenwraith/tilechase/vmath"

// EventType identifies a game event
type EventType int

const (
	EventRestart EventType = iota
	EventMove
	EventBacktrack
	EventTargetEaten
	EventTargetStolen
	EventPlayerDied
	EventGameOver
	EventRunnerCaught
	EventPaused
	EventResumed
	EventProgress
	EventSpice
	EventAgentMove
)

var eventNames = [...]string{
	"restart", "move", "backtrack", "target_eaten", "target_stolen", "player_died",
	"game_over", "runner_caught", "paused", "resumed", "progress", "spice", "agent_move",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// NoPlayer marks events not caused by a player
const NoPlayer = -1

// Event is published synchronously after the state change it describes
// Value carries the event's number: progress for EventProgress, misses for
// EventRunnerCaught and EventSpice, score for EventTargetEaten
type Event struct {
	Type   EventType
	Player int
	Role   Role
	Pos    vmath.Pos
	Value  float64
}

// Listener receives game events on the goroutine that mutates the game
// Implementations must not call back into the game
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }
