// Package input turns terminal key events into game commands
package input

// Kind discriminates commands
type Kind uint8

const (
	None Kind = iota

	// System
	Quit
	Pause   // Enter
	Restart // Shift+Enter, Ctrl+R
	Spice   // Ctrl+S
	Mute    // Ctrl+N
	Stats   // Tab

	// Player
	Type      // printable rune
	Backtrack // Space
)

var kindNames = [...]string{"none", "quit", "pause", "restart", "spice", "mute", "stats", "type", "backtrack"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Command is one translated keystroke
// Player and Key are only set for Type and Backtrack
type Command struct {
	Kind   Kind
	Player int
	Key    string
}

// IsPlayer reports whether the command moves a player
func (c Command) IsPlayer() bool {
	return c.Kind == Type || c.Kind == Backtrack
}
