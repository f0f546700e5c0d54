package parameter

import "time"

// Layout & Margins
const (
	// CellWidth is the number of terminal columns per tile: two, so wide kana fit
	CellWidth = 2

	// TopMargin for the status bar
	TopMargin = 1

	// BottomMargin for the help line
	BottomMargin = 1
)

// Spotlight
const (
	// SpotlightRadius is the Euclidean tile distance at which labels fade out
	SpotlightRadius = 9.0

	// SpotlightPower shapes the falloff: ((radius - dist) / radius)^power
	SpotlightPower = 0.7

	// SpotlightFloor keeps far labels faintly readable
	SpotlightFloor = 0.12
)

// Frame Timing
const (
	// FrameInterval paces redraws between game events
	FrameInterval = 50 * time.Millisecond

	// EventQueueSize buffers terminal events between poller and game loop
	EventQueueSize = 64
)

// Prompts are drawn one word per row across the board centre
var (
	PromptStart    = []string{"PRESS", "SHIFT", "ENTER", "--2--", "START"}
	PromptGameOver = []string{"*****", "GAME*", "*</3*", "*OVER", "*****"}
)

// Status Bar
const (
	PausedText    = " PAUSED "
	MutedText     = "muted"
	AudioStr      = "♫ "
	ProgressWidth = 12
	HelpText      = "type a neighbour's label · space back · enter pause · shift-enter restart · ^S spice · ^N mute · tab stats · esc quit"
)
