package parameter

import "time"

// Board Size
const (
	// DefaultWidth is the board side length in tiles
	DefaultWidth = 21

	// MinWidth and MaxWidth bound any configured width
	MinWidth = 10
	MaxWidth = 30

	// DefaultPlayers is the number of players spawned on restart
	DefaultPlayers = 1

	// MaxPlayers is the number of players the keyboard routing can tell apart
	MaxPlayers = 2
)

// Targets
const (
	// TargetThinness is board tiles per target: NumTargets = ceil(width²/TargetThinness)
	TargetThinness = 72

	// TargetCentreRadius is the spread of the centre bias, relative to width
	TargetCentreRadius = 0.8

	// TargetCentreWeight scales the centre bias against the occupant biases
	TargetCentreWeight = 5.0 / 3.0

	// TargetOccupantRadius is the spread of the player and nommer attraction
	TargetOccupantRadius = 1.0 / 3.0
)

// DefaultNumTargets is the target count on a default-width board; it scales
// the speed curve so every width shares the same pacing
const DefaultNumTargets = float64(DefaultWidth*DefaultWidth) / TargetThinness

// Shuffle Engine
const (
	// ShuffleRadius is the Chebyshev radius inside which no two labels may overlap
	ShuffleRadius = 2

	// ShuffleBase is the bias toward under-represented labels: weight = base^(lowest-count)
	ShuffleBase = 4.0
)

// Trail
const (
	// TrailExponent shapes how slowly the trail grows with net score
	TrailExponent = 3.0 / 7.0

	// TrailMissPenalty is the net-score cost of one miss
	TrailMissPenalty = 0.9
)

// Scoring
const (
	// HeatDivisor slows nommer acceleration: speed = base*(heat/HeatDivisor + 1)
	HeatDivisor = 5.0

	// SpiceMisses is added to the miss counter by the spice command
	SpiceMisses = 25
)

// Timing
const (
	// AgentResumeDelay is the fixed delay before every agent moves after a resume
	AgentResumeDelay = 1 * time.Second

	// MinTaskDelay is the shortest delay the scheduler honours
	MinTaskDelay = 1 * time.Millisecond

	// MovePeriodWindow is how many past move periods feed AvgPeriod
	MovePeriodWindow = 5

	// InputBufferMax bounds the pending keystroke buffer
	InputBufferMax = 16
)

// Spawn Layout
const (
	// AgentCornerDivisor sets the corner padding for agent spawns: width/AgentCornerDivisor
	AgentCornerDivisor = 10
)
