package parameter

// Agent Faces
const (
	PlayerFace = ":|"
	ChaserFace = ":>"
	NommerFace = ":O"
	RunnerFace = ":D"
)

// Step Resolver
const (
	// StepAltCount is how many ranked alternatives compete when the desired step is blocked
	StepAltCount = 2

	// StepAltBase weights alternatives as StepAltBase^preference
	StepAltBase = 4.0
)

// Chaser
const (
	// ChaserMaxMissWeight is the miss weight against a player who moves instantly
	ChaserMaxMissWeight = 4.0

	// ChaserEquivPoint is the avgPeriod*speed product at which missing and hitting are equally likely
	ChaserEquivPoint = 4.0
)

// Nommer
const (
	// NommerAvoidFraction is the share of targets nearest the players the nommer leaves alone
	NommerAvoidFraction = 3

	// NommerCorrupts enables tile corruption whenever the nommer eats
	NommerCorrupts = false
)

// Runner
const (
	// RunnerSafeDivisor: the runner is safe at Euclidean distance >= width/RunnerSafeDivisor
	RunnerSafeDivisor = 2.5

	// RunnerShadowDivisor sets the nommer-repulsion length while shadowing: width/RunnerShadowDivisor
	RunnerShadowDivisor = 9.0

	// RunnerJitter is the bound of the random offset added while shadowing
	RunnerJitter = 2

	// RunnerCornerDivisor sets the corner padding for the corner strategy: width/RunnerCornerDivisor
	RunnerCornerDivisor = 7

	// RunnerRepulsionPower shapes the push away from the closest player
	RunnerRepulsionPower = 0.3

	// RunnerSpeedup is the maximum frequency multiplier of the distance pace
	RunnerSpeedup = 2.90

	// RunnerUrgencyPower shrinks the high-urgency range as it grows
	RunnerUrgencyPower = 5.8

	// RunnerCatchRetainNum / RunnerCatchRetainDen of misses survive a catch
	RunnerCatchRetainNum = 3
	RunnerCatchRetainDen = 4
)

// Runner pace strategies
const (
	RunnerPaceDistance = "distance"
	RunnerPaceScore    = "score"
)
