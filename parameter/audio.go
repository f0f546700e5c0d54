package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer and so the output latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is the master volume, 0 to 1
	AudioDefaultVolume = 0.8
)

// Sound Variants
const (
	// MoveSoundVariants are pitch-shifted ticks rotated so repeats sound less mechanical
	MoveSoundVariants = 9
	MoveSoundBaseFreq = 520.0
	MoveSoundFreqStep = 1.06 // about one semitone

	EatSoundVariants = 5
	EatSoundVolume   = 0.3
)

// Move Sound
const (
	MoveSoundDuration = 45 * time.Millisecond
	MoveSoundAttack   = 3 * time.Millisecond
	MoveSoundRelease  = 30 * time.Millisecond
)

// Eat Sound
const (
	EatSoundNote1Duration = 70 * time.Millisecond
	EatSoundNote2Duration = 220 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundNote1Release  = 35 * time.Millisecond
	EatSoundNote2Release  = 160 * time.Millisecond
)

// Steal Sound
const (
	StealSoundDuration = 180 * time.Millisecond
	StealSoundAttack   = 5 * time.Millisecond
	StealSoundRelease  = 120 * time.Millisecond
)

// Death Sound
const (
	DeathSoundDuration = 700 * time.Millisecond
	DeathSoundAttack   = 10 * time.Millisecond
	DeathSoundRelease  = 500 * time.Millisecond
)

// Catch Sound
const (
	CatchSoundDuration           = 600 * time.Millisecond
	CatchSoundAttack             = 5 * time.Millisecond
	CatchSoundFundamentalRelease = 550 * time.Millisecond
	CatchSoundOvertoneRelease    = 200 * time.Millisecond
)

// Pause Sound
const (
	PauseSoundDuration = 300 * time.Millisecond
	PauseSoundAttack   = 150 * time.Millisecond
	PauseSoundRelease  = 150 * time.Millisecond
)

// Background Drone
const (
	// DroneLayers stack from a low root upward; progress unmutes them one by one
	DroneLayers = 12

	// DroneLayerVolume caps each layer so a full stack stays below clipping
	DroneLayerVolume = 0.6 / DroneLayers

	DroneRootFreq = 55.0
)

// DroneIntervals are the semitone offsets of each layer above the root
var DroneIntervals = [DroneLayers]int{0, 7, 12, 19, 24, 28, 31, 36, 40, 43, 48, 52}
