package audio

import "github.com/lixenwraith/tilechase/parameter"

// SoundType represents different sound effects
type SoundType int

const (
	SoundMove  SoundType = iota // Player step
	SoundEat                    // Target eaten by a player
	SoundSteal                  // Target eaten by the nommer
	SoundDeath                  // Player caught by the chaser
	SoundCatch                  // Runner cornered
	SoundPause                  // Pause and resume
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"move", "eat", "steal", "death", "catch", "pause"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// Config holds audio settings
type Config struct {
	Enabled    bool
	Volume     float64 // master, 0 to 1
	SampleRate int
}

// DefaultConfig returns enabled audio at the default volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.AudioDefaultVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}

// normalized clamps the volume and fills a missing sample rate
func (c Config) normalized() Config {
	c.Volume = min(max(c.Volume, 0), 1)
	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}
	return c
}
