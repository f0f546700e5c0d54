package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, gliding linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator whose pitch slides from freq to endFreq
func NewGlide(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + (o.endFreq-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s in a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// variantFreq is the pitch of a move variant, one step per variant
func variantFreq(base float64, variant int) float64 {
	return base * math.Pow(parameter.MoveSoundFreqStep, float64(variant))
}

// CreateMoveSound generates a short tick; variants step up in pitch
func CreateMoveSound(cfg Config, variant int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := variantFreq(parameter.MoveSoundBaseFreq, variant)

	osc := NewOscillator(freq, parameter.MoveSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.MoveSoundDuration, parameter.MoveSoundAttack, parameter.MoveSoundRelease, rate)
	return newVolume(shaped, 0.25*cfg.Volume)
}

// CreateEatSound generates a rising two-note chime; variants shift the pair
func CreateEatSound(cfg Config, variant int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	root := variantFreq(987.77, variant) // B5 upward

	n1 := NewOscillator(root, parameter.EatSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.EatSoundNote1Duration, parameter.EatSoundAttack, parameter.EatSoundNote1Release, rate)

	n2 := NewOscillator(root*4/3, parameter.EatSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.EatSoundNote2Duration, parameter.EatSoundAttack, parameter.EatSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), parameter.EatSoundVolume*cfg.Volume)
}

// CreateStealSound generates a low falling blip
func CreateStealSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewGlide(220, 110, parameter.StealSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.StealSoundDuration, parameter.StealSoundAttack, parameter.StealSoundRelease, rate)
	return newVolume(shaped, 0.3*cfg.Volume)
}

// CreateDeathSound generates a long falling saw
func CreateDeathSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewGlide(440, 55, parameter.DeathSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.DeathSoundDuration, parameter.DeathSoundAttack, parameter.DeathSoundRelease, rate)
	return newVolume(shaped, 0.4*cfg.Volume)
}

// CreateCatchSound generates a bell: fundamental plus a faster-fading octave
func CreateCatchSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(880.0, parameter.CatchSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.CatchSoundDuration, parameter.CatchSoundAttack, parameter.CatchSoundFundamentalRelease, rate)

	over := NewOscillator(1760.0, parameter.CatchSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.CatchSoundDuration, parameter.CatchSoundAttack, parameter.CatchSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.Volume)
}

// CreatePauseSound generates a soft noise swell
func CreatePauseSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.PauseSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.PauseSoundDuration, parameter.PauseSoundAttack, parameter.PauseSoundRelease, rate)
	return newVolume(shaped, 0.15*cfg.Volume)
}

// GetSoundEffect returns the streamer for st; variant only matters for
// move and eat
func GetSoundEffect(st SoundType, variant int, cfg Config) beep.Streamer {
	switch st {
	case SoundMove:
		return CreateMoveSound(cfg, variant)
	case SoundEat:
		return CreateEatSound(cfg, variant)
	case SoundSteal:
		return CreateStealSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	case SoundCatch:
		return CreateCatchSound(cfg)
	case SoundPause:
		return CreatePauseSound(cfg)
	default:
		return nil
	}
}
