package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tilechase/engine"
	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/vmath"
)

// SoundManager plays effects for game events over the background drone
// It implements engine.Listener; every method is safe without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	drone       *Drone
	moves       *variantDeck
	eats        *variantDeck
	fullBand    float64
	initialized bool
	muted       atomic.Bool
	running     atomic.Bool
	played      atomic.Int64
}

// NewSoundManager creates a sound manager; nothing plays until Init succeeds
func NewSoundManager(cfg Config, rng vmath.Source) *SoundManager {
	cfg = cfg.normalized()
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	sm := &SoundManager{
		cfg:      cfg,
		mixer:    &beep.Mixer{},
		drone:    NewDrone(beep.SampleRate(cfg.SampleRate)),
		moves:    newVariantDeck(parameter.MoveSoundVariants, rng),
		eats:     newVariantDeck(parameter.EatSoundVariants, rng),
		fullBand: parameter.SpeedProfiles[parameter.DefaultSpeedProfile].FullBand,
	}
	sm.drone.Pause()
	return sm
}

// Init opens the speaker. Disabled audio is not an error
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	sm.mixer.Add(newVolume(sm.drone, sm.cfg.Volume))
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops all sound and releases the device
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues an effect; returns false when nothing will be heard
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.muted.Load() {
		return false
	}

	variant := 0
	switch st {
	case SoundMove:
		variant = sm.moves.next()
	case SoundEat:
		variant = sm.eats.next()
	}
	s := GetSoundEffect(st, variant, sm.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played.Add(1)
	return true
}

// SetMuted silences effects and the drone
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	if muted {
		sm.drone.Pause()
	} else if sm.running.Load() {
		sm.drone.Resume()
	}
}

// ToggleMute flips the mute state and returns true when sound is now on
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return !muted
}

func (sm *SoundManager) Muted() bool { return sm.muted.Load() }

// Played is the number of effects handed to the speaker
func (sm *SoundManager) Played() int64 { return sm.played.Load() }

// Drone exposes the background layers
func (sm *SoundManager) Drone() *Drone { return sm.drone }

// SetFullBand sets the progress at which every drone layer plays
func (sm *SoundManager) SetFullBand(fullBand float64) {
	if fullBand > 0 {
		sm.fullBand = fullBand
	}
}

// SoundFor returns the effect an event should trigger
func SoundFor(e engine.Event) (SoundType, bool) {
	switch e.Type {
	case engine.EventMove, engine.EventBacktrack:
		return SoundMove, true
	case engine.EventTargetEaten:
		return SoundEat, true
	case engine.EventTargetStolen:
		return SoundSteal, true
	case engine.EventPlayerDied:
		return SoundDeath, true
	case engine.EventRunnerCaught:
		return SoundCatch, true
	case engine.EventPaused, engine.EventResumed:
		return SoundPause, true
	}
	return 0, false
}

// OnEvent plays the event's effect and keeps the drone in step with the game
func (sm *SoundManager) OnEvent(e engine.Event) {
	switch e.Type {
	case engine.EventRestart:
		sm.drone.SetLevel(0)
	case engine.EventProgress:
		sm.drone.SetLevel(e.Value / sm.fullBand)
	case engine.EventResumed:
		sm.running.Store(true)
		if !sm.muted.Load() {
			sm.drone.Resume()
		}
	case engine.EventPaused, engine.EventGameOver:
		sm.running.Store(false)
		sm.drone.Pause()
	}

	if st, ok := SoundFor(e); ok {
		sm.Play(st)
	}
}
