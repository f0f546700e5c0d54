package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/status"
)

// LayerVolumes maps progress in [0, 1) onto per-layer volumes: layers below
// the current level play fully, the top one fades with the fractional part,
// and the rest are silent
func LayerVolumes(progress float64, layers int) []float64 {
	out := make([]float64, layers)
	if layers == 0 {
		return out
	}
	level := max(progress, 0) * float64(layers)
	floor := int(math.Floor(level))
	if level >= float64(layers) {
		floor = layers - 1
		level = float64(layers)
	}
	for i := 0; i < floor; i++ {
		out[i] = 1
	}
	out[floor] = min(level-float64(floor), 1)
	return out
}

// Drone is the layered background tone that thickens as the game speeds up
// Gains are written by the game loop and read by the speaker goroutine
type Drone struct {
	rate   beep.SampleRate
	freqs  []float64
	phases []float64
	gains  []float64 // current, smoothed toward targets; speaker goroutine only
	target []*status.AtomicFloat
	paused atomic.Bool
	step   float64
}

// NewDrone builds the layer stack at the given sample rate
func NewDrone(rate beep.SampleRate) *Drone {
	d := &Drone{
		rate:   rate,
		freqs:  make([]float64, parameter.DroneLayers),
		phases: make([]float64, parameter.DroneLayers),
		gains:  make([]float64, parameter.DroneLayers),
		target: make([]*status.AtomicFloat, parameter.DroneLayers),
		// a full fade takes a quarter second
		step: 4 / float64(rate),
	}
	for i, semis := range parameter.DroneIntervals {
		d.freqs[i] = parameter.DroneRootFreq * math.Pow(2, float64(semis)/12)
		d.target[i] = &status.AtomicFloat{}
	}
	return d
}

// SetLevel retargets every layer for progress, already divided by the
// profile's full band
func (d *Drone) SetLevel(progress float64) {
	for i, v := range LayerVolumes(progress, len(d.target)) {
		d.target[i].Set(v)
	}
}

// Level returns the target volume of layer i
func (d *Drone) Level(i int) float64 { return d.target[i].Get() }

func (d *Drone) Pause()       { d.paused.Store(true) }
func (d *Drone) Resume()      { d.paused.Store(false) }
func (d *Drone) Paused() bool { return d.paused.Load() }

// Stream never ends; a paused drone emits silence and holds its phase
func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	if d.paused.Load() {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}

	targets := make([]float64, len(d.target))
	for i, t := range d.target {
		targets[i] = t.Get()
	}

	for i := range samples {
		val := 0.0
		for l := range d.freqs {
			g := d.gains[l]
			switch {
			case g < targets[l]:
				g = min(g+d.step, targets[l])
			case g > targets[l]:
				g = max(g-d.step, targets[l])
			}
			d.gains[l] = g
			if g > 0 {
				val += g * math.Sin(2*math.Pi*d.phases[l])
			}
			d.phases[l] += d.freqs[l] / float64(d.rate)
			d.phases[l] -= math.Floor(d.phases[l])
		}
		val *= parameter.DroneLayerVolume
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }
