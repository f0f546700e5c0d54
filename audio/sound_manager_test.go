package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tilechase/engine"
	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/vmath"
)

// TestLayerVolumes verifies the drone fades layers in one at a time
func TestLayerVolumes(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     []float64
	}{
		{"silent", 0, []float64{0, 0, 0, 0}},
		{"first half", 0.125, []float64{0.5, 0, 0, 0}},
		{"second layer", 0.375, []float64{1, 0.5, 0, 0}},
		{"top fading", 0.875, []float64{1, 1, 1, 0.5}},
		{"full", 1, []float64{1, 1, 1, 1}},
		{"beyond", 3, []float64{1, 1, 1, 1}},
		{"negative", -1, []float64{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayerVolumes(tt.progress, 4)
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("layer %d = %f, want %f (all %v)", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

// TestDronePauseIsSilent verifies a paused drone streams zeros forever
func TestDronePauseIsSilent(t *testing.T) {
	d := NewDrone(beep.SampleRate(8000))
	d.SetLevel(1)
	d.Pause()

	buf := make([][2]float64, 256)
	n, ok := d.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("drone should never end, got n=%d ok=%v", n, ok)
	}
	for i, s := range buf {
		if s[0] != 0 {
			t.Fatalf("sample %d should be silent, got %f", i, s[0])
		}
	}
}

// TestDroneFadesIn verifies gains ramp toward their target instead of jumping
func TestDroneFadesIn(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := NewDrone(rate)
	d.SetLevel(1)

	buf := make([][2]float64, rate.N(1e9)) // one second
	d.Stream(buf)

	if d.gains[0] != 1 {
		t.Errorf("bottom layer should reach full gain after a second, got %f", d.gains[0])
	}
	peak := 0.0
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 {
		t.Error("drone produced no sound")
	}
	if peak > parameter.DroneLayerVolume*parameter.DroneLayers {
		t.Errorf("peak %f above the stack cap", peak)
	}
}

// TestVariantDeckRotates verifies every variant keeps circulating and the
// one just played is never next
func TestVariantDeckRotates(t *testing.T) {
	d := newVariantDeck(5, vmath.NewSource(7))
	seen := map[int]int{}
	prev := -1
	for i := 0; i < 500; i++ {
		v := d.next()
		if v == prev {
			t.Fatalf("variant %d repeated at draw %d", v, i)
		}
		seen[v]++
		prev = v
		if len(d.order) != 5 {
			t.Fatalf("deck size changed to %d", len(d.order))
		}
	}
	for v := 0; v < 5; v++ {
		if seen[v] == 0 {
			t.Errorf("variant %d never played", v)
		}
	}
}

// TestSoundFor verifies the event to effect mapping
func TestSoundFor(t *testing.T) {
	tests := []struct {
		event engine.EventType
		want  SoundType
		ok    bool
	}{
		{engine.EventMove, SoundMove, true},
		{engine.EventBacktrack, SoundMove, true},
		{engine.EventTargetEaten, SoundEat, true},
		{engine.EventTargetStolen, SoundSteal, true},
		{engine.EventPlayerDied, SoundDeath, true},
		{engine.EventRunnerCaught, SoundCatch, true},
		{engine.EventPaused, SoundPause, true},
		{engine.EventAgentMove, 0, false},
		{engine.EventProgress, 0, false},
	}
	for _, tt := range tests {
		got, ok := SoundFor(engine.Event{Type: tt.event})
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("%s: got %s/%v, want %s/%v", tt.event, got, ok, tt.want, tt.ok)
		}
	}
}

// TestSoundManagerWithoutDevice verifies nothing panics or plays before Init
func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager(Config{Enabled: false}, nil)
	if err := sm.Init(); err != nil {
		t.Fatalf("disabled audio should init cleanly: %v", err)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if sm.Play(st) {
			t.Errorf("%s played without a device", st)
		}
	}
	sm.OnEvent(engine.Event{Type: engine.EventMove})
	sm.Close()
	if sm.Played() != 0 {
		t.Errorf("expected nothing played, got %d", sm.Played())
	}
}

// TestSoundManagerDroneFollowsGame verifies progress and pause events drive the drone
func TestSoundManagerDroneFollowsGame(t *testing.T) {
	sm := NewSoundManager(Config{Enabled: false}, nil)
	sm.SetFullBand(0.5)
	d := sm.Drone()

	if !d.Paused() {
		t.Error("drone should start paused")
	}
	sm.OnEvent(engine.Event{Type: engine.EventResumed})
	if d.Paused() {
		t.Error("resume should start the drone")
	}

	// progress 0.25 of a 0.5 band is half the stack: six full layers
	sm.OnEvent(engine.Event{Type: engine.EventProgress, Value: 0.25})
	for i := 0; i < parameter.DroneLayers; i++ {
		want := 0.0
		if i < parameter.DroneLayers/2 {
			want = 1
		}
		if d.Level(i) != want {
			t.Errorf("layer %d level %f, want %f", i, d.Level(i), want)
		}
	}

	sm.SetMuted(true)
	if !d.Paused() {
		t.Error("mute should pause the drone")
	}
	if sm.ToggleMute() != true || d.Paused() {
		t.Error("unmuting a running game should resume the drone")
	}

	sm.OnEvent(engine.Event{Type: engine.EventGameOver})
	if !d.Paused() {
		t.Error("game over should pause the drone")
	}
	sm.SetMuted(false)
	if !d.Paused() {
		t.Error("unmuting after game over should keep the drone paused")
	}

	sm.OnEvent(engine.Event{Type: engine.EventRestart})
	if d.Level(0) != 0 {
		t.Errorf("restart should silence the stack, got %f", d.Level(0))
	}
}

// TestConfigNormalized verifies volume clamping and sample rate defaults
func TestConfigNormalized(t *testing.T) {
	c := Config{Volume: 3}.normalized()
	if c.Volume != 1 || c.SampleRate != parameter.AudioSampleRate {
		t.Errorf("unexpected normalized config %+v", c)
	}
	if c := (Config{Volume: -1, SampleRate: 22050}).normalized(); c.Volume != 0 || c.SampleRate != 22050 {
		t.Errorf("unexpected normalized config %+v", c)
	}
}
