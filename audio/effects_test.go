package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tilechase/parameter"
)

// drain streams s to completion and returns the samples produced
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return nil
}

// TestOscillatorSine verifies sine output stays in range and ends on time
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	got := drain(t, osc, rate.N(time.Second))
	if len(got) != rate.N(100*time.Millisecond) {
		t.Errorf("expected %d samples, got %d", rate.N(100*time.Millisecond), len(got))
	}
	for i, s := range got {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d invalid: %v", i, s)
		}
	}
	if osc.Err() != nil {
		t.Errorf("expected no error, got %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave only produces ±1
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	got := drain(t, NewOscillator(220, 50*time.Millisecond, WaveSquare, rate), rate.N(time.Second))
	for i, s := range got {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("square sample %d should be ±1, got %f", i, s[0])
		}
	}
}

// TestGlideChangesPitch verifies a falling glide crosses zero less often late
func TestGlideChangesPitch(t *testing.T) {
	rate := beep.SampleRate(44100)
	got := drain(t, NewGlide(2000, 100, 200*time.Millisecond, WaveSine, rate), rate.N(time.Second))

	crossings := func(part [][2]float64) int {
		n := 0
		for i := 1; i < len(part); i++ {
			if (part[i-1][0] < 0) != (part[i][0] < 0) {
				n++
			}
		}
		return n
	}
	half := len(got) / 2
	early, late := crossings(got[:half]), crossings(got[half:])
	if early <= late {
		t.Errorf("expected more zero crossings early (%d) than late (%d)", early, late)
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near zero
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, time.Second, WaveSquare, rate) // constant +1
	env := NewEnvelope(src, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	got := drain(t, env, 5000)
	if len(got) != 1000 {
		t.Fatalf("expected 1000 samples, got %d", len(got))
	}
	if got[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", got[0][0])
	}
	if math.Abs(got[50][0]-0.5) > 1e-9 {
		t.Errorf("attack midpoint should be 0.5, got %f", got[50][0])
	}
	if got[500][0] != 1 {
		t.Errorf("sustain should be full, got %f", got[500][0])
	}
	if got[999][0] > 0.011 {
		t.Errorf("release should end near zero, got %f", got[999][0])
	}
}

// TestSoundEffectsFinite verifies every effect ends and stays bounded
func TestSoundEffectsFinite(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	for st := SoundType(0); st < soundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			s := GetSoundEffect(st, 3, cfg)
			if s == nil {
				t.Fatal("expected a streamer")
			}
			got := drain(t, s, rate.N(2*time.Second))
			if len(got) == 0 {
				t.Fatal("effect produced no samples")
			}
			for i, v := range got {
				if math.Abs(v[0]) > 1 {
					t.Fatalf("sample %d clips: %f", i, v[0])
				}
			}
		})
	}

	if GetSoundEffect(soundTypeCount, 0, cfg) != nil {
		t.Error("unknown sound type should have no effect")
	}
}

// TestEatSoundLength verifies the chime plays both notes
func TestEatSoundLength(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	want := rate.N(parameter.EatSoundNote1Duration) + rate.N(parameter.EatSoundNote2Duration)

	got := drain(t, CreateEatSound(cfg, 0), rate.N(2*time.Second))
	if len(got) != want {
		t.Errorf("expected %d samples, got %d", want, len(got))
	}
}

// TestVariantFreqAscends verifies move variants are distinct rising pitches
func TestVariantFreqAscends(t *testing.T) {
	prev := 0.0
	for v := 0; v < parameter.MoveSoundVariants; v++ {
		f := variantFreq(parameter.MoveSoundBaseFreq, v)
		if f <= prev {
			t.Errorf("variant %d freq %f not above %f", v, f, prev)
		}
		prev = f
	}
}

// TestSilentVolume verifies zero volume mutes instead of producing -Inf gain
func TestSilentVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	got := drain(t, newVolume(NewOscillator(440, 10*time.Millisecond, WaveSquare, rate), 0), rate.N(time.Second))
	for i, s := range got {
		if s[0] != 0 {
			t.Fatalf("sample %d should be silent, got %f", i, s[0])
		}
	}
}
