package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("expected t2 after t1, got t1=%v t2=%v", t1, t2)
	}
	if d := t2.Sub(t1); d < 5*time.Millisecond {
		t.Errorf("expected at least 5ms between readings, got %v", d)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("initial time = %v, want %v", now, start)
	}

	jump := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(jump)
	if now := mock.Now(); !now.Equal(jump) {
		t.Errorf("after SetTime = %v, want %v", now, jump)
	}

	steps := []time.Duration{time.Hour, 30 * time.Minute, 15 * time.Minute}
	want := jump
	for _, d := range steps {
		want = want.Add(d)
		if got := mock.Advance(d); !got.Equal(want) {
			t.Errorf("Advance(%v) = %v, want %v", d, got, want)
		}
	}
	if now := mock.Now(); !now.Equal(want) {
		t.Errorf("after advances = %v, want %v", now, want)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	want := start.Add(1000 * time.Millisecond)
	if now := mock.Now(); !now.Equal(want) {
		t.Errorf("after concurrent advances = %v, want %v", now, want)
	}
}
