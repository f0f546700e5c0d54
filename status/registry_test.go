package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricMapCachesPointers(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("speed")
	a.Set(1.5)

	b := m.Get("speed")
	require.Same(t, a, b)
	assert.Equal(t, 1.5, b.Get())
	assert.True(t, m.Has("speed"))
	assert.False(t, m.Has("heat"))
}

func TestMetricMapRangeSorted(t *testing.T) {
	r := NewRegistry()
	for _, k := range []string{"game.misses", "game.heat", "agent.chaser.moves", "game.live"} {
		r.Ints.Get(k).Add(1)
	}

	var keys []string
	r.Ints.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	assert.Equal(t, []string{"agent.chaser.moves", "game.heat", "game.live", "game.misses"}, keys)
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get("game.language").Store("jpn_h")
	r.Ints.Get("game.misses").Store(26)
	r.Floats.Get("game.progress").Set(0.25)

	assert.Equal(t, []Metric{
		{"game.language", "jpn_h"},
		{"game.misses", "26"},
		{"game.progress", "0.25"},
	}, r.Snapshot())
	assert.Equal(t, 3, r.TotalCount())
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4000.0, f.Get())
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())
	s.Store("a-language-name-longer-than-the-overlay-column")
	assert.Len(t, s.Load(), MaxStringLen)
}
