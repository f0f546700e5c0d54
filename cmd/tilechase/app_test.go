package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilechase/config"
	"github.com/lixenwraith/tilechase/engine"
	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/records"
	"github.com/lixenwraith/tilechase/status"
	"github.com/lixenwraith/tilechase/vmath"
)

var epoch = time.Unix(1_700_000_000, 0)

type testApp struct {
	*app
	sim   tcell.SimulationScreen
	clock *engine.MockTimeProvider
}

func newTestApp(t *testing.T, store *records.Store) testApp {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(80, 30)
	t.Cleanup(sim.Fini)

	cfg := config.Defaults()
	opts, err := cfg.GameOptions()
	require.NoError(t, err)
	clock := engine.NewMockTimeProvider(epoch)
	stats := status.NewRegistry()
	opts.Rand = vmath.NewSource(11)
	opts.Clock = clock
	opts.Stats = stats
	g, err := engine.New(opts)
	require.NoError(t, err)

	return testApp{app: newApp(cfg, g, clock, sim, nil, store, stats), sim: sim, clock: clock}
}

func openStore(t *testing.T) *records.Store {
	t.Helper()
	s, err := records.Open(context.Background(), filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func key(k tcell.Key, mod tcell.ModMask) *tcell.EventKey { return tcell.NewEventKey(k, 0, mod) }
func runeKey(r rune) *tcell.EventKey                      { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestRestartAndQuitKeys(t *testing.T) {
	a := newTestApp(t, nil)
	assert.False(t, a.game.Started())

	assert.False(t, a.handleEvent(key(tcell.KeyEnter, tcell.ModShift)))
	assert.True(t, a.game.Started())
	assert.False(t, a.game.Paused())

	assert.False(t, a.handleEvent(key(tcell.KeyEnter, tcell.ModNone)))
	assert.True(t, a.game.Paused())

	assert.True(t, a.handleEvent(key(tcell.KeyEscape, tcell.ModNone)))
}

func TestStatsToggle(t *testing.T) {
	a := newTestApp(t, nil)
	a.handleEvent(key(tcell.KeyCtrlR, tcell.ModCtrl))
	a.handleEvent(key(tcell.KeyTab, tcell.ModNone))
	assert.True(t, a.showStats)
	a.draw()

	cells, w, _ := a.sim.GetContents()
	row := make([]rune, w)
	for x := 0; x < w; x++ {
		row[x] = ' '
		if rs := cells[w+x].Runes; len(rs) > 0 {
			row[x] = rs[0]
		}
	}
	assert.Contains(t, string(row), "game.language")

	a.handleEvent(key(tcell.KeyTab, tcell.ModNone))
	assert.False(t, a.showStats)
}

func TestTypingMovesPlayer(t *testing.T) {
	a := newTestApp(t, nil)
	a.handleEvent(key(tcell.KeyCtrlR, tcell.ModCtrl))

	p := a.game.Players()[0]
	start := p.Pos
	var dest vmath.Pos
	var seq string
	for _, c := range a.game.Grid().Adjacent(start, 1) {
		if c.Labelled() && c.Pos != start {
			dest, seq = c.Pos, c.Seq
			break
		}
	}
	require.NotEmpty(t, seq)

	for _, r := range seq {
		a.handleEvent(runeKey(r))
	}
	assert.Equal(t, dest, p.Pos)
	assert.Equal(t, start, p.PrevPos)
}

func TestSpiceKey(t *testing.T) {
	a := newTestApp(t, nil)
	a.handleEvent(key(tcell.KeyCtrlR, tcell.ModCtrl))
	a.handleEvent(key(tcell.KeyCtrlS, tcell.ModCtrl))
	assert.Equal(t, parameter.SpiceMisses, a.game.Misses())
}

func TestUntilDeadline(t *testing.T) {
	a := newTestApp(t, nil)
	assert.Equal(t, time.Hour, a.untilDeadline())

	a.restart()
	assert.Equal(t, parameter.AgentResumeDelay, a.untilDeadline())

	a.clock.Advance(2 * parameter.AgentResumeDelay)
	assert.Equal(t, time.Duration(0), a.untilDeadline())
}

func TestGameOverSavesRecordOnce(t *testing.T) {
	store := openStore(t)
	a := newTestApp(t, store)
	ctx := context.Background()

	a.restart()
	a.clock.Advance(90 * time.Second)
	a.OnEvent(engine.Event{Type: engine.EventTargetEaten, Player: 0})
	a.OnEvent(engine.Event{Type: engine.EventTargetEaten, Player: 0})

	a.saveFinished(ctx)
	recent, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent, "nothing is saved before game over")

	a.OnEvent(engine.Event{Type: engine.EventGameOver, Player: engine.NoPlayer})
	a.saveFinished(ctx)
	a.saveFinished(ctx)

	recent, err = store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	r := recent[0]
	assert.Equal(t, 90*time.Second, r.Duration)
	assert.Equal(t, 2, r.TargetsEaten)
	assert.Equal(t, parameter.DefaultWidth, r.Width)
	assert.Equal(t, "eng", r.Language)
	assert.Equal(t, parameter.DefaultSpeedProfile, r.Profile)
	assert.Equal(t, 1, r.Players)
	assert.True(t, r.Started.Equal(epoch))

	a.restart()
	assert.False(t, a.over)
	assert.Zero(t, a.eaten)
}

func TestLoadBest(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	_, err := store.Save(ctx, records.Record{
		Started: epoch, Width: parameter.DefaultWidth, Profile: parameter.DefaultSpeedProfile, BestScore: 9,
	})
	require.NoError(t, err)

	a := newTestApp(t, store)
	a.loadBest(ctx)
	assert.Equal(t, 9, a.best)
}

func TestRunQuitsOnEscape(t *testing.T) {
	a := newTestApp(t, nil)
	a.sim.InjectKey(tcell.KeyCtrlR, 0, tcell.ModCtrl)
	a.sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- a.run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after escape")
	}
	assert.True(t, a.game.Started())
}

func TestPollEventsStopsWithContext(t *testing.T) {
	a := newTestApp(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tcell.Event) // nobody reads

	done := make(chan struct{})
	go func() {
		pollEvents(ctx, a.sim, events)
		close(done)
	}()

	a.sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("poller blocked on send after cancel")
	}
}

func TestPollEventsClosesWithScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	events := make(chan tcell.Event, 1)

	done := make(chan struct{})
	go func() {
		pollEvents(context.Background(), sim, events)
		close(done)
	}()
	sim.Fini()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("poller did not exit after screen close")
	}
	_, open := <-events
	assert.False(t, open)
}
