package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilechase/audio"
	"github.com/lixenwraith/tilechase/config"
	"github.com/lixenwraith/tilechase/engine"
	"github.com/lixenwraith/tilechase/input"
	"github.com/lixenwraith/tilechase/logger"
	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/records"
	"github.com/lixenwraith/tilechase/render"
	"github.com/lixenwraith/tilechase/status"
)

// app is the single goroutine that owns the game: every mutation, redraw and
// record write happens in its loop
type app struct {
	cfg      config.Config
	game     *engine.Game
	clock    engine.TimeProvider
	screen   tcell.Screen
	renderer *render.Renderer
	keys     *input.KeyTable
	sound    *audio.SoundManager // nil without audio
	store    *records.Store      // nil without records
	stats    *status.Registry

	best      int
	showStats bool

	// current game bookkeeping, fed by OnEvent
	startedAt time.Time
	eaten     int
	over      bool
	saved     bool
}

func newApp(cfg config.Config, g *engine.Game, clock engine.TimeProvider, screen tcell.Screen,
	sound *audio.SoundManager, store *records.Store, stats *status.Registry) *app {
	a := &app{
		cfg:      cfg,
		game:     g,
		clock:    clock,
		screen:   screen,
		renderer: render.New(screen),
		keys:     input.DefaultKeyTable(),
		sound:    sound,
		store:    store,
		stats:    stats,
	}
	g.AddListener(a)
	return a
}

// OnEvent tracks what the record of the current game needs
func (a *app) OnEvent(e engine.Event) {
	switch e.Type {
	case engine.EventRestart:
		a.startedAt = a.clock.Now()
		a.eaten = 0
		a.over = false
		a.saved = false
	case engine.EventTargetEaten:
		a.eaten++
	case engine.EventGameOver:
		a.over = true
	}
}

// run polls terminal events on a separate goroutine and drives the game until quit
func (a *app) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan tcell.Event, parameter.EventQueueSize)
	goSafe(func() { pollEvents(ctx, a.screen, events) })

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	a.loadBest(ctx)
	a.draw()
	for {
		timer.Reset(a.untilDeadline())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				return nil
			}
		case <-timer.C:
			a.game.Scheduler().RunDue()
		case <-ticker.C:
		}
		a.saveFinished(ctx)
		a.draw()
	}
}

// pollEvents forwards terminal events until the screen closes or ctx ends.
// events is closed only when the screen closes.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}

		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// untilDeadline is the wait before the next agent turn
func (a *app) untilDeadline() time.Duration {
	deadline, ok := a.game.Scheduler().NextDeadline()
	if !ok {
		return time.Hour
	}
	return max(0, deadline.Sub(a.clock.Now()))
}

// handleEvent applies one terminal event and reports whether to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleCommand(a.keys.Translate(ev))
	}
	return false
}

func (a *app) handleCommand(cmd input.Command) bool {
	switch cmd.Kind {
	case input.Quit:
		return true
	case input.Pause:
		a.game.TogglePause()
	case input.Restart:
		if a.game.CanRestart() {
			a.restart()
		}
	case input.Spice:
		a.game.Spice()
	case input.Mute:
		if a.sound != nil {
			muted := a.sound.ToggleMute()
			logger.Log.WithField("muted", muted).Debug("sound toggled")
		}
	case input.Stats:
		a.showStats = !a.showStats
	case input.Type, input.Backtrack:
		a.game.HandleKey(cmd.Player, cmd.Key)
	}
	return false
}

func (a *app) restart() {
	if err := a.game.Restart(); err != nil {
		logger.Log.WithError(err).Error("restart failed")
	}
}

// loadBest reads the stored best score for the current profile and width
func (a *app) loadBest(ctx context.Context) {
	if a.store == nil {
		return
	}
	best, err := a.store.Best(ctx, a.cfg.Speed, a.game.Width())
	if err != nil {
		logger.Log.WithError(err).Warn("best score lookup failed")
		return
	}
	a.best = best
}

// saveFinished writes the record of a game that just ended, once
func (a *app) saveFinished(ctx context.Context) {
	if !a.over || a.saved {
		return
	}
	a.saved = true
	rec := a.record()
	a.best = max(a.best, rec.BestScore)
	if a.store == nil {
		return
	}
	id, err := a.store.Save(ctx, rec)
	if err != nil {
		logger.Log.WithError(err).Error("saving game record failed")
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"id": id, "score": rec.BestScore, "duration": rec.Duration.String(),
	}).Info("game recorded")
}

func (a *app) record() records.Record {
	g := a.game
	return records.Record{
		Started:      a.startedAt,
		Duration:     a.clock.Now().Sub(a.startedAt),
		Width:        g.Width(),
		Language:     g.Language().Name(),
		Profile:      a.cfg.Speed,
		Players:      len(g.Players()),
		BestScore:    g.BestScore(),
		Misses:       g.Misses(),
		TargetsEaten: a.eaten,
	}
}

func (a *app) draw() {
	v := render.View{
		Game:      a.game,
		Best:      a.best,
		AudioOn:   a.sound != nil,
		ShowStats: a.showStats,
	}
	if a.sound != nil {
		v.Muted = a.sound.Muted()
	}
	if a.showStats {
		v.Stats = a.stats.Snapshot()
	}
	a.renderer.Draw(v)
}
