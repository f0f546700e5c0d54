// Package engine runs a tilechase game: the board, the typing players, the
// three autonomous agents, and the cooperative scheduler that paces them
//
// A Game is not safe for concurrent use. Every call, including Scheduler().RunDue,
// must come from the one goroutine that owns the game
package engine

import (
	"fmt"
	"math"
	"slices"

	"github.com/lixenwraith/tilechase/grid"
	"github.com/lixenwraith/tilechase/lang"
	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/status"
	"github.com/lixenwraith/tilechase/vmath"
)

// Options configure a Game; zero values take defaults
type Options struct {
	Width          int
	Players        int
	Language       lang.Language
	Profile        parameter.SpeedProfile
	Rand           vmath.Source
	Clock          TimeProvider
	NommerCorrupts bool
	RunnerPace     RunnerPace
	Stats          *status.Registry
}

// Game owns the board and everything on it
type Game struct {
	width      int
	numTargets int
	lang       lang.Language
	profile    parameter.SpeedProfile
	corrupts   bool

	// applied on the next Restart
	nextLang    lang.Language
	nextProfile parameter.SpeedProfile

	rng   vmath.Source
	clock TimeProvider
	sched *Scheduler
	step  *StepResolver

	grid  *grid.Grid
	pop   *grid.Population
	alloc *grid.Allocator

	players   []*Player
	live      []*Player
	agents    [NumRoles]*Agent
	targets   []vmath.Pos
	corrupted []vmath.Pos
	heat      float64
	misses    int

	started bool
	paused  bool
	over    bool

	listeners []Listener
	stats     *gameStats
}

// New builds a game waiting for its first Restart
func New(opts Options) (*Game, error) {
	width := opts.Width
	if width == 0 {
		width = parameter.DefaultWidth
	}
	width = min(max(width, parameter.MinWidth), parameter.MaxWidth)

	players := opts.Players
	if players == 0 {
		players = parameter.DefaultPlayers
	}
	if players < 1 || players > parameter.MaxPlayers {
		return nil, fmt.Errorf("engine: %d players, want 1..%d", players, parameter.MaxPlayers)
	}

	language := opts.Language
	if language == nil {
		language = lang.English()
	}
	profile := opts.Profile
	if profile == (parameter.SpeedProfile{}) {
		profile = parameter.SpeedProfiles[parameter.DefaultSpeedProfile]
	}
	if profile.UB < profile.LB || profile.LB <= 0 {
		return nil, fmt.Errorf("engine: speed profile %+v has no positive range", profile)
	}
	rng := opts.Rand
	if rng == nil {
		rng = vmath.NewSource(0)
	}
	clock := opts.Clock
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	pace := opts.RunnerPace
	if pace == nil {
		pace = DistancePace{}
	}
	reg := opts.Stats
	if reg == nil {
		reg = status.NewRegistry()
	}

	g := &Game{
		width:       width,
		numTargets:  int(math.Ceil(float64(width*width) / parameter.TargetThinness)),
		lang:        language,
		profile:     profile,
		corrupts:    opts.NommerCorrupts,
		nextLang:    language,
		nextProfile: profile,
		rng:         rng,
		clock:       clock,
		sched:       NewScheduler(clock),
		grid:        grid.New(width),
		pop:         grid.NewPopulation(language.Labels()),
		stats:       newGameStats(reg, players),
	}
	g.alloc = grid.NewAllocator(g.grid, language, g.pop, rng)
	g.step = NewStepResolver(g.grid, rng)

	for i := 0; i < players; i++ {
		g.players = append(g.players, newPlayer(i))
	}
	behaviors := [NumRoles]Behavior{ChaserBehavior{}, NommerBehavior{}, RunnerBehavior{Pace: pace}}
	for r := Role(0); r < NumRoles; r++ {
		g.agents[r] = &Agent{Role: r, behavior: behaviors[r]}
	}
	return g, nil
}

// AddListener subscribes l to every subsequent event
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// SetLanguage selects the alphabet used from the next Restart
func (g *Game) SetLanguage(l lang.Language) { g.nextLang = l }

// SetProfile selects the speed profile used from the next Restart
func (g *Game) SetProfile(p parameter.SpeedProfile) { g.nextProfile = p }

// Restart lays out a fresh board and starts the agents after the resume delay
func (g *Game) Restart() error {
	g.cancelAgents()

	if g.nextLang != g.lang {
		g.lang = g.nextLang
		g.alloc.SetLanguage(g.lang)
	}
	g.profile = g.nextProfile
	g.pop.Reset(g.lang.Labels())
	g.targets = g.targets[:0]
	g.corrupted = g.corrupted[:0]
	g.heat = 0
	g.misses = 0

	g.grid.Clear()
	for _, c := range g.grid.Cells() {
		if _, err := g.alloc.Assign(c.Pos); err != nil {
			g.started = false
			return fmt.Errorf("%w: %s on width %d: %w", ErrGridTooSmall, g.lang.Name(), g.width, err)
		}
	}

	now := g.clock.Now()
	g.live = g.live[:0]
	mid := g.width / 2
	for i, p := range g.players {
		p.reset(now)
		spawn := vmath.P((i+1)*g.width/(len(g.players)+1), mid)
		p.Pos = spawn
		g.landPlayer(p, spawn)
		p.PrevPos = spawn
		g.live = append(g.live, p)
	}

	slots := vmath.Corners(g.width, g.width/parameter.AgentCornerDivisor)
	for i := len(slots) - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		slots[i], slots[j] = slots[j], slots[i]
	}
	for r, a := range g.agents {
		a.Pos = slots[r]
		a.Moves = 0
		g.landAgent(a, slots[r])
		a.PrevPos = a.Pos
	}

	g.spawnTargets()

	g.started = true
	g.over = false
	g.paused = true
	g.stats.restarts.Add(1)
	g.publish()
	g.emit(Event{Type: EventRestart, Player: NoPlayer})
	g.publishProgress()
	g.Resume()
	return nil
}

// CanRestart reports whether a restart request should be honoured: any time
// before the first game or after game over, otherwise only while at most one
// player is still alive
func (g *Game) CanRestart() bool {
	return !g.started || g.over || len(g.live) <= 1
}

// TogglePause flips between paused and running
func (g *Game) TogglePause() {
	if g.paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// Pause freezes the agents; their pending turns are cancelled, not deferred
func (g *Game) Pause() {
	if !g.running() {
		return
	}
	g.paused = true
	g.cancelAgents()
	g.stats.paused.Store(1)
	g.emit(Event{Type: EventPaused, Player: NoPlayer})
}

// Resume schedules every agent's next turn after the fixed resume delay
func (g *Game) Resume() {
	if !g.started || g.over || !g.paused {
		return
	}
	g.paused = false
	for _, a := range g.agents {
		a.handle = g.sched.Schedule(parameter.AgentResumeDelay, g.agentTask(a))
	}
	g.stats.paused.Store(0)
	g.emit(Event{Type: EventResumed, Player: NoPlayer})
}

// HandleKey routes a keystroke to player num. Input is dropped while the game
// is paused or over, and for dead players
func (g *Game) HandleKey(num int, key string) {
	if !g.running() || num < 0 || num >= len(g.players) {
		return
	}
	p := g.players[num]
	if !p.Alive {
		return
	}
	g.movePlayer(p, key)
}

// Spice adds a burst of misses, speeding everything up
func (g *Game) Spice() {
	if !g.running() {
		return
	}
	g.setMisses(g.misses + parameter.SpiceMisses)
	g.emit(Event{Type: EventSpice, Player: NoPlayer, Value: float64(g.misses)})
}

func (g *Game) running() bool {
	return g.started && !g.paused && !g.over
}

func (g *Game) endGame() {
	g.over = true
	g.paused = true
	g.cancelAgents()
	g.stats.over.Store(1)
	g.emit(Event{Type: EventGameOver, Player: NoPlayer, Value: float64(g.BestScore())})
}

func (g *Game) cancelAgents() {
	for _, a := range g.agents {
		if a.handle != 0 {
			g.sched.Cancel(a.handle)
			a.handle = 0
		}
	}
}

func (g *Game) setMisses(n int) {
	g.misses = max(0, n)
	g.stats.misses.Store(int64(g.misses))
	g.relimitTrails()
	g.publishProgress()
}

// relabel blanks the tile at p and draws it a fresh label
func (g *Game) relabel(p vmath.Pos) {
	c := g.grid.At(p)
	c.Vacate()
	c.Category = grid.Plain
	if _, err := g.alloc.Assign(p); err != nil {
		invariant("relabel", err, "tile %v", p)
	}
	g.stats.shuffles.Add(1)
}

// occupy puts an occupant glyph on dest, uncounting the label it covers
func (g *Game) occupy(dest vmath.Pos, cat grid.Category, face, op string) {
	if !dest.InBounds(g.width) {
		invariant(op, nil, "destination %v off the board", dest)
	}
	c := g.grid.At(dest)
	if c.Blocked() {
		invariant(op, nil, "destination %v holds %s", dest, c.Category)
	}
	if c.Labelled() {
		if g.pop.Count(c.Label) == 0 {
			invariant(op, nil, "population of %q would go negative", c.Label)
		}
		g.pop.Dec(c.Label)
	}
	c.Vacate()
	c.Category = cat
	c.Glyph = face
}

// restoreCategory recolours an unoccupied tile from what still marks it:
// a target, then any live trail, else plain
func (g *Game) restoreCategory(p vmath.Pos) {
	c := g.grid.At(p)
	if c.Blocked() {
		return
	}
	switch {
	case g.targetIndex(p) >= 0:
		c.Category = grid.Target
	case g.inLiveTrail(p):
		c.Category = grid.Trail
	default:
		c.Category = grid.Plain
	}
}

func (g *Game) inLiveTrail(p vmath.Pos) bool {
	for _, pl := range g.live {
		if pl.Trail.Contains(p) {
			return true
		}
	}
	return false
}

// ClosestPlayer returns the live player nearest p by Chebyshev distance; the
// earliest player wins ties. Nil when nobody is alive
func (g *Game) ClosestPlayer(p vmath.Pos) *Player {
	var best *Player
	bestDist := 0
	for _, pl := range g.live {
		if d := pl.Pos.Sub(p).SquareNorm(); best == nil || d < bestDist {
			best, bestDist = pl, d
		}
	}
	return best
}

// BestScore is the highest score of any player this game
func (g *Game) BestScore() int {
	best := 0
	for _, p := range g.players {
		best = max(best, p.Score)
	}
	return best
}

func (g *Game) emit(e Event) {
	for _, l := range g.listeners {
		l.OnEvent(e)
	}
}

func (g *Game) publishProgress() {
	progress := g.Progress()
	g.stats.progress.Set(progress)
	g.stats.baseSpeed.Set(g.BaseSpeed())
	g.emit(Event{Type: EventProgress, Player: NoPlayer, Value: progress})
}

// Accessors

func (g *Game) Width() int                      { return g.width }
func (g *Game) NumTargets() int                 { return g.numTargets }
func (g *Game) Grid() *grid.Grid                { return g.grid }
func (g *Game) Population() *grid.Population    { return g.pop }
func (g *Game) Language() lang.Language         { return g.lang }
func (g *Game) Profile() parameter.SpeedProfile { return g.profile }
func (g *Game) Scheduler() *Scheduler           { return g.sched }
func (g *Game) Players() []*Player              { return g.players }
func (g *Game) LivePlayers() []*Player          { return slices.Clone(g.live) }
func (g *Game) Agent(r Role) *Agent             { return g.agents[r] }
func (g *Game) Targets() []vmath.Pos            { return slices.Clone(g.targets) }
func (g *Game) Corrupted() []vmath.Pos          { return slices.Clone(g.corrupted) }
func (g *Game) Heat() float64                   { return g.heat }
func (g *Game) Misses() int                     { return g.misses }
func (g *Game) Started() bool                   { return g.started }
func (g *Game) Paused() bool                    { return g.paused }
func (g *Game) Over() bool                      { return g.over }
