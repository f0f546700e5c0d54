package engine

import (
	"math"
	"strings"
	"time"

	"github.com/lixenwraith/tilechase/grid"
	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/trail"
	"github.com/lixenwraith/tilechase/vmath"
)

// BacktrackKey steps the player back along their trail
const BacktrackKey = " "

// Player is a typing-driven occupant
type Player struct {
	Num     int
	Pos     vmath.Pos
	PrevPos vmath.Pos
	Score   int
	Alive   bool
	Trail   *trail.Trail

	buffer   string
	periods  []time.Duration
	lastMove time.Time
}

func newPlayer(num int) *Player {
	return &Player{Num: num, Trail: trail.New()}
}

func (p *Player) reset(now time.Time) {
	p.Score = 0
	p.Alive = true
	p.Trail.Clear()
	p.Trail.SetLimit(0)
	p.buffer = ""
	p.periods = p.periods[:0]
	p.lastMove = now
}

// Buffer is the keystrokes typed since the last committed move
func (p *Player) Buffer() string { return p.buffer }

// AvgPeriod is the mean of the last few move periods and the time since the
// latest move, in seconds
func (p *Player) AvgPeriod(now time.Time) float64 {
	total := now.Sub(p.lastMove)
	for _, d := range p.periods {
		total += d
	}
	return total.Seconds() / float64(len(p.periods)+1)
}

func (p *Player) recordMove(now time.Time) {
	p.periods = append(p.periods, now.Sub(p.lastMove))
	if n := len(p.periods); n > parameter.MovePeriodWindow {
		p.periods = append(p.periods[:0], p.periods[n-parameter.MovePeriodWindow:]...)
	}
	p.lastMove = now
}

// typeKey appends key to the buffer and returns the single adjacent tile whose
// sequence the buffer now ends with, or nil while zero or several match
func (g *Game) typeKey(p *Player, key string) *grid.Cell {
	p.buffer += strings.ToLower(key)
	if len(p.buffer) > parameter.InputBufferMax {
		p.buffer = p.buffer[len(p.buffer)-parameter.InputBufferMax:]
	}

	var match *grid.Cell
	for _, c := range g.grid.Adjacent(p.Pos, 1) {
		if !c.Labelled() || !strings.HasSuffix(p.buffer, c.Seq) {
			continue
		}
		if match != nil {
			return nil
		}
		match = c
	}
	return match
}

func (g *Game) movePlayer(p *Player, key string) {
	if key == BacktrackKey {
		g.backtrack(p)
		return
	}

	dest := g.typeKey(p, key)
	if dest == nil {
		return
	}
	p.buffer = ""
	p.recordMove(g.clock.Now())

	origin := p.Pos
	g.relabel(origin)
	p.Trail.PushNew(origin)
	g.restoreCategory(origin)
	g.trimTrail(p)
	g.landPlayer(p, dest.Pos)
	g.stats.moves.Add(1)
	g.emit(Event{Type: EventMove, Player: p.Num, Pos: p.Pos})
}

// backtrack retraces the trail; it fails quietly when the trail is spent or
// its next tile is occupied
func (g *Game) backtrack(p *Player) {
	dest, ok := p.Trail.Peek()
	if !ok || !g.grid.Free(dest) {
		return
	}
	p.buffer = ""

	origin := p.Pos
	g.relabel(origin)
	p.Trail.Backtrack(origin)
	g.restoreCategory(origin)
	g.trimTrail(p)
	g.landPlayer(p, dest)
	g.stats.moves.Add(1)
	g.emit(Event{Type: EventBacktrack, Player: p.Num, Pos: p.Pos})
}

// landPlayer occupies dest and scores any target there
func (g *Game) landPlayer(p *Player, dest vmath.Pos) {
	g.occupy(dest, grid.Player, parameter.PlayerFace, "land player")
	p.PrevPos, p.Pos = p.Pos, dest

	i := g.targetIndex(dest)
	if i < 0 {
		return
	}
	p.Score++
	n := float64(g.numTargets)
	g.heat = n * math.Sqrt(g.heat/n+1)
	g.removeTarget(i)
	g.stats.eaten.Add(1)
	g.stats.score[p.Num].Store(int64(p.Score))
	g.stats.heat.Set(g.heat)
	g.relimitTrails()
	g.spawnTargets()
	g.emit(Event{Type: EventTargetEaten, Player: p.Num, Pos: dest, Value: float64(p.Score)})
	g.publishProgress()
}

// killPlayer removes p from play and returns the blanked death site
func (g *Game) killPlayer(p *Player) vmath.Pos {
	site := p.Pos
	p.Alive = false
	for i, lp := range g.live {
		if lp == p {
			g.live = append(g.live[:i], g.live[i+1:]...)
			break
		}
	}

	hist := p.Trail.Positions()
	p.Trail.Clear()
	for _, pos := range hist {
		g.restoreCategory(pos)
	}

	c := g.grid.At(site)
	c.Vacate()
	c.Category = grid.Plain
	g.stats.live.Store(int64(len(g.live)))
	g.emit(Event{Type: EventPlayerDied, Player: p.Num, Role: Chaser, Pos: site})
	return site
}

// trimTrail re-applies p's trail limit and clears evicted markers
func (g *Game) trimTrail(p *Player) {
	for _, pos := range p.Trail.Trim() {
		g.restoreCategory(pos)
	}
}

// relimitTrails recomputes every live trail's limit from its score and the misses
func (g *Game) relimitTrails() {
	for _, p := range g.live {
		p.Trail.SetLimit(trail.Limit(p.Score, g.misses, parameter.TrailMissPenalty, parameter.TrailExponent))
		g.trimTrail(p)
	}
}
