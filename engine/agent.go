package engine

import (
	"time"

	"github.com/lixenwraith/tilechase/grid"
	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/vmath"
)

// Role is one of the three fixed autonomous agents
type Role uint8

const (
	Chaser Role = iota
	Nommer
	Runner
	NumRoles
)

var roleNames = [NumRoles]string{"chaser", "nommer", "runner"}
var roleFaces = [NumRoles]string{parameter.ChaserFace, parameter.NommerFace, parameter.RunnerFace}
var roleCategories = [NumRoles]grid.Category{grid.Chaser, grid.Nommer, grid.Runner}

func (r Role) String() string {
	if r < NumRoles {
		return roleNames[r]
	}
	return "unknown"
}

// Face is the glyph drawn on the agent's tile
func (r Role) Face() string { return roleFaces[r] }

func (r Role) Category() grid.Category { return roleCategories[r] }

// Decision is what an agent wants to do this turn
// Kill lands on the victim's tile; Teleport lands on Dest without a step
type Decision struct {
	Dest     vmath.Pos
	Kill     *Player
	Teleport bool
	Catcher  *Player
}

// Behavior decides an agent's moves and cadence
// Decide runs with the agent already lifted off the board
type Behavior interface {
	Decide(g *Game, a *Agent) Decision
	// Speed is in tiles per second and is read after the move lands
	Speed(g *Game, a *Agent) float64
}

// Agent is a non-player occupant driven by its Behavior on the scheduler
type Agent struct {
	Role     Role
	Pos      vmath.Pos
	PrevPos  vmath.Pos
	Moves    int
	behavior Behavior
	handle   Handle
}

// Behavior returns the strategy driving the agent
func (a *Agent) Behavior() Behavior { return a.behavior }

// task adapts the agent's turn to the scheduler
func (g *Game) agentTask(a *Agent) Task {
	return func() (time.Duration, bool) {
		return g.stepAgent(a)
	}
}

// stepAgent is one agent turn: lift off, decide, land, pick the next delay
func (g *Game) stepAgent(a *Agent) (time.Duration, bool) {
	if !g.running() {
		return 0, false
	}

	g.liftAgent(a)
	d := a.behavior.Decide(g, a)

	switch {
	case d.Kill != nil:
		site := g.killPlayer(d.Kill)
		g.landAgent(a, site)
	case d.Teleport:
		g.landAgent(a, d.Dest)
		if d.Catcher != nil {
			g.rewardCatch(a, d.Catcher)
		}
	default:
		g.landAgent(a, g.step.Step(a.Pos, d.Dest))
	}
	a.Moves++
	g.stats.agentMoves[a.Role].Add(1)
	g.emit(Event{Type: EventAgentMove, Player: NoPlayer, Role: a.Role, Pos: a.Pos})

	if len(g.live) == 0 {
		g.endGame()
		return 0, false
	}

	speed := a.behavior.Speed(g, a)
	g.stats.agentSpeed[a.Role].Set(speed)
	return time.Duration(float64(time.Second) / speed), true
}

// liftAgent vacates the agent's tile: it is re-labelled and its marker restored
func (g *Game) liftAgent(a *Agent) {
	g.relabel(a.Pos)
	g.restoreCategory(a.Pos)
}

// landAgent occupies dest; the nommer eats any target there
func (g *Game) landAgent(a *Agent, dest vmath.Pos) {
	g.occupy(dest, a.Role.Category(), a.Role.Face(), "land "+a.Role.String())
	a.PrevPos, a.Pos = a.Pos, dest

	if a.Role != Nommer {
		return
	}
	i := g.targetIndex(dest)
	if i < 0 {
		return
	}
	if g.corrupts {
		g.corruptTile()
	}
	g.removeTarget(i)
	g.stats.stolen.Add(1)
	g.setMisses(g.misses + 1)
	g.spawnTargets()
	g.emit(Event{Type: EventTargetStolen, Player: NoPlayer, Role: Nommer, Pos: dest, Value: float64(g.misses)})
}

// rewardCatch shrinks misses after the runner was caught by p
func (g *Game) rewardCatch(a *Agent, p *Player) {
	g.stats.catches.Add(1)
	g.setMisses(g.misses * parameter.RunnerCatchRetainNum / parameter.RunnerCatchRetainDen)
	g.emit(Event{Type: EventRunnerCaught, Player: p.Num, Role: a.Role, Pos: a.Pos, Value: float64(g.misses)})
}
