package engine

import (
	"math"
	"slices"

	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/vmath"
)

// RunnerBehavior flees the players. Caught, it teleports away and pays the
// catcher by forgiving a quarter of the misses
type RunnerBehavior struct {
	Pace RunnerPace
}

func (r RunnerBehavior) Decide(g *Game, a *Agent) Decision {
	closest := g.ClosestPlayer(a.Pos)
	if closest == nil {
		return Decision{Dest: a.Pos}
	}

	if catcher := g.catcherOf(a.Pos); catcher != nil {
		if free := g.EscapeTiles(); len(free) > 0 {
			return Decision{Dest: free[g.rng.IntN(len(free))], Teleport: true, Catcher: catcher}
		}
	}

	w := float64(g.width)
	if a.Pos.Sub(closest.Pos).Norm() >= w/parameter.RunnerSafeDivisor {
		// shadow the chaser, keeping clear of the nommer
		fromNommer := a.Pos.Sub(g.agents[Nommer].Pos)
		if n := fromNommer.Norm(); n > 0 {
			fromNommer = fromNommer.Mul(w / parameter.RunnerShadowDivisor / n)
		}
		jitter := vmath.RandSigned(g.rng, parameter.RunnerJitter)
		return Decision{Dest: g.agents[Chaser].Pos.Add(fromNommer).Add(jitter)}
	}

	dest := g.runnerCorner(a.Pos, closest.Pos)
	cornerDist := math.Pow(dest.Sub(a.Pos).Norm(), 2)
	fromPlayer := a.Pos.Sub(closest.Pos)
	if n := fromPlayer.Norm(); n > 0 {
		fromPlayer = fromPlayer.Mul(math.Pow(cornerDist/n, parameter.RunnerRepulsionPower))
	}
	return Decision{Dest: dest.Add(fromPlayer)}
}

func (r RunnerBehavior) Speed(g *Game, a *Agent) float64 {
	pace := r.Pace
	if pace == nil {
		pace = DistancePace{}
	}
	return pace.Speed(g, a)
}

// runnerCorner drops the corners nearest and farthest from the player, then
// picks the one the runner reaches most ahead of the player
func (g *Game) runnerCorner(runner, player vmath.Pos) vmath.Pos {
	corners := vmath.Corners(g.width, g.width/parameter.RunnerCornerDivisor)
	slices.SortStableFunc(corners, func(x, y vmath.Pos) int {
		return player.Sub(x).LinearNorm() - player.Sub(y).LinearNorm()
	})
	corners = corners[1:3]

	danger := func(c vmath.Pos) int {
		return c.Sub(runner).LinearNorm() - c.Sub(player).LinearNorm()
	}
	if danger(corners[1]) < danger(corners[0]) {
		return corners[1]
	}
	return corners[0]
}

// catcherOf returns a live player adjacent to p
func (g *Game) catcherOf(p vmath.Pos) *Player {
	for _, pl := range g.live {
		if pl.Pos.Sub(p).SquareNorm() == 1 {
			return pl
		}
	}
	return nil
}

// EscapeTiles lists free tiles more than one step from every live player,
// in row-major order
func (g *Game) EscapeTiles() []vmath.Pos {
	var out []vmath.Pos
	for _, c := range g.grid.Cells() {
		if c.Blocked() {
			continue
		}
		safe := true
		for _, p := range g.live {
			if p.Pos.Sub(c.Pos).SquareNorm() <= 1 {
				safe = false
				break
			}
		}
		if safe {
			out = append(out, c.Pos)
		}
	}
	return out
}
