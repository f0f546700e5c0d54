package engine

import (
	"slices"

	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/vmath"
)

// NommerBehavior eats targets the players are not already near. Each move
// cools the heat the players build by eating
type NommerBehavior struct{}

func (NommerBehavior) Decide(g *Game, a *Agent) Decision {
	if g.heat-1 >= 0 {
		g.heat--
		g.stats.heat.Set(g.heat)
	}
	return Decision{Dest: g.nommerGoal(a.Pos)}
}

// nommerGoal leaves the third of targets nearest any live player alone and
// heads for the nearest of the rest
func (g *Game) nommerGoal(from vmath.Pos) vmath.Pos {
	if len(g.targets) == 0 {
		return from
	}
	targets := slices.Clone(g.targets)

	if len(g.live) > 0 {
		prox := func(t vmath.Pos) int {
			best := -1
			for _, p := range g.live {
				if d := p.Pos.Sub(t).SquareNorm(); best < 0 || d < best {
					best = d
				}
			}
			return best
		}
		slices.SortStableFunc(targets, func(x, y vmath.Pos) int { return prox(x) - prox(y) })
		targets = targets[len(targets)/parameter.NommerAvoidFraction:]
	}

	slices.SortStableFunc(targets, func(x, y vmath.Pos) int {
		return x.Sub(from).SquareNorm() - y.Sub(from).SquareNorm()
	})
	return targets[0]
}

func (NommerBehavior) Speed(g *Game, _ *Agent) float64 {
	return g.BaseSpeed() * (g.heat/parameter.HeatDivisor + 1)
}
