package engine

import (
	"math"

	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/vmath"
)

// ChaserBehavior hunts the closest live player. Fast typists are hard to pin
// down: the quicker their recent moves, the likelier the chaser aims at the
// tile they just left
type ChaserBehavior struct{}

// MissWeight is the weight of missing against a weight of 1 for hitting
func MissWeight(avgPeriod, speed float64) float64 {
	power := avgPeriod * speed / parameter.ChaserEquivPoint
	return math.Pow(parameter.ChaserMaxMissWeight, 1-power)
}

func (ChaserBehavior) Decide(g *Game, a *Agent) Decision {
	target := g.ClosestPlayer(a.Pos)
	if target == nil {
		return Decision{Dest: a.Pos}
	}

	weight := MissWeight(target.AvgPeriod(g.clock.Now()), g.BaseSpeed())
	miss, err := vmath.WeightedChoice(g.rng, []vmath.Choice[bool]{
		{Item: false, Weight: 1},
		{Item: true, Weight: weight},
	})
	if err != nil {
		invariant("chaser", err, "miss weight %v", weight)
	}

	if miss {
		return Decision{Dest: target.PrevPos}
	}
	if a.Pos.Sub(target.Pos).SquareNorm() == 1 {
		return Decision{Kill: target}
	}
	return Decision{Dest: target.Pos}
}

func (ChaserBehavior) Speed(g *Game, _ *Agent) float64 { return g.BaseSpeed() }
