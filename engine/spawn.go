package engine

import (
	"math"
	"slices"

	"github.com/lixenwraith/tilechase/grid"
	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/vmath"
)

// bell is 1 at distance zero and halves at radius·width/2
func (g *Game) bell(a, b vmath.Pos, radius float64) float64 {
	dist := a.Sub(b).Norm() / float64(g.width)
	return math.Pow(2, -math.Pow(2*dist/radius, 2))
}

// SpawnWeights weighs every free non-target tile for the next target: toward
// the centre, toward the live players on average, and toward the nommer
func (g *Game) SpawnWeights() []vmath.Choice[vmath.Pos] {
	centre := vmath.P(g.width/2, g.width/2)
	nommer := g.agents[Nommer].Pos

	var out []vmath.Choice[vmath.Pos]
	for _, c := range g.grid.Cells() {
		if c.Blocked() || g.targetIndex(c.Pos) >= 0 {
			continue
		}
		w := parameter.TargetCentreWeight * g.bell(centre, c.Pos, parameter.TargetCentreRadius)
		if len(g.live) > 0 {
			players := 0.0
			for _, p := range g.live {
				players += g.bell(p.Pos, c.Pos, parameter.TargetOccupantRadius)
			}
			w += players / float64(len(g.live))
		}
		w += g.bell(nommer, c.Pos, parameter.TargetOccupantRadius)
		out = append(out, vmath.Choice[vmath.Pos]{Item: c.Pos, Weight: w})
	}
	return out
}

// spawnTargets tops the board back up to NumTargets
func (g *Game) spawnTargets() {
	if len(g.targets) >= g.numTargets {
		return
	}
	choices := g.SpawnWeights()
	for len(g.targets) < g.numTargets {
		pos, err := vmath.WeightedChoice(g.rng, choices)
		if err != nil {
			invariant("spawn targets", err, "%d of %d placed", len(g.targets), g.numTargets)
		}
		g.targets = append(g.targets, pos)
		g.grid.At(pos).Category = grid.Target
		choices = slices.DeleteFunc(choices, func(c vmath.Choice[vmath.Pos]) bool { return c.Item == pos })
	}
}

// corruptTile blocks a spawn-weighted tile for the rest of the game
func (g *Game) corruptTile() {
	pos, err := vmath.WeightedChoice(g.rng, g.SpawnWeights())
	if err != nil {
		return
	}
	g.alloc.Corrupt(pos)
	g.corrupted = append(g.corrupted, pos)
	g.stats.corrupted.Store(int64(len(g.corrupted)))
}

func (g *Game) targetIndex(p vmath.Pos) int {
	return slices.Index(g.targets, p)
}

func (g *Game) removeTarget(i int) {
	g.targets = slices.Delete(g.targets, i, i+1)
}
