package engine

import (
	"math"
	"sort"

	"github.com/lixenwraith/tilechase/grid"
	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/vmath"
)

// StepResolver turns an agent's wish into a single legal king move
type StepResolver struct {
	grid *grid.Grid
	rng  vmath.Source
}

func NewStepResolver(g *grid.Grid, rng vmath.Source) *StepResolver {
	return &StepResolver{grid: g, rng: rng}
}

// Truncate reduces a displacement to one tile per axis. Off-diagonal
// displacements collapse onto their longer axis with probability
// |ax-ay|/(ax+ay), so near-straight paths step straight
func (s *StepResolver) Truncate(diff vmath.Pos) vmath.Pos {
	abs := diff.Abs()
	if diff.X == 0 || diff.Y == 0 || abs.X == abs.Y {
		return diff.Trunc(1)
	}

	axisPercent := float64(absDiff(abs.X, abs.Y)) / float64(abs.X+abs.Y)
	straight, err := vmath.WeightedChoice(s.rng, []vmath.Choice[bool]{
		{Item: true, Weight: axisPercent},
		{Item: false, Weight: 1 - axisPercent},
	})
	if err != nil {
		invariant("truncate", err, "displacement %v", diff)
	}
	if straight {
		if abs.X > abs.Y {
			diff.Y = 0
		} else {
			diff.X = 0
		}
	}
	return diff.Trunc(1)
}

// Step returns a free tile at Chebyshev distance 1 from origin heading toward
// dest. A blocked or null step deflects to one of the best-ranked free
// neighbours; origin comes back only when every neighbour is blocked
func (s *StepResolver) Step(origin, dest vmath.Pos) vmath.Pos {
	diff := s.Truncate(dest.Sub(origin))
	desired := origin.Add(diff)
	if diff != (vmath.Pos{}) && s.grid.Free(desired) {
		return desired
	}

	aim := origin.Add(diff.Mul(2))
	pref := func(c *grid.Cell) int { return -aim.Sub(c.Pos).LinearNorm() }

	alts := s.grid.Adjacent(origin, 1)
	alts = removeCell(alts, origin)
	if len(alts) == 0 {
		return origin
	}
	sort.SliceStable(alts, func(i, j int) bool { return pref(alts[i]) > pref(alts[j]) })
	if len(alts) > parameter.StepAltCount {
		alts = alts[:parameter.StepAltCount]
	}

	choices := make([]vmath.Choice[vmath.Pos], len(alts))
	for i, c := range alts {
		choices[i] = vmath.Choice[vmath.Pos]{Item: c.Pos, Weight: math.Pow(parameter.StepAltBase, float64(pref(c)))}
	}
	pos, err := vmath.WeightedChoice(s.rng, choices)
	if err != nil {
		invariant("step", err, "from %v toward %v", origin, dest)
	}
	return pos
}

func removeCell(cells []*grid.Cell, p vmath.Pos) []*grid.Cell {
	out := cells[:0]
	for _, c := range cells {
		if c.Pos != p {
			out = append(out, c)
		}
	}
	return out
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
