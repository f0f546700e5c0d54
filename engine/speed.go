package engine

import (
	"math"

	"github.com/lixenwraith/tilechase/parameter"
)

// BaseSpeed maps how much has happened (mean live score plus misses) onto an
// asymptotic curve bounded by the profile: lb at zero, approaching ub
func BaseSpeed(p parameter.SpeedProfile, obtained float64) float64 {
	if obtained < 0 {
		obtained = 0
	}
	slowness := parameter.SpeedSlownessFactor * parameter.DefaultNumTargets
	exp := -math.Pow(obtained/slowness, parameter.SpeedExponent)
	s := (p.UB-p.LB)*(1-math.Pow(2, exp)) + p.LB
	return min(p.UB, max(p.LB, s))
}

// Obtained is the curve input: mean score over live players plus misses
func (g *Game) Obtained() float64 {
	mean := 0.0
	if len(g.live) > 0 {
		total := 0
		for _, p := range g.live {
			total += p.Score
		}
		mean = float64(total) / float64(len(g.live))
	}
	return mean + float64(g.misses)
}

// BaseSpeed is the shared agent speed for the current game state
func (g *Game) BaseSpeed() float64 {
	return BaseSpeed(g.profile, g.Obtained())
}

// Progress is how far BaseSpeed has climbed from lb toward ub, in [0, 1]
func (g *Game) Progress() float64 {
	span := g.profile.UB - g.profile.LB
	if span <= 0 {
		return 0
	}
	return (g.BaseSpeed() - g.profile.LB) / span
}

// RunnerPace picks the runner's cadence
type RunnerPace interface {
	Speed(g *Game, a *Agent) float64
}

// DistancePace speeds the runner up as the closest player draws near
type DistancePace struct{}

func (DistancePace) Speed(g *Game, a *Agent) float64 {
	p := g.ClosestPlayer(a.Pos)
	if p == nil {
		return 1
	}
	w := float64(g.width)
	dist := float64(a.Pos.Sub(p.Pos).SquareNorm())
	urgency := math.Pow(max(0, w+1-dist)/w, parameter.RunnerUrgencyPower)
	return urgency*(parameter.RunnerSpeedup-1) + 1
}

// ScorePace moves the runner at the shared base speed
type ScorePace struct{}

func (ScorePace) Speed(g *Game, _ *Agent) float64 { return g.BaseSpeed() }

// PaceByName resolves a configured pace; unknown names fall back to distance
func PaceByName(name string) RunnerPace {
	if name == parameter.RunnerPaceScore {
		return ScorePace{}
	}
	return DistancePace{}
}
