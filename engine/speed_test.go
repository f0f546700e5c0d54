package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/tilechase/parameter"
)

func TestBaseSpeedBounds(t *testing.T) {
	for _, name := range parameter.SpeedProfileNames() {
		p := parameter.SpeedProfiles[name]
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, p.LB, BaseSpeed(p, 0), 1e-12)

			prev := BaseSpeed(p, 0)
			for obtained := 1.0; obtained < 5000; obtained *= 1.5 {
				s := BaseSpeed(p, obtained)
				assert.GreaterOrEqual(t, s, prev, "monotonic at %v", obtained)
				assert.LessOrEqual(t, s, p.UB)
				prev = s
			}
			assert.InDelta(t, p.UB, BaseSpeed(p, 1e6), 1e-9)
		})
	}
}

func TestBaseSpeedNeverPassesCeiling(t *testing.T) {
	for _, name := range parameter.SpeedProfileNames() {
		p := parameter.SpeedProfiles[name]
		for _, obtained := range []float64{5000, 1e6, math.MaxFloat64} {
			assert.LessOrEqual(t, BaseSpeed(p, obtained), p.UB, "%s at %v", name, obtained)
		}
	}
	p := parameter.SpeedProfiles["slowest"]
	assert.Equal(t, p.UB, BaseSpeed(p, 5000))
}

func TestBaseSpeedHalfPoint(t *testing.T) {
	p := parameter.SpeedProfiles["normal"]
	half := parameter.SpeedSlownessFactor * parameter.DefaultNumTargets
	assert.InDelta(t, (p.UB+p.LB)/2, BaseSpeed(p, half), 1e-9)
}

func TestMissWeight(t *testing.T) {
	// a player who just moved is missed four times as often as hit
	assert.InDelta(t, 4.0, MissWeight(0, 1), 1e-12)
	// at the equivalence point missing and hitting are even
	assert.InDelta(t, 1.0, MissWeight(4, 1), 1e-12)
	assert.Less(t, MissWeight(8, 1), 1.0)
	assert.False(t, math.IsNaN(MissWeight(1e6, 2)))
}

func TestPaceByName(t *testing.T) {
	assert.IsType(t, ScorePace{}, PaceByName(parameter.RunnerPaceScore))
	assert.IsType(t, DistancePace{}, PaceByName(parameter.RunnerPaceDistance))
	assert.IsType(t, DistancePace{}, PaceByName("unknown"))
}
