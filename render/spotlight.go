package render

import (
	"math"

	"github.com/lixenwraith/tilechase/parameter"
)

// Spotlight is the label brightness at Euclidean distance dist from the
// closest player: ((radius - dist) / radius)^power, never below the floor
func Spotlight(dist float64) float64 {
	if dist >= parameter.SpotlightRadius {
		return parameter.SpotlightFloor
	}
	lit := math.Pow((parameter.SpotlightRadius-max(dist, 0))/parameter.SpotlightRadius, parameter.SpotlightPower)
	return max(lit, parameter.SpotlightFloor)
}
