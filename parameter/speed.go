package parameter

import "sort"

// SpeedProfile bounds agent speed in tiles per second
// FullBand is the progress at which every music layer is playing
type SpeedProfile struct {
	LB       float64 `yaml:"lb"`
	UB       float64 `yaml:"ub"`
	FullBand float64 `yaml:"full_band"`
}

// Speed Curve
const (
	// SpeedSlownessFactor scales DefaultNumTargets into the curve's half-point
	SpeedSlownessFactor = 25.0

	// SpeedExponent sharpens the curve around its half-point
	SpeedExponent = 1.44

	// DefaultSpeedProfile is used when no profile is configured
	DefaultSpeedProfile = "normal"
)

// SpeedProfiles are the selectable difficulty presets
var SpeedProfiles = map[string]SpeedProfile{
	"slowest": {LB: 0.17, UB: 0.45, FullBand: 0.19},
	"slower":  {LB: 0.26, UB: 1.07, FullBand: 0.33},
	"normal":  {LB: 0.35, UB: 1.52, FullBand: 0.50},
	"faster":  {LB: 0.59, UB: 1.70, FullBand: 0.57},
	"fastest": {LB: 0.86, UB: 1.76, FullBand: 0.70},
}

// SpeedProfileNames returns the preset names ordered slowest first
func SpeedProfileNames() []string {
	names := make([]string, 0, len(SpeedProfiles))
	for name := range SpeedProfiles {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return SpeedProfiles[names[i]].LB < SpeedProfiles[names[j]].LB
	})
	return names
}
