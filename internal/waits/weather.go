package waits

import (
	"github.com/parkpulse/parkpulse-data/internal/parks"
)

// Weather probability policy. These are documented placeholder thresholds
// standing in for a real meteorological feed, not a physical model:
// afternoon hours during local summer carry an elevated thunderstorm
// probability at outdoor-heavy parks.
const (
	stormProbOutdoorSummer = 0.4
	stormProbIndoorSummer  = 0.2
	stormProbBaseline      = 0.1
	lightRainThreshold     = 0.2

	stormSeverity     = 0.7
	lightRainSeverity = 0.3
)

// WeatherHeuristic produces a qualitative weather impact assessment for a
// park. The random source is injected so tests can pin outcomes.
type WeatherHeuristic struct {
	rng Rand
}

// NewWeatherHeuristic creates a heuristic backed by the given random source.
func NewWeatherHeuristic(rng Rand) *WeatherHeuristic {
	return &WeatherHeuristic{rng: rng}
}

// Assess evaluates the storm policy for a park at the given local hour and
// month (1-12). A single draw against the storm probability decides
// HasImpact; a draw under the light-rain threshold that missed the storm
// window yields the lower-severity category.
func (h *WeatherHeuristic) Assess(park parks.Park, hour, month int) WeatherAssessment {
	prob := stormProbBaseline
	summerAfternoon := hour >= 12 && hour <= 16 && month >= 6 && month <= 9
	if summerAfternoon {
		if park.OutdoorHeavy {
			prob = stormProbOutdoorSummer
		} else {
			prob = stormProbIndoorSummer
		}
	}

	draw := h.rng.Float64()
	switch {
	case draw < prob:
		return WeatherAssessment{
			HasImpact:      true,
			Severity:       stormSeverity,
			Category:       "thunderstorm",
			Recommendation: "Expect midday closures on outdoor attractions; plan indoor backups",
		}
	case draw < lightRainThreshold:
		return WeatherAssessment{
			HasImpact:      true,
			Severity:       lightRainSeverity,
			Category:       "light_rain",
			Recommendation: "Light rain possible; outdoor waits often drop during showers",
		}
	default:
		return WeatherAssessment{Category: "clear"}
	}
}
