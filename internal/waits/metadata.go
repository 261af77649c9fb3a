package waits

import (
	"math"
	"time"

	"github.com/parkpulse/parkpulse-data/internal/parks"
)

// BuildCrowdMetadata derives the per-attraction crowd metadata block.
// It is recomputed on every request or cache refresh.
//
// HistoricalAverage is a synthetic placeholder (popularity-scaled with a
// small random spread) carried over until the historical store grows a read
// contract; it must not be treated as a real rolling statistic.
func BuildCrowdMetadata(rec WaitTimeRecord, attraction parks.Attraction, weather WeatherAssessment, now time.Time, rng Rand) *CrowdMetadata {
	level := CrowdLow
	if rec.Status == StatusOperating {
		level = EstimateCrowdLevel([]int{rec.WaitMinutes}, now.Hour(), now.Weekday(), false)
	}

	historicalAvg := float64(attraction.Popularity)*8 + rng.Float64()*10

	// Percentile of the current wait against the synthetic historical
	// average: 50 means "typical for this attraction".
	percentile := 50
	if historicalAvg > 0 {
		percentile = int(math.Round(float64(rec.WaitMinutes) / historicalAvg * 50))
	}
	if percentile > 100 {
		percentile = 100
	}
	if percentile < 0 {
		percentile = 0
	}

	return &CrowdMetadata{
		CrowdLevel:        level,
		WeatherImpact:     weather.HasImpact,
		TrendDirection:    trendAt(now.Hour()),
		HistoricalAverage: math.Round(historicalAvg*10) / 10,
		PercentileRanking: percentile,
		Recommendations:   recommendations(rec, level, weather),
	}
}

// trendAt reads the short-horizon direction off the time-of-day curve: if
// the next hour's multiplier is higher than this hour's, waits are building.
func trendAt(hour int) Trend {
	current := timeMultiplier(hour)
	next := timeMultiplier((hour + 1) % 24)
	switch {
	case next > current:
		return TrendIncreasing
	case next < current:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func recommendations(rec WaitTimeRecord, level CrowdLevel, weather WeatherAssessment) []string {
	var recs []string

	switch rec.Status {
	case StatusDown:
		recs = append(recs, "Temporarily down; check back shortly or grab a nearby attraction")
	case StatusClosed, StatusRefurbishment:
		recs = append(recs, "Not operating today")
	default:
		switch level {
		case CrowdHigh, CrowdVeryHigh:
			recs = append(recs, "Long waits expected; consider Lightning Lane or an off-peak return")
		case CrowdLow:
			recs = append(recs, "Short waits right now; good time to ride standby")
		}
		if rec.LightningLane != nil && rec.LightningLane.Available {
			recs = append(recs, "Lightning Lane return times are currently available")
		}
		if rec.VirtualQueue != nil && rec.VirtualQueue.Available {
			recs = append(recs, "Virtual queue boarding groups are open")
		}
	}

	if weather.HasImpact {
		recs = append(recs, weather.Recommendation)
	}
	return recs
}
