package waits

import (
	"math"
	"sort"

	"github.com/parkpulse/parkpulse-data/internal/parks"
)

// operating-day window used when ranking visit hours
const (
	dayOpenHour  = 9
	dayCloseHour = 21
)

// BuildAttractionAnalytics derives the optional per-attraction analytics
// block: queue pressure against rated throughput and the best/worst hours
// to visit based on the time-of-day curve.
func BuildAttractionAnalytics(rec WaitTimeRecord, attraction parks.Attraction) *AttractionAnalytics {
	// A standby wait equal to one hour means a full hour of rated
	// throughput is already queued.
	utilization := float64(rec.WaitMinutes) / 60.0
	if utilization > 1 {
		utilization = 1
	}
	queueDepth := int(math.Round(float64(rec.WaitMinutes) / 60.0 * float64(attraction.RatedCapacity)))
	if rec.Status != StatusOperating {
		utilization = 0
		queueDepth = 0
	}

	best, worst := rankVisitHours(3)

	return &AttractionAnalytics{
		CapacityUtilization: math.Round(utilization*100) / 100,
		QueueDepthEstimate:  queueDepth,
		BestHours:           best,
		WorstHours:          worst,
	}
}

// rankVisitHours orders the operating-day hours by expected wait pressure
// and returns the n lightest and n heaviest, each ascending by hour.
func rankVisitHours(n int) (best, worst []int) {
	hours := make([]int, 0, dayCloseHour-dayOpenHour+1)
	for h := dayOpenHour; h <= dayCloseHour; h++ {
		hours = append(hours, h)
	}

	ranked := make([]int, len(hours))
	copy(ranked, hours)
	sort.SliceStable(ranked, func(i, j int) bool {
		return timeMultiplier(ranked[i]) < timeMultiplier(ranked[j])
	})

	best = append([]int(nil), ranked[:n]...)
	worst = append([]int(nil), ranked[len(ranked)-n:]...)
	sort.Ints(best)
	sort.Ints(worst)
	return best, worst
}
