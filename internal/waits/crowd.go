package waits

import "time"

// EstimateCrowdLevel scores a park's currently-operating wait times into a
// four-level crowd category using a weighted composite, not a plain mean:
// the base score from the average wait is bumped by the worst single wait,
// then scaled by time-of-day, weekend, and special-event factors.
//
// An empty list returns LOW: no data implies no crowding signal.
func EstimateCrowdLevel(waitMinutes []int, hour int, day time.Weekday, specialEvent bool) CrowdLevel {
	if len(waitMinutes) == 0 {
		return CrowdLow
	}

	sum, max := 0, 0
	for _, w := range waitMinutes {
		sum += w
		if w > max {
			max = w
		}
	}
	mean := float64(sum) / float64(len(waitMinutes))

	var score float64
	switch {
	case mean <= 15:
		score = 1
	case mean <= 30:
		score = 2
	case mean <= 45:
		score = 3
	default:
		score = 4
	}

	switch {
	case max <= 30:
		score += 0.3
	case max <= 60:
		score += 0.6
	case max <= 90:
		score += 0.9
	default:
		score += 1.2
	}

	switch {
	case hour >= 11 && hour <= 15:
		score *= 1.3
	case hour >= 16 && hour <= 18:
		score *= 1.1
	default:
		score *= 0.8
	}

	if day == time.Saturday || day == time.Sunday {
		score *= 1.2
	}
	if specialEvent {
		score *= 1.15
	}

	switch {
	case score <= 2.5:
		return CrowdLow
	case score <= 4.0:
		return CrowdModerate
	case score <= 5.5:
		return CrowdHigh
	default:
		return CrowdVeryHigh
	}
}
