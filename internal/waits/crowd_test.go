package waits

import (
	"testing"
	"time"
)

func TestCrowdLevelEmptyListIsLow(t *testing.T) {
	if got := EstimateCrowdLevel(nil, 12, time.Saturday, true); got != CrowdLow {
		t.Errorf("empty list = %s, want LOW", got)
	}
}

func TestCrowdLevelPeakHourShortWaits(t *testing.T) {
	// mean 10 -> base 1; max 12 -> +0.3; x1.3 peak = 1.69 -> LOW
	got := EstimateCrowdLevel([]int{10, 12, 8}, 14, time.Wednesday, false)
	if got != CrowdLow {
		t.Errorf("got %s, want LOW", got)
	}
}

func TestCrowdLevelBands(t *testing.T) {
	tests := []struct {
		name         string
		waits        []int
		hour         int
		day          time.Weekday
		specialEvent bool
		want         CrowdLevel
	}{
		// mean 40 -> 3, max 40 -> +0.6, off-peak x0.8 = 2.88 -> MODERATE
		{"moderate off-peak", []int{40, 40}, 9, time.Tuesday, false, CrowdModerate},
		// mean 50 -> 4, max 80 -> +0.9, peak x1.3 = 6.37 -> VERY_HIGH
		{"very high peak", []int{50, 20, 80}, 13, time.Monday, false, CrowdVeryHigh},
		// mean 35 -> 3, max 65 -> +0.9, shoulder x1.1 = 4.29 -> HIGH
		{"high shoulder", []int{35, 5, 65}, 17, time.Thursday, false, CrowdHigh},
		// weekend multiplier pushes the same waits up a band:
		// mean 25 -> 2, max 35 -> +0.6, x0.8 x1.2 = 2.496 -> LOW
		{"weekend boundary", []int{25, 15, 35}, 8, time.Saturday, false, CrowdLow},
		// special event on top: 2.6 x1.15 = 2.87 -> MODERATE
		{"special event crosses", []int{25, 15, 35}, 8, time.Saturday, true, CrowdModerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCrowdLevel(tt.waits, tt.hour, tt.day, tt.specialEvent)
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

// crowdRank orders levels for the monotonicity check.
func crowdRank(l CrowdLevel) int {
	switch l {
	case CrowdLow:
		return 0
	case CrowdModerate:
		return 1
	case CrowdHigh:
		return 2
	default:
		return 3
	}
}

func TestCrowdLevelMonotonicUnderScaling(t *testing.T) {
	base := []int{5, 10, 20, 15}
	prev := -1
	for scale := 1; scale <= 8; scale++ {
		scaled := make([]int, len(base))
		for i, w := range base {
			scaled[i] = w * scale
		}
		level := EstimateCrowdLevel(scaled, 13, time.Saturday, false)
		if r := crowdRank(level); r < prev {
			t.Fatalf("scale %d: level %s ranks below previous", scale, level)
		} else {
			prev = r
		}
	}
}
