package waits

import (
	"testing"

	"github.com/parkpulse/parkpulse-data/internal/parks"
)

var (
	outdoorPark = parks.Park{ID: "magic-kingdom", OutdoorHeavy: true}
	indoorPark  = parks.Park{ID: "epcot", OutdoorHeavy: false}
)

func TestWeatherSummerAfternoonStorm(t *testing.T) {
	// Draw 0.35 is under the 0.4 outdoor summer storm probability.
	h := NewWeatherHeuristic(&stubRand{vals: []float64{0.35}})
	got := h.Assess(outdoorPark, 14, 7)

	if !got.HasImpact {
		t.Fatal("expected storm impact")
	}
	if got.Category != "thunderstorm" {
		t.Errorf("Category = %s, want thunderstorm", got.Category)
	}
	if got.Severity != 0.7 {
		t.Errorf("Severity = %v, want 0.7", got.Severity)
	}
}

func TestWeatherIndoorParkLowerStormOdds(t *testing.T) {
	// The same 0.35 draw misses the 0.2 indoor summer probability, but
	// exceeds the 0.2 light-rain threshold too: clear.
	h := NewWeatherHeuristic(&stubRand{vals: []float64{0.35}})
	got := h.Assess(indoorPark, 14, 7)

	if got.HasImpact {
		t.Errorf("expected no impact, got %+v", got)
	}
	if got.Category != "clear" {
		t.Errorf("Category = %s, want clear", got.Category)
	}
}

func TestWeatherLightRainBand(t *testing.T) {
	// Outside the summer window the storm probability is 0.1; a 0.15 draw
	// misses it but stays under the 0.2 light-rain threshold.
	h := NewWeatherHeuristic(&stubRand{vals: []float64{0.15}})
	got := h.Assess(outdoorPark, 9, 3)

	if !got.HasImpact {
		t.Fatal("expected light rain impact")
	}
	if got.Category != "light_rain" {
		t.Errorf("Category = %s, want light_rain", got.Category)
	}
	if got.Severity != 0.3 {
		t.Errorf("Severity = %v, want 0.3", got.Severity)
	}
}

func TestWeatherClearAboveAllThresholds(t *testing.T) {
	h := NewWeatherHeuristic(&stubRand{vals: []float64{0.9}})
	got := h.Assess(outdoorPark, 14, 7)

	if got.HasImpact || got.Category != "clear" || got.Severity != 0 {
		t.Errorf("got %+v, want clear no-impact", got)
	}
}
