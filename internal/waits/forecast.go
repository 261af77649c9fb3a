package waits

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	forecastHorizon = 12

	// Jitter is bounded at 15% either way; confidence decays per hour of
	// forecast distance and never drops below the floor. Historical samples
	// raise the base.
	forecastJitter     = 0.15
	confidenceFloor    = 0.3
	confidenceDecay    = 0.05
	baseConfidence     = 0.90
	baseConfidenceHist = 0.95

	// fallbackConfidence is the fixed confidence of the coarse fallback rule.
	fallbackConfidence = 0.6
)

// ForecastGenerator produces the 12-point hourly wait forecast. The random
// source is injected so tests can pin the jitter.
type ForecastGenerator struct {
	rng    Rand
	logger *slog.Logger
}

// NewForecastGenerator creates a generator backed by the given random source.
func NewForecastGenerator(rng Rand, logger *slog.Logger) *ForecastGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &ForecastGenerator{rng: rng, logger: logger}
}

// Generate returns one ForecastPoint per upcoming hour. Confidence decays
// with distance from now and never drops below the floor. Forecasting is an
// enhancement, not a correctness requirement: any internal failure falls
// back silently to a coarse 3-branch rule at fixed confidence.
func (g *ForecastGenerator) Generate(currentWait, currentHour int, hasHistory bool) []ForecastPoint {
	points, err := g.generate(currentWait, currentHour, hasHistory)
	if err != nil {
		g.logger.Warn("forecast generation failed, using fallback rule", "error", err)
		return fallbackForecast(currentWait, currentHour)
	}
	return points
}

func (g *ForecastGenerator) generate(currentWait, currentHour int, hasHistory bool) ([]ForecastPoint, error) {
	if currentWait < 0 {
		return nil, fmt.Errorf("negative current wait %d", currentWait)
	}
	if currentHour < 0 || currentHour > 23 {
		return nil, fmt.Errorf("hour %d out of range", currentHour)
	}

	base := baseConfidence
	if hasHistory {
		base = baseConfidenceHist
	}

	points := make([]ForecastPoint, 0, forecastHorizon)
	for i := 1; i <= forecastHorizon; i++ {
		hour := (currentHour + i) % 24
		jitter := 1 + (g.rng.Float64()*2-1)*forecastJitter
		predicted := int(math.Round(float64(currentWait) * timeMultiplier(hour) * jitter))
		if predicted < 0 {
			predicted = 0
		}

		confidence := base - confidenceDecay*float64(i)
		if confidence < confidenceFloor {
			confidence = confidenceFloor
		}

		points = append(points, ForecastPoint{
			HourOfDay:            hour,
			PredictedWaitMinutes: predicted,
			Confidence:           confidence,
		})
	}
	return points, nil
}

// timeMultiplier scales a current wait to an expected wait at the target
// hour: midday peak, late-afternoon shoulder, and a quiet evening/early-
// morning band.
func timeMultiplier(hour int) float64 {
	switch {
	case hour >= 10 && hour <= 14:
		return 1.4
	case hour >= 15 && hour <= 18:
		return 1.2
	case hour >= 19 || hour <= 8:
		return 0.6
	default:
		return 1.0
	}
}

// fallbackForecast is the coarse 3-branch rule: peak hours up, evening
// down, otherwise unchanged, all at fixed confidence.
func fallbackForecast(currentWait, currentHour int) []ForecastPoint {
	if currentWait < 0 {
		currentWait = 0
	}
	points := make([]ForecastPoint, 0, forecastHorizon)
	for i := 1; i <= forecastHorizon; i++ {
		hour := ((currentHour%24)+24+i) % 24
		predicted := currentWait
		switch {
		case hour >= 10 && hour <= 14:
			predicted = int(math.Round(float64(currentWait) * 1.2))
		case hour >= 19 || hour <= 8:
			predicted = int(math.Round(float64(currentWait) * 0.8))
		}
		points = append(points, ForecastPoint{
			HourOfDay:            hour,
			PredictedWaitMinutes: predicted,
			Confidence:           fallbackConfidence,
		})
	}
	return points
}
