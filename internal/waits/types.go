// Package waits is the core wait-time intelligence subsystem: it normalizes
// raw provider status into canonical records, scores park-wide crowding,
// generates short-horizon forecasts, aggregates park snapshots, and serves
// them through a freshness-bounded fallback chain.
package waits

import "time"

// Status is the canonical operating state of an attraction.
type Status string

const (
	StatusOperating     Status = "OPERATING"
	StatusDown          Status = "DOWN"
	StatusClosed        Status = "CLOSED"
	StatusRefurbishment Status = "REFURBISHMENT"
)

// LightningLaneType distinguishes the paid tiers.
type LightningLaneType string

const (
	LightningLaneNone       LightningLaneType = "NONE"
	LightningLaneGeniePlus  LightningLaneType = "GENIE_PLUS"
	LightningLaneIndividual LightningLaneType = "INDIVIDUAL_LIGHTNING_LANE"
)

// CrowdLevel is the four-level crowd category.
type CrowdLevel string

const (
	CrowdLow      CrowdLevel = "LOW"
	CrowdModerate CrowdLevel = "MODERATE"
	CrowdHigh     CrowdLevel = "HIGH"
	CrowdVeryHigh CrowdLevel = "VERY_HIGH"
)

// Trend is the short-horizon wait-time direction.
type Trend string

const (
	TrendIncreasing Trend = "INCREASING"
	TrendDecreasing Trend = "DECREASING"
	TrendStable     Trend = "STABLE"
)

// LightningLane describes paid-return-time availability for an attraction.
type LightningLane struct {
	Available        bool              `json:"available"`
	Type             LightningLaneType `json:"type"`
	PriceCents       int               `json:"priceCents,omitempty"`
	PriceCurrency    string            `json:"priceCurrency,omitempty"`
	NextReturnTime   string            `json:"nextReturnTime,omitempty"`
	EstimatedSavings *int              `json:"estimatedSavingsMinutes,omitempty"`
}

// VirtualQueue describes boarding-group availability for an attraction.
type VirtualQueue struct {
	Available         bool `json:"available"`
	CurrentGroupStart *int `json:"currentGroupStart,omitempty"`
	CurrentGroupEnd   *int `json:"currentGroupEnd,omitempty"`
	EstimatedWait     int  `json:"estimatedWaitMinutes"`
	TotalGroups       int  `json:"totalGroups,omitempty"`
	// AverageCallTime is fixed at 15 minutes, a known approximation rather
	// than a value derived from provider data.
	AverageCallTime int `json:"averageCallTimeMinutes"`
}

// WaitTimeRecord is the canonical per-attraction status. WaitMinutes is
// meaningful only when Status is OPERATING; records are immutable once
// cached and replaced wholesale on refresh.
type WaitTimeRecord struct {
	AttractionID  string         `json:"attractionId"`
	WaitMinutes   int            `json:"waitMinutes"`
	Status        Status         `json:"status"`
	LastUpdated   time.Time      `json:"lastUpdated"`
	Confidence    float64        `json:"confidence"`
	LightningLane *LightningLane `json:"lightningLane,omitempty"`
	VirtualQueue  *VirtualQueue  `json:"virtualQueue,omitempty"`
}

// CrowdMetadata is derived intelligence attached to a record on request.
// It is recomputed per request or cache refresh, never persisted as
// authoritative.
type CrowdMetadata struct {
	CrowdLevel        CrowdLevel `json:"crowdLevel"`
	WeatherImpact     bool       `json:"weatherImpact"`
	TrendDirection    Trend      `json:"trendDirection"`
	HistoricalAverage float64    `json:"historicalAverage"`
	PercentileRanking int        `json:"percentileRanking"`
	Recommendations   []string   `json:"recommendations"`
}

// ForecastPoint is one hour of the short-horizon wait forecast.
type ForecastPoint struct {
	HourOfDay            int     `json:"hourOfDay"`
	PredictedWaitMinutes int     `json:"predictedWaitMinutes"`
	Confidence           float64 `json:"confidence"`
}

// WeatherAssessment is the qualitative weather impact for a park.
type WeatherAssessment struct {
	HasImpact      bool    `json:"hasImpact"`
	Severity       float64 `json:"severity"`
	Category       string  `json:"category"`
	Recommendation string  `json:"recommendation,omitempty"`
}

// CrowdFlowPoint is one hour of the park-wide crowd-flow forecast on a
// 1-10 scale.
type CrowdFlowPoint struct {
	HourOfDay       int      `json:"hourOfDay"`
	Level           int      `json:"level"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// ParkAnalytics is the aggregate analytics block of a park snapshot.
type ParkAnalytics struct {
	Heatmap         map[string]float64 `json:"areaHeatmap"`
	CrowdFlow       []CrowdFlowPoint   `json:"hourlyCrowdFlow"`
	EfficiencyScore int                `json:"efficiencyScore"`
}

// ParkSnapshot is the park-scope response: every attraction's record plus
// aggregate metadata and analytics.
type ParkSnapshot struct {
	ParkID               string                    `json:"parkId"`
	Attractions          map[string]WaitTimeRecord `json:"attractions"`
	AverageWaitTime      float64                   `json:"averageWaitTime"`
	CrowdLevel           CrowdLevel                `json:"crowdLevel"`
	BusyAreas            []string                  `json:"busyAreas"`
	QuietAreas           []string                  `json:"quietAreas"`
	ParkCapacityEstimate int                       `json:"parkCapacityEstimate"`
	Weather              *WeatherAssessment        `json:"weather,omitempty"`
	Analytics            *ParkAnalytics            `json:"analytics,omitempty"`
	GeneratedAt          time.Time                 `json:"generatedAt"`
}

// AttractionAnalytics is the optional analytics block on individual
// responses: the attraction's expected load profile over the day.
type AttractionAnalytics struct {
	CapacityUtilization float64 `json:"capacityUtilization"` // 0-1, wait pressure vs rated capacity
	QueueDepthEstimate  int     `json:"queueDepthEstimate"`  // guests implied by wait x throughput
	BestHours           []int   `json:"bestHours"`           // lowest expected-wait hours
	WorstHours          []int   `json:"worstHours"`          // highest expected-wait hours
}

// AttractionResponse is the individual-endpoint response shape. Optional
// blocks are populated per query flags; a failed enrichment leaves its
// field absent rather than failing the record.
type AttractionResponse struct {
	WaitTimeRecord
	Metadata  *CrowdMetadata       `json:"metadata,omitempty"`
	Analytics *AttractionAnalytics `json:"analytics,omitempty"`
	Forecast  []ForecastPoint      `json:"prediction,omitempty"`
}
