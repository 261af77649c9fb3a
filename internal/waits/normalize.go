package waits

import (
	"strings"
	"time"

	"github.com/parkpulse/parkpulse-data/internal/provider/themeparks"
)

// virtualQueueCallInterval is the assumed minutes between boarding-group
// calls. The provider does not report it; 15 minutes is a known
// approximation.
const virtualQueueCallInterval = 15

// lightningLaneOverhead is the assumed minutes spent in a Lightning Lane
// queue, subtracted from standby when estimating savings.
const lightningLaneOverhead = 10

// Normalize converts one raw provider status into a canonical
// WaitTimeRecord. It never fails: missing or malformed queue data degrades
// to a best-effort CLOSED record with confidence 0.8.
func Normalize(attractionID string, raw themeparks.RawAttraction, now time.Time) WaitTimeRecord {
	rec := WaitTimeRecord{
		AttractionID: attractionID,
		WaitMinutes:  0,
		Status:       StatusClosed,
		LastUpdated:  now,
		Confidence:   0.8, // best-effort default when queue data is absent
	}

	// Wait time from queue sub-types, standby preferred over single rider.
	if q, ok := raw.Queue[themeparks.QueueStandby]; ok && q.WaitTime != nil && *q.WaitTime >= 0 {
		rec.WaitMinutes = *q.WaitTime
		rec.Status = StatusOperating
		rec.Confidence = 0.9
	} else if q, ok := raw.Queue[themeparks.QueueSingleRider]; ok && q.WaitTime != nil && *q.WaitTime >= 0 {
		rec.WaitMinutes = *q.WaitTime
		rec.Status = StatusOperating
		rec.Confidence = 0.8
	}

	// Explicit status text overrides whatever the queue implied.
	switch strings.ToLower(strings.TrimSpace(raw.Status)) {
	case "operating", "open":
		rec.Status = StatusOperating
	case "down", "temporarily closed":
		rec.Status = StatusDown
		rec.WaitMinutes = 0
		rec.Confidence = 1.0
	case "closed":
		rec.Status = StatusClosed
		rec.WaitMinutes = 0
		rec.Confidence = 1.0
	case "refurbishment":
		rec.Status = StatusRefurbishment
		rec.WaitMinutes = 0
		rec.Confidence = 1.0
	}

	rec.LightningLane = normalizeLightningLane(raw, rec.WaitMinutes)
	rec.VirtualQueue = normalizeVirtualQueue(raw)

	return rec
}

func normalizeLightningLane(raw themeparks.RawAttraction, waitMinutes int) *LightningLane {
	paid, hasPaid := raw.Queue[themeparks.QueuePaidReturnTime]
	free, hasFree := raw.Queue[themeparks.QueueReturnTime]
	if !hasPaid && !hasFree {
		return nil
	}

	q := free
	llType := LightningLaneGeniePlus
	if hasPaid {
		q = paid
		llType = LightningLaneIndividual
	}

	ll := &LightningLane{
		Available:      q.State == themeparks.StateAvailable,
		Type:           llType,
		NextReturnTime: q.ReturnStart,
	}
	if q.Price != nil {
		ll.PriceCents = q.Price.Amount
		ll.PriceCurrency = q.Price.Currency
	}
	if ll.Available && waitMinutes > 0 {
		savings := waitMinutes - lightningLaneOverhead
		if savings < 0 {
			savings = 0
		}
		ll.EstimatedSavings = &savings
	}
	return ll
}

func normalizeVirtualQueue(raw themeparks.RawAttraction) *VirtualQueue {
	q, ok := raw.Queue[themeparks.QueueBoardingGroup]
	if !ok {
		return nil
	}

	vq := &VirtualQueue{
		Available:         q.State == themeparks.StateAvailable,
		CurrentGroupStart: q.CurrentGroupStart,
		CurrentGroupEnd:   q.CurrentGroupEnd,
		AverageCallTime:   virtualQueueCallInterval,
	}
	if q.EstimatedWait != nil && *q.EstimatedWait > 0 {
		vq.EstimatedWait = *q.EstimatedWait
	}
	if q.CurrentGroupEnd != nil && *q.CurrentGroupEnd > 0 {
		vq.TotalGroups = *q.CurrentGroupEnd
	}
	return vq
}
