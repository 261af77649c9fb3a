package waits

import (
	"testing"
	"time"

	"github.com/parkpulse/parkpulse-data/internal/provider/themeparks"
)

func intPtr(n int) *int { return &n }

func TestNormalizeStandbyOperating(t *testing.T) {
	raw := themeparks.RawAttraction{
		Status: "Operating",
		Queue: map[string]themeparks.RawQueue{
			themeparks.QueueStandby: {WaitTime: intPtr(45)},
		},
	}

	rec := Normalize("space-mountain", raw, time.Now())

	if rec.WaitMinutes != 45 {
		t.Errorf("WaitMinutes = %d, want 45", rec.WaitMinutes)
	}
	if rec.Status != StatusOperating {
		t.Errorf("Status = %s, want OPERATING", rec.Status)
	}
	if rec.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", rec.Confidence)
	}
}

func TestNormalizeSingleRiderFallback(t *testing.T) {
	raw := themeparks.RawAttraction{
		Queue: map[string]themeparks.RawQueue{
			themeparks.QueueSingleRider: {WaitTime: intPtr(20)},
		},
	}

	rec := Normalize("test-track", raw, time.Now())

	if rec.WaitMinutes != 20 || rec.Status != StatusOperating {
		t.Errorf("got (%d, %s), want (20, OPERATING)", rec.WaitMinutes, rec.Status)
	}
	if rec.Confidence != 0.8 {
		t.Errorf("Confidence = %v, want 0.8 for single rider", rec.Confidence)
	}
}

func TestNormalizeClosedOverridesQueue(t *testing.T) {
	// Status text wins over queue contents, forcing wait 0 and confidence 1.
	raw := themeparks.RawAttraction{
		Status: "Closed",
		Queue: map[string]themeparks.RawQueue{
			themeparks.QueueStandby: {WaitTime: intPtr(30)},
		},
	}

	rec := Normalize("jungle-cruise", raw, time.Now())

	if rec.Status != StatusClosed {
		t.Errorf("Status = %s, want CLOSED", rec.Status)
	}
	if rec.WaitMinutes != 0 {
		t.Errorf("WaitMinutes = %d, want 0", rec.WaitMinutes)
	}
	if rec.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", rec.Confidence)
	}
}

func TestNormalizeStatusText(t *testing.T) {
	tests := []struct {
		status string
		want   Status
	}{
		{"Operating", StatusOperating},
		{"open", StatusOperating},
		{"Down", StatusDown},
		{"TEMPORARILY CLOSED", StatusDown},
		{"Refurbishment", StatusRefurbishment},
		{"closed", StatusClosed},
	}
	for _, tt := range tests {
		rec := Normalize("x", themeparks.RawAttraction{Status: tt.status}, time.Now())
		if rec.Status != tt.want {
			t.Errorf("Normalize(status=%q).Status = %s, want %s", tt.status, rec.Status, tt.want)
		}
		if tt.want != StatusOperating {
			if rec.WaitMinutes != 0 || rec.Confidence != 1.0 {
				t.Errorf("status %q: got wait=%d conf=%v, want 0 and 1.0", tt.status, rec.WaitMinutes, rec.Confidence)
			}
		}
	}
}

func TestNormalizeRefurbishment(t *testing.T) {
	rec := Normalize("splash", themeparks.RawAttraction{Status: "Refurbishment"}, time.Now())

	if rec.Status != StatusRefurbishment || rec.WaitMinutes != 0 || rec.Confidence != 1.0 {
		t.Errorf("got (%s, %d, %v), want (REFURBISHMENT, 0, 1.0)", rec.Status, rec.WaitMinutes, rec.Confidence)
	}
}

func TestNormalizeMalformedDefaults(t *testing.T) {
	rec := Normalize("mystery", themeparks.RawAttraction{}, time.Now())

	if rec.Status != StatusClosed {
		t.Errorf("Status = %s, want CLOSED", rec.Status)
	}
	if rec.WaitMinutes != 0 {
		t.Errorf("WaitMinutes = %d, want 0", rec.WaitMinutes)
	}
	if rec.Confidence != 0.8 {
		t.Errorf("Confidence = %v, want best-effort 0.8", rec.Confidence)
	}
}

func TestNormalizeLightningLane(t *testing.T) {
	raw := themeparks.RawAttraction{
		Status: "Operating",
		Queue: map[string]themeparks.RawQueue{
			themeparks.QueueStandby: {WaitTime: intPtr(60)},
			themeparks.QueuePaidReturnTime: {
				State:       themeparks.StateAvailable,
				Price:       &themeparks.RawPrice{Amount: 1500, Currency: "USD"},
				ReturnStart: "2026-08-25T14:30:00-04:00",
			},
		},
	}

	rec := Normalize("rise-of-the-resistance", raw, time.Now())

	ll := rec.LightningLane
	if ll == nil {
		t.Fatal("expected lightning lane block")
	}
	if !ll.Available {
		t.Error("expected lightning lane available")
	}
	if ll.Type != LightningLaneIndividual {
		t.Errorf("Type = %s, want INDIVIDUAL_LIGHTNING_LANE", ll.Type)
	}
	if ll.PriceCents != 1500 || ll.PriceCurrency != "USD" {
		t.Errorf("price = %d %s, want 1500 USD", ll.PriceCents, ll.PriceCurrency)
	}
	if ll.EstimatedSavings == nil || *ll.EstimatedSavings != 50 {
		t.Errorf("EstimatedSavings = %v, want 50", ll.EstimatedSavings)
	}
}

func TestNormalizeGeniePlusWithoutPaid(t *testing.T) {
	raw := themeparks.RawAttraction{
		Status: "Operating",
		Queue: map[string]themeparks.RawQueue{
			themeparks.QueueStandby:    {WaitTime: intPtr(5)},
			themeparks.QueueReturnTime: {State: themeparks.StateAvailable},
		},
	}

	rec := Normalize("haunted-mansion", raw, time.Now())

	ll := rec.LightningLane
	if ll == nil || ll.Type != LightningLaneGeniePlus {
		t.Fatalf("expected GENIE_PLUS lane, got %+v", ll)
	}
	// Savings would be negative (5 - 10); clamp to zero.
	if ll.EstimatedSavings == nil || *ll.EstimatedSavings != 0 {
		t.Errorf("EstimatedSavings = %v, want 0", ll.EstimatedSavings)
	}
}

func TestNormalizeSavingsUnsetWhenUnavailable(t *testing.T) {
	raw := themeparks.RawAttraction{
		Status: "Operating",
		Queue: map[string]themeparks.RawQueue{
			themeparks.QueueStandby:        {WaitTime: intPtr(60)},
			themeparks.QueuePaidReturnTime: {State: "FINISHED"},
		},
	}

	rec := Normalize("x", raw, time.Now())

	if rec.LightningLane == nil {
		t.Fatal("expected lightning lane block")
	}
	if rec.LightningLane.Available {
		t.Error("expected unavailable lane")
	}
	if rec.LightningLane.EstimatedSavings != nil {
		t.Error("EstimatedSavings must be unset when the lane is unavailable")
	}
}

func TestNormalizeVirtualQueue(t *testing.T) {
	raw := themeparks.RawAttraction{
		Status: "Operating",
		Queue: map[string]themeparks.RawQueue{
			themeparks.QueueBoardingGroup: {
				State:             themeparks.StateAvailable,
				CurrentGroupStart: intPtr(40),
				CurrentGroupEnd:   intPtr(55),
				EstimatedWait:     intPtr(120),
			},
		},
	}

	rec := Normalize("guardians-cosmic-rewind", raw, time.Now())

	vq := rec.VirtualQueue
	if vq == nil {
		t.Fatal("expected virtual queue block")
	}
	if !vq.Available {
		t.Error("expected virtual queue available")
	}
	if vq.EstimatedWait != 120 {
		t.Errorf("EstimatedWait = %d, want 120", vq.EstimatedWait)
	}
	if vq.AverageCallTime != 15 {
		t.Errorf("AverageCallTime = %d, want fixed 15", vq.AverageCallTime)
	}
	if vq.TotalGroups != 55 {
		t.Errorf("TotalGroups = %d, want 55", vq.TotalGroups)
	}
}
