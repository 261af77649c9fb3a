package cache

import (
	"testing"
	"time"
)

func TestRoundTripWithinTTL(t *testing.T) {
	now := time.Now()
	c := NewWithClock(true, func() time.Time { return now })

	c.Put("space-mountain", TierIndividual, 45)

	payload, fresh := c.Get("space-mountain", TierIndividual)
	if !fresh {
		t.Fatal("expected fresh hit immediately after put")
	}
	if payload.(int) != 45 {
		t.Errorf("payload = %v, want 45", payload)
	}
}

func TestExpiryAfterTTL(t *testing.T) {
	now := time.Now()
	c := NewWithClock(true, func() time.Time { return now })

	c.Put("space-mountain", TierIndividual, 45)
	now = now.Add(TierIndividual.TTL())

	if _, fresh := c.Get("space-mountain", TierIndividual); fresh {
		t.Error("expected miss once the TTL has elapsed")
	}
}

func TestPartitionIsolation(t *testing.T) {
	c := New(true)
	c.Put("space-mountain", TierIndividual, 45)

	if _, fresh := c.Get("space-mountain", TierAnalytics); fresh {
		t.Error("analytics-tier read must not be satisfied by an individual-tier entry")
	}
	if _, ok := c.GetStale("space-mountain", TierAnalytics); ok {
		t.Error("stale read must also respect tier partitions")
	}
}

func TestGetStaleSurvivesExpiry(t *testing.T) {
	now := time.Now()
	c := NewWithClock(true, func() time.Time { return now })

	c.Put("park:epcot", TierPark, "snapshot")
	now = now.Add(time.Hour)

	if _, fresh := c.Get("park:epcot", TierPark); fresh {
		t.Fatal("entry should be stale after an hour")
	}
	payload, ok := c.GetStale("park:epcot", TierPark)
	if !ok {
		t.Fatal("stale read should still find the entry")
	}
	if payload.(string) != "snapshot" {
		t.Errorf("payload = %v, want snapshot", payload)
	}
}

func TestReplacedWholesale(t *testing.T) {
	c := New(true)
	c.Put("k", TierPark, "old")
	c.Put("k", TierPark, "new")

	payload, fresh := c.Get("k", TierPark)
	if !fresh || payload.(string) != "new" {
		t.Errorf("got (%v, %v), want (new, true)", payload, fresh)
	}
}

func TestDisabledCacheIsNoOp(t *testing.T) {
	c := New(false)
	c.Put("k", TierIndividual, 1)

	if _, fresh := c.Get("k", TierIndividual); fresh {
		t.Error("disabled cache should never hit")
	}
	if _, ok := c.GetStale("k", TierIndividual); ok {
		t.Error("disabled cache should never serve stale")
	}
}

func TestTierTTLs(t *testing.T) {
	tests := []struct {
		tier Tier
		want time.Duration
	}{
		{TierIndividual, 120 * time.Second},
		{TierPark, 60 * time.Second},
		{TierAnalytics, 300 * time.Second},
		{TierPredictions, 600 * time.Second},
	}
	for _, tt := range tests {
		if got := tt.tier.TTL(); got != tt.want {
			t.Errorf("TTL(%s) = %v, want %v", tt.tier, got, tt.want)
		}
	}
}
