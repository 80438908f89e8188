package engine

import (
	"math"
	"testing"
	"time"

	"uex-router/internal/uex"
)

func stockEntry(reported, capacity float64, age time.Duration, now time.Time) uex.PriceEntry {
	return uex.PriceEntry{
		BuyPrice:    10,
		StockSCU:    reported,
		CapacitySCU: capacity,
		ReportedAt:  now.Add(-age),
	}
}

func TestEstimateAvailability_DisabledReturnsRaw(t *testing.T) {
	now := time.Now()
	e := stockEntry(200, 1000, 12*time.Hour, now)
	got := EstimateAvailability(e, now, false)
	if got != 200 {
		t.Errorf("disabled estimate = %v, want raw 200", got)
	}
}

func TestEstimateAvailability_ZeroAgeEqualsRaw(t *testing.T) {
	now := time.Now()
	e := stockEntry(200, 1000, 0, now)
	got := EstimateAvailability(e, now, true)
	if got != 200 {
		t.Errorf("zero-age estimate = %v, want 200", got)
	}
}

func TestEstimateAvailability_DriftsTowardEquilibrium(t *testing.T) {
	now := time.Now()
	// Capacity 1000 → equilibrium 500. Reported 200, half the horizon elapsed:
	// 200 + (500-200)*0.5 = 350.
	e := stockEntry(200, 1000, replenishmentHorizon/2, now)
	got := EstimateAvailability(e, now, true)
	if math.Abs(got-350) > 1e-9 {
		t.Errorf("half-horizon estimate = %v, want 350", got)
	}

	// Past the horizon the estimate is fully converged.
	e = stockEntry(200, 1000, 3*replenishmentHorizon, now)
	got = EstimateAvailability(e, now, true)
	if math.Abs(got-500) > 1e-9 {
		t.Errorf("converged estimate = %v, want 500", got)
	}
}

func TestEstimateAvailability_NoCeilingDecaysNotGrows(t *testing.T) {
	now := time.Now()
	e := stockEntry(200, 0, replenishmentHorizon/2, now)
	got := EstimateAvailability(e, now, true)
	if got > 200 {
		t.Errorf("estimate %v exceeds last observation with no known ceiling", got)
	}
	if got < 0 {
		t.Errorf("estimate %v is negative", got)
	}
	if math.Abs(got-100) > 1e-9 {
		t.Errorf("half-horizon no-ceiling estimate = %v, want 100", got)
	}
}

func TestEstimateAvailability_NeverExceedsCeiling(t *testing.T) {
	now := time.Now()
	// Reported above capacity (bad upstream data) still clamps to the ceiling.
	e := stockEntry(5000, 1000, 10*replenishmentHorizon, now)
	got := EstimateAvailability(e, now, true)
	if got > 1000 {
		t.Errorf("estimate %v exceeds capacity ceiling 1000", got)
	}
}

func TestEstimateAvailability_NeverNegative(t *testing.T) {
	now := time.Now()
	for _, age := range []time.Duration{0, time.Hour, 24 * time.Hour, 30 * 24 * time.Hour} {
		e := stockEntry(3, 0, age, now)
		if got := EstimateAvailability(e, now, true); got < 0 {
			t.Errorf("age %v: estimate %v is negative", age, got)
		}
	}
}

func TestEstimateAvailability_NegativeReportClampedToZero(t *testing.T) {
	now := time.Now()
	e := stockEntry(-50, 0, 0, now)
	if got := EstimateAvailability(e, now, true); got != 0 {
		t.Errorf("negative report estimate = %v, want 0", got)
	}
}
