package engine

import (
	"math"
	"time"

	"uex-router/internal/uex"
)

// replenishmentHorizon is how long a terminal takes to drift from a reported
// stock level to its equilibrium. UEX price reports refresh on roughly this
// cadence, so older reports are assumed fully converged.
const replenishmentHorizon = 4 * time.Hour

// EstimateAvailability projects a commodity-terminal stock report to the
// query time.
//
// With estimation disabled it returns the raw reported stock unmodified.
// With estimation enabled, stock drifts linearly toward the terminal's
// equilibrium over the report age:
//
//	est = reported + (equilibrium - reported) * min(1, age/horizon)
//
// Equilibrium is half the known capacity ceiling when one exists; with no
// ceiling the terminal is assumed to drain toward zero, which is conservative
// and never fabricates stock the terminal has not reported. The estimate is
// clamped to [0, ceiling] (ceiling = the raw report when no capacity is
// known) and equals the raw report at zero elapsed time.
func EstimateAvailability(entry uex.PriceEntry, now time.Time, useEstimate bool) float64 {
	reported := math.Max(0, entry.StockSCU)
	if !useEstimate {
		return reported
	}

	age := now.Sub(entry.ReportedAt)
	if age <= 0 {
		return reported
	}

	equilibrium := 0.0
	ceiling := reported
	if entry.CapacitySCU > 0 {
		equilibrium = entry.CapacitySCU / 2
		ceiling = entry.CapacitySCU
	}

	frac := math.Min(1, float64(age)/float64(replenishmentHorizon))
	est := reported + (equilibrium-reported)*frac

	if est < 0 {
		return 0
	}
	if est > ceiling {
		return ceiling
	}
	return est
}
