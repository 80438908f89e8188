package engine

import (
	"context"
	"log"
	"sort"
	"time"

	"uex-router/internal/uex"
)

// DefaultRouteCount is the fallback number of routes returned when neither
// the caller nor the configuration specifies one.
const DefaultRouteCount = 3

// EffectiveMaxResults returns the max results limit, using defaultVal if v <= 0.
func EffectiveMaxResults(v int, defaultVal int) int {
	if v <= 0 {
		if defaultVal <= 0 {
			return DefaultRouteCount
		}
		return defaultVal
	}
	return v
}

// Router computes ranked commodity trade routes over catalog snapshots.
type Router struct {
	// DefaultCount is the configured commodity_route_default_count.
	DefaultCount int
}

// NewRouter creates a Router with the given configured default route count.
func NewRouter(defaultCount int) *Router {
	return &Router{DefaultCount: defaultCount}
}

// FindRoutes runs one full route query: validate, build candidates, rank,
// select top-K.
//
// Ranking is descending absolute profit, ties broken by descending margin,
// then ascending buy-terminal ID for determinism. Only strictly profitable
// legs are returned; an all-unprofitable candidate set is a normal outcome
// reported via StatusNoProfitableRoute, not an error.
func (r *Router) FindRoutes(ctx context.Context, cat *uex.Catalog, params RouteParams) (*RouteReport, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	if cat.Empty() {
		return nil, &NoCatalogDataError{}
	}
	if params.CurrentLocation != "" && !cat.KnowsLocation(params.CurrentLocation) {
		return nil, &InvalidInputError{Field: "current_location", Reason: "unknown: " + params.CurrentLocation}
	}

	now := time.Now()
	legs := buildCandidates(ctx, cat, params, now)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Printf("[Router] %d feasible legs across %d commodities", len(legs), len(cat.Commodities))

	profitable := legs[:0:0]
	for _, leg := range legs {
		if leg.Profit > 0 {
			profitable = append(profitable, leg)
		}
	}

	sort.Slice(profitable, func(i, j int) bool {
		if profitable[i].Profit != profitable[j].Profit {
			return profitable[i].Profit > profitable[j].Profit
		}
		if profitable[i].MarginPercent != profitable[j].MarginPercent {
			return profitable[i].MarginPercent > profitable[j].MarginPercent
		}
		return profitable[i].BuyTerminalID < profitable[j].BuyTerminalID
	})

	total := len(profitable)
	if total == 0 {
		return &RouteReport{Status: StatusNoProfitableRoute, Routes: []RankedRoute{}}, nil
	}

	limit := EffectiveMaxResults(params.MaxResults, r.DefaultCount)
	if len(profitable) > limit {
		profitable = profitable[:limit]
	}

	routes := make([]RankedRoute, len(profitable))
	for i, leg := range profitable {
		buyT := cat.Terminals[leg.BuyTerminalID]
		sellT := cat.Terminals[leg.SellTerminalID]
		route := RankedRoute{
			Rank:             i + 1,
			CandidateLeg:     leg,
			BuyTerminalName:  buyT.Name,
			SellTerminalName: sellT.Name,
			BuySystem:        buyT.StarSystem,
			SellSystem:       sellT.StarSystem,
		}
		if params.AdvancedInfo {
			route.BuyTerminalMonitored = buyT.IsMonitored
			route.SellTerminalMonitored = sellT.IsMonitored
			route.Score = desirabilityScore(leg, buyT, sellT)
		}
		routes[i] = route
	}

	return &RouteReport{
		Status:          StatusOK,
		Routes:          routes,
		TotalProfitable: total,
	}, nil
}

// desirabilityScore folds data quality into raw profit: legs priced from
// unmonitored terminals carry stale-report risk and are discounted.
func desirabilityScore(leg CandidateLeg, buyT, sellT uex.Terminal) float64 {
	score := leg.Profit
	if !buyT.IsMonitored {
		score *= 0.9
	}
	if !sellT.IsMonitored {
		score *= 0.9
	}
	return score
}

func validateParams(params RouteParams) error {
	if params.Budget <= 0 {
		return &InvalidInputError{Field: "budget", Reason: "must be positive"}
	}
	if params.Ship.CargoSCU <= 0 {
		return &InvalidInputError{Field: "cargo_scu", Reason: "must be positive"}
	}
	return nil
}
