package engine

import (
	"context"
	"math"
	"sync"
	"time"

	"uex-router/internal/uex"
)

// candidateWorkers bounds the per-commodity fan-out. Leg construction is pure
// CPU over an immutable snapshot, so a small pool is enough.
const candidateWorkers = 8

// buildCandidates constructs the full feasible-leg set for one query: every
// (buy terminal, sell terminal) pair, per legal commodity, that the ship and
// budget can actually execute. No profitability filtering happens here: a
// zero or negative margin leg is still a feasible leg, and ranking decides
// what the caller sees.
func buildCandidates(ctx context.Context, cat *uex.Catalog, params RouteParams, now time.Time) []CandidateLeg {
	buyScope := cat.TerminalsAt(params.CurrentLocation)

	var mu sync.Mutex
	var all []CandidateLeg
	var wg sync.WaitGroup
	sem := make(chan struct{}, candidateWorkers)

	for _, c := range cat.Commodities {
		if c.Illegal {
			continue
		}
		wg.Add(1)
		go func(c uex.Commodity) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}
			legs := commodityLegs(cat, c, params, buyScope, now)
			if len(legs) == 0 {
				return
			}
			mu.Lock()
			all = append(all, legs...)
			mu.Unlock()
		}(c)
	}
	wg.Wait()

	return all
}

// commodityLegs builds all feasible legs for a single commodity.
func commodityLegs(cat *uex.Catalog, c uex.Commodity, params RouteParams, buyScope map[int32]bool, now time.Time) []CandidateLeg {
	entries := cat.Prices[c.ID]
	if len(entries) == 0 {
		return nil
	}

	var buys, sells []uex.PriceEntry
	for _, e := range entries {
		t, ok := cat.Terminals[e.TerminalID]
		if !ok {
			continue
		}
		if buyScope[e.TerminalID] && canBuyAt(c, e, params.Ship, t) {
			buys = append(buys, e)
		}
		if canSellAt(c, e, params.Ship, t) {
			sells = append(sells, e)
		}
	}
	if len(buys) == 0 || len(sells) == 0 {
		return nil
	}

	var legs []CandidateLeg
	for _, buy := range buys {
		avail := EstimateAvailability(buy, now, params.UseEstimatedAvailability)
		affordable := math.Floor(params.Budget / buy.BuyPrice)
		unitsF := math.Floor(math.Min(params.Ship.CargoSCU, math.Min(avail, affordable)))
		if unitsF < 1 {
			continue
		}
		if unitsF > math.MaxInt32 {
			unitsF = math.MaxInt32
		}
		units := int32(unitsF)

		for _, sell := range sells {
			if sell.TerminalID == buy.TerminalID {
				continue
			}

			profit, err := Profit(buy.BuyPrice, sell.SellPrice, units)
			if err != nil {
				continue
			}
			margin, err := MarginPercent(buy.BuyPrice, sell.SellPrice)
			if err != nil {
				continue
			}

			legs = append(legs, CandidateLeg{
				CommodityID:       c.ID,
				CommodityName:     c.Name,
				BuyTerminalID:     buy.TerminalID,
				SellTerminalID:    sell.TerminalID,
				BuyPrice:          buy.BuyPrice,
				SellPrice:         sell.SellPrice,
				Units:             units,
				Investment:        buy.BuyPrice * float64(units),
				Profit:            profit,
				MarginPercent:     margin,
				BaseProfitPercent: margin,
			})
		}
	}
	return legs
}
