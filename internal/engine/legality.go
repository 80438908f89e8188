package engine

import "uex-router/internal/uex"

// Legality and logistics filtering. Pure predicates, no side effects.
//
// Illegal commodities are excluded from route computation unconditionally:
// the "legal only" business rule is not caller-togglable.

func tradeableTerminal(ship Ship, t uex.Terminal) bool {
	if !t.HasTradeTerminal {
		return false
	}
	// A freight elevator on either side never satisfies a loading-dock
	// requirement; only dock access does.
	if t.RequiresLoadingDock && !ship.HasLoadingDock {
		return false
	}
	return true
}

func canBuyAt(c uex.Commodity, entry uex.PriceEntry, ship Ship, t uex.Terminal) bool {
	if c.Illegal {
		return false
	}
	if entry.BuyPrice <= 0 {
		return false
	}
	return tradeableTerminal(ship, t)
}

func canSellAt(c uex.Commodity, entry uex.PriceEntry, ship Ship, t uex.Terminal) bool {
	if c.Illegal {
		return false
	}
	if entry.SellPrice <= 0 {
		return false
	}
	return tradeableTerminal(ship, t)
}

// CanBuyAt reports whether the commodity can legally be bought by this ship
// at this terminal. Exported for API-level safety filters.
func CanBuyAt(c uex.Commodity, entry uex.PriceEntry, ship Ship, t uex.Terminal) bool {
	return canBuyAt(c, entry, ship, t)
}

// CanSellAt reports whether the commodity can legally be sold by this ship
// at this terminal.
func CanSellAt(c uex.Commodity, entry uex.PriceEntry, ship Ship, t uex.Terminal) bool {
	return canSellAt(c, entry, ship, t)
}
