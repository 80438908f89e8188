package uex

import (
	"strings"
	"time"
)

// Commodity is a validated commodity record from the UEX catalog.
type Commodity struct {
	ID      int32  `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Illegal bool   `json:"illegal"`
}

// Terminal is a validated trade terminal record.
type Terminal struct {
	ID         int32  `json:"id"`
	Name       string `json:"name"`
	StarSystem string `json:"star_system"`
	Planet     string `json:"planet"`

	// Data-quality signal: monitored terminals have crowd-verified prices.
	IsMonitored bool `json:"is_monitored"`

	HasTradeTerminal bool `json:"has_trade_terminal"`
	HasLoadingDock   bool `json:"has_loading_dock"`
	HasFreightElev   bool `json:"has_freight_elevator"`

	// RequiresLoadingDock is true when the loading dock is the terminal's only
	// cargo path, so ships without dock access cannot trade here. A freight
	// elevator at the ship's end never substitutes for dock access.
	RequiresLoadingDock bool `json:"requires_loading_dock"`
}

// PriceEntry is one commodity listing at one terminal.
// BuyPrice is what a player pays per SCU when buying here (0 = not sold here).
// SellPrice is what the terminal pays per SCU when the player sells here
// (0 = not bought here).
type PriceEntry struct {
	CommodityID int32   `json:"commodity_id"`
	TerminalID  int32   `json:"terminal_id"`
	BuyPrice    float64 `json:"buy_price"`
	SellPrice   float64 `json:"sell_price"`

	// StockSCU is the last reported purchasable stock, DemandSCU the last
	// reported sell-side demand. CapacitySCU is the terminal's known stock
	// ceiling for this commodity (0 = unknown).
	StockSCU    float64   `json:"stock_scu"`
	DemandSCU   float64   `json:"demand_scu"`
	CapacitySCU float64   `json:"capacity_scu"`
	ReportedAt  time.Time `json:"reported_at"`
}

// Catalog is an immutable market snapshot: commodities, terminals, and prices
// as of FetchedAt. It is refreshed wholesale and never mutated in place; route
// queries hold one snapshot for their whole duration.
type Catalog struct {
	ID        string    `json:"id"`
	FetchedAt time.Time `json:"fetched_at"`

	Commodities []Commodity        `json:"commodities"`
	Terminals   map[int32]Terminal `json:"terminals"`

	// Prices is keyed by commodity ID.
	Prices map[int32][]PriceEntry `json:"prices"`
}

// Empty reports whether the snapshot carries no usable market data.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.Commodities) == 0 || len(c.Prices) == 0
}

// Age returns the snapshot age at the given instant.
func (c *Catalog) Age(now time.Time) time.Duration {
	if c == nil || c.FetchedAt.IsZero() {
		return 0
	}
	return now.Sub(c.FetchedAt)
}

// KnowsLocation reports whether name matches any terminal, planet, or star
// system in the snapshot (case-insensitive). Used to validate a caller's
// current-location input before route computation.
func (c *Catalog) KnowsLocation(name string) bool {
	if c == nil {
		return false
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return false
	}
	for _, t := range c.Terminals {
		if strings.ToLower(t.Name) == needle ||
			strings.ToLower(t.StarSystem) == needle ||
			strings.ToLower(t.Planet) == needle {
			return true
		}
	}
	return false
}

// TerminalsAt returns the IDs of terminals at the given location name
// (terminal, planet, or star system match, case-insensitive). An empty name
// matches every terminal.
func (c *Catalog) TerminalsAt(name string) map[int32]bool {
	out := make(map[int32]bool, len(c.Terminals))
	needle := strings.ToLower(strings.TrimSpace(name))
	for id, t := range c.Terminals {
		if needle == "" ||
			strings.ToLower(t.Name) == needle ||
			strings.ToLower(t.StarSystem) == needle ||
			strings.ToLower(t.Planet) == needle {
			out[id] = true
		}
	}
	return out
}
