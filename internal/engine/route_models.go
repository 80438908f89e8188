package engine

// Ship describes the cargo and docking profile of the player's ship.
// A loading dock and a freight elevator are distinct logistics paths; a
// freight elevator never satisfies a terminal's loading-dock requirement.
type Ship struct {
	CargoSCU           float64 `json:"cargo_scu"`
	HasLoadingDock     bool    `json:"has_loading_dock"`
	HasFreightElevator bool    `json:"has_freight_elevator"`
}

// RouteParams holds the input parameters for one commodity route query.
type RouteParams struct {
	Ship            Ship
	Budget          float64 // aUEC available for the buy leg
	CurrentLocation string  // "" = anywhere; otherwise must resolve in the catalog
	MaxResults      int     // 0 = use the configured default count

	UseEstimatedAvailability bool
	AdvancedInfo             bool
}

// CandidateLeg is one feasible buy-at-terminal, sell-at-terminal trade for a
// single commodity. Built transiently per query, never persisted.
type CandidateLeg struct {
	CommodityID    int32  `json:"commodity_id"`
	CommodityName  string `json:"commodity_name"`
	BuyTerminalID  int32  `json:"buy_terminal_id"`
	SellTerminalID int32  `json:"sell_terminal_id"`

	BuyPrice  float64 `json:"buy_price"`
	SellPrice float64 `json:"sell_price"`

	// Units is min(cargo capacity, estimated buy availability,
	// floor(budget / buy price)), always >= 1 for an emitted leg.
	Units      int32   `json:"units"`
	Investment float64 `json:"investment"`

	Profit            float64 `json:"profit"`
	MarginPercent     float64 `json:"margin_percent"`
	BaseProfitPercent float64 `json:"base_profit_percent"`
}

// RankedRoute is a CandidateLeg after ranking, enriched with terminal names
// and, when advanced info was requested, data-quality flags and the internal
// desirability score.
type RankedRoute struct {
	Rank int `json:"rank"`
	CandidateLeg

	BuyTerminalName  string `json:"buy_terminal_name"`
	SellTerminalName string `json:"sell_terminal_name"`
	BuySystem        string `json:"buy_system"`
	SellSystem       string `json:"sell_system"`

	// Advanced-info fields.
	BuyTerminalMonitored  bool    `json:"buy_terminal_monitored,omitempty"`
	SellTerminalMonitored bool    `json:"sell_terminal_monitored,omitempty"`
	Score                 float64 `json:"score,omitempty"`
}

// RouteStatus is the terminal outcome of a route query.
type RouteStatus string

const (
	// StatusOK means at least one profitable route was found.
	StatusOK RouteStatus = "ok-with-routes"
	// StatusNoProfitableRoute means the query was valid but no candidate had
	// positive profit. This is a normal outcome, not an error.
	StatusNoProfitableRoute RouteStatus = "ok-no-profitable-route"
	// StatusInvalidInput means the constraints were rejected before any
	// computation ran.
	StatusInvalidInput RouteStatus = "invalid-input"
	// StatusNoCatalogData means no usable market snapshot was available.
	StatusNoCatalogData RouteStatus = "no-catalog-data"
)

// RouteReport is the full result of one route query: ranked routes plus the
// true number of profitable candidates found (which may exceed len(Routes)
// when the list was truncated to the requested count).
type RouteReport struct {
	Status          RouteStatus   `json:"status"`
	Routes          []RankedRoute `json:"routes"`
	TotalProfitable int           `json:"total_profitable"`
}
