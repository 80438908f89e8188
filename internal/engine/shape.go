package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// MaxListEntries is the uniform cap for list-shaped tool output when the
// caller did not request a specific count. Whenever the cap truncates, the
// true total is still reported alongside.
const MaxListEntries = 5

// ShapedRoute is one route formatted for the assistant layer. Numeric fields
// stay machine-readable; the display fields are pre-formatted for
// text-to-speech, which is why negative percentages read "minus N%" instead
// of carrying a sign.
type ShapedRoute struct {
	Rank          int    `json:"rank"`
	Commodity     string `json:"commodity"`
	BuyTerminal   string `json:"buy_terminal"`
	SellTerminal  string `json:"sell_terminal"`
	BuySystem     string `json:"buy_system,omitempty"`
	SellSystem    string `json:"sell_system,omitempty"`

	BuyPrice  float64 `json:"buy_price"`
	SellPrice float64 `json:"sell_price"`
	Units     int32   `json:"units"`
	Profit    float64 `json:"profit"`

	UnitsDisplay  string `json:"units_display"`
	ProfitDisplay string `json:"profit_display"`

	// Advanced-info fields, omitted in the default verbosity mode.
	MarginDisplay     string   `json:"margin_display,omitempty"`
	BaseProfitDisplay string   `json:"base_profit_display,omitempty"`
	InvestmentDisplay string   `json:"investment_display,omitempty"`
	BuyMonitored      *bool    `json:"buy_terminal_monitored,omitempty"`
	SellMonitored     *bool    `json:"sell_terminal_monitored,omitempty"`
	Score             *float64 `json:"score,omitempty"`
}

// RouteResponse is the caller-facing result of the commodity route tool.
// TotalRoutes always reflects the true number of profitable routes found,
// even when Routes was truncated.
type RouteResponse struct {
	Status      RouteStatus   `json:"status"`
	Message     string        `json:"message,omitempty"`
	TotalRoutes int           `json:"total_routes"`
	Routes      []ShapedRoute `json:"routes"`
}

// ShapeRoutes formats a ranked report for the assistant layer.
// requestedCount > 0 means the caller chose its own list length and the
// MaxListEntries cap does not apply; otherwise output is capped at
// MaxListEntries.
func ShapeRoutes(report *RouteReport, requestedCount int, advanced bool) *RouteResponse {
	resp := &RouteResponse{
		Status:      report.Status,
		TotalRoutes: report.TotalProfitable,
		Routes:      []ShapedRoute{},
	}
	if report.Status == StatusNoProfitableRoute {
		resp.Message = "no profitable route found"
		return resp
	}

	routes := report.Routes
	if requestedCount <= 0 && len(routes) > MaxListEntries {
		routes = routes[:MaxListEntries]
	}

	for _, r := range routes {
		shaped := ShapedRoute{
			Rank:          r.Rank,
			Commodity:     r.CommodityName,
			BuyTerminal:   r.BuyTerminalName,
			SellTerminal:  r.SellTerminalName,
			BuySystem:     r.BuySystem,
			SellSystem:    r.SellSystem,
			BuyPrice:      r.BuyPrice,
			SellPrice:     r.SellPrice,
			Units:         r.Units,
			Profit:        r.Profit,
			UnitsDisplay:  fmt.Sprintf("%s SCU", humanize.Comma(int64(r.Units))),
			ProfitDisplay: FormatCurrency(r.Profit),
		}
		if advanced {
			buyMon, sellMon, score := r.BuyTerminalMonitored, r.SellTerminalMonitored, r.Score
			shaped.MarginDisplay = FormatPercent(r.MarginPercent)
			shaped.BaseProfitDisplay = FormatPercent(r.BaseProfitPercent)
			shaped.InvestmentDisplay = FormatCurrency(r.Investment)
			shaped.BuyMonitored = &buyMon
			shaped.SellMonitored = &sellMon
			shaped.Score = &score
		}
		resp.Routes = append(resp.Routes, shaped)
	}
	return resp
}

// FormatPercent renders a percentage for voice output. Negative values are
// spelled "minus N%" because TTS engines tend to swallow a leading hyphen.
func FormatPercent(v float64) string {
	rounded := math.Round(v*100) / 100
	s := humanize.CommafWithDigits(math.Abs(rounded), 2)
	if rounded < 0 {
		return "minus " + s + "%"
	}
	return s + "%"
}

// FormatCurrency renders an aUEC amount for voice output, with the same
// "minus" convention as FormatPercent.
func FormatCurrency(v float64) string {
	rounded := math.Round(v*100) / 100
	s := humanize.CommafWithDigits(math.Abs(rounded), 2) + " aUEC"
	if rounded < 0 {
		return "minus " + s
	}
	return s
}

// RouteSummary builds a one-line spoken summary of the top route, used by the
// assistant when the caller asks for a quick answer.
func RouteSummary(resp *RouteResponse) string {
	if len(resp.Routes) == 0 {
		return "No profitable route found."
	}
	top := resp.Routes[0]
	var b strings.Builder
	fmt.Fprintf(&b, "Buy %s %s at %s, sell at %s for %s profit.",
		top.UnitsDisplay, top.Commodity, top.BuyTerminal, top.SellTerminal, top.ProfitDisplay)
	if resp.TotalRoutes > len(resp.Routes) {
		fmt.Fprintf(&b, " %d profitable routes found in total.", resp.TotalRoutes)
	}
	return b.String()
}
