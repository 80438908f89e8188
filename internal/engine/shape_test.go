package engine

import (
	"strings"
	"testing"
)

func sampleReport(n int) *RouteReport {
	routes := make([]RankedRoute, n)
	for i := range routes {
		routes[i] = RankedRoute{
			Rank: i + 1,
			CandidateLeg: CandidateLeg{
				CommodityID:       10,
				CommodityName:     "Agricium",
				BuyTerminalID:     1,
				SellTerminalID:    2,
				BuyPrice:          10,
				SellPrice:         25,
				Units:             100,
				Investment:        1000,
				Profit:            1500,
				MarginPercent:     150,
				BaseProfitPercent: 150,
			},
			BuyTerminalName:  "Terminal A",
			SellTerminalName: "Terminal B",
		}
	}
	return &RouteReport{Status: StatusOK, Routes: routes, TotalProfitable: n}
}

func TestShapeRoutes_DefaultCap(t *testing.T) {
	resp := ShapeRoutes(sampleReport(8), 0, false)
	if len(resp.Routes) != MaxListEntries {
		t.Errorf("routes = %d, want cap %d", len(resp.Routes), MaxListEntries)
	}
	if resp.TotalRoutes != 8 {
		t.Errorf("TotalRoutes = %d, want the true total 8", resp.TotalRoutes)
	}
}

func TestShapeRoutes_RequestedCountBypassesCap(t *testing.T) {
	resp := ShapeRoutes(sampleReport(8), 8, false)
	if len(resp.Routes) != 8 {
		t.Errorf("routes = %d, want all 8 when the caller chose the count", len(resp.Routes))
	}
}

func TestShapeRoutes_NoProfitableRoute(t *testing.T) {
	report := &RouteReport{Status: StatusNoProfitableRoute, Routes: []RankedRoute{}}
	resp := ShapeRoutes(report, 0, false)
	if resp.Status != StatusNoProfitableRoute {
		t.Errorf("status = %q", resp.Status)
	}
	if len(resp.Routes) != 0 || resp.TotalRoutes != 0 {
		t.Errorf("routes/total = %d/%d, want empty", len(resp.Routes), resp.TotalRoutes)
	}
	if resp.Message == "" {
		t.Error("expected an explanatory message")
	}
}

func TestShapeRoutes_AdvancedFields(t *testing.T) {
	resp := ShapeRoutes(sampleReport(1), 0, true)
	r := resp.Routes[0]
	if r.MarginDisplay == "" || r.InvestmentDisplay == "" {
		t.Error("advanced display fields missing")
	}
	if r.BuyMonitored == nil || r.SellMonitored == nil || r.Score == nil {
		t.Error("advanced pointer fields missing")
	}

	plain := ShapeRoutes(sampleReport(1), 0, false).Routes[0]
	if plain.MarginDisplay != "" || plain.BuyMonitored != nil || plain.Score != nil {
		t.Error("advanced fields leaked into default verbosity mode")
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{150, "150%"},
		{150.456, "150.46%"},
		{0, "0%"},
		{-12.5, "minus 12.5%"},
		{1234.5, "1,234.5%"},
	}
	for _, tc := range cases {
		if got := FormatPercent(tc.in); got != tc.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1500, "1,500 aUEC"},
		{-60, "minus 60 aUEC"},
		{0.125, "0.13 aUEC"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRouteSummary(t *testing.T) {
	resp := ShapeRoutes(sampleReport(8), 0, false)
	s := RouteSummary(resp)
	for _, frag := range []string{"Agricium", "Terminal A", "Terminal B", "100 SCU", "8 profitable routes"} {
		if !strings.Contains(s, frag) {
			t.Errorf("summary %q missing %q", s, frag)
		}
	}
}

func TestRouteSummary_Empty(t *testing.T) {
	resp := ShapeRoutes(&RouteReport{Status: StatusNoProfitableRoute, Routes: []RankedRoute{}}, 0, false)
	if s := RouteSummary(resp); s != "No profitable route found." {
		t.Errorf("summary = %q", s)
	}
}
