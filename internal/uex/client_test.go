package uex

import (
	"testing"
	"time"
)

func TestBuildCatalog_MapsAndValidates(t *testing.T) {
	now := time.Now()
	commodities := []rawCommodity{
		{ID: 1, Name: "Agricium", Code: "AGRI"},
		{ID: 2, Name: "WiDoW", Code: "WIDO", IsIllegal: 1},
		{ID: 0, Name: "Broken"}, // invalid ID, dropped
		{ID: 3, Name: ""},       // missing name, dropped
	}
	terminals := []rawTerminal{
		{ID: 10, Name: "Port Olisar", StarSystemName: "Stanton", PlanetName: "Crusader",
			IsAvailable: 1, IsMonitored: 1, HasTradeTerminal: 1, HasFreightElevator: 1},
		{ID: 11, Name: "Dock Yard", StarSystemName: "Stanton",
			IsAvailable: 1, HasTradeTerminal: 1, HasLoadingDock: 1},
		{ID: 12, Name: "Closed Outpost", IsAvailable: 0, HasTradeTerminal: 1}, // unavailable, dropped
	}
	prices := []rawPrice{
		{IDCommodity: 1, IDTerminal: 10, PriceBuy: 10, ScuBuy: 200, ScuBuyTotal: 1000, DateModified: now.Add(-time.Hour).Unix()},
		{IDCommodity: 1, IDTerminal: 11, PriceSell: 25},
		{IDCommodity: 1, IDTerminal: 99, PriceBuy: 5},  // unknown terminal, dropped
		{IDCommodity: 99, IDTerminal: 10, PriceBuy: 5}, // unknown commodity, dropped
		{IDCommodity: 2, IDTerminal: 10},               // no price either way, dropped
	}

	cat := buildCatalog(commodities, terminals, prices, now)

	if cat.ID == "" {
		t.Error("catalog must carry a snapshot ID")
	}
	if len(cat.Commodities) != 2 {
		t.Fatalf("commodities = %d, want 2", len(cat.Commodities))
	}
	if !cat.Commodities[1].Illegal {
		t.Error("is_illegal=1 must map to Illegal")
	}

	if len(cat.Terminals) != 2 {
		t.Fatalf("terminals = %d, want 2 (unavailable dropped)", len(cat.Terminals))
	}
	olisar := cat.Terminals[10]
	if !olisar.IsMonitored || !olisar.HasTradeTerminal || !olisar.HasFreightElev {
		t.Errorf("terminal 10 flags not mapped: %+v", olisar)
	}
	if olisar.RequiresLoadingDock {
		t.Error("a terminal with a freight elevator never requires dock access")
	}
	dockYard := cat.Terminals[11]
	if !dockYard.RequiresLoadingDock {
		t.Error("dock-only terminal must require loading dock access")
	}

	entries := cat.Prices[1]
	if len(entries) != 2 {
		t.Fatalf("price entries for commodity 1 = %d, want 2", len(entries))
	}
	if entries[0].StockSCU != 200 || entries[0].CapacitySCU != 1000 {
		t.Errorf("stock/capacity not mapped: %+v", entries[0])
	}
	if got := entries[0].ReportedAt.Unix(); got != now.Add(-time.Hour).Unix() {
		t.Errorf("ReportedAt = %d, want the report's date_modified", got)
	}
	if len(cat.Prices[2]) != 0 {
		t.Error("priceless row must be dropped")
	}
}

func TestBuildCatalog_MissingTimestampDefaultsToNow(t *testing.T) {
	now := time.Now()
	cat := buildCatalog(
		[]rawCommodity{{ID: 1, Name: "Agricium"}},
		[]rawTerminal{{ID: 10, Name: "Port Olisar", IsAvailable: 1, HasTradeTerminal: 1, HasFreightElevator: 1}},
		[]rawPrice{{IDCommodity: 1, IDTerminal: 10, PriceBuy: 10}},
		now,
	)
	if got := cat.Prices[1][0].ReportedAt; !got.Equal(now) {
		t.Errorf("ReportedAt = %v, want fetch time %v", got, now)
	}
}
