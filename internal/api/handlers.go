package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"uex-router/internal/config"
	"uex-router/internal/engine"
)

// routeRequest carries one commodity route query. Every field is optional;
// zero values fall back to the configured defaults.
type routeRequest struct {
	CargoSCU           float64 `json:"cargo_scu"`
	HasLoadingDock     *bool   `json:"has_loading_dock"`
	HasFreightElevator *bool   `json:"has_freight_elevator"`
	Budget             float64 `json:"budget"`
	Location           string  `json:"location"`
	Count              int     `json:"count"`

	UseEstimatedAvailability *bool `json:"use_estimated_availability"`
	AdvancedInfo             *bool `json:"advanced_info"`
}

// params merges the request with configured defaults into engine params.
func (req *routeRequest) params(cfg *config.Config) engine.RouteParams {
	p := engine.RouteParams{
		Ship: engine.Ship{
			CargoSCU:           cfg.ShipCargoSCU,
			HasLoadingDock:     cfg.ShipHasLoadingDock,
			HasFreightElevator: cfg.ShipHasFreightElevator,
		},
		Budget:                   cfg.Budget,
		CurrentLocation:          cfg.CurrentLocation,
		MaxResults:               req.Count,
		UseEstimatedAvailability: cfg.UseEstimatedAvailability,
		AdvancedInfo:             cfg.AdvancedInfo,
	}
	if req.CargoSCU > 0 {
		p.Ship.CargoSCU = req.CargoSCU
	}
	if req.HasLoadingDock != nil {
		p.Ship.HasLoadingDock = *req.HasLoadingDock
	}
	if req.HasFreightElevator != nil {
		p.Ship.HasFreightElevator = *req.HasFreightElevator
	}
	if req.Budget > 0 {
		p.Budget = req.Budget
	}
	if req.Location != "" {
		p.CurrentLocation = req.Location
	}
	if req.UseEstimatedAvailability != nil {
		p.UseEstimatedAvailability = *req.UseEstimatedAvailability
	}
	if req.AdvancedInfo != nil {
		p.AdvancedInfo = *req.AdvancedInfo
	}
	return p
}

func (s *Server) handleCommodityRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	cat, err := s.catalog.Snapshot(r.Context())
	if err != nil {
		writeJSON(w, &engine.RouteResponse{Status: engine.StatusNoCatalogData, Message: err.Error()})
		return
	}

	s.mu.RLock()
	cfg := s.cfg
	router := s.router
	s.mu.RUnlock()

	params := req.params(cfg)
	report, err := router.FindRoutes(r.Context(), cat, params)
	if err != nil {
		var invalid *engine.InvalidInputError
		var noData *engine.NoCatalogDataError
		switch {
		case errors.As(err, &invalid):
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, &engine.RouteResponse{Status: engine.StatusInvalidInput, Message: invalid.Error()})
		case errors.As(err, &noData):
			writeJSON(w, &engine.RouteResponse{Status: engine.StatusNoCatalogData, Message: noData.Error()})
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	resp := engine.ShapeRoutes(report, req.Count, params.AdvancedInfo)

	if s.db != nil {
		topProfit := 0.0
		if len(resp.Routes) > 0 {
			topProfit = resp.Routes[0].Profit
		}
		s.db.InsertRouteHistory(params.CurrentLocation, resp.TotalRoutes, topProfit)
	}

	writeJSON(w, resp)
}

// profitRequest is the standalone profit calculation tool input.
type profitRequest struct {
	BuyPrice  float64 `json:"buy_price"`
	SellPrice float64 `json:"sell_price"`
	Quantity  int32   `json:"quantity"`
}

type profitResponse struct {
	Profit            float64 `json:"profit"`
	MarginPercent     float64 `json:"margin_percent"`
	BaseProfitPercent float64 `json:"base_profit_percent"`
	ProfitDisplay     string  `json:"profit_display"`
	MarginDisplay     string  `json:"margin_display"`
}

func (s *Server) handleProfitTool(w http.ResponseWriter, r *http.Request) {
	var req profitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	profit, err := engine.Profit(req.BuyPrice, req.SellPrice, req.Quantity)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	margin, err := engine.MarginPercent(req.BuyPrice, req.SellPrice)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	base, _ := engine.BaseProfitPercent(req.BuyPrice, req.SellPrice)

	writeJSON(w, profitResponse{
		Profit:            profit,
		MarginPercent:     margin,
		BaseProfitPercent: base,
		ProfitDisplay:     engine.FormatCurrency(profit),
		MarginDisplay:     engine.FormatPercent(margin),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	type status struct {
		Ready      bool      `json:"ready"`
		CatalogAge string    `json:"catalog_age,omitempty"`
		Time       time.Time `json:"time"`
	}
	out := status{Time: time.Now()}

	cat, err := s.catalog.Snapshot(r.Context())
	if err == nil && !cat.Empty() {
		out.Ready = true
		out.CatalogAge = cat.Age(time.Now()).Round(time.Second).String()
	}
	writeJSON(w, out)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.config())
}

// handleSetConfig applies a partial update: only keys present in the body
// change; everything else keeps its stored value.
func (s *Server) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	var patch map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	cfg := *s.config()

	if v, ok := patch["commodity_route_default_count"]; ok {
		json.Unmarshal(v, &cfg.CommodityRouteDefaultCount)
	}
	if v, ok := patch["commodity_route_use_estimated_availability"]; ok {
		json.Unmarshal(v, &cfg.UseEstimatedAvailability)
	}
	if v, ok := patch["commodity_route_advanced_info"]; ok {
		json.Unmarshal(v, &cfg.AdvancedInfo)
	}
	if v, ok := patch["ship_cargo_scu"]; ok {
		json.Unmarshal(v, &cfg.ShipCargoSCU)
	}
	if v, ok := patch["ship_has_loading_dock"]; ok {
		json.Unmarshal(v, &cfg.ShipHasLoadingDock)
	}
	if v, ok := patch["ship_has_freight_elevator"]; ok {
		json.Unmarshal(v, &cfg.ShipHasFreightElevator)
	}
	if v, ok := patch["budget"]; ok {
		json.Unmarshal(v, &cfg.Budget)
	}
	if v, ok := patch["current_location"]; ok {
		json.Unmarshal(v, &cfg.CurrentLocation)
	}
	if v, ok := patch["catalog_ttl_minutes"]; ok {
		json.Unmarshal(v, &cfg.CatalogTTLMinutes)
	}
	if v, ok := patch["uex_api_token"]; ok {
		json.Unmarshal(v, &cfg.UEXAPIToken)
	}

	// Validate bounds
	if cfg.CommodityRouteDefaultCount < 1 {
		cfg.CommodityRouteDefaultCount = engine.DefaultRouteCount
	}
	if cfg.ShipCargoSCU < 0 {
		cfg.ShipCargoSCU = 0
	}
	if cfg.Budget < 0 {
		cfg.Budget = 0
	}
	if cfg.CatalogTTLMinutes < 1 {
		cfg.CatalogTTLMinutes = 1
	}

	s.mu.Lock()
	s.cfg = &cfg
	s.router = engine.NewRouter(cfg.CommodityRouteDefaultCount)
	s.mu.Unlock()

	if s.db != nil {
		if err := s.db.SaveConfig(&cfg); err != nil {
			writeError(w, http.StatusInternalServerError, "save config: "+err.Error())
			return
		}
	}
	writeJSON(w, &cfg)
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, []struct{}{})
		return
	}
	records := s.db.GetRouteHistory(20)
	writeJSON(w, records)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		s.db.ClearRouteHistory()
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *Server) handleCatalogRefresh(w http.ResponseWriter, r *http.Request) {
	s.catalog.Invalidate()
	cat, err := s.catalog.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "refresh failed: "+err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{
		"ok":          true,
		"commodities": len(cat.Commodities),
		"terminals":   len(cat.Terminals),
	})
}
