package uex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const baseURL = "https://api.uexcorp.space/2.0"

// Client is a rate-limited UEX API HTTP client.
type Client struct {
	http  *http.Client
	sem   chan struct{}
	token string
	base  string
}

// NewClient creates a UEX client. The token is optional; anonymous requests
// are rate-limited harder by the upstream API.
func NewClient(token string) *Client {
	return &Client{
		http:  &http.Client{Timeout: 30 * time.Second},
		sem:   make(chan struct{}, 10),
		token: token,
		base:  baseURL,
	}
}

// HealthCheck pings the UEX API to verify connectivity.
func (c *Client) HealthCheck() bool {
	var envelope struct {
		Status string `json:"status"`
	}
	if err := c.GetJSON(context.Background(), c.base+"/commodities", &envelope); err != nil {
		return false
	}
	return true
}

// GetJSON fetches a URL and decodes JSON into dst.
func (c *Client) GetJSON(ctx context.Context, url string, dst interface{}) error {
	c.sem <- struct{}{}
	defer func() { <-c.sem }()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "uex-router/1.0")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("UEX %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// --- Raw API payloads ---
//
// The UEX API is loosely typed: booleans arrive as 0/1 integers and timestamps
// as strings. These structs exist only at the boundary; everything downstream
// sees the validated Catalog types.

type rawCommodity struct {
	ID         int32  `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	IsIllegal  int    `json:"is_illegal"`
	IsBuyable  int    `json:"is_buyable"`
	IsSellable int    `json:"is_sellable"`
}

type rawTerminal struct {
	ID                 int32  `json:"id"`
	Name               string `json:"name"`
	StarSystemName     string `json:"star_system_name"`
	PlanetName         string `json:"planet_name"`
	IsMonitored        int    `json:"is_monitored"`
	IsAvailable        int    `json:"is_available"`
	HasTradeTerminal   int    `json:"has_trade_terminal"`
	HasLoadingDock     int    `json:"has_loading_dock"`
	HasFreightElevator int    `json:"has_freight_elevator"`
}

type rawPrice struct {
	IDCommodity  int32   `json:"id_commodity"`
	IDTerminal   int32   `json:"id_terminal"`
	PriceBuy     float64 `json:"price_buy"`
	PriceSell    float64 `json:"price_sell"`
	ScuBuy       float64 `json:"scu_buy"`
	ScuSellStock float64 `json:"scu_sell_stock"`
	ScuBuyTotal  float64 `json:"scu_buy_total"`
	DateModified int64   `json:"date_modified"` // unix seconds
}

type envelope[T any] struct {
	Status string `json:"status"`
	Data   []T    `json:"data"`
}

func fetchList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var env envelope[T]
	if err := c.GetJSON(ctx, c.base+path, &env); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if env.Status != "ok" {
		return nil, fmt.Errorf("fetch %s: status %q", path, env.Status)
	}
	return env.Data, nil
}

// FetchCatalog downloads commodities, terminals and prices in parallel and
// maps them into one validated snapshot.
func (c *Client) FetchCatalog(ctx context.Context) (*Catalog, error) {
	var (
		commodities []rawCommodity
		terminals   []rawTerminal
		prices      []rawPrice
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		commodities, err = fetchList[rawCommodity](gctx, c, "/commodities")
		return err
	})
	g.Go(func() (err error) {
		terminals, err = fetchList[rawTerminal](gctx, c, "/terminals")
		return err
	})
	g.Go(func() (err error) {
		prices, err = fetchList[rawPrice](gctx, c, "/commodities_prices_all")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildCatalog(commodities, terminals, prices, time.Now()), nil
}

// buildCatalog validates raw payloads into an immutable snapshot. Rows that
// reference unknown commodities or terminals, or that carry neither a buy nor
// a sell price, are dropped at this boundary.
func buildCatalog(commodities []rawCommodity, terminals []rawTerminal, prices []rawPrice, now time.Time) *Catalog {
	cat := &Catalog{
		ID:        uuid.NewString(),
		FetchedAt: now,
		Terminals: make(map[int32]Terminal, len(terminals)),
		Prices:    make(map[int32][]PriceEntry),
	}

	commodityIDs := make(map[int32]bool, len(commodities))
	for _, rc := range commodities {
		if rc.ID <= 0 || rc.Name == "" {
			continue
		}
		commodityIDs[rc.ID] = true
		cat.Commodities = append(cat.Commodities, Commodity{
			ID:      rc.ID,
			Name:    rc.Name,
			Code:    rc.Code,
			Illegal: rc.IsIllegal == 1,
		})
	}

	for _, rt := range terminals {
		if rt.ID <= 0 || rt.Name == "" || rt.IsAvailable == 0 {
			continue
		}
		hasDock := rt.HasLoadingDock == 1
		hasElev := rt.HasFreightElevator == 1
		cat.Terminals[rt.ID] = Terminal{
			ID:               rt.ID,
			Name:             rt.Name,
			StarSystem:       rt.StarSystemName,
			Planet:           rt.PlanetName,
			IsMonitored:      rt.IsMonitored == 1,
			HasTradeTerminal: rt.HasTradeTerminal == 1,
			HasLoadingDock:   hasDock,
			HasFreightElev:   hasElev,
			// Dock-only terminals have no other cargo path.
			RequiresLoadingDock: hasDock && !hasElev,
		}
	}

	for _, rp := range prices {
		if !commodityIDs[rp.IDCommodity] {
			continue
		}
		if _, ok := cat.Terminals[rp.IDTerminal]; !ok {
			continue
		}
		if rp.PriceBuy <= 0 && rp.PriceSell <= 0 {
			continue
		}
		reported := now
		if rp.DateModified > 0 {
			reported = time.Unix(rp.DateModified, 0)
		}
		cat.Prices[rp.IDCommodity] = append(cat.Prices[rp.IDCommodity], PriceEntry{
			CommodityID: rp.IDCommodity,
			TerminalID:  rp.IDTerminal,
			BuyPrice:    rp.PriceBuy,
			SellPrice:   rp.PriceSell,
			StockSCU:    rp.ScuBuy,
			DemandSCU:   rp.ScuSellStock,
			CapacitySCU: rp.ScuBuyTotal,
			ReportedAt:  reported,
		})
	}

	return cat
}
