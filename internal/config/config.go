package config

// Config holds application settings (in-memory representation).
// Persistence is handled by the internal/db package.
//
// The commodity route options mirror the assistant skill configuration surface:
// each recognized option is an explicit field, there is no ambient settings map.
type Config struct {
	// Commodity route tool options.
	CommodityRouteDefaultCount int  `json:"commodity_route_default_count"`
	UseEstimatedAvailability   bool `json:"commodity_route_use_estimated_availability"`
	AdvancedInfo               bool `json:"commodity_route_advanced_info"`

	// Default ship profile used when a query does not carry its own.
	ShipCargoSCU           float64 `json:"ship_cargo_scu"`
	ShipHasLoadingDock     bool    `json:"ship_has_loading_dock"`
	ShipHasFreightElevator bool    `json:"ship_has_freight_elevator"`

	// Default trade context.
	Budget          float64 `json:"budget"`
	CurrentLocation string  `json:"current_location"`

	// Catalog refresh behavior.
	CatalogTTLMinutes int    `json:"catalog_ttl_minutes"`
	UEXAPIToken       string `json:"uex_api_token"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		CommodityRouteDefaultCount: 3,
		UseEstimatedAvailability:   false,
		AdvancedInfo:               false,
		ShipCargoSCU:               96, // Freelancer MAX-class hauler
		ShipHasLoadingDock:         false,
		ShipHasFreightElevator:     true,
		Budget:                     50000,
		CatalogTTLMinutes:          30,
	}
}
