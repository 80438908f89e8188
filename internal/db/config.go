package db

import (
	"strconv"

	"uex-router/internal/config"
)

// LoadConfig reads config from SQLite. Missing keys keep their defaults.
func (d *DB) LoadConfig() *config.Config {
	cfg := config.Default()

	rows, err := d.sql.Query("SELECT key, value FROM config")
	if err != nil {
		return cfg
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var k, v string
		rows.Scan(&k, &v)
		m[k] = v
	}

	if len(m) == 0 {
		return cfg
	}

	if v, ok := m["commodity_route_default_count"]; ok {
		cfg.CommodityRouteDefaultCount, _ = strconv.Atoi(v)
	}
	if v, ok := m["commodity_route_use_estimated_availability"]; ok {
		cfg.UseEstimatedAvailability, _ = strconv.ParseBool(v)
	}
	if v, ok := m["commodity_route_advanced_info"]; ok {
		cfg.AdvancedInfo, _ = strconv.ParseBool(v)
	}
	if v, ok := m["ship_cargo_scu"]; ok {
		cfg.ShipCargoSCU, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["ship_has_loading_dock"]; ok {
		cfg.ShipHasLoadingDock, _ = strconv.ParseBool(v)
	}
	if v, ok := m["ship_has_freight_elevator"]; ok {
		cfg.ShipHasFreightElevator, _ = strconv.ParseBool(v)
	}
	if v, ok := m["budget"]; ok {
		cfg.Budget, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["current_location"]; ok {
		cfg.CurrentLocation = v
	}
	if v, ok := m["catalog_ttl_minutes"]; ok {
		cfg.CatalogTTLMinutes, _ = strconv.Atoi(v)
	}
	if v, ok := m["uex_api_token"]; ok {
		cfg.UEXAPIToken = v
	}

	return cfg
}

// SaveConfig writes all config values to SQLite as key/value rows.
func (d *DB) SaveConfig(cfg *config.Config) error {
	tx, err := d.sql.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	set := func(key, value string) {
		if err == nil {
			_, err = tx.Exec(
				"INSERT INTO config (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
				key, value,
			)
		}
	}

	set("commodity_route_default_count", strconv.Itoa(cfg.CommodityRouteDefaultCount))
	set("commodity_route_use_estimated_availability", strconv.FormatBool(cfg.UseEstimatedAvailability))
	set("commodity_route_advanced_info", strconv.FormatBool(cfg.AdvancedInfo))
	set("ship_cargo_scu", strconv.FormatFloat(cfg.ShipCargoSCU, 'f', -1, 64))
	set("ship_has_loading_dock", strconv.FormatBool(cfg.ShipHasLoadingDock))
	set("ship_has_freight_elevator", strconv.FormatBool(cfg.ShipHasFreightElevator))
	set("budget", strconv.FormatFloat(cfg.Budget, 'f', -1, 64))
	set("current_location", cfg.CurrentLocation)
	set("catalog_ttl_minutes", strconv.Itoa(cfg.CatalogTTLMinutes))
	set("uex_api_token", cfg.UEXAPIToken)
	if err != nil {
		return err
	}

	return tx.Commit()
}
