package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"uex-router/internal/api"
	"uex-router/internal/db"
	"uex-router/internal/logger"
	"uex-router/internal/uex"
)

var version = "dev"

func main() {
	port := flag.Int("port", 13380, "HTTP server port")
	flag.Parse()

	logger.Banner(version)

	// Open SQLite database (config, catalog cache, route history)
	database, err := db.Open()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	// Load config from SQLite
	cfg := database.LoadConfig()

	logger.Section("Configuration")
	logger.Stats("route count", cfg.CommodityRouteDefaultCount)
	logger.Stats("ship cargo", fmt.Sprintf("%.0f SCU", cfg.ShipCargoSCU))
	logger.Stats("budget", fmt.Sprintf("%.0f aUEC", cfg.Budget))
	logger.Stats("catalog TTL", fmt.Sprintf("%dm", cfg.CatalogTTLMinutes))

	token := envOrDefault("UEX_API_TOKEN", cfg.UEXAPIToken)
	client := uex.NewClient(token)
	catalog := uex.NewCatalogCache(client, database, time.Duration(cfg.CatalogTTLMinutes)*time.Minute)

	if client.HealthCheck() {
		logger.Success("UEX", "API reachable")
	} else {
		logger.Warn("UEX", "API unreachable, will serve cached catalog if present")
	}

	srv := api.NewServer(cfg, catalog, database)

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	logger.Server(addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Error("Server", fmt.Sprintf("Failed: %v", err))
		os.Exit(1)
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
