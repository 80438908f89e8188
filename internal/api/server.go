package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"uex-router/internal/config"
	"uex-router/internal/db"
	"uex-router/internal/engine"
	"uex-router/internal/uex"
)

// Server is the HTTP API server that connects the UEX catalog cache, the
// route engine, and the database.
type Server struct {
	mu      sync.RWMutex
	cfg     *config.Config
	db      *db.DB
	catalog *uex.CatalogCache
	router  *engine.Router
}

// NewServer creates a Server with the given config, catalog cache, and database.
func NewServer(cfg *config.Config, catalog *uex.CatalogCache, database *db.DB) *Server {
	return &Server{
		cfg:     cfg,
		db:      database,
		catalog: catalog,
		router:  engine.NewRouter(cfg.CommodityRouteDefaultCount),
	}
}

// Handler returns the HTTP handler with all API routes and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/config", s.handleGetConfig)
	mux.HandleFunc("POST /api/config", s.handleSetConfig)
	mux.HandleFunc("POST /api/route/commodity", s.handleCommodityRoute)
	mux.HandleFunc("POST /api/tools/profit", s.handleProfitTool)
	mux.HandleFunc("GET /api/route/history", s.handleGetHistory)
	mux.HandleFunc("POST /api/route/history/clear", s.handleClearHistory)
	mux.HandleFunc("POST /api/catalog/refresh", s.handleCatalogRefresh)
	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}
