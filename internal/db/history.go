package db

import (
	"time"

	"github.com/google/uuid"
)

// RouteHistoryRecord is one persisted commodity route query.
type RouteHistoryRecord struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Location   string    `json:"location"`
	RouteCount int       `json:"route_count"`
	TopProfit  float64   `json:"top_profit"`
}

// InsertRouteHistory records a computed route query and returns its ID.
func (d *DB) InsertRouteHistory(location string, routeCount int, topProfit float64) string {
	id := uuid.NewString()
	d.sql.Exec(
		"INSERT INTO route_history (id, timestamp, location, route_count, top_profit) VALUES (?, ?, ?, ?, ?)",
		id, time.Now().UTC().Format(time.RFC3339), location, routeCount, topProfit,
	)
	return id
}

// GetRouteHistory returns the most recent route queries, newest first.
func (d *DB) GetRouteHistory(limit int) []RouteHistoryRecord {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.sql.Query(
		"SELECT id, timestamp, location, route_count, top_profit FROM route_history ORDER BY timestamp DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []RouteHistoryRecord
	for rows.Next() {
		var r RouteHistoryRecord
		var ts string
		if err := rows.Scan(&r.ID, &ts, &r.Location, &r.RouteCount, &r.TopProfit); err != nil {
			continue
		}
		r.Timestamp, _ = time.Parse(time.RFC3339, ts)
		out = append(out, r)
	}
	return out
}

// ClearRouteHistory deletes all persisted route queries.
func (d *DB) ClearRouteHistory() {
	d.sql.Exec("DELETE FROM route_history")
}
