package db

import (
	"time"
)

// Catalog cache: a single-row table holding the last fetched UEX snapshot as
// raw JSON. Implements uex.CatalogStore.

// GetCatalog returns the cached catalog payload, if any.
func (d *DB) GetCatalog() ([]byte, time.Time, bool) {
	var raw []byte
	var fetchedAt string
	err := d.sql.QueryRow("SELECT raw, fetched_at FROM catalog_cache WHERE id = 1").Scan(&raw, &fetchedAt)
	if err != nil {
		return nil, time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, time.Time{}, false
	}
	return raw, ts, true
}

// SetCatalog replaces the cached catalog payload.
func (d *DB) SetCatalog(raw []byte, fetchedAt time.Time) {
	d.sql.Exec(
		"INSERT INTO catalog_cache (id, raw, fetched_at) VALUES (1, ?, ?) ON CONFLICT(id) DO UPDATE SET raw = excluded.raw, fetched_at = excluded.fetched_at",
		raw, fetchedAt.UTC().Format(time.RFC3339),
	)
}
