package uex

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CatalogStore is a persistent L2 cache for catalog snapshots (SQLite).
type CatalogStore interface {
	GetCatalog() (raw []byte, fetchedAt time.Time, ok bool)
	SetCatalog(raw []byte, fetchedAt time.Time)
}

// CatalogCache serves immutable catalog snapshots with a freshness TTL.
// A singleflight.Group coalesces concurrent refreshes so the upstream API is
// hit at most once per expiry, no matter how many queries arrive together.
type CatalogCache struct {
	client *Client
	store  CatalogStore
	ttl    time.Duration

	mu      sync.RWMutex
	current *Catalog
	group   singleflight.Group
}

// NewCatalogCache creates a cache around the given client and optional store.
func NewCatalogCache(client *Client, store CatalogStore, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	cc := &CatalogCache{client: client, store: store, ttl: ttl}
	cc.loadFromStore()
	return cc
}

// loadFromStore warms the in-memory snapshot from the persistent cache.
func (cc *CatalogCache) loadFromStore() {
	if cc.store == nil {
		return
	}
	raw, fetchedAt, ok := cc.store.GetCatalog()
	if !ok {
		return
	}
	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		log.Printf("[UEX] cached catalog unreadable, ignoring: %v", err)
		return
	}
	cat.FetchedAt = fetchedAt
	cc.current = &cat
	log.Printf("[UEX] warmed catalog from store: %d commodities, %d terminals (age %s)",
		len(cat.Commodities), len(cat.Terminals), time.Since(fetchedAt).Round(time.Second))
}

// Snapshot returns a catalog no older than the TTL, refreshing from the API
// when needed. A stale snapshot is returned as a fallback when the refresh
// fails, so transient upstream outages degrade to old data instead of errors.
func (cc *CatalogCache) Snapshot(ctx context.Context) (*Catalog, error) {
	cc.mu.RLock()
	cur := cc.current
	cc.mu.RUnlock()

	now := time.Now()
	if cur != nil && cur.Age(now) < cc.ttl {
		return cur, nil
	}

	result, err, _ := cc.group.Do("catalog", func() (interface{}, error) {
		// Re-check under singleflight: another caller may have refreshed.
		cc.mu.RLock()
		fresh := cc.current
		cc.mu.RUnlock()
		if fresh != nil && fresh.Age(time.Now()) < cc.ttl {
			return fresh, nil
		}

		cat, err := cc.client.FetchCatalog(ctx)
		if err != nil {
			return nil, err
		}
		cc.mu.Lock()
		cc.current = cat
		cc.mu.Unlock()

		if cc.store != nil {
			if raw, merr := json.Marshal(cat); merr == nil {
				cc.store.SetCatalog(raw, cat.FetchedAt)
			}
		}
		log.Printf("[UEX] catalog refreshed: %d commodities, %d terminals",
			len(cat.Commodities), len(cat.Terminals))
		return cat, nil
	})
	if err != nil {
		if cur != nil {
			log.Printf("[UEX] refresh failed, serving stale catalog (age %s): %v",
				cur.Age(now).Round(time.Second), err)
			return cur, nil
		}
		return nil, err
	}
	return result.(*Catalog), nil
}

// Invalidate drops the in-memory snapshot so the next Snapshot call refreshes.
func (cc *CatalogCache) Invalidate() {
	cc.mu.Lock()
	cc.current = nil
	cc.mu.Unlock()
}

// SetCurrent replaces the in-memory snapshot. Used by tests and the manual
// refresh endpoint.
func (cc *CatalogCache) SetCurrent(cat *Catalog) {
	cc.mu.Lock()
	cc.current = cat
	cc.mu.Unlock()
}
