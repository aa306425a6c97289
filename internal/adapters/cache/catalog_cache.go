package cache

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/internal/core/ports"
)

const catalogKey = "catalog"

// CachedCatalog keeps the last catalog snapshot for a fixed TTL in front of
// another source. With a zero TTL every call goes straight to the source.
type CachedCatalog struct {
	source ports.CatalogSource
	ttl    time.Duration
	cache  *ttlcache.Cache[string, []domain.Asset]
	logger *slog.Logger

	// gen is bumped by Invalidate; a scan started under an older
	// generation does not store its result
	mu  sync.Mutex
	gen uint64
}

var _ ports.CatalogSource = (*CachedCatalog)(nil)

func NewCachedCatalog(source ports.CatalogSource, ttl time.Duration, logger *slog.Logger) *CachedCatalog {
	c := ttlcache.New[string, []domain.Asset](
		ttlcache.WithTTL[string, []domain.Asset](ttl),
		ttlcache.WithDisableTouchOnHit[string, []domain.Asset](),
	)
	return &CachedCatalog{
		source: source,
		ttl:    ttl,
		cache:  c,
		logger: logger.With("component", "catalog-cache"),
	}
}

// Enabled reports whether snapshots are retained at all
func (c *CachedCatalog) Enabled() bool {
	return c.ttl > 0
}

// Catalog returns the cached snapshot, rescanning when it is missing or expired
func (c *CachedCatalog) Catalog(ctx context.Context) ([]domain.Asset, error) {
	if !c.Enabled() {
		return c.source.Catalog(ctx)
	}

	if item := c.cache.Get(catalogKey); item != nil && !item.IsExpired() {
		return slices.Clone(item.Value()), nil
	}

	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	assets, err := c.source.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		c.logger.Debug("discarding catalog scanned before invalidation")
		return assets, nil
	}
	c.cache.Set(catalogKey, slices.Clone(assets), ttlcache.DefaultTTL)
	return assets, nil
}

// Invalidate drops the cached snapshot
func (c *CachedCatalog) Invalidate() {
	if !c.Enabled() {
		return
	}
	c.mu.Lock()
	c.gen++
	c.cache.Delete(catalogKey)
	c.mu.Unlock()
	c.logger.Debug("catalog cache invalidated")
}

// Start runs the expiry loop until Stop is called
func (c *CachedCatalog) Start() {
	if c.Enabled() {
		c.cache.Start()
	}
}

// Stop ends the expiry loop
func (c *CachedCatalog) Stop() {
	if c.Enabled() {
		c.cache.Stop()
	}
}
