package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Greco-cyber/poster-dashboard/internal/models"
	"github.com/Greco-cyber/poster-dashboard/internal/poster"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "product_cache_refresh_total",
		Help: "Total number of product cache refresh attempts by result",
	},
	[]string{"result"},
)

// productSnapshot is one immutable generation of the reference cache. The
// entries map is never mutated after construction; refreshes build a new
// snapshot and swap the pointer, so concurrent refreshes are last-writer-
// wins and readers never observe a torn map.
type productSnapshot struct {
	entries   map[int64]models.ProductRef
	fetchedAt time.Time
}

// ProductCache is the TTL reference cache mapping product id to its category
// and display name, refreshed in bulk from menu.getProducts.
type ProductCache struct {
	api    poster.Caller
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
	snap   atomic.Pointer[productSnapshot]
}

// ProductCacheOption configures a ProductCache.
type ProductCacheOption func(*ProductCache)

// WithClock injects the time source, for testing staleness without timers.
func WithClock(now func() time.Time) ProductCacheOption {
	return func(c *ProductCache) {
		c.now = now
	}
}

// NewProductCache creates an empty cache. The first EnsureFresh populates it.
func NewProductCache(api poster.Caller, ttl time.Duration, logger *slog.Logger, opts ...ProductCacheOption) *ProductCache {
	if logger == nil {
		logger = slog.Default()
	}

	c := &ProductCache{
		api:    api,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
	c.snap.Store(&productSnapshot{entries: map[int64]models.ProductRef{}})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EnsureFresh refreshes the cache when it is empty or older than the TTL.
// On fetch failure the previous snapshot is kept untouched: stale-but-
// available beats empty. A successful fetch replaces the map wholesale,
// never merges.
func (c *ProductCache) EnsureFresh(ctx context.Context) error {
	snap := c.snap.Load()
	if len(snap.entries) > 0 && c.now().Sub(snap.fetchedAt) < c.ttl {
		return nil
	}

	raw, err := c.api.Call(ctx, "menu.getProducts", url.Values{})
	if err != nil {
		cacheRefreshTotal.WithLabelValues("error").Inc()
		c.logger.Warn("product cache refresh failed, keeping previous snapshot",
			"cached_products", len(snap.entries),
			"error", err)
		return fmt.Errorf("refresh product cache: %w", err)
	}

	rows, _ := poster.FirstArray(raw)

	entries := make(map[int64]models.ProductRef, len(rows))
	for _, row := range rows {
		pid, ok := poster.ProductID.Int(row)
		if !ok {
			continue
		}

		ref := models.ProductRef{ProductID: pid}
		if cid, ok := poster.ProductCategoryID.Int(row); ok {
			ref.CategoryID = &cid
		}
		ref.Name, _ = poster.ProductName.String(row)

		entries[pid] = ref
	}

	// An empty or malformed listing leaves an empty cache; every lookup
	// then misses, which is tolerated, not an error.
	c.snap.Store(&productSnapshot{entries: entries, fetchedAt: c.now()})
	cacheRefreshTotal.WithLabelValues("ok").Inc()

	c.logger.Info("product cache refreshed", "products", len(entries))
	return nil
}

// Get returns the cached reference for a product id. It never fetches.
func (c *ProductCache) Get(productID int64) (models.ProductRef, bool) {
	ref, ok := c.snap.Load().entries[productID]
	return ref, ok
}

// ProductsInCategories returns the set of product ids whose cached category
// is in cats, or whose display name contains any of the keywords
// (case-insensitive). Keywords extend membership for products the vendor
// files under unexpected categories.
func (c *ProductCache) ProductsInCategories(cats map[int64]struct{}, keywords []string) map[int64]struct{} {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			lowered = append(lowered, kw)
		}
	}

	members := make(map[int64]struct{})
	for pid, ref := range c.snap.Load().entries {
		if ref.CategoryID != nil {
			if _, ok := cats[*ref.CategoryID]; ok {
				members[pid] = struct{}{}
				continue
			}
		}
		if ref.Name != "" && len(lowered) > 0 {
			name := strings.ToLower(ref.Name)
			for _, kw := range lowered {
				if strings.Contains(name, kw) {
					members[pid] = struct{}{}
					break
				}
			}
		}
	}
	return members
}

// Size reports how many products the current snapshot holds.
func (c *ProductCache) Size() int {
	return len(c.snap.Load().entries)
}

// FetchedAt reports when the current snapshot was taken. Zero for an empty,
// never-refreshed cache.
func (c *ProductCache) FetchedAt() time.Time {
	return c.snap.Load().fetchedAt
}
