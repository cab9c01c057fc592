package modcatalog

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
	"github.com/rsnyderaustin/poe-craftsim/internal/metrics"
)

// Cached memoizes query results of another Catalog in a fixed-size LRU.
// The wrapped catalog must be immutable, which every Memory is.
type Cached struct {
	inner  Catalog
	lru    *lru.Cache[string, []domain.ModTierEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// NewCached wraps inner with an LRU of the given size (DefaultCacheSize when
// size <= 0).
func NewCached(inner Catalog, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []domain.ModTierEntry](size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, lru: cache}, nil
}

// FetchEligibleTiers implements Catalog. Errors are never cached.
func (c *Cached) FetchEligibleTiers(q Query) ([]domain.ModTierEntry, error) {
	key := cacheKey(q)
	if entries, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		metrics.CatalogCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return entries, nil
	}

	c.misses.Add(1)
	metrics.CatalogCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	entries, err := c.inner.FetchEligibleTiers(q)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, entries)
	return entries, nil
}

// Stats returns hit/miss counters and the current entry count
func (c *Cached) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

// cacheKey is order-insensitive in both the affix types and the exclusions.
// Free-form strings are length-prefixed so no tier id or attribute type can
// spell out a different query's key.
func cacheKey(q Query) string {
	affixes := make([]int, len(q.AffixTypes))
	for i, a := range q.AffixTypes {
		affixes[i] = int(a)
	}
	slices.Sort(affixes)
	affixes = slices.Compact(affixes)

	excluded := slices.Clone(q.ExcludedTierIDs)
	slices.Sort(excluded)
	excluded = slices.Compact(excluded)

	var b strings.Builder
	writeKeyPart(&b, normalizeAttributeType(q.AttributeType))
	b.WriteString(strconv.Itoa(q.ItemLevel))
	b.WriteByte('|')
	for _, a := range affixes {
		b.WriteString(strconv.Itoa(a))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, id := range excluded {
		writeKeyPart(&b, id)
	}
	return b.String()
}

func writeKeyPart(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}

// CheckHealth delegates to the wrapped catalog when it can report health.
func (c *Cached) CheckHealth(ctx context.Context) error {
	if hc, ok := c.inner.(interface{ CheckHealth(context.Context) error }); ok {
		return hc.CheckHealth(ctx)
	}
	return ctx.Err()
}
