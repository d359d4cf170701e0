// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package feed

import (
	"context"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/openann19/pawfeed/internal/metrics"
)

const (
	// defaultCacheTTL is how long a cached score stays valid.
	defaultCacheTTL = 5 * time.Minute

	// defaultChunkSize is how many items a batch scorer processes per
	// parallel chunk.
	defaultChunkSize = 10
)

// cacheKey identifies a cached score by viewer, content, and the algorithm
// configuration that produced it. The config fingerprint keeps scorers
// running different configs (base vs. experiment variants) from reading
// each other's entries in a shared cache.
type cacheKey struct {
	userID    string
	contentID string
	cfg       uint64
}

// configFingerprint derives the cache key component for a configuration.
func configFingerprint(cfg AlgorithmConfig) uint64 {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(raw)
}

type cacheEntry struct {
	score    Score
	storedAt time.Time
}

// ScoreCache is a TTL cache for computed scores, keyed by (user, content,
// config fingerprint). Expired entries are returned as misses; a periodic
// janitor reclaims them via EvictExpired. Safe for concurrent use.
type ScoreCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[cacheKey]cacheEntry
}

// NewScoreCache creates a score cache. A non-positive ttl selects the
// 5-minute default.
func NewScoreCache(ttl time.Duration) *ScoreCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ScoreCache{
		ttl:     ttl,
		entries: make(map[cacheKey]cacheEntry),
	}
}

// Get returns the cached score for the key if present and unexpired.
func (c *ScoreCache) Get(userID, contentID string, cfg uint64, now time.Time) (Score, bool) {
	c.mu.RLock()
	entry, ok := c.entries[cacheKey{userID, contentID, cfg}]
	c.mu.RUnlock()

	if !ok || now.Sub(entry.storedAt) > c.ttl {
		metrics.ScoreCacheMisses.Inc()
		return Score{}, false
	}
	metrics.ScoreCacheHits.Inc()
	return entry.score, true
}

// Put stores a score for the key, stamped at now.
func (c *ScoreCache) Put(userID, contentID string, cfg uint64, score Score, now time.Time) {
	c.mu.Lock()
	c.entries[cacheKey{userID, contentID, cfg}] = cacheEntry{score: score, storedAt: now}
	size := len(c.entries)
	c.mu.Unlock()

	metrics.ScoreCacheSize.Set(float64(size))
}

// EvictExpired removes entries older than the TTL and returns how many
// were removed.
func (c *ScoreCache) EvictExpired(now time.Time) int {
	c.mu.Lock()
	removed := 0
	for key, entry := range c.entries {
		if now.Sub(entry.storedAt) > c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	if removed > 0 {
		metrics.ScoreCacheEvictions.Add(float64(removed))
	}
	metrics.ScoreCacheSize.Set(float64(size))
	return removed
}

// Len returns the current number of entries, expired or not.
func (c *ScoreCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// BatchScorer scores candidate sets in fixed-size chunks: items within a
// chunk are scored in parallel, chunks run sequentially so a cancelled
// context stops the batch at the next chunk boundary.
type BatchScorer struct {
	engine    *ScoringEngine
	cache     *ScoreCache
	cfgKey    uint64
	chunkSize int
	limiter   *rate.Limiter
}

// BatchOption configures a BatchScorer.
type BatchOption func(*BatchScorer)

// WithChunkSize overrides the default chunk size of 10.
func WithChunkSize(n int) BatchOption {
	return func(b *BatchScorer) {
		if n > 0 {
			b.chunkSize = n
		}
	}
}

// WithRateLimit throttles chunk starts to the given per-second rate.
func WithRateLimit(perSecond float64, burst int) BatchOption {
	return func(b *BatchScorer) {
		if perSecond > 0 {
			b.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// NewBatchScorer creates a batch scorer over the given engine. A nil cache
// disables caching.
func NewBatchScorer(engine *ScoringEngine, cache *ScoreCache, opts ...BatchOption) *BatchScorer {
	b := &BatchScorer{
		engine:    engine,
		cache:     cache,
		cfgKey:    configFingerprint(engine.Config()),
		chunkSize: defaultChunkSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ScoreAll scores every item, preserving input order in the result. It
// returns the context error if cancelled mid-batch.
func (b *BatchScorer) ScoreAll(ctx context.Context, items []FeedContent, gen *GenerationContext) ([]Score, error) {
	scores := make([]Score, len(items))
	now := gen.ReferenceTime()

	for start := 0; start < len(items); start += b.chunkSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if b.limiter != nil {
			if err := b.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		end := start + b.chunkSize
		if end > len(items) {
			end = len(items)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				scores[i] = b.scoreOne(&items[i], gen, now)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return scores, nil
}

// scoreOne consults the cache before falling back to the engine.
func (b *BatchScorer) scoreOne(item *FeedContent, gen *GenerationContext, now time.Time) Score {
	if b.cache != nil {
		if score, ok := b.cache.Get(gen.User.ID, item.ID, b.cfgKey, now); ok {
			return score
		}
	}

	score := b.engine.ScoreContent(item, gen)
	metrics.FeedItemsScored.Inc()

	if b.cache != nil {
		b.cache.Put(gen.User.ID, item.ID, b.cfgKey, score, now)
	}
	return score
}

// BatchUnit is one user's slice of a multi-user batch: the user's resolved
// generation context and that user's candidate list.
type BatchUnit struct {
	Items []FeedContent
	Gen   *GenerationContext
}

// ScoreUnits scores many users' candidate lists in one batch. Units are
// processed in chunks of the configured chunk size; units within a chunk
// run in parallel and each unit checks for cancellation between items, so
// a cancelled context stops the batch without finishing the current unit.
// Result order matches input order.
func (b *BatchScorer) ScoreUnits(ctx context.Context, units []BatchUnit) ([][]Score, error) {
	out := make([][]Score, len(units))

	for start := 0; start < len(units); start += b.chunkSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if b.limiter != nil {
			if err := b.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		end := start + b.chunkSize
		if end > len(units) {
			end = len(units)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				unit := &units[i]
				now := unit.Gen.ReferenceTime()
				scores := make([]Score, len(unit.Items))
				for j := range unit.Items {
					if err := gctx.Err(); err != nil {
						return err
					}
					scores[j] = b.scoreOne(&unit.Items[j], unit.Gen, now)
				}
				out[i] = scores
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return out, nil
}
