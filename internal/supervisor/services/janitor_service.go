// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ExpiredEvictor is the score cache surface the janitor needs. Satisfied
// by *feed.ScoreCache.
type ExpiredEvictor interface {
	EvictExpired(now time.Time) int
	Len() int
}

// CacheJanitorService periodically evicts expired score cache entries.
// Without it, entries for inactive users would linger until their next
// lookup.
type CacheJanitorService struct {
	cache    ExpiredEvictor
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates a janitor that sweeps the cache every
// interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(cache ExpiredEvictor, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		cache:    cache,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements the suture.Service interface.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("cache janitor starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("cache janitor shutting down")
			return ctx.Err()

		case now := <-ticker.C:
			removed := s.cache.EvictExpired(now)
			if removed > 0 {
				s.logger.Debug().
					Int("evicted", removed).
					Int("remaining", s.cache.Len()).
					Msg("evicted expired score cache entries")
			}
		}
	}
}

// String returns the service name for logging.
func (s *CacheJanitorService) String() string {
	return s.name
}
