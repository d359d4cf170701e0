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

// RetentionSweeper is the analytics surface the sweeper needs. Satisfied
// by *analytics.Engine.
type RetentionSweeper interface {
	Sweep(ctx context.Context, retention time.Duration) (int, error)
}

// AnalyticsSweeperService periodically removes analytics events older
// than the retention window, keeping the event store bounded.
type AnalyticsSweeperService struct {
	sweeper   RetentionSweeper
	retention time.Duration
	interval  time.Duration
	logger    zerolog.Logger
	name      string
}

// NewAnalyticsSweeperService creates a sweeper that runs every interval
// and deletes events older than retention.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewAnalyticsSweeperService(sweeper RetentionSweeper, retention, interval time.Duration, logger zerolog.Logger) *AnalyticsSweeperService {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = 90 * 24 * time.Hour
	}
	return &AnalyticsSweeperService{
		sweeper:   sweeper,
		retention: retention,
		interval:  interval,
		logger:    logger.With().Str("service", "analytics-sweeper").Logger(),
		name:      "analytics-sweeper",
	}
}

// Serve implements the suture.Service interface.
func (s *AnalyticsSweeperService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("retention", s.retention).
		Dur("interval", s.interval).
		Msg("analytics sweeper starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("analytics sweeper shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.sweep(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("retention sweep failed")
			}
		}
	}
}

// sweep runs one retention pass with a bounded context.
func (s *AnalyticsSweeperService) sweep(ctx context.Context) error {
	sweepCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	start := time.Now()
	removed, err := s.sweeper.Sweep(sweepCtx, s.retention)
	if err != nil {
		return err
	}

	if removed > 0 {
		s.logger.Info().
			Int("removed", removed).
			Dur("duration", time.Since(start)).
			Msg("retention sweep complete")
	}

	return nil
}

// String returns the service name for logging.
func (s *AnalyticsSweeperService) String() string {
	return s.name
}
