// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// fakeCache counts eviction passes.
type fakeCache struct {
	sweeps  atomic.Int32
	evicted int
}

func (f *fakeCache) EvictExpired(_ time.Time) int {
	f.sweeps.Add(1)
	return f.evicted
}

func (f *fakeCache) Len() int { return 0 }

var _ suture.Service = (*CacheJanitorService)(nil)

func TestNewCacheJanitorService_DefaultInterval(t *testing.T) {
	t.Parallel()

	svc := NewCacheJanitorService(&fakeCache{}, 0, zerolog.Nop())
	if svc.interval != time.Minute {
		t.Errorf("expected default interval 1m, got %v", svc.interval)
	}
	if svc.String() != "cache-janitor" {
		t.Errorf("expected name 'cache-janitor', got %q", svc.String())
	}
}

func TestCacheJanitorService_Serve(t *testing.T) {
	t.Parallel()

	cache := &fakeCache{evicted: 3}
	svc := NewCacheJanitorService(cache, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for cache.sweeps.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("janitor did not run eviction passes in time")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Error("Serve did not return after cancellation")
	}
}
