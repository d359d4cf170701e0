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

// fakeSweeper records sweep calls and the retention passed in.
type fakeSweeper struct {
	calls     atomic.Int32
	retention atomic.Int64
	err       error
}

func (f *fakeSweeper) Sweep(_ context.Context, retention time.Duration) (int, error) {
	f.calls.Add(1)
	f.retention.Store(int64(retention))
	if f.err != nil {
		return 0, f.err
	}
	return 5, nil
}

var _ suture.Service = (*AnalyticsSweeperService)(nil)

func TestNewAnalyticsSweeperService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewAnalyticsSweeperService(&fakeSweeper{}, 0, 0, zerolog.Nop())
	if svc.interval != time.Hour {
		t.Errorf("expected default interval 1h, got %v", svc.interval)
	}
	if svc.retention != 90*24*time.Hour {
		t.Errorf("expected default retention 90d, got %v", svc.retention)
	}
	if svc.String() != "analytics-sweeper" {
		t.Errorf("expected name 'analytics-sweeper', got %q", svc.String())
	}
}

func TestAnalyticsSweeperService_Serve(t *testing.T) {
	t.Parallel()

	sweeper := &fakeSweeper{}
	svc := NewAnalyticsSweeperService(sweeper, 48*time.Hour, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for sweeper.calls.Load() < 1 {
		select {
		case <-deadline:
			t.Fatal("sweeper did not run in time")
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

	if got := time.Duration(sweeper.retention.Load()); got != 48*time.Hour {
		t.Errorf("retention passed to sweeper = %v, want 48h", got)
	}
}

func TestAnalyticsSweeperService_SweepErrorDoesNotStopService(t *testing.T) {
	t.Parallel()

	sweeper := &fakeSweeper{err: errors.New("store unavailable")}
	svc := NewAnalyticsSweeperService(sweeper, time.Hour, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for sweeper.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("sweeper stopped retrying after an error")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
