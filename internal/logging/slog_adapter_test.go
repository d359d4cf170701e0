// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler)

	logger.Info("supervised", "service", "cache-janitor", "restarts", int64(2))

	out := buf.String()
	if !strings.Contains(out, `"service":"cache-janitor"`) {
		t.Errorf("missing string attr: %s", out)
	}
	if !strings.Contains(out, `"restarts":2`) {
		t.Errorf("missing int attr: %s", out)
	}
	if !strings.Contains(out, `"message":"supervised"`) {
		t.Errorf("missing message: %s", out)
	}
}

func TestSlogHandler_Levels(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, `"level":"debug"`},
		{slog.LevelInfo, `"level":"info"`},
		{slog.LevelWarn, `"level":"warn"`},
		{slog.LevelError, `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
			handler := NewSlogHandlerWithLogger(logger)

			rec := slog.NewRecord(time.Now(), tt.level, "msg", 0)
			if err := handler.Handle(context.Background(), rec); err != nil {
				t.Fatalf("Handle: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q missing %q", buf.String(), tt.want)
			}
		})
	}
}

func TestSlogHandler_WithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler).With("tree", "pawfeed").WithGroup("svc")

	logger.Info("started", "name", "http")

	out := buf.String()
	if !strings.Contains(out, `"tree":"pawfeed"`) {
		t.Errorf("missing inherited attr: %s", out)
	}
	if !strings.Contains(out, `"svc.name":"http"`) {
		t.Errorf("missing grouped attr: %s", out)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.WarnLevel)
	handler := NewSlogHandlerWithLogger(logger)

	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug enabled on a warn-level logger")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error disabled on a warn-level logger")
	}
}
