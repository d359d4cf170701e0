// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

// Package logging provides centralized zerolog-based structured logging.
//
// The package exposes a global logger configured once at startup and
// component loggers derived from it:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	feedLogger := logging.With().Str("component", "feed").Logger()
//
// JSON output is the production default; console output is available for
// development. A slog adapter (NewSlogLogger) bridges libraries that
// require log/slog, notably the sutureslog handler used by the
// supervision tree.
//
// Always terminate log chains with .Msg() or .Send(); a chain without a
// terminator is silently dropped by zerolog.
package logging
