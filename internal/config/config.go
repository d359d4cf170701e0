// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package config

import (
	"fmt"
	"time"

	"github.com/openann19/pawfeed/internal/feed"
	"github.com/openann19/pawfeed/internal/validation"
)

// Config is the root application configuration. Values are layered from
// defaults, an optional YAML file, and environment variables (highest
// priority).
type Config struct {
	Server      ServerConfig         `koanf:"server"`
	Logging     LoggingConfig        `koanf:"logging"`
	Feed        feed.AlgorithmConfig `koanf:"feed"`
	Cache       CacheConfig          `koanf:"cache"`
	Batch       BatchConfig          `koanf:"batch"`
	Analytics   AnalyticsConfig      `koanf:"analytics"`
	Experiments []ExperimentConfig   `koanf:"experiments"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`

	// CORSOrigins lists allowed CORS origins. Comma-separated when set
	// via environment variable.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimit is the per-client request cap within RateLimitWindow.
	// Zero disables rate limiting.
	RateLimit       int           `koanf:"rate_limit" validate:"min=0"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// CacheConfig holds score cache settings.
type CacheConfig struct {
	// TTL is how long a cached score stays valid.
	TTL time.Duration `koanf:"ttl" validate:"min=1s"`

	// JanitorInterval is how often expired entries are evicted.
	JanitorInterval time.Duration `koanf:"janitor_interval" validate:"min=1s"`
}

// BatchConfig holds batch scoring settings.
type BatchConfig struct {
	// ChunkSize is the number of items scored concurrently per chunk.
	ChunkSize int `koanf:"chunk_size" validate:"min=1,max=1000"`

	// RatePerSecond caps chunk processing. Zero disables throttling.
	RatePerSecond float64 `koanf:"rate_per_second" validate:"min=0"`
	RateBurst     int     `koanf:"rate_burst" validate:"min=0"`
}

// AnalyticsConfig holds the analytics event store settings.
type AnalyticsConfig struct {
	// Store selects the event store backend.
	Store string `koanf:"store" validate:"oneof=memory badger"`

	// Path is the badger database directory. Empty runs badger in memory.
	Path string `koanf:"path"`

	// Retention is how long events are kept before sweeping.
	Retention time.Duration `koanf:"retention" validate:"min=1h"`

	// SweepInterval is how often the retention sweeper runs.
	SweepInterval time.Duration `koanf:"sweep_interval" validate:"min=1m"`
}

// ExperimentConfig declares an A/B test registered at startup.
type ExperimentConfig struct {
	ID          string          `koanf:"id" validate:"required"`
	Name        string          `koanf:"name"`
	Description string          `koanf:"description"`
	Active      bool            `koanf:"active"`
	Variants    []VariantConfig `koanf:"variants" validate:"min=1,dive"`
}

// VariantConfig declares one experiment variant. Overrides, when present,
// patch the baseline feed algorithm configuration for assigned users.
type VariantConfig struct {
	ID        string            `koanf:"id" validate:"required"`
	Name      string            `koanf:"name"`
	Weight    float64           `koanf:"weight" validate:"min=0,max=100"`
	Overrides *feed.ConfigPatch `koanf:"overrides"`
}

// defaultConfig returns the built-in defaults, used as the lowest
// configuration layer.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimit:       100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Feed: feed.DefaultAlgorithmConfig(),
		Cache: CacheConfig{
			TTL:             5 * time.Minute,
			JanitorInterval: time.Minute,
		},
		Batch: BatchConfig{
			ChunkSize:     10,
			RatePerSecond: 0,
			RateBurst:     0,
		},
		Analytics: AnalyticsConfig{
			Store:         "memory",
			Path:          "",
			Retention:     90 * 24 * time.Hour,
			SweepInterval: time.Hour,
		},
	}
}

// Validate checks the configuration for errors. Struct tags cover field
// bounds; experiment and feed checks need cross-field logic.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.Feed.Validate(); err != nil {
		return fmt.Errorf("feed: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Experiments))
	for i := range c.Experiments {
		exp := &c.Experiments[i]
		if _, dup := seen[exp.ID]; dup {
			return fmt.Errorf("experiments: duplicate test id %q", exp.ID)
		}
		seen[exp.ID] = struct{}{}

		if err := exp.validate(); err != nil {
			return fmt.Errorf("experiments[%s]: %w", exp.ID, err)
		}
	}

	return nil
}

// validate checks a single experiment declaration.
func (e *ExperimentConfig) validate() error {
	var total float64
	ids := make(map[string]struct{}, len(e.Variants))

	for i := range e.Variants {
		v := &e.Variants[i]
		if _, dup := ids[v.ID]; dup {
			return fmt.Errorf("duplicate variant id %q", v.ID)
		}
		ids[v.ID] = struct{}{}
		total += v.Weight
	}

	if total > 100 {
		return fmt.Errorf("variant weights total %.1f, must not exceed 100", total)
	}

	return nil
}
