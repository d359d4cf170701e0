// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "PAWFEED_CONFIG_PATH"

// DefaultConfigPaths are searched in order when ConfigPathEnvVar is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/pawfeed/config.yaml",
	"/etc/pawfeed/config.yml",
}

// sliceConfigPaths lists []string fields that environment variables supply
// as comma-separated strings.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// Load builds the configuration by layering, in increasing priority:
//
//  1. Built-in defaults
//  2. YAML config file (optional; first match in DefaultConfigPaths, or
//     the file named by PAWFEED_CONFIG_PATH)
//  3. PAWFEED_* environment variables
//
// The merged result is validated before being returned.
func Load() (*Config, error) {
	k := koanf.New(".")
	defaults := defaultConfig()

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile locates the config file, preferring the env override.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
		return ""
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envKeyMappings maps PAWFEED_* environment variable names (lowercased)
// to dotted koanf paths. Unmapped variables are ignored.
var envKeyMappings = map[string]string{
	"pawfeed_host":              "server.host",
	"pawfeed_port":              "server.port",
	"pawfeed_read_timeout":      "server.read_timeout",
	"pawfeed_write_timeout":     "server.write_timeout",
	"pawfeed_shutdown_timeout":  "server.shutdown_timeout",
	"pawfeed_cors_origins":      "server.cors_origins",
	"pawfeed_rate_limit":        "server.rate_limit",
	"pawfeed_rate_limit_window": "server.rate_limit_window",

	"pawfeed_log_level":  "logging.level",
	"pawfeed_log_format": "logging.format",
	"pawfeed_log_caller": "logging.caller",

	"pawfeed_half_life_hours": "feed.half_life_hours",
	"pawfeed_max_age_days":    "feed.max_age_days",
	"pawfeed_diversity_ratio": "feed.diversity_ratio",

	"pawfeed_cache_ttl":              "cache.ttl",
	"pawfeed_cache_janitor_interval": "cache.janitor_interval",

	"pawfeed_batch_chunk_size":      "batch.chunk_size",
	"pawfeed_batch_rate_per_second": "batch.rate_per_second",
	"pawfeed_batch_rate_burst":      "batch.rate_burst",

	"pawfeed_analytics_store":          "analytics.store",
	"pawfeed_analytics_path":           "analytics.path",
	"pawfeed_analytics_retention":      "analytics.retention",
	"pawfeed_analytics_sweep_interval": "analytics.sweep_interval",
}

// envTransformFunc maps an environment variable name to a koanf path.
// Returning "" drops the variable.
func envTransformFunc(key string) string {
	return envKeyMappings[strings.ToLower(key)]
}

// processSliceFields converts comma-separated env strings into string
// slices for the paths in sliceConfigPaths.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		str, ok := val.(string)
		if !ok {
			continue
		}

		parts := strings.Split(str, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cleaned = append(cleaned, trimmed)
			}
		}

		if err := k.Set(path, cleaned); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}

	return nil
}

// WatchConfigFile watches the loaded config file and invokes onChange
// when it is modified. Returns a no-op cleanup when no file is in use.
func WatchConfigFile(onChange func()) (func() error, error) {
	path := findConfigFile()
	if path == "" {
		return func() error { return nil }, nil
	}

	provider := file.Provider(path)
	err := provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		onChange()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to watch config file %s: %w", path, err)
	}

	return provider.Unwatch, nil
}
