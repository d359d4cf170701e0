// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

// Package config loads and validates the application configuration.
//
// Configuration is layered with koanf, in increasing priority:
//
//  1. Built-in defaults (defaultConfig)
//  2. A YAML file: the first match in DefaultConfigPaths, or the file
//     named by the PAWFEED_CONFIG_PATH environment variable
//  3. PAWFEED_* environment variables (see envKeyMappings)
//
// Example file:
//
//	server:
//	  port: 8080
//	  cors_origins: ["https://app.pawfeed.example"]
//	feed:
//	  half_life_hours: 24
//	  weights:
//	    compatibility: 20
//	    social: 20
//	analytics:
//	  store: badger
//	  path: /var/lib/pawfeed/analytics
//	experiments:
//	  - id: freshness-boost
//	    active: true
//	    variants:
//	      - id: control
//	        weight: 50
//	      - id: treatment
//	        weight: 50
//	        overrides:
//	          half_life_hours: 12
//
// The merged configuration is validated with go-playground/validator
// struct tags plus cross-field checks (factor weights, experiment
// variant weights, duplicate ids) before use.
package config
