// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package feed

import (
	"github.com/openann19/pawfeed/internal/models"
)

type (
	// FactorWeights defines the relative contribution of each scoring factor.
	FactorWeights = models.FactorWeights

	// AlgorithmConfig is the single configuration surface of the ranking
	// algorithm.
	AlgorithmConfig = models.AlgorithmConfig

	// ConfigPatch is a partial AlgorithmConfig override, as embedded in an
	// experiment variant.
	ConfigPatch = models.ConfigPatch
)

// DefaultAlgorithmConfig returns an AlgorithmConfig with production defaults.
// The default weights sum to 100.
func DefaultAlgorithmConfig() AlgorithmConfig {
	return models.DefaultAlgorithmConfig()
}
