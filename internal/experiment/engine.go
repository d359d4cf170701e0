// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package experiment

import (
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/openann19/pawfeed/internal/feed"
	"github.com/openann19/pawfeed/internal/metrics"
)

// winnerConfidence is the minimum statistical confidence a variant needs
// before it can be declared the winner.
const winnerConfidence = 0.95

// Composite weights for winner selection.
const (
	engagementShare = 0.4
	retentionShare  = 0.4
	diversityShare  = 0.2
)

// VariantMetrics is the running metric state of one variant. The rate
// fields are two-point running averages: recording folds the new
// observation in as avg = (avg + new) / 2, weighting recent observations
// more heavily. The count fields accumulate.
type VariantMetrics struct {
	// Engagement is the average engagement rate in [0, 1].
	Engagement float64 `json:"engagement"`

	// Retention is the average retention rate in [0, 1].
	Retention float64 `json:"retention"`

	// Diversity is the average feed diversity score in [0, 1].
	Diversity float64 `json:"diversity"`

	// Impressions is the cumulative impression count for the variant.
	Impressions int `json:"impressions"`

	// Conversions is the cumulative conversion count: impressions that
	// led to an active engagement. Feeds the chi-square comparison.
	Conversions int `json:"conversions"`
}

// fold merges one metric observation into the running state.
func (m *VariantMetrics) fold(obs VariantMetrics) {
	m.Engagement = (m.Engagement + obs.Engagement) / 2
	m.Retention = (m.Retention + obs.Retention) / 2
	m.Diversity = (m.Diversity + obs.Diversity) / 2
	m.Impressions += obs.Impressions
	m.Conversions += obs.Conversions
}

// Variant is one arm of an A/B test.
type Variant struct {
	// ID is the variant identifier, unique within its test.
	ID string `json:"id"`

	// Name is the human-readable variant name.
	Name string `json:"name"`

	// Weight is the variant's share of the 0-99 assignment space, in
	// percentage points.
	Weight float64 `json:"weight"`

	// Config overrides the base algorithm configuration for users in this
	// variant. Nil means the variant runs the unmodified base config.
	Config *feed.ConfigPatch `json:"config,omitempty"`

	// Metrics is the variant's running metric state.
	Metrics VariantMetrics `json:"metrics"`

	// UserCount is how many distinct users this variant has served.
	UserCount int `json:"user_count"`
}

// Test is a registered A/B test.
type Test struct {
	// ID is the test identifier.
	ID string `json:"id"`

	// Name is the human-readable test name.
	Name string `json:"name"`

	// Description explains what the test measures.
	Description string `json:"description,omitempty"`

	// Variants are the test's arms, in bucket order. Weights should sum to
	// at most 100; any residual bucket space falls back to the first
	// variant.
	Variants []*Variant `json:"variants"`

	// StartedAt is when the test went live.
	StartedAt time.Time `json:"started_at"`

	// Active gates assignment. Inactive tests return no variant.
	Active bool `json:"active"`
}

// VariantResult is the analyzed state of one variant.
type VariantResult struct {
	// Variant is a snapshot of the variant.
	Variant Variant `json:"variant"`

	// Confidence is the statistical confidence in [0, 1): the chi-square
	// tier for two-variant tests with recorded impression counts, the
	// sample-size staircase otherwise.
	Confidence float64 `json:"confidence"`

	// Composite is the weighted metric composite used for winner
	// selection: 0.4*engagement + 0.4*retention + 0.2*diversity.
	Composite float64 `json:"composite"`
}

// TestResults is the analyzed state of a whole test.
type TestResults struct {
	// TestID identifies the analyzed test.
	TestID string `json:"test_id"`

	// Variants holds one result per variant, in registration order.
	Variants []VariantResult `json:"variants"`

	// Winner is the best qualifying variant, or nil while no variant has
	// reached the required confidence.
	Winner *VariantResult `json:"winner,omitempty"`
}

// Engine manages A/B test registration, deterministic variant assignment,
// and metric accumulation. Safe for concurrent use.
type Engine struct {
	mu       sync.RWMutex
	tests    map[string]*Test
	assigned map[string]map[string]struct{} // test id -> user ids seen
	logger   zerolog.Logger
}

// NewEngine creates an experimentation engine.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{
		tests:    make(map[string]*Test),
		assigned: make(map[string]map[string]struct{}),
		logger:   logger.With().Str("component", "experiment_engine").Logger(),
	}
}

// Register adds a test to the engine. Variant ids must be unique within
// the test and weights must be non-negative.
func (e *Engine) Register(t *Test) error {
	if t.ID == "" {
		return fmt.Errorf("test id is required")
	}
	if len(t.Variants) == 0 {
		return fmt.Errorf("test %q has no variants", t.ID)
	}

	seen := make(map[string]struct{}, len(t.Variants))
	total := 0.0
	for _, v := range t.Variants {
		if v.ID == "" {
			return fmt.Errorf("test %q has a variant without an id", t.ID)
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("test %q has duplicate variant id %q", t.ID, v.ID)
		}
		seen[v.ID] = struct{}{}
		if v.Weight < 0 {
			return fmt.Errorf("test %q variant %q has negative weight", t.ID, v.ID)
		}
		total += v.Weight
	}
	if total > 100 {
		return fmt.Errorf("test %q variant weights sum to %.1f, exceeding 100", t.ID, total)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.tests[t.ID]; exists {
		return fmt.Errorf("test %q is already registered", t.ID)
	}
	e.tests[t.ID] = t

	e.logger.Info().
		Str("test_id", t.ID).
		Int("variants", len(t.Variants)).
		Msg("Registered A/B test")
	return nil
}

// Assign returns the variant a user falls into for a test, or nil when the
// test is unknown or inactive. Assignment is deterministic: the same user
// always lands in the same variant for the lifetime of the test.
func (e *Engine) Assign(testID, userID string) *Variant {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tests[testID]
	if !ok || !t.Active {
		return nil
	}

	bucket := float64(xxhash.Sum64String(testID+":"+userID) % 100)

	variant := t.Variants[0] // residual bucket space falls to the first arm
	cumulative := 0.0
	for _, v := range t.Variants {
		cumulative += v.Weight
		if bucket < cumulative {
			variant = v
			break
		}
	}

	// UserCount tracks distinct exposure: repeated lookups by the same
	// user must not inflate the sample size behind confidence.
	users := e.assigned[testID]
	if users == nil {
		users = make(map[string]struct{})
		e.assigned[testID] = users
	}
	if _, seen := users[userID]; !seen {
		users[userID] = struct{}{}
		variant.UserCount++
	}

	metrics.VariantAssignments.WithLabelValues(testID, variant.ID).Inc()
	return variant
}

// RecordMetrics folds one metric observation into a variant's running
// averages.
func (e *Engine) RecordMetrics(testID, variantID string, obs VariantMetrics) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tests[testID]
	if !ok {
		return fmt.Errorf("unknown test %q", testID)
	}
	for _, v := range t.Variants {
		if v.ID == variantID {
			v.Metrics.fold(obs)
			metrics.ExperimentMetricUpdates.WithLabelValues(testID).Inc()
			return nil
		}
	}
	return fmt.Errorf("unknown variant %q in test %q", variantID, testID)
}

// Results analyzes a test: per-variant confidence and composite, plus the
// winning variant once one clears the confidence bar.
func (e *Engine) Results(testID string) (*TestResults, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	t, ok := e.tests[testID]
	if !ok {
		return nil, fmt.Errorf("unknown test %q", testID)
	}

	results := &TestResults{TestID: testID}
	for _, v := range t.Variants {
		r := VariantResult{
			Variant:    *v,
			Confidence: SampleConfidence(v.UserCount),
			Composite: engagementShare*v.Metrics.Engagement +
				retentionShare*v.Metrics.Retention +
				diversityShare*v.Metrics.Diversity,
		}
		results.Variants = append(results.Variants, r)
	}

	// Two-variant tests with recorded impression counts get a proper
	// chi-square confidence; the staircase above stays as the fallback
	// for everything else.
	if len(t.Variants) == 2 {
		a, b := t.Variants[0].Metrics, t.Variants[1].Metrics
		if conf := CompareVariants(a.Impressions, a.Conversions, b.Impressions, b.Conversions); conf > 0 {
			for i := range results.Variants {
				results.Variants[i].Confidence = conf
			}
		}
	}

	for i := range results.Variants {
		r := &results.Variants[i]
		if r.Confidence <= winnerConfidence {
			continue
		}
		if results.Winner == nil || r.Composite > results.Winner.Composite {
			results.Winner = r
		}
	}

	return results, nil
}

// Tests returns a snapshot of all registered test ids.
func (e *Engine) Tests() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ids := make([]string, 0, len(e.tests))
	for id := range e.tests {
		ids = append(ids, id)
	}
	return ids
}

// SampleConfidence maps a sample size onto a coarse confidence staircase.
// It deliberately stays below 1.0: no sample size alone proves a result.
func SampleConfidence(n int) float64 {
	switch {
	case n >= 10000:
		return 0.99
	case n >= 5000:
		return 0.97
	case n >= 1000:
		return 0.90
	case n >= 500:
		return 0.80
	case n >= 100:
		return 0.70
	case n > 0:
		return 0.50
	default:
		return 0
	}
}
