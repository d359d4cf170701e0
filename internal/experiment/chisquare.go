// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package experiment

// Chi-square critical values for one degree of freedom.
const (
	critical90 = 2.706
	critical95 = 3.841
	critical99 = 6.635
)

// ChiSquare computes the chi-square statistic for a 2x2 contingency table
// comparing two variants' conversion behavior: (impressions, conversions)
// for A against (impressions, conversions) for B. Degenerate tables, any
// side without impressions or a zero marginal, return 0.
func ChiSquare(impressionsA, conversionsA, impressionsB, conversionsB int) float64 {
	if impressionsA <= 0 || impressionsB <= 0 {
		return 0
	}
	if conversionsA > impressionsA || conversionsB > impressionsB {
		return 0
	}

	a := float64(conversionsA)
	b := float64(impressionsA - conversionsA)
	c := float64(conversionsB)
	d := float64(impressionsB - conversionsB)
	n := a + b + c + d

	denom := (a + b) * (c + d) * (a + c) * (b + d)
	if denom == 0 {
		return 0
	}

	diff := a*d - b*c
	return n * diff * diff / denom
}

// Significance maps a chi-square statistic (one degree of freedom) onto
// the confidence level it clears: 0.99, 0.95, 0.90, or 0 below the lowest
// critical value.
func Significance(chiSquare float64) float64 {
	switch {
	case chiSquare >= critical99:
		return 0.99
	case chiSquare >= critical95:
		return 0.95
	case chiSquare >= critical90:
		return 0.90
	default:
		return 0
	}
}

// CompareVariants is the end-to-end significance check for two variants'
// conversion counts.
func CompareVariants(impressionsA, conversionsA, impressionsB, conversionsB int) float64 {
	return Significance(ChiSquare(impressionsA, conversionsA, impressionsB, conversionsB))
}
