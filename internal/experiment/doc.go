// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

/*
Package experiment implements deterministic A/B testing for the feed
algorithm.

Users are assigned to variants by hashing "testID:userID" with xxhash and
mapping the result into the 0-99 bucket space, walked against cumulative
variant weights. Assignment is stable: the same user always lands in the
same variant, with no stored assignment state. Bucket space not covered by
any variant weight falls back to the first variant, which by convention is
the control arm.

Variant metrics accumulate as two-point running averages, weighting recent
observations more heavily than a plain mean. Winner selection requires a
variant to clear the 0.95 sample-size confidence bar and then compares the
weighted composite of engagement, retention, and session duration.

ChiSquare and Significance provide the 2x2 contingency test used to compare
two variants' conversion counts against the one-degree-of-freedom critical
values.
*/
package experiment
