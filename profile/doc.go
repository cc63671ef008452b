// SPDX-License-Identifier: MIT

// Package profile classifies a personal network into one of eight archetypes.
//
// Three booleans drive the classification:
//
//	large   node count > Thresholds.LargeNetworkSize          (default 10)
//	diverse domain entropy > Thresholds.HighDiversityEntropy  (default 1.0 bit)
//	strong  mean tie strength ≥ Thresholds.HighStrength       (default 3.5)
//
// Domain entropy is the base-2 Shannon entropy of the five domain counts,
// normalised by their sum. A contact in several domains counts in each, so the
// sum can exceed the node count.
//
// The mapping from the three booleans to a Profile is a total lookup table:
// every combination has exactly one archetype, and every archetype carries a
// fixed narrative.
package profile
