// SPDX-License-Identifier: MIT

// Package roster models the raw contact roster of a personal network and
// merges it into one record per contact.
//
// What:
//
//   - RawEntry is one (name, domain, tie strength, valence) row as produced by
//     the contact entry surface. The same name may appear in several domains.
//   - Contact is the aggregated view of every RawEntry sharing a name.
//   - Roster is the name → Contact mapping, remembering first-seen order.
//   - Edge is an unordered acquaintance pair, canonicalised by sorting.
//
// Aggregation rules (Aggregate):
//
//   - Grouping key is the exact, case-sensitive name.
//   - Domains is the union of the domains a name appeared in, reported in the
//     canonical domain order (see Domains()).
//   - AvgTieStrength is the arithmetic mean over the full multiset of recorded
//     strengths; it is always recomputed from scratch, never incrementally.
//   - Valence is the mode of the recorded valences. Ties go to the value that
//     was seen first in the input.
//
// Complexity:
//
//   - Aggregate: O(N·D) time, O(N) memory for N entries and D ≤ 5 domains.
//
// Errors:
//
//   - ErrEmptyName, ErrUnknownDomain, ErrTieStrengthRange, ErrUnknownValence
//     are returned by RawEntry.Validate and parsers.
package roster
