// SPDX-License-Identifier: MIT

// Package metrics computes the structural and compositional measures of a
// personal network graph and freezes them into an immutable Snapshot.
//
// Measures:
//
//   - Size: node and edge counts; density m / C(n,2), defined as 0 for n ≤ 1.
//   - Degree map and the most connected contact.
//   - Domain counts over the five fixed domains (a multi-domain contact counts
//     once per domain, so shares may exceed 100% in total) and valence counts.
//   - Connectivity: component count, largest component, IsConnected (vacuously
//     true for an empty graph).
//   - Average local clustering coefficient (triadic closure proxy).
//   - Centrality, only when n > 0 and m > 0: eigenvector centrality, falling
//     back to PageRank when the algorithm reports an ambiguous solution, plus
//     closeness centrality which is always computed independently.
//
// Ties in arg-max/arg-min selections go to the vertex inserted first.
//
// The Engine is stateless between calls: every Compute is a full, pure
// recomputation from the given graph.
package metrics
