// SPDX-License-Identifier: MIT

// Package analytics is the graph-algorithm capability the metrics engine
// depends on: eigenvector centrality, PageRank, closeness centrality, local
// clustering coefficients and connected components over a core.Graph.
//
// What:
//
//   - GraphAlgorithms is the interface; Toolkit is the default implementation.
//   - Eigenvector returns ErrAmbiguousSolution when the principal eigenvector
//     is not uniquely defined (disconnected graph, or a repeated leading
//     eigenvalue). Callers decide the fallback; this package never hides it.
//
// Definitions:
//
//   - Eigenvector: principal eigenvector of the adjacency matrix A, unit L2
//     norm, sign chosen so the entries sum to a positive value. Computed with
//     gonum's symmetric eigendecomposition (mat.EigenSym).
//   - PageRank: power iteration x ← d·M·x + (1−d)/n with column-stochastic M,
//     dangling vertices redistributing uniformly; converged when
//     ‖x' − x‖₁ < n·tol.
//   - Closeness: C(u) = (r−1)/Σd(u,v) · (r−1)/(n−1), where r counts vertices
//     reachable from u (u included). Zero for isolated vertices.
//   - Clustering: 2·T(u) / (k(k−1)), zero when degree k < 2.
//
// Complexity:
//
//   - Eigenvector: O(V³) time, O(V²) memory.
//   - PageRank: O(iter·V²) time, O(V²) memory (dense transition matrix).
//   - Closeness: O(V·(V+E)) time. Clustering: O(Σ k²) time.
//
// Errors:
//
//   - ErrGraphNil, ErrEmptyGraph, ErrAmbiguousSolution, ErrEigenFailed,
//     ErrNotConverged, ErrOptionViolation.
package analytics
