// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances and visit order from a start vertex.
//
// The metrics engine relies on it twice: once per vertex to collect the
// shortest-path distances behind closeness centrality, and once per
// unvisited vertex to enumerate connected components.
//
// Complexity:
//
//   - BFS: O(V + E·log d) time (NeighborIDs sorts each adjacency list), O(V) memory.
//   - Components: O(V + E·log d) time, O(V) memory.
//
// Determinism:
//
//   - Neighbors are expanded in sorted order, so Order is reproducible.
//   - Components are emitted in the insertion order of their first vertex.
//
// Errors:
//
//   - ErrGraphNil: nil graph pointer.
//   - ErrStartVertexNotFound: start vertex absent.
//   - ErrNeighbors: neighbor lookup failed mid-walk.
package bfs
