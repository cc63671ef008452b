// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory undirected simple graph
// the sociograph engine runs its metrics on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected: AddEdge(a,b) and AddEdge(b,a) name the same edge.
//   - Simple: self-loops return ErrLoopNotAllowed and parallel edges return
//     ErrMultiEdgeNotAllowed.
//   - Unweighted: edges carry no cost; every algorithm counts hops.
//   - Insertion-ordered: Vertices() enumerates IDs in the order they were
//     added, so callers that break ties by "first seen" stay deterministic.
//   - Attributed: every Vertex carries a Metadata map for caller-owned data.
//
// Adjacency is stored as adjacency[u][v] = edgeID (mirrored for v→u), giving
// O(1) existence checks, insertion and neighbor lookup.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                          // O(1)
//	HasVertex(id string) bool                           // O(1)
//	Vertex(id string) (*Vertex, error)                  // O(1)
//	SetVertexAttr(id, key string, value interface{}) error // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1)
//	HasEdge(from, to string) bool                       // O(1)
//
//	// Query
//	Vertices() []string                                 // O(V), insertion order
//	Edges() []*Edge                                     // O(E), insertion order
//	NeighborIDs(id string) ([]string, error)            // O(d·log d), sorted
//	Degree(id string) (int, error)                      // O(1)
//	VertexCount() int; EdgeCount() int                  // O(1)
//
// Concurrency: muVert guards the vertex catalog and order; muEdgeAdj guards
// edges and adjacency. Lock order is always muVert → muEdgeAdj.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – from == to
//	ErrMultiEdgeNotAllowed – the unordered pair is already connected
package core
