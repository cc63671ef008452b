// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edge IDs are assigned from a monotonically increasing counter.
//   - Edges() returns edges in insertion order.
//
// Concurrency:
//   - Edge catalog and adjacency protected by muEdgeAdj.

package core

import (
	"fmt"
	"sync/atomic"
)

// AddEdge connects from and to and returns the new edge ID.
//
// Implementation:
//   - Stage 1: Validate IDs (ErrEmptyVertexID) and reject loops (ErrLoopNotAllowed).
//   - Stage 2: Require both endpoints to exist (ErrVertexNotFound); no implicit vertex creation.
//   - Stage 3: Reject an already connected pair in either orientation (ErrMultiEdgeNotAllowed).
//   - Stage 4: Allocate the ID, store the edge and mirror the adjacency.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", fmt.Errorf("AddEdge(%q,%q): %w", from, to, ErrLoopNotAllowed)
	}
	if !g.HasVertex(from) {
		return "", fmt.Errorf("AddEdge: from %q: %w", from, ErrVertexNotFound)
	}
	if !g.HasVertex(to) {
		return "", fmt.Errorf("AddEdge: to %q: %w", to, ErrVertexNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return "", fmt.Errorf("AddEdge(%q,%q): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.edgeOrder = append(g.edgeOrder, eid)
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether from and to are connected (orientation is immaterial).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Stats returns a read-only snapshot of vertex and edge counts.
// Complexity: O(1).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	g.muEdgeAdj.RUnlock()

	return stats
}

// GraphStats is a compact count snapshot produced by Stats.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
}
