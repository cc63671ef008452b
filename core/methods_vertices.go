// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert; adjacency bootstrap under muEdgeAdj.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert, register the vertex and append it to the insertion order.
//   - Stage 3: Under muEdgeAdj, bootstrap the adjacency bucket.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live vertex stored under id.
// Metadata is shared with the graph; treat it as read-only outside SetVertexAttr.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("Vertex(%q): %w", id, ErrVertexNotFound)
	}

	return v, nil
}

// SetVertexAttr stores value under key in the metadata of vertex id.
// Complexity: O(1).
func (g *Graph) SetVertexAttr(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetVertexAttr(%q): %w", id, ErrVertexNotFound)
	}
	v.Metadata[key] = value

	return nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, len(g.order))
	copy(ids, g.order)

	return ids
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		return nil, fmt.Errorf("NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		if id == "" {
			return 0, ErrEmptyVertexID
		}
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
