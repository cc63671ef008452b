// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the two vertices are already connected.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

const edgeIDPrefix = "e"

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary caller data keyed by attribute name.
	Metadata map[string]interface{}
}

// Edge represents an undirected connection between two vertices.
// From and To keep the orientation the edge was added with; it carries no meaning.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string
}

// Other returns the endpoint of e that is not id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Graph is an undirected, unweighted simple graph.
//
// muVert protects vertices and order; muEdgeAdj protects edges, edgeOrder and adjacency.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nextEdgeID uint64
	vertices   map[string]*Vertex
	order      []string // vertex IDs in insertion order

	edges     map[string]*Edge
	edgeOrder []string // edge IDs in insertion order

	// adjacency[u][v] = edge ID; mirrored as adjacency[v][u].
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
