// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-order enumeration for vertices and edges.
//   - Validate simple-graph enforcement (loops, parallel edges, unknown endpoints).

package core_test

import (
	"testing"

	"github.com/katalvlaran/sociograph/core"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	MustErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID, "AddVertex(empty)")
	MustErrorNil(t, g.AddVertex(VertexA), "AddVertex(A)")
	MustEqualBool(t, g.HasVertex(VertexA), true, "HasVertex(A)")

	// Duplicate insert is a no-op.
	MustErrorNil(t, g.AddVertex(VertexA), "AddVertex(A) duplicate")
	MustEqualInt(t, g.VertexCount(), 1, "VertexCount after duplicate")
	MustEqualBool(t, g.HasVertex(VertexEmpty), false, "HasVertex(empty)")
}

// TestGraph_VerticesInsertionOrder anchors the first-seen enumeration order.
func TestGraph_VerticesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{VertexX, VertexC, VertexA, VertexB, VertexC} {
		MustErrorNil(t, g.AddVertex(id), "AddVertex("+id+")")
	}
	MustEqualStrings(t, g.Vertices(), []string{VertexX, VertexC, VertexA, VertexB}, "Vertices()")
}

// TestGraph_AddEdge_Symmetry verifies that (A,B) then (B,A) stores exactly one edge.
func TestGraph_AddEdge_Symmetry(t *testing.T) {
	g := core.NewGraph()
	MustErrorNil(t, g.AddVertex(VertexA), "AddVertex(A)")
	MustErrorNil(t, g.AddVertex(VertexB), "AddVertex(B)")

	eid, err := g.AddEdge(VertexA, VertexB)
	MustErrorNil(t, err, "AddEdge(A,B)")
	if eid != "e1" {
		t.Fatalf("first edge ID = %q; want e1", eid)
	}
	_, err = g.AddEdge(VertexB, VertexA)
	MustErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "AddEdge(B,A)")
	MustEqualInt(t, g.EdgeCount(), 1, "EdgeCount")
	MustEqualBool(t, g.HasEdge(VertexA, VertexB), true, "HasEdge(A,B)")
	MustEqualBool(t, g.HasEdge(VertexB, VertexA), true, "HasEdge(B,A)")
}

// TestGraph_AddEdge_Rejections covers loops, empty IDs and unknown endpoints.
func TestGraph_AddEdge_Rejections(t *testing.T) {
	g := core.NewGraph()
	MustErrorNil(t, g.AddVertex(VertexA), "AddVertex(A)")

	_, err := g.AddEdge(VertexA, VertexA)
	MustErrorIs(t, err, core.ErrLoopNotAllowed, "AddEdge(A,A)")

	_, err = g.AddEdge(VertexEmpty, VertexA)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "AddEdge(empty,A)")

	_, err = g.AddEdge(VertexA, VertexX)
	MustErrorIs(t, err, core.ErrVertexNotFound, "AddEdge(A,X)")
	MustEqualBool(t, g.HasVertex(VertexX), false, "no implicit vertex creation")
	MustEqualInt(t, g.EdgeCount(), 0, "EdgeCount")
}

// TestGraph_NeighborsAndDegree checks sorted neighbors and degree counts.
func TestGraph_NeighborsAndDegree(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{VertexC, VertexA, VertexB, VertexX} {
		MustErrorNil(t, g.AddVertex(id), "AddVertex("+id+")")
	}
	for _, p := range [][2]string{{VertexA, VertexC}, {VertexA, VertexB}, {VertexX, VertexA}} {
		_, err := g.AddEdge(p[0], p[1])
		MustErrorNil(t, err, "AddEdge")
	}

	nbrs, err := g.NeighborIDs(VertexA)
	MustErrorNil(t, err, "NeighborIDs(A)")
	MustEqualStrings(t, nbrs, []string{VertexB, VertexC, VertexX}, "NeighborIDs(A)")

	d, err := g.Degree(VertexA)
	MustErrorNil(t, err, "Degree(A)")
	MustEqualInt(t, d, 3, "Degree(A)")

	d, err = g.Degree(VertexB)
	MustErrorNil(t, err, "Degree(B)")
	MustEqualInt(t, d, 1, "Degree(B)")

	_, err = g.NeighborIDs("missing")
	MustErrorIs(t, err, core.ErrVertexNotFound, "NeighborIDs(missing)")
	_, err = g.Degree(VertexEmpty)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "Degree(empty)")

	edges := g.Edges()
	MustEqualInt(t, len(edges), 3, "len(Edges)")
	if edges[2].From != VertexX || edges[2].Other(VertexX) != VertexA {
		t.Fatalf("third edge = %+v; want X–A", edges[2])
	}
	stats := g.Stats()
	MustEqualInt(t, stats.VertexCount, 4, "Stats.VertexCount")
	MustEqualInt(t, stats.EdgeCount, 3, "Stats.EdgeCount")
}

// TestGraph_VertexAttr verifies metadata storage on existing vertices only.
func TestGraph_VertexAttr(t *testing.T) {
	g := core.NewGraph()
	MustErrorNil(t, g.AddVertex(VertexA), "AddVertex(A)")
	MustErrorNil(t, g.SetVertexAttr(VertexA, "valence", "Positive"), "SetVertexAttr(A)")
	MustErrorIs(t, g.SetVertexAttr(VertexB, "valence", "Positive"), core.ErrVertexNotFound, "SetVertexAttr(B)")

	v, err := g.Vertex(VertexA)
	MustErrorNil(t, err, "Vertex(A)")
	if got := v.Metadata["valence"]; got != "Positive" {
		t.Fatalf("Metadata[valence] = %v; want Positive", got)
	}
	_, err = g.Vertex(VertexB)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Vertex(B)")
}
