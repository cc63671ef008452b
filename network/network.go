// SPDX-License-Identifier: MIT

// Package network builds the acquaintance graph from an aggregated roster.
//
// Build inserts one vertex per contact, in the roster's first-seen order, and
// stores the *roster.Contact under ContactAttr so metrics can read domains,
// tie strength and valence back from the graph. Edges are trusted to be
// canonical and name-validated upstream; Build still refuses to create a
// self-loop or an edge to an unknown contact, and duplicate pairs collapse
// into one edge.
package network

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/roster"
)

// ContactAttr is the vertex metadata key holding the *roster.Contact.
const ContactAttr = "contact"

// ErrNoContact is returned by ContactOf when a vertex carries no contact.
var ErrNoContact = errors.New("network: vertex has no contact attribute")

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	log *zap.Logger
}

// WithLogger routes skipped-edge diagnostics to log.
func WithLogger(log *zap.Logger) Option {
	return func(o *buildOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// Skipped counts the edges Build refused, by reason.
type Skipped struct {
	SelfLoops int `json:"self_loops" yaml:"self_loops"`
	Unknown   int `json:"unknown" yaml:"unknown"`
	Duplicate int `json:"duplicate" yaml:"duplicate"`
}

// Total returns the number of refused edges.
func (s Skipped) Total() int { return s.SelfLoops + s.Unknown + s.Duplicate }

// Build constructs the undirected simple graph for r and edges.
// A nil roster yields an empty graph.
func Build(r *roster.Roster, edges []roster.Edge, opts ...Option) (*core.Graph, Skipped) {
	o := buildOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewGraph()
	var skipped Skipped
	for _, c := range r.Contacts() {
		// Names come from a Roster, so they are non-empty and unique.
		_ = g.AddVertex(c.Name)
		_ = g.SetVertexAttr(c.Name, ContactAttr, c)
	}

	for _, e := range edges {
		_, err := g.AddEdge(e.A, e.B)
		switch {
		case err == nil:
		case errors.Is(err, core.ErrLoopNotAllowed):
			skipped.SelfLoops++
			o.log.Debug("skipping self-loop", zap.String("contact", e.A))
		case errors.Is(err, core.ErrMultiEdgeNotAllowed):
			skipped.Duplicate++
		default:
			skipped.Unknown++
			o.log.Debug("skipping edge with unknown endpoint",
				zap.String("a", e.A), zap.String("b", e.B), zap.Error(err))
		}
	}
	if skipped.Total() > 0 {
		o.log.Info("graph built with skipped edges",
			zap.Int("self_loops", skipped.SelfLoops),
			zap.Int("unknown", skipped.Unknown),
			zap.Int("duplicate", skipped.Duplicate))
	}

	return g, skipped
}

// ContactOf returns the contact stored on vertex id.
func ContactOf(g *core.Graph, id string) (*roster.Contact, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return nil, err
	}
	c, ok := v.Metadata[ContactAttr].(*roster.Contact)
	if !ok || c == nil {
		return nil, ErrNoContact
	}

	return c, nil
}
