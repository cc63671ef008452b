// SPDX-License-Identifier: MIT

// Package session holds the mutable state of one analysis session: the
// finalized roster rows and the acquaintance edges entered so far.
//
// A Session is owned by a single caller and is not safe for concurrent use.
// Every Report call recomputes from scratch.
package session

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/sociograph/report"
	"github.com/katalvlaran/sociograph/roster"
)

// Sentinel errors for session input.
var (
	// ErrGroupTooSmall is returned when a group names fewer than two distinct contacts.
	ErrGroupTooSmall = errors.New("session: group needs at least two distinct contacts")

	// ErrUnknownContact is returned when a group references a name outside the roster.
	ErrUnknownContact = errors.New("session: unknown contact")

	// ErrInvalidEntry wraps the roster validation error of a rejected row.
	ErrInvalidEntry = errors.New("session: invalid entry")
)

// EdgeOutcome reports what AddEdge did.
type EdgeOutcome int

// Edge outcomes.
const (
	EdgeAdded EdgeOutcome = iota
	EdgeExists
	EdgeSelfLoop
	EdgeUnknownContact
)

func (o EdgeOutcome) String() string {
	switch o {
	case EdgeAdded:
		return "added"
	case EdgeExists:
		return "exists"
	case EdgeSelfLoop:
		return "self-loop"
	case EdgeUnknownContact:
		return "unknown-contact"
	default:
		return fmt.Sprintf("EdgeOutcome(%d)", int(o))
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger, also used for reports.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithID fixes the session ID instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(s *Session) { s.id = id }
}

// Session accumulates roster rows and edges.
type Session struct {
	id      uuid.UUID
	log     *zap.Logger
	entries []roster.RawEntry
	roster  *roster.Roster
	edges   map[roster.Edge]struct{}
}

// New returns an empty Session with a random ID.
func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.New(),
		log:    zap.NewNop(),
		roster: roster.Aggregate(nil),
		edges:  make(map[roster.Edge]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("session", s.id.String()))

	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Finalize replaces the roster with entries. Names are trimmed and rows with a
// blank name are dropped; any other invalid row rejects the whole call and
// leaves the session untouched. Edges whose endpoints are no longer in the
// roster are pruned. The accepted rows are returned.
func (s *Session) Finalize(entries []roster.RawEntry) ([]roster.RawEntry, error) {
	accepted := make([]roster.RawEntry, 0, len(entries))
	for i, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			continue
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("Finalize: row %d: %w: %w", i, ErrInvalidEntry, err)
		}
		accepted = append(accepted, e)
	}

	s.entries = accepted
	s.roster = roster.Aggregate(accepted)

	pruned := 0
	for e := range s.edges {
		if !s.roster.Has(e.A) || !s.roster.Has(e.B) {
			delete(s.edges, e)
			pruned++
		}
	}
	s.log.Info("roster finalized",
		zap.Int("rows", len(accepted)),
		zap.Int("dropped_blank", len(entries)-len(accepted)),
		zap.Int("contacts", s.roster.Len()),
		zap.Int("edges_pruned", pruned))

	return append([]roster.RawEntry(nil), accepted...), nil
}

// Entries returns a copy of the finalized rows.
func (s *Session) Entries() []roster.RawEntry {
	return append([]roster.RawEntry(nil), s.entries...)
}

// Roster returns the aggregated view of the finalized rows.
func (s *Session) Roster() *roster.Roster { return s.roster }

// AddEdge records an acquaintance between a and b in canonical order.
func (s *Session) AddEdge(a, b string) EdgeOutcome {
	e := roster.NewEdge(a, b)
	var out EdgeOutcome
	switch {
	case e.IsLoop():
		out = EdgeSelfLoop
	case !s.roster.Has(e.A) || !s.roster.Has(e.B):
		out = EdgeUnknownContact
	default:
		if _, ok := s.edges[e]; ok {
			out = EdgeExists
		} else {
			s.edges[e] = struct{}{}
			out = EdgeAdded
		}
	}
	s.log.Debug("add edge", zap.Stringer("edge", e), zap.Stringer("outcome", out))

	return out
}

// AddEdgesForGroup connects every pair of the named contacts and returns how
// many edges were new. Repeated names count once. Nothing is added when a
// name is unknown.
func (s *Session) AddEdgesForGroup(names []string) (int, error) {
	seen := make(map[string]bool, len(names))
	members := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		if !s.roster.Has(n) {
			return 0, fmt.Errorf("AddEdgesForGroup: %q: %w", n, ErrUnknownContact)
		}
		seen[n] = true
		members = append(members, n)
	}
	if len(members) < 2 {
		return 0, ErrGroupTooSmall
	}

	added := 0
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if s.AddEdge(members[i], members[j]) == EdgeAdded {
				added++
			}
		}
	}
	s.log.Info("group edges added", zap.Int("members", len(members)), zap.Int("added", added))

	return added, nil
}

// RemoveEdge deletes the edge a–b and reports whether it existed.
func (s *Session) RemoveEdge(a, b string) bool {
	e := roster.NewEdge(a, b)
	if _, ok := s.edges[e]; !ok {
		return false
	}
	delete(s.edges, e)

	return true
}

// Edges returns the stored edges sorted by (A, B).
func (s *Session) Edges() []roster.Edge {
	out := make([]roster.Edge, 0, len(s.edges))
	for e := range s.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// Report computes the analysis of the current state. The session logger is
// used unless opts override it.
func (s *Session) Report(opts ...report.Option) (*report.Report, error) {
	all := append([]report.Option{report.WithLogger(s.log)}, opts...)

	return report.Compute(s.entries, s.Edges(), all...)
}
