// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/sociograph/roster"
)

// Fixture is a generated roster: raw entries plus canonical edges.
type Fixture struct {
	Entries []roster.RawEntry `json:"contacts" yaml:"contacts"`
	Edges   []roster.Edge     `json:"edges" yaml:"edges"`

	next  int
	names map[string]bool
}

// Names returns contact names in allocation order, without repeats.
func (f *Fixture) Names() []string {
	seen := make(map[string]bool, len(f.Entries))
	out := make([]string, 0, len(f.Entries))
	for _, e := range f.Entries {
		if !seen[e.Name] {
			seen[e.Name] = true
			out = append(out, e.Name)
		}
	}

	return out
}

// alloc adds n fresh contacts using the configured policies and returns their names.
func (f *Fixture) alloc(cfg builderConfig, n int) []string {
	names := make([]string, n)
	for k := 0; k < n; k++ {
		idx := f.next
		f.next++
		name := cfg.idFn(idx)
		names[k] = name
		f.names[name] = true
		f.Entries = append(f.Entries, roster.RawEntry{
			Name:        name,
			Domain:      cfg.domainFn(idx),
			TieStrength: cfg.strengthFn(idx, cfg.rng),
			Valence:     cfg.valenceFn(idx),
		})
	}

	return names
}

// link appends the canonical edge a–b.
func (f *Fixture) link(a, b string) {
	f.Edges = append(f.Edges, roster.NewEdge(a, b))
}

// Constructor applies a deterministic mutation to the fixture.
type Constructor func(f *Fixture, cfg builderConfig) error

// Build resolves bopts and applies cons in order to a fresh Fixture.
// Any constructor error is wrapped as "Build: %w".
func Build(bopts []BuilderOption, cons ...Constructor) (*Fixture, error) {
	cfg := newBuilderConfig(bopts...)
	f := &Fixture{names: make(map[string]bool)}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return f, nil
}

// Scoped applies cons with opts layered over the current configuration.
// Name indices keep counting across the scope boundary.
func Scoped(opts []BuilderOption, cons ...Constructor) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		for _, opt := range opts {
			opt(&cfg)
		}
		for i, fn := range cons {
			if fn == nil {
				return fmt.Errorf("Scoped: nil constructor at index %d: %w", i, ErrConstructFailed)
			}
			if err := fn(f, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
