// SPDX-License-Identifier: MIT

// Package builder assembles deterministic roster fixtures: contact entries plus
// the acquaintance edges among them.
//
// A Fixture is grown by Constructors applied in order by Build. Each
// constructor allocates fresh contact names through the configured IDFn, so
// composing several constructors yields disjoint components:
//
//	fx, err := builder.Build(
//	    []builder.BuilderOption{builder.WithDomainCycle(), builder.WithSeed(7)},
//	    builder.Complete(4),
//	    builder.Star(5),
//	    builder.Isolated(2),
//	)
//
// Contact attributes come from per-index policies: DomainFn, StrengthFn and
// ValenceFn. Indices are global across constructors, so a cycling domain
// policy keeps cycling from one component to the next.
//
// Determinism: same options, same seed and same constructor order produce
// identical fixtures. RandomSparse is the only constructor that needs an RNG.
//
// Option constructors panic on meaningless inputs (nil functions, strengths
// outside 1..5); constructors themselves return sentinel errors and never panic.
package builder
