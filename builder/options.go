// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/sociograph/roster"
)

// BuilderOption customizes the fixture configuration before construction.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the contact name generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithPrefixIDs names contacts prefix0, prefix1, ...
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG for reproducible stochastic fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDomainFn sets the per-index domain policy. Panics on nil.
func WithDomainFn(fn DomainFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDomainFn(nil)")
	}
	return func(c *builderConfig) { c.domainFn = fn }
}

// WithDomain places every contact in d.
func WithDomain(d roster.Domain) BuilderOption {
	return WithDomainFn(ConstantDomainFn(d))
}

// WithDomainCycle assigns the five domains round-robin in canonical order.
func WithDomainCycle() BuilderOption {
	return WithDomainFn(CyclingDomainFn(roster.Domains()...))
}

// WithStrengthFn sets the per-index tie strength policy. Panics on nil.
func WithStrengthFn(fn StrengthFn) BuilderOption {
	if fn == nil {
		panic("builder: WithStrengthFn(nil)")
	}
	return func(c *builderConfig) { c.strengthFn = fn }
}

// WithStrength gives every contact tie strength s.
func WithStrength(s int) BuilderOption {
	return WithStrengthFn(ConstantStrengthFn(s))
}

// WithValenceFn sets the per-index valence policy. Panics on nil.
func WithValenceFn(fn ValenceFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValenceFn(nil)")
	}
	return func(c *builderConfig) { c.valenceFn = fn }
}

// WithValence gives every contact valence v.
func WithValence(v roster.Valence) BuilderOption {
	return WithValenceFn(ConstantValenceFn(v))
}
