// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/sociograph/roster"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn       IDFn
	domainFn   DomainFn
	strengthFn StrengthFn
	valenceFn  ValenceFn

	// rng is nil unless WithSeed or WithRand was given.
	rng *rand.Rand
}

// Deterministic defaults.
const (
	defaultDomain   = roster.FamilyFriends
	defaultStrength = 3
	defaultValence  = roster.Positive
)

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       ExcelColumnIDFn,
		domainFn:   ConstantDomainFn(defaultDomain),
		strengthFn: ConstantStrengthFn(defaultStrength),
		valenceFn:  ConstantValenceFn(defaultValence),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
