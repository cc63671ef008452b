// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sociograph/roster"
)

// DomainFn picks the domain of the contact at idx.
type DomainFn func(idx int) roster.Domain

// ConstantDomainFn always yields d. Panics on an unknown domain.
func ConstantDomainFn(d roster.Domain) DomainFn {
	if !d.Valid() {
		panic(fmt.Sprintf("ConstantDomainFn: unknown domain %q", d))
	}
	return func(int) roster.Domain { return d }
}

// CyclingDomainFn yields ds[idx % len(ds)]. Panics on an empty or invalid list.
func CyclingDomainFn(ds ...roster.Domain) DomainFn {
	if len(ds) == 0 {
		panic("CyclingDomainFn: no domains")
	}
	for _, d := range ds {
		if !d.Valid() {
			panic(fmt.Sprintf("CyclingDomainFn: unknown domain %q", d))
		}
	}
	cp := append([]roster.Domain(nil), ds...)

	return func(idx int) roster.Domain { return cp[idx%len(cp)] }
}

// StrengthFn picks the tie strength of the contact at idx.
// rng is nil unless the fixture was seeded.
type StrengthFn func(idx int, rng *rand.Rand) int

// ConstantStrengthFn always yields s. Panics if s is outside 1..5.
func ConstantStrengthFn(s int) StrengthFn {
	mustStrength("ConstantStrengthFn", s)
	return func(int, *rand.Rand) int { return s }
}

// UniformStrengthFn samples uniformly in [min, max]. Without an RNG it
// yields min. Panics unless 1 ≤ min ≤ max ≤ 5.
func UniformStrengthFn(min, max int) StrengthFn {
	mustStrength("UniformStrengthFn", min)
	mustStrength("UniformStrengthFn", max)
	if max < min {
		panic(fmt.Sprintf("UniformStrengthFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(_ int, rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Intn(max-min+1)
	}
}

func mustStrength(fn string, s int) {
	if s < roster.MinTieStrength || s > roster.MaxTieStrength {
		panic(fmt.Sprintf("%s: strength must be in [%d,%d], got %d",
			fn, roster.MinTieStrength, roster.MaxTieStrength, s))
	}
}

// ValenceFn picks the valence of the contact at idx.
type ValenceFn func(idx int) roster.Valence

// ConstantValenceFn always yields v. Panics on an unknown valence.
func ConstantValenceFn(v roster.Valence) ValenceFn {
	if !v.Valid() {
		panic(fmt.Sprintf("ConstantValenceFn: unknown valence %q", v))
	}
	return func(int) roster.Valence { return v }
}

// CyclingValenceFn yields vs[idx % len(vs)]. Panics on an empty or invalid list.
func CyclingValenceFn(vs ...roster.Valence) ValenceFn {
	if len(vs) == 0 {
		panic("CyclingValenceFn: no valences")
	}
	for _, v := range vs {
		if !v.Valid() {
			panic(fmt.Sprintf("CyclingValenceFn: unknown valence %q", v))
		}
	}
	cp := append([]roster.Valence(nil), vs...)

	return func(idx int) roster.Valence { return cp[idx%len(cp)] }
}
