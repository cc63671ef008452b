// SPDX-License-Identifier: MIT

package profile_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sociograph/metrics"
	"github.com/katalvlaran/sociograph/network"
	"github.com/katalvlaran/sociograph/profile"
	"github.com/katalvlaran/sociograph/roster"
)

// classify runs the roster through graph building and metrics, then profiles it.
func classify(t *testing.T, entries []roster.RawEntry, edges []roster.Edge) *profile.Result {
	t.Helper()
	r := roster.Aggregate(entries)
	g, _ := network.Build(r, edges)
	s, err := metrics.NewEngine().Compute(g)
	require.NoError(t, err)
	res, err := profile.Classify(s, r, profile.DefaultThresholds())
	require.NoError(t, err)

	return res
}

func entriesIn(domains []roster.Domain, perDomain, strength int) []roster.RawEntry {
	var out []roster.RawEntry
	for _, d := range domains {
		for i := 0; i < perDomain; i++ {
			out = append(out, roster.RawEntry{
				Name:        fmt.Sprintf("%s-%d", d, i),
				Domain:      d,
				TieStrength: strength,
				Valence:     roster.Positive,
			})
		}
	}

	return out
}

// TestLookup_Total checks every combination maps to a distinct archetype.
func TestLookup_Total(t *testing.T) {
	want := map[[3]bool]string{
		{true, true, true}:    profile.CosmopolitanLinchpin,
		{true, true, false}:   profile.VersatileExplorer,
		{true, false, true}:   profile.FocusedPowerhouse,
		{true, false, false}:  profile.EstablishedSpecialist,
		{false, true, true}:   profile.GlobalArtisan,
		{false, true, false}:  profile.CuriousTinkerer,
		{false, false, true}:  profile.LoyalCore,
		{false, false, false}: profile.InsularOutpost,
	}
	seen := make(map[string]bool)
	for combo, name := range want {
		p := profile.Lookup(combo[0], combo[1], combo[2])
		assert.Equal(t, name, p.Name, "combo %v", combo)
		assert.NotEmpty(t, p.Summary)
		assert.NotEmpty(t, p.Strengths)
		assert.NotEmpty(t, p.Weaknesses)
		assert.NotEmpty(t, p.Prescription)
		seen[p.Name] = true
	}
	assert.Len(t, seen, 8)

	all := profile.All()
	require.Len(t, all, 8)
	assert.Equal(t, profile.CosmopolitanLinchpin, all[0].Name)
	assert.Equal(t, profile.InsularOutpost, all[7].Name)
}

// TestClassify_LargeDiverseStrong: 12 contacts over 4 domains at strength 4.
func TestClassify_LargeDiverseStrong(t *testing.T) {
	domains := []roster.Domain{
		roster.FamilyFriends, roster.WorkProfessional, roster.EducationAlumni, roster.HobbiesRecreational,
	}
	res := classify(t, entriesIn(domains, 3, 4), nil)

	assert.True(t, res.LargeNetwork)
	assert.True(t, res.HighDiversity)
	assert.True(t, res.HighStrength)
	assert.InDelta(t, 2.0, res.DomainEntropy, 1e-12)
	assert.InDelta(t, 4.0, res.NetworkAvgStrength, 1e-12)
	assert.Equal(t, profile.CosmopolitanLinchpin, res.Profile.Name)
}

// TestClassify_SmallFocusedWeak: 5 contacts in one domain at strength 2.
func TestClassify_SmallFocusedWeak(t *testing.T) {
	entries := entriesIn([]roster.Domain{roster.WorkProfessional}, 5, 2)
	edges := []roster.Edge{roster.NewEdge(entries[0].Name, entries[1].Name), roster.NewEdge(entries[2].Name, entries[3].Name)}
	res := classify(t, entries, edges)

	assert.False(t, res.LargeNetwork)
	assert.False(t, res.HighDiversity)
	assert.False(t, res.HighStrength)
	assert.Zero(t, res.DomainEntropy)
	assert.Equal(t, profile.InsularOutpost, res.Profile.Name)
}

// TestClassify_Boundaries pins the strict and non-strict comparisons.
func TestClassify_Boundaries(t *testing.T) {
	// Exactly 10 contacts is small; two equal domains give entropy exactly 1.0,
	// which is not diverse; mean 3.5 is strong.
	entries := entriesIn([]roster.Domain{roster.FamilyFriends}, 5, 3)
	entries = append(entries, entriesIn([]roster.Domain{roster.EducationAlumni}, 5, 4)...)
	res := classify(t, entries, nil)

	assert.False(t, res.LargeNetwork)
	assert.InDelta(t, 1.0, res.DomainEntropy, 1e-15)
	assert.False(t, res.HighDiversity)
	assert.InDelta(t, 3.5, res.NetworkAvgStrength, 1e-15)
	assert.True(t, res.HighStrength)
	assert.Equal(t, profile.LoyalCore, res.Profile.Name)
}

// TestClassify_FullPrecisionStrength uses a mean that displays as 3.5 but is below it.
func TestClassify_FullPrecisionStrength(t *testing.T) {
	var entries []roster.RawEntry
	for i := 0; i < 250; i++ {
		s := 3
		if i < 124 {
			s = 4
		}
		entries = append(entries, roster.RawEntry{
			Name: "X", Domain: roster.FamilyFriends, TieStrength: s, Valence: roster.Neutral,
		})
	}
	r := roster.Aggregate(entries)
	x, _ := r.Get("X")
	require.Equal(t, 3.5, x.DisplayStrength())

	res := classify(t, entries, nil)
	assert.InDelta(t, 3.496, res.NetworkAvgStrength, 1e-12)
	assert.False(t, res.HighStrength)
}

func TestClassify_NilSnapshot(t *testing.T) {
	_, err := profile.Classify(nil, nil, profile.DefaultThresholds())
	assert.ErrorIs(t, err, profile.ErrSnapshotNil)
}

func TestDomainEntropy(t *testing.T) {
	assert.Zero(t, profile.DomainEntropy(nil))
	assert.Zero(t, profile.DomainEntropy(map[roster.Domain]int{roster.FamilyFriends: 7}))

	uniform := make(map[roster.Domain]int)
	for _, d := range roster.Domains() {
		uniform[d] = 2
	}
	assert.InDelta(t, math.Log2(5), profile.DomainEntropy(uniform), 1e-12)
}

func TestThresholds_Validate(t *testing.T) {
	require.NoError(t, profile.DefaultThresholds().Validate())

	bad := []profile.Thresholds{
		{LargeNetworkSize: -1, HighDiversityEntropy: 1, HighStrength: 3.5},
		{LargeNetworkSize: 10, HighDiversityEntropy: 3, HighStrength: 3.5},
		{LargeNetworkSize: 10, HighDiversityEntropy: 1, HighStrength: 0.5},
		{LargeNetworkSize: 10, HighDiversityEntropy: 1, HighStrength: 6},
	}
	for _, th := range bad {
		assert.ErrorIs(t, th.Validate(), profile.ErrInvalidThreshold, "%+v", th)
	}
}

func ExampleLookup() {
	p := profile.Lookup(false, true, true)
	fmt.Println(p.Name)
	fmt.Println(p.Weaknesses)
	// Output:
	// Global Artisan
	// Limited total reach.
}
