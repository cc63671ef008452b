// SPDX-License-Identifier: MIT

package report_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sociograph/builder"
	"github.com/katalvlaran/sociograph/dimension"
	"github.com/katalvlaran/sociograph/metrics"
	"github.com/katalvlaran/sociograph/profile"
	"github.com/katalvlaran/sociograph/report"
	"github.com/katalvlaran/sociograph/roster"
)

func fixture(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *builder.Fixture {
	t.Helper()
	fx, err := builder.Build(opts, cons...)
	require.NoError(t, err)

	return fx
}

func TestCompute_EmptyIsInsufficient(t *testing.T) {
	rep, err := report.Compute(nil, []roster.Edge{roster.NewEdge("A", "B")}, report.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	assert.True(t, rep.Insufficient)
	assert.Empty(t, rep.Contacts)
	assert.Nil(t, rep.Metrics)
	assert.Nil(t, rep.Profile)
	assert.Nil(t, rep.Dimensions)
}

// TestCompute_CosmopolitanLinchpin: 12 contacts, 4 domains evenly, strength 4.
func TestCompute_CosmopolitanLinchpin(t *testing.T) {
	fx := fixture(t, []builder.BuilderOption{
		builder.WithDomainFn(builder.CyclingDomainFn(
			roster.FamilyFriends, roster.WorkProfessional, roster.EducationAlumni, roster.HobbiesRecreational)),
		builder.WithStrength(4),
	}, builder.Wheel(12))

	rep, err := report.Compute(fx.Entries, fx.Edges)
	require.NoError(t, err)
	require.False(t, rep.Insufficient)
	assert.Len(t, rep.Contacts, 12)
	assert.Equal(t, profile.CosmopolitanLinchpin, rep.Profile.Profile.Name)
	assert.InDelta(t, 2.0, rep.Profile.DomainEntropy, 1e-12)
	assert.Equal(t, dimension.High, rep.Dimensions.Valence.Level)
	assert.Equal(t, metrics.ModeEigenvector, rep.Metrics.Centrality.Mode)
	assert.Equal(t, "A", rep.Metrics.Centrality.TopInfluence)
}

// TestCompute_InsularOutpost: 5 contacts in one domain, strength 2, density 0.2.
func TestCompute_InsularOutpost(t *testing.T) {
	fx := fixture(t, []builder.BuilderOption{
		builder.WithDomain(roster.WorkProfessional),
		builder.WithStrength(2),
		builder.WithValence(roster.Neutral),
	}, builder.Path(2), builder.Path(2), builder.Isolated(1))

	rep, err := report.Compute(fx.Entries, fx.Edges)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, rep.Metrics.Density, 1e-12)
	assert.Equal(t, profile.InsularOutpost, rep.Profile.Profile.Name)
	assert.Zero(t, rep.Profile.DomainEntropy)
	assert.Equal(t, dimension.Low, rep.Dimensions.Connectivity.Level)
	assert.Equal(t, dimension.Low, rep.Dimensions.Valence.Level)
	// Disconnected graph: eigenvector is undefined, PageRank steps in.
	assert.Equal(t, metrics.ModePageRank, rep.Metrics.Centrality.Mode)
}

func TestCompute_NoEdges(t *testing.T) {
	fx := fixture(t, nil, builder.Isolated(3))
	rep, err := report.Compute(fx.Entries, nil)
	require.NoError(t, err)
	assert.False(t, rep.Insufficient)
	assert.Nil(t, rep.Metrics.Centrality)
	assert.Equal(t, dimension.Unknown, rep.Dimensions.Closeness.Level)
	assert.Equal(t, profile.InsularOutpost, rep.Profile.Profile.Name)
}

func TestCompute_SkippedEdges(t *testing.T) {
	fx := fixture(t, nil, builder.Path(3))
	edges := append(append([]roster.Edge(nil), fx.Edges...),
		roster.Edge{A: "A", B: "A"}, roster.NewEdge("A", "Zed"), roster.NewEdge("B", "A"))
	rep, err := report.Compute(fx.Entries, edges)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Metrics.EdgeCount)
	assert.Equal(t, 3, rep.Skipped.Total())
}

func TestCompute_Thresholds(t *testing.T) {
	fx := fixture(t, nil, builder.Path(4))
	rep, err := report.Compute(fx.Entries, fx.Edges,
		report.WithThresholds(profile.Thresholds{LargeNetworkSize: 3, HighDiversityEntropy: 1, HighStrength: 3}),
		report.WithDimensionThresholds(dimension.Thresholds{HighConnectivityDensity: 0.9}))
	require.NoError(t, err)
	assert.Equal(t, profile.FocusedPowerhouse, rep.Profile.Profile.Name)
	assert.Equal(t, dimension.Low, rep.Dimensions.Connectivity.Level)
}

// TestCompute_Deterministic reloads serialized input and expects an identical report.
func TestCompute_Deterministic(t *testing.T) {
	fx := fixture(t, []builder.BuilderOption{
		builder.WithSeed(3),
		builder.WithDomainCycle(),
		builder.WithStrengthFn(builder.UniformStrengthFn(1, 5)),
		builder.WithValenceFn(builder.CyclingValenceFn(roster.Positive, roster.Neutral, roster.Negative)),
	}, builder.RandomSparse(9, 0.4), builder.Star(4))

	first, err := report.Compute(fx.Entries, fx.Edges)
	require.NoError(t, err)

	raw, err := json.Marshal(fx)
	require.NoError(t, err)
	var reloaded builder.Fixture
	require.NoError(t, json.Unmarshal(raw, &reloaded))

	second, err := report.Compute(reloaded.Entries, reloaded.Edges)
	require.NoError(t, err)
	assert.Equal(t, first.Metrics, second.Metrics)
	assert.Equal(t, first.Profile, second.Profile)
	assert.Equal(t, first.Dimensions, second.Dimensions)
}

func TestReport_Encodes(t *testing.T) {
	fx := fixture(t, nil, builder.Cycle(4))
	rep, err := report.Compute(fx.Entries, fx.Edges)
	require.NoError(t, err)

	js, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"mode":"eigenvector"`)
	assert.Contains(t, string(js), `"Family/Friends":4`)

	ym, err := yaml.Marshal(rep)
	require.NoError(t, err)
	var back map[string]interface{}
	require.NoError(t, yaml.Unmarshal(ym, &back))
	assert.Equal(t, false, back["insufficient"])
}
