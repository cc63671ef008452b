// SPDX-License-Identifier: MIT

package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sociograph/metrics"
	"github.com/katalvlaran/sociograph/roster"
)

func snapshot(density float64, valences map[roster.Valence]int, closeness map[string]float64) *metrics.Snapshot {
	s := &metrics.Snapshot{Density: density, ValenceCounts: valences}
	for _, c := range valences {
		s.NodeCount += c
	}
	if closeness != nil {
		s.Centrality = &metrics.Centrality{Closeness: closeness}
		for _, id := range []string{"a", "b", "c", "d"} {
			if _, ok := closeness[id]; ok {
				s.Nodes = append(s.Nodes, id)
			}
		}
	}

	return s
}

func TestRate_Valence(t *testing.T) {
	cases := []struct {
		name   string
		counts map[roster.Valence]int
		want   Level
	}{
		{"positive majority", map[roster.Valence]int{roster.Positive: 2, roster.Negative: 1}, High},
		{"balanced is low", map[roster.Valence]int{roster.Positive: 1, roster.Negative: 1}, Low},
		{"all neutral", map[roster.Valence]int{roster.Neutral: 3}, Low},
		{"negative", map[roster.Valence]int{roster.Negative: 1}, Low},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Rate(snapshot(0, tc.counts, nil), DefaultThresholds())
			assert.Equal(t, tc.want, r.Valence.Level)
		})
	}
}

func TestRate_Connectivity(t *testing.T) {
	one := map[roster.Valence]int{roster.Neutral: 1}
	assert.Equal(t, Low, Rate(snapshot(0.3, one, nil), DefaultThresholds()).Connectivity.Level)
	assert.Equal(t, High, Rate(snapshot(0.31, one, nil), DefaultThresholds()).Connectivity.Level)
	assert.Equal(t, Low, Rate(snapshot(0.2, one, nil), DefaultThresholds()).Connectivity.Level)
	assert.Equal(t, High, Rate(snapshot(0.2, one, nil), Thresholds{HighConnectivityDensity: 0.1}).Connectivity.Level)
}

func TestRate_Closeness(t *testing.T) {
	one := map[roster.Valence]int{roster.Neutral: 4}

	r := Rate(snapshot(0, one, nil), DefaultThresholds())
	assert.Equal(t, Unknown, r.Closeness.Level)
	assert.Equal(t, "Not enough data to determine closeness.", r.Closeness.Text)

	// Star K1,3: upper median of {0.6,0.6,0.6,1} is 0.6, mean 0.7.
	star := map[string]float64{"a": 1, "b": 0.6, "c": 0.6, "d": 0.6}
	assert.Equal(t, High, Rate(snapshot(0.5, one, star), DefaultThresholds()).Closeness.Level)

	// One far vertex drags the mean below the upper median.
	skewed := map[string]float64{"a": 0.1, "b": 0.9, "c": 0.9, "d": 0.9}
	r = Rate(snapshot(0.5, one, skewed), DefaultThresholds())
	assert.Equal(t, Low, r.Closeness.Level)
	assert.Equal(t, "You are more peripheral, with longer paths to reach others.", r.Closeness.Text)
}

func TestRate_NilSnapshot(t *testing.T) {
	r := Rate(nil, DefaultThresholds())
	assert.Equal(t, []string{"Low Valence", "Low Connectivity", "Unknown Closeness"}, r.Labels())
}

func TestUpperMedian(t *testing.T) {
	assert.Zero(t, UpperMedian(nil))
	assert.Equal(t, 2.0, UpperMedian([]float64{3, 1, 2}))
	xs := []float64{4, 1, 3, 2}
	assert.Equal(t, 3.0, UpperMedian(xs))
	assert.Equal(t, []float64{4, 1, 3, 2}, xs)
}

func TestThresholds_Validate(t *testing.T) {
	require.NoError(t, DefaultThresholds().Validate())
	assert.ErrorIs(t, Thresholds{HighConnectivityDensity: 1.5}.Validate(), ErrInvalidThreshold)
	assert.ErrorIs(t, Thresholds{HighConnectivityDensity: -0.1}.Validate(), ErrInvalidThreshold)
}
