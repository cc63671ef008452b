// SPDX-License-Identifier: MIT

package profile

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sociograph/metrics"
	"github.com/katalvlaran/sociograph/roster"
)

// Sentinel errors for classification.
var (
	// ErrSnapshotNil is returned when Classify receives no snapshot.
	ErrSnapshotNil = errors.New("profile: snapshot is nil")

	// ErrInvalidThreshold is returned by Thresholds.Validate.
	ErrInvalidThreshold = errors.New("profile: invalid threshold")
)

// Default threshold values.
const (
	DefaultLargeNetworkSize     = 10
	DefaultHighDiversityEntropy = 1.0
	DefaultHighStrength         = 3.5
)

// Thresholds are the cut-offs behind the three classification booleans.
type Thresholds struct {
	LargeNetworkSize     int     `json:"large_network_size" yaml:"large_network_size"`         // strictly greater is large
	HighDiversityEntropy float64 `json:"high_diversity_entropy" yaml:"high_diversity_entropy"` // strictly greater is diverse
	HighStrength         float64 `json:"high_strength" yaml:"high_strength"`                   // greater or equal is strong
}

// DefaultThresholds returns the standard cut-offs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LargeNetworkSize:     DefaultLargeNetworkSize,
		HighDiversityEntropy: DefaultHighDiversityEntropy,
		HighStrength:         DefaultHighStrength,
	}
}

// Validate checks that every threshold lies in its meaningful range.
func (t Thresholds) Validate() error {
	if t.LargeNetworkSize < 0 {
		return fmt.Errorf("%w: large network size %d < 0", ErrInvalidThreshold, t.LargeNetworkSize)
	}
	// log2(5) is the largest entropy five buckets can reach.
	if t.HighDiversityEntropy < 0 || t.HighDiversityEntropy > math.Log2(5) {
		return fmt.Errorf("%w: diversity entropy %g outside [0, log2(5)]", ErrInvalidThreshold, t.HighDiversityEntropy)
	}
	if t.HighStrength < roster.MinTieStrength || t.HighStrength > roster.MaxTieStrength {
		return fmt.Errorf("%w: strength %g outside [%d, %d]",
			ErrInvalidThreshold, t.HighStrength, roster.MinTieStrength, roster.MaxTieStrength)
	}

	return nil
}

// Result carries the classification inputs alongside the chosen Profile.
type Result struct {
	NetworkAvgStrength float64 `json:"network_avg_strength" yaml:"network_avg_strength"`
	DomainEntropy      float64 `json:"domain_entropy" yaml:"domain_entropy"`

	LargeNetwork  bool `json:"large_network" yaml:"large_network"`
	HighDiversity bool `json:"high_diversity" yaml:"high_diversity"`
	HighStrength  bool `json:"high_strength" yaml:"high_strength"`

	Profile Profile `json:"profile" yaml:"profile"`
}

// Classify derives the three booleans from s and r and looks up the profile.
// r supplies per-contact tie strengths for the nodes of s.
func Classify(s *metrics.Snapshot, r *roster.Roster, th Thresholds) (*Result, error) {
	if s == nil {
		return nil, ErrSnapshotNil
	}
	res := &Result{
		NetworkAvgStrength: NetworkAvgStrength(s, r),
		DomainEntropy:      DomainEntropy(s.DomainCounts),
	}
	res.LargeNetwork = s.NodeCount > th.LargeNetworkSize
	res.HighDiversity = res.DomainEntropy > th.HighDiversityEntropy
	res.HighStrength = res.NetworkAvgStrength >= th.HighStrength
	res.Profile = Lookup(res.LargeNetwork, res.HighDiversity, res.HighStrength)

	return res, nil
}

// NetworkAvgStrength returns the mean full-precision tie strength over the
// nodes of s, or 0 when none of them is in r.
func NetworkAvgStrength(s *metrics.Snapshot, r *roster.Roster) float64 {
	strengths := make([]float64, 0, len(s.Nodes))
	for _, name := range s.Nodes {
		if c, ok := r.Get(name); ok {
			strengths = append(strengths, c.AvgTieStrength)
		}
	}
	if len(strengths) == 0 {
		return 0
	}

	return stat.Mean(strengths, nil)
}

// DomainEntropy returns −Σ p·log2(p) over the five canonical domains, with
// p = count / Σcounts. Empty buckets contribute nothing; all-zero counts yield 0.
func DomainEntropy(counts map[roster.Domain]int) float64 {
	domains := roster.Domains()
	ps := make([]float64, len(domains))
	for i, d := range domains {
		ps[i] = float64(counts[d])
	}
	total := floats.Sum(ps)
	if total == 0 {
		return 0
	}

	h := 0.0
	for _, c := range ps {
		if c > 0 {
			p := c / total
			h -= p * math.Log2(p)
		}
	}

	return h
}
