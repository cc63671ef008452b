// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"

	"github.com/katalvlaran/sociograph/roster"
)

// ErrGraphNil is returned if a nil graph pointer is passed to Compute.
var ErrGraphNil = errors.New("metrics: graph is nil")

// Mode names the influence measure that produced Centrality.Influence.
type Mode string

// Centrality modes.
const (
	ModeEigenvector Mode = "eigenvector"
	ModePageRank    Mode = "pagerank"
)

// Centrality groups the influence and periphery measures.
type Centrality struct {
	// Mode records which influence measure was actually used.
	Mode Mode `json:"mode" yaml:"mode"`

	// TopInfluence is the arg-max of Influence.
	TopInfluence string `json:"top_influence" yaml:"top_influence"`

	// MostPeripheral is the arg-min of Closeness.
	MostPeripheral string `json:"most_peripheral" yaml:"most_peripheral"`

	// Influence holds eigenvector or PageRank scores, per Mode.
	Influence map[string]float64 `json:"influence" yaml:"influence"`

	// Closeness holds closeness centrality per contact.
	Closeness map[string]float64 `json:"closeness" yaml:"closeness"`
}

// Snapshot is the immutable result of one Compute pass.
type Snapshot struct {
	// Nodes lists contact names in graph insertion order.
	Nodes []string `json:"nodes" yaml:"nodes"`

	NodeCount int     `json:"node_count" yaml:"node_count"`
	EdgeCount int     `json:"edge_count" yaml:"edge_count"`
	Density   float64 `json:"density" yaml:"density"`

	Degrees       map[string]int `json:"degrees" yaml:"degrees"`
	MostConnected string         `json:"most_connected,omitempty" yaml:"most_connected,omitempty"`

	DomainCounts  map[roster.Domain]int  `json:"domain_counts" yaml:"domain_counts"`
	ValenceCounts map[roster.Valence]int `json:"valence_counts" yaml:"valence_counts"`

	IsConnected          bool `json:"is_connected" yaml:"is_connected"`
	ComponentCount       int  `json:"component_count" yaml:"component_count"`
	LargestComponentSize int  `json:"largest_component_size" yaml:"largest_component_size"`

	AvgClustering float64 `json:"avg_clustering" yaml:"avg_clustering"`

	// Centrality is nil when the graph has no vertices or no edges.
	Centrality *Centrality `json:"centrality,omitempty" yaml:"centrality,omitempty"`
}

// HasCentrality reports whether centrality measures were computed.
func (s *Snapshot) HasCentrality() bool { return s != nil && s.Centrality != nil }

// DomainTotal returns the sum of all domain counts (≥ NodeCount).
func (s *Snapshot) DomainTotal() int {
	total := 0
	for _, c := range s.DomainCounts {
		total += c
	}

	return total
}

// DomainShare returns the percentage of d in the domain composition, computed
// against DomainTotal. Shares across domains sum to 100 when non-empty.
func (s *Snapshot) DomainShare(d roster.Domain) float64 {
	total := s.DomainTotal()
	if total == 0 {
		return 0
	}

	return float64(s.DomainCounts[d]) / float64(total) * 100
}

// ValenceShare returns the percentage of contacts carrying v.
func (s *Snapshot) ValenceShare(v roster.Valence) float64 {
	if s.NodeCount == 0 {
		return 0
	}

	return float64(s.ValenceCounts[v]) / float64(s.NodeCount) * 100
}

// ClosenessValues returns closeness scores in node order, or nil when absent.
func (s *Snapshot) ClosenessValues() []float64 {
	if !s.HasCentrality() || len(s.Centrality.Closeness) == 0 {
		return nil
	}
	out := make([]float64, 0, len(s.Nodes))
	for _, id := range s.Nodes {
		if v, ok := s.Centrality.Closeness[id]; ok {
			out = append(out, v)
		}
	}

	return out
}

// AvgValenceScore returns the mean of per-contact valence scores (+1/0/−1),
// or 0 for an empty snapshot.
func (s *Snapshot) AvgValenceScore() float64 {
	if s.NodeCount == 0 {
		return 0
	}
	sum := 0
	for v, c := range s.ValenceCounts {
		sum += v.Score() * c
	}

	return float64(sum) / float64(s.NodeCount)
}
