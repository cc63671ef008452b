// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sociograph/analytics"
	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/network"
	"github.com/katalvlaran/sociograph/roster"
)

const methodCompute = "Compute"

// tieTol is the score gap under which two candidates count as tied.
const tieTol = 1e-12

// Option configures an Engine.
type Option func(*Engine)

// WithAlgorithms replaces the default analytics.Toolkit.
func WithAlgorithms(a analytics.GraphAlgorithms) Option {
	return func(e *Engine) {
		if a != nil {
			e.algo = a
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// Engine computes Snapshots. It holds no per-graph state.
type Engine struct {
	algo analytics.GraphAlgorithms
	log  *zap.Logger
}

// NewEngine returns an Engine backed by analytics.Default unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{algo: analytics.Default(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Compute measures g. Vertices are expected to carry a *roster.Contact under
// network.ContactAttr; vertices without one count toward structure only.
//
// Implementation:
//   - Stage 1: Size, density, degrees and composition in one vertex pass.
//   - Stage 2: Components and average clustering.
//   - Stage 3: Centrality with the eigenvector → PageRank fallback.
//
// Errors are returned only when the GraphAlgorithms implementation fails
// outside the fallback policy.
func (e *Engine) Compute(g *core.Graph) (*Snapshot, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	n, m := len(ids), g.EdgeCount()

	s := &Snapshot{
		Nodes:         ids,
		NodeCount:     n,
		EdgeCount:     m,
		Density:       density(n, m),
		Degrees:       make(map[string]int, n),
		DomainCounts:  make(map[roster.Domain]int, 5),
		ValenceCounts: make(map[roster.Valence]int, 3),
	}
	for _, d := range roster.Domains() {
		s.DomainCounts[d] = 0
	}
	for _, v := range roster.Valences() {
		s.ValenceCounts[v] = 0
	}

	// Stage 1: per-vertex pass.
	bestDegree := -1
	for _, id := range ids {
		deg, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCompute, err)
		}
		s.Degrees[id] = deg
		if deg > bestDegree {
			bestDegree, s.MostConnected = deg, id
		}
		c, err := network.ContactOf(g, id)
		if err != nil {
			e.log.Debug("vertex without contact attribute", zap.String("vertex", id))
			continue
		}
		for _, d := range c.Domains {
			s.DomainCounts[d]++
		}
		s.ValenceCounts[c.Valence]++
	}

	// Stage 2: connectivity and closure.
	comps, err := e.algo.Components(g)
	if err != nil {
		return nil, fmt.Errorf("%s: components: %w", methodCompute, err)
	}
	s.ComponentCount = len(comps)
	s.IsConnected = len(comps) <= 1
	for _, c := range comps {
		if len(c) > s.LargestComponentSize {
			s.LargestComponentSize = len(c)
		}
	}

	clustering, err := e.algo.Clustering(g)
	if err != nil {
		return nil, fmt.Errorf("%s: clustering: %w", methodCompute, err)
	}
	if n > 0 {
		local := make([]float64, n)
		for i, id := range ids {
			local[i] = clustering[id]
		}
		s.AvgClustering = stat.Mean(local, nil)
	}

	// Stage 3: centrality only on graphs with at least one edge.
	if n > 0 && m > 0 {
		cent, err := e.centrality(g, ids)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCompute, err)
		}
		s.Centrality = cent
	}

	e.log.Debug("metrics computed",
		zap.Int("nodes", n),
		zap.Int("edges", m),
		zap.Float64("density", s.Density),
		zap.Int("components", s.ComponentCount))

	return s, nil
}

// centrality picks the influence measure and computes closeness.
func (e *Engine) centrality(g *core.Graph, ids []string) (*Centrality, error) {
	c := &Centrality{Mode: ModeEigenvector}

	influence, err := e.algo.Eigenvector(g)
	if err != nil {
		if !errors.Is(err, analytics.ErrAmbiguousSolution) && !errors.Is(err, analytics.ErrEigenFailed) {
			return nil, fmt.Errorf("eigenvector: %w", err)
		}
		e.log.Info("eigenvector centrality undefined, using PageRank", zap.Error(err))
		c.Mode = ModePageRank
		influence, err = e.algo.PageRank(g)
		if err != nil {
			return nil, fmt.Errorf("pagerank: %w", err)
		}
	}
	c.Influence = influence
	c.TopInfluence = argMax(ids, influence)

	closeness, err := e.algo.Closeness(g)
	if err != nil {
		return nil, fmt.Errorf("closeness: %w", err)
	}
	c.Closeness = closeness
	c.MostPeripheral = argMin(ids, closeness)

	return c, nil
}

// density returns m / C(n,2), or 0 when n ≤ 1.
func density(n, m int) float64 {
	if n <= 1 {
		return 0
	}

	return float64(m) / (float64(n) * float64(n-1) / 2)
}

// argMax returns the id with the highest score; earlier ids win ties.
func argMax(ids []string, scores map[string]float64) string {
	if len(ids) == 0 {
		return ""
	}
	best := ids[0]
	for _, id := range ids[1:] {
		if scores[id] > scores[best]+tieTol {
			best = id
		}
	}

	return best
}

// argMin returns the id with the lowest score; earlier ids win ties.
func argMin(ids []string, scores map[string]float64) string {
	if len(ids) == 0 {
		return ""
	}
	best := ids[0]
	for _, id := range ids[1:] {
		if scores[id] < scores[best]-tieTol {
			best = id
		}
	}

	return best
}
