// SPDX-License-Identifier: MIT

package analytics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sociograph/bfs"
	"github.com/katalvlaran/sociograph/core"
)

const (
	methodEigenvector = "Eigenvector"
	methodPageRank    = "PageRank"
	methodCloseness   = "Closeness"
)

// Eigenvector computes eigenvector centrality from the adjacency matrix.
//
// Implementation:
//   - Stage 1: Reject disconnected graphs with ErrAmbiguousSolution; the
//     dominant eigenspace then has no unique direction across components.
//   - Stage 2: Factorize the symmetric adjacency matrix with mat.EigenSym.
//   - Stage 3: Reject a repeated leading eigenvalue (gap < EigenTol).
//   - Stage 4: Take the last eigenvector column, fix its sign so the sum is
//     positive, and scale to unit L2 norm.
func (t *Toolkit) Eigenvector(g *core.Graph) (map[string]float64, error) {
	ids, err := vertices(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEigenvector, err)
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEigenvector, err)
	}
	if len(comps) > 1 {
		return nil, fmt.Errorf("%s: %d components: %w", methodEigenvector, len(comps), ErrAmbiguousSolution)
	}

	n := len(ids)
	idx := indexOf(ids)
	adj := mat.NewSymDense(n, nil)
	for _, e := range g.Edges() {
		adj.SetSym(idx[e.From], idx[e.To], 1)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(adj, true); !ok {
		return nil, fmt.Errorf("%s: %w", methodEigenvector, ErrEigenFailed)
	}
	values := eig.Values(nil) // ascending
	if n > 1 && values[n-1]-values[n-2] < t.opts.EigenTol {
		return nil, fmt.Errorf("%s: leading eigenvalue %g repeated: %w",
			methodEigenvector, values[n-1], ErrAmbiguousSolution)
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)
	principal := mat.Col(nil, n-1, &vectors)

	norm := floats.Norm(principal, 2)
	if norm == 0 {
		return nil, fmt.Errorf("%s: zero principal vector: %w", methodEigenvector, ErrEigenFailed)
	}
	if floats.Sum(principal) < 0 {
		norm = -norm
	}
	floats.Scale(1/norm, principal)

	out := make(map[string]float64, n)
	for i, id := range ids {
		out[id] = principal[i]
	}

	return out, nil
}

// PageRank computes PageRank by power iteration over a dense transition matrix.
// An undirected edge counts as a link in both directions.
func (t *Toolkit) PageRank(g *core.Graph) (map[string]float64, error) {
	ids, err := vertices(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPageRank, err)
	}
	n := len(ids)
	idx := indexOf(ids)
	uniform := 1.0 / float64(n)

	// Column j distributes vertex j's rank over its neighbors.
	trans := mat.NewDense(n, n, nil)
	for j, u := range ids {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPageRank, err)
		}
		if len(nbrs) == 0 {
			for i := 0; i < n; i++ {
				trans.Set(i, j, uniform)
			}
			continue
		}
		share := 1.0 / float64(len(nbrs))
		for _, v := range nbrs {
			trans.Set(idx[v], j, share)
		}
	}

	start := make([]float64, n)
	for i := range start {
		start[i] = uniform
	}
	x := mat.NewVecDense(n, start)
	next := mat.NewVecDense(n, nil)
	teleport := (1 - t.opts.Damping) * uniform
	threshold := float64(n) * t.opts.Tolerance

	for iter := 0; iter < t.opts.MaxIterations; iter++ {
		next.MulVec(trans, x)
		next.ScaleVec(t.opts.Damping, next)
		for i := 0; i < n; i++ {
			next.SetVec(i, next.AtVec(i)+teleport)
		}
		if floats.Distance(next.RawVector().Data, x.RawVector().Data, 1) < threshold {
			out := make(map[string]float64, n)
			for i, id := range ids {
				out[id] = next.AtVec(i)
			}
			return out, nil
		}
		x, next = next, x
	}

	return nil, fmt.Errorf("%s: %d iterations: %w", methodPageRank, t.opts.MaxIterations, ErrNotConverged)
}

// Closeness computes closeness centrality from per-vertex BFS distances,
// scaled by the reachable fraction so that vertices in small components do
// not look central.
func (t *Toolkit) Closeness(g *core.Graph) (map[string]float64, error) {
	ids, err := vertices(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCloseness, err)
	}
	n := len(ids)
	out := make(map[string]float64, n)
	for _, u := range ids {
		res, err := bfs.BFS(g, u)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCloseness, err)
		}
		total := res.TotalDistance()
		if total == 0 || n == 1 {
			out[u] = 0
			continue
		}
		reach := float64(res.Reached() - 1)
		out[u] = (reach / float64(total)) * (reach / float64(n-1))
	}

	return out, nil
}
