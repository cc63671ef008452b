// SPDX-License-Identifier: MIT

package analytics

import (
	"fmt"

	"github.com/katalvlaran/sociograph/bfs"
	"github.com/katalvlaran/sociograph/core"
)

const methodClustering = "Clustering"

// Clustering returns the local clustering coefficient of every vertex:
// the fraction of neighbor pairs that are themselves connected.
// Vertices with fewer than two neighbors score 0. An empty graph yields an empty map.
func (t *Toolkit) Clustering(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodClustering, ErrGraphNil)
	}
	ids := g.Vertices()
	out := make(map[string]float64, len(ids))
	for _, u := range ids {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodClustering, err)
		}
		k := len(nbrs)
		if k < 2 {
			out[u] = 0
			continue
		}
		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) {
					links++
				}
			}
		}
		out[u] = 2 * float64(links) / float64(k*(k-1))
	}

	return out, nil
}

// Components returns the connected components of g (see bfs.Components).
func (t *Toolkit) Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return bfs.Components(g)
}
