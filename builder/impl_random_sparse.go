// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse adds n contacts and links each pair i<j with probability p
// (Erdős–Rényi G(n,p)). An RNG is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := f.alloc(cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMax:
				case p == probMin:
					continue
				case cfg.rng.Float64() >= p:
					continue
				}
				f.link(ids[i], ids[j])
			}
		}

		return nil
	}
}
