// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
)

const (
	methodComplete = "Complete"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodIsolated = "Isolated"

	minCompleteNodes = 1
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minIsolatedNodes = 1
)

func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// Complete adds K_n: n contacts who all know each other.
// Edges are emitted for i<j in index order.
func Complete(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		ids := f.alloc(cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				f.link(ids[i], ids[j])
			}
		}

		return nil
	}
}

// Path adds P_n: a chain of n acquaintances.
func Path(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		ids := f.alloc(cfg, n)
		for i := 0; i+1 < n; i++ {
			f.link(ids[i], ids[i+1])
		}

		return nil
	}
}

// Cycle adds C_n: a ring of n contacts.
func Cycle(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ids := f.alloc(cfg, n)
		for i := 0; i < n; i++ {
			f.link(ids[i], ids[(i+1)%n])
		}

		return nil
	}
}

// Star adds one hub and n-1 leaves who know only the hub.
// The hub is the first contact allocated.
func Star(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		ids := f.alloc(cfg, n)
		for _, leaf := range ids[1:] {
			f.link(ids[0], leaf)
		}

		return nil
	}
}

// Wheel adds a hub joined to every contact of a ring of n-1.
func Wheel(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		ids := f.alloc(cfg, n)
		hub, ring := ids[0], ids[1:]
		for i, v := range ring {
			f.link(hub, v)
			f.link(v, ring[(i+1)%len(ring)])
		}

		return nil
	}
}

// Isolated adds n contacts with no acquaintances.
func Isolated(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if err := validateMin(methodIsolated, n, minIsolatedNodes); err != nil {
			return err
		}
		f.alloc(cfg, n)

		return nil
	}
}
