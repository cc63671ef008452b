// SPDX-License-Identifier: MIT

package analytics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sociograph/core"
)

// Sentinel errors for graph algorithms.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("analytics: graph is nil")

	// ErrEmptyGraph is returned when an algorithm needs at least one vertex.
	ErrEmptyGraph = errors.New("analytics: graph has no vertices")

	// ErrAmbiguousSolution signals that eigenvector centrality is not uniquely defined.
	ErrAmbiguousSolution = errors.New("analytics: eigenvector centrality is not uniquely defined")

	// ErrEigenFailed is returned when the eigendecomposition does not succeed.
	ErrEigenFailed = errors.New("analytics: eigen decomposition failed")

	// ErrNotConverged is returned when PageRank exhausts its iteration budget.
	ErrNotConverged = errors.New("analytics: power iteration did not converge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("analytics: invalid option supplied")
)

// Defaults for the iterative and numeric algorithms.
const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
	DefaultEigenTol      = 1e-9
)

// GraphAlgorithms is the capability the metrics engine consumes.
// Every score map is keyed by vertex ID and covers every vertex of g.
type GraphAlgorithms interface {
	// Eigenvector returns eigenvector centrality or ErrAmbiguousSolution.
	Eigenvector(g *core.Graph) (map[string]float64, error)

	// PageRank returns PageRank scores summing to 1.
	PageRank(g *core.Graph) (map[string]float64, error)

	// Closeness returns closeness centrality.
	Closeness(g *core.Graph) (map[string]float64, error)

	// Clustering returns the local clustering coefficient of every vertex.
	Clustering(g *core.Graph) (map[string]float64, error)

	// Components returns the connected components of g.
	Components(g *core.Graph) ([][]string, error)
}

// Option configures a Toolkit via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the numeric parameters of a Toolkit.
type Options struct {
	// Damping is the PageRank damping factor, in (0,1).
	Damping float64

	// Tolerance is the per-vertex PageRank convergence threshold (> 0).
	Tolerance float64

	// MaxIterations caps PageRank power iterations (> 0).
	MaxIterations int

	// EigenTol is the gap under which two leading eigenvalues count as equal (> 0).
	EigenTol float64

	err error
}

// DefaultOptions returns the networkx-compatible defaults:
// damping 0.85, tolerance 1e-6, 100 iterations, eigen gap 1e-9.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		EigenTol:      DefaultEigenTol,
	}
}

// WithDamping sets the PageRank damping factor; d must lie in (0,1).
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			o.err = fmt.Errorf("%w: damping must be in (0,1), got %g", ErrOptionViolation, d)
			return
		}
		o.Damping = d
	}
}

// WithTolerance sets the PageRank convergence tolerance; tol must be > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be > 0, got %g", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations caps PageRank iterations; n must be > 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be > 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithEigenTolerance sets the leading-eigenvalue gap treated as a tie; tol must be > 0.
func WithEigenTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: eigen tolerance must be > 0, got %g", ErrOptionViolation, tol)
			return
		}
		o.EigenTol = tol
	}
}

// Toolkit is the default GraphAlgorithms implementation.
type Toolkit struct {
	opts Options
}

var _ GraphAlgorithms = (*Toolkit)(nil)

// New builds a Toolkit from DefaultOptions and the given overrides.
func New(opts ...Option) (*Toolkit, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Toolkit{opts: o}, nil
}

// Default returns a Toolkit with DefaultOptions.
func Default() *Toolkit {
	return &Toolkit{opts: DefaultOptions()}
}

// Options returns the resolved parameters.
func (t *Toolkit) Options() Options { return t.opts }

// indexOf maps vertex IDs to their position in ids.
func indexOf(ids []string) map[string]int {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	return idx
}

// vertices validates g and returns its vertex IDs.
func vertices(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}

	return ids, nil
}
