// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/sociograph/analytics"
	"github.com/katalvlaran/sociograph/dimension"
	"github.com/katalvlaran/sociograph/metrics"
	"github.com/katalvlaran/sociograph/network"
	"github.com/katalvlaran/sociograph/profile"
	"github.com/katalvlaran/sociograph/roster"
)

const methodCompute = "Compute"

// Report is the consolidated analysis result.
type Report struct {
	// Insufficient is set when no contacts were supplied.
	Insufficient bool `json:"insufficient" yaml:"insufficient"`

	// Contacts is the aggregated per-contact view in first-seen order.
	Contacts []*roster.Contact `json:"contacts" yaml:"contacts"`

	// Skipped counts edges the graph builder refused.
	Skipped network.Skipped `json:"skipped" yaml:"skipped"`

	Metrics    *metrics.Snapshot  `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Profile    *profile.Result    `json:"profile,omitempty" yaml:"profile,omitempty"`
	Dimensions *dimension.Ratings `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
}

// Option configures Compute.
type Option func(*Options)

// Options holds the collaborators and thresholds of one Compute call.
type Options struct {
	Logger              *zap.Logger
	Algorithms          analytics.GraphAlgorithms
	Thresholds          profile.Thresholds
	DimensionThresholds dimension.Thresholds
}

// DefaultOptions returns a no-op logger, the default Toolkit and default thresholds.
func DefaultOptions() Options {
	return Options{
		Logger:              zap.NewNop(),
		Algorithms:          analytics.Default(),
		Thresholds:          profile.DefaultThresholds(),
		DimensionThresholds: dimension.DefaultThresholds(),
	}
}

// WithLogger sets the logger passed down to every stage.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// WithAlgorithms replaces the graph algorithm implementation.
func WithAlgorithms(a analytics.GraphAlgorithms) Option {
	return func(o *Options) {
		if a != nil {
			o.Algorithms = a
		}
	}
}

// WithThresholds sets the profile cut-offs.
func WithThresholds(th profile.Thresholds) Option {
	return func(o *Options) { o.Thresholds = th }
}

// WithDimensionThresholds sets the dimension cut-offs.
func WithDimensionThresholds(th dimension.Thresholds) Option {
	return func(o *Options) { o.DimensionThresholds = th }
}

// Compute aggregates entries, builds the graph with edges and classifies it.
//
// The error return is reserved for failures of a custom GraphAlgorithms
// implementation; with the default Toolkit Compute does not fail. Empty input
// yields a Report with Insufficient set.
func Compute(entries []roster.RawEntry, edges []roster.Edge, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger

	r := roster.Aggregate(entries)
	rep := &Report{Contacts: r.Contacts()}
	if r.Empty() {
		log.Info("no contacts supplied, report is insufficient")
		rep.Insufficient = true
		return rep, nil
	}

	g, skipped := network.Build(r, edges, network.WithLogger(log))
	rep.Skipped = skipped

	snap, err := metrics.NewEngine(metrics.WithAlgorithms(o.Algorithms), metrics.WithLogger(log)).Compute(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompute, err)
	}
	rep.Metrics = snap

	if rep.Profile, err = profile.Classify(snap, r, o.Thresholds); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompute, err)
	}
	rep.Dimensions = dimension.Rate(snap, o.DimensionThresholds)

	log.Debug("report computed",
		zap.Int("contacts", r.Len()),
		zap.Int("edges", snap.EdgeCount),
		zap.String("profile", rep.Profile.Profile.Name))

	return rep, nil
}
