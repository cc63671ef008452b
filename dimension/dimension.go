// SPDX-License-Identifier: MIT

// Package dimension rates a network on three independent social-capital
// dimensions, each from its own metric:
//
//	Valence       High iff the mean valence score (+1/0/−1) is > 0
//	Connectivity  High iff density > Thresholds.HighConnectivityDensity (0.3)
//	Closeness     High iff mean closeness ≥ upper median closeness;
//	              Unknown when no closeness values exist
//
// The median is the upper median, sorted[n/2].
package dimension

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sociograph/metrics"
)

// ErrInvalidThreshold is returned by Thresholds.Validate.
var ErrInvalidThreshold = errors.New("dimension: invalid threshold")

// DefaultHighConnectivityDensity is the density above which connectivity is High.
const DefaultHighConnectivityDensity = 0.3

// Level is the outcome of one dimension.
type Level string

// Levels.
const (
	High    Level = "High"
	Low     Level = "Low"
	Unknown Level = "Unknown"
)

// Thresholds configure the rater.
type Thresholds struct {
	HighConnectivityDensity float64 `json:"high_connectivity_density" yaml:"high_connectivity_density"`
}

// DefaultThresholds returns the standard density cut-off.
func DefaultThresholds() Thresholds {
	return Thresholds{HighConnectivityDensity: DefaultHighConnectivityDensity}
}

// Validate checks the density cut-off lies in [0,1].
func (t Thresholds) Validate() error {
	if t.HighConnectivityDensity < 0 || t.HighConnectivityDensity > 1 {
		return fmt.Errorf("%w: connectivity density %g outside [0,1]", ErrInvalidThreshold, t.HighConnectivityDensity)
	}

	return nil
}

// Rating is one labelled dimension.
type Rating struct {
	Level Level  `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// label renders the rating as e.g. "High Valence".
func (r Rating) label(dim string) string { return string(r.Level) + " " + dim }

// Ratings groups the three dimensions.
type Ratings struct {
	Valence      Rating `json:"valence" yaml:"valence"`
	Connectivity Rating `json:"connectivity" yaml:"connectivity"`
	Closeness    Rating `json:"closeness" yaml:"closeness"`
}

// Labels returns the three display labels in reporting order.
func (r *Ratings) Labels() []string {
	return []string{
		r.Valence.label("Valence"),
		r.Connectivity.label("Connectivity"),
		r.Closeness.label("Closeness"),
	}
}

var (
	valenceHigh      = Rating{High, "Your network is overall supportive and positive."}
	valenceLow       = Rating{Low, "Your network has fewer supportive ties, leaning more neutral or tense."}
	connectivityHigh = Rating{High, "Your network is well-connected and cohesive."}
	connectivityLow  = Rating{Low, "Your network is less connected, indicating fragmentation."}
	closenessHigh    = Rating{High, "You are centrally positioned, with short paths to others."}
	closenessLow     = Rating{Low, "You are more peripheral, with longer paths to reach others."}
	closenessUnknown = Rating{Unknown, "Not enough data to determine closeness."}
)

// Rate derives the three ratings from s. A nil snapshot rates Low, Low, Unknown.
func Rate(s *metrics.Snapshot, th Thresholds) *Ratings {
	out := &Ratings{Valence: valenceLow, Connectivity: connectivityLow, Closeness: closenessUnknown}
	if s == nil {
		return out
	}
	if s.AvgValenceScore() > 0 {
		out.Valence = valenceHigh
	}
	if s.Density > th.HighConnectivityDensity {
		out.Connectivity = connectivityHigh
	}
	if values := s.ClosenessValues(); len(values) > 0 {
		if stat.Mean(values, nil) >= UpperMedian(values) {
			out.Closeness = closenessHigh
		} else {
			out.Closeness = closenessLow
		}
	}

	return out
}

// UpperMedian returns sorted(xs)[len(xs)/2] without modifying xs, or 0 for no values.
func UpperMedian(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	return sorted[len(sorted)/2]
}
