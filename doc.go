// SPDX-License-Identifier: MIT

// Package sociograph is a personal-network (social-capital) analysis engine.
//
// A user supplies a roster of contacts, each tagged with a life domain, a tie
// strength from 1 to 5 and a relationship valence, plus the acquaintance edges
// among them. The engine merges duplicate entries, builds the undirected graph,
// computes structural and compositional metrics and classifies the network
// into one of eight profiles with three dimension ratings.
//
// Packages:
//
//	roster/     domains, valences, raw entries and the contact aggregator
//	session/    mutable session state: finalize, add edges, add groups
//	core/       thread-safe undirected simple graph with insertion order
//	network/    graph builder carrying contacts as vertex metadata
//	bfs/        breadth-first search and connected components
//	analytics/  eigenvector, PageRank, closeness, clustering (gonum)
//	metrics/    the metrics engine and its immutable Snapshot
//	profile/    thresholds, domain entropy and the eight archetypes
//	dimension/  valence, connectivity and closeness ratings
//	report/     the one-call pipeline: entries + edges → Report
//	builder/    deterministic roster fixtures
//	config/     YAML, .env and SOCIOGRAPH_* configuration
//	logger/     zap logger construction
//
// The sociograph command (cmd/sociograph) exposes report, profiles and sample.
//
// Quick start:
//
//	rep, err := report.Compute(entries, edges)
//	if err != nil { ... }
//	if rep.Insufficient { ... }
//	fmt.Println(rep.Profile.Profile.Name, rep.Dimensions.Labels())
package sociograph
