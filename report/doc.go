// SPDX-License-Identifier: MIT

// Package report is the single entry point of the analysis engine.
//
// Compute runs the whole pipeline on raw roster rows and acquaintance edges:
//
//	RawEntry[] ──Aggregate──▶ Roster ──Build──▶ Graph ──Engine──▶ Snapshot
//	                                                      ├──▶ profile.Classify
//	                                                      └──▶ dimension.Rate
//
// An empty roster is not an error: the Report comes back with Insufficient set
// and no metrics, profile or dimensions. Every call is a full recomputation.
package report
