// SPDX-License-Identifier: MIT

// Package flowmap turns irregular location traces into stay sessions and
// counts the flows between them.
//
// Pipeline for one tracked entity:
//
//	observations ──order──▶ time order ──session──▶ []Session ──flow──▶ Table
//
// Packages:
//
//	order/        stable index sort (ties keep input order)
//	session/      Compress: merge same-location observations within a gap
//	flow/         Statistics: count "from->to" edges between sessions within a gap
//	core/         thread-safe location network used to merge many entities
//	batch/        concurrent multi-entity runs with logging and metrics
//	tabular/      CSV/JSON/YAML input and output of the tables
//	config/       YAML run configuration
//	cmd/flowmap   command-line front end
//
// Determinism: every output table is sorted by edge, sessions follow time
// order, and merged multi-entity flows do not depend on worker scheduling.
package flowmap
