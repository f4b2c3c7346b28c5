// SPDX-License-Identifier: MIT

// Package flow aggregates directed transitions between consecutive stay
// sessions into per-edge flow counts.
//
// Given a time-ordered sequence of sessions (the output of session.Compress,
// or any caller-supplied sequence with the same guarantees) and a gap
// threshold, every consecutive pair (prev, cur) is linked when
//
//	cur.Start - prev.End <= gap
//
// and each linked pair adds one to the count of the edge prev.Location →
// cur.Location. The result is a Table: a map from Edge to count with no
// meaningful iteration order.
//
// # Behaviour
//
//   - Fewer than two sessions → empty Table, no error.
//   - The edge key is built only for linked pairs and only from the current
//     pair's sessions; pairs outside the gap cost nothing beyond the
//     subtraction.
//   - Self-loops (A→A) are counted by default. Options.SkipSelfLoops drops
//     them for callers that consider same-location links noise.
//   - Negative gap links nothing for time-ordered input.
//   - Input is never re-sorted; ordering is the caller's guarantee.
//
// # Merging
//
// Tables from independent calls (for example one per tracked entity) are
// merged by summing counts on matching edges: Table.Merge, Merge, or the
// concurrent core.Network via Accumulate / FromNetwork.
//
// # Rendering
//
// Edge.String renders the composite key "from->to"; ParseEdge reverses it,
// splitting at the first "->".
//
// # Errors
//
//	ErrNaNGap             - gap is NaN.
//	*session.InvariantError - a session has non-finite bounds or Start > End;
//	                          reported before the table is built.
//	ErrMalformedEdge      - ParseEdge input without "->".
//
// Complexity: O(N) time for N sessions, O(E) space for E distinct edges.
package flow
