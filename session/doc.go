// SPDX-License-Identifier: MIT

// Package session compresses a raw, irregularly sampled stream of
// (location, timestamp) observations into stay sessions.
//
// A Session is a closed interval [Start, End] during which an entity was
// observed continuously at one location, "continuously" meaning that no two
// successive observations at that location are more than gap seconds apart.
//
// What Compress does:
//
//  1. Orders observation indices by timestamp (package order, stable on ties).
//  2. Walks that order keeping one open session.
//  3. Extends the open session when the next observation has the same
//     location and lies within gap of the session end; otherwise closes it
//     and opens a new one at the observation.
//  4. Always flushes the last open session.
//
// Guarantees of the output:
//
//   - ascending by Start, and next.Start >= prev.End;
//   - Start <= End for every session;
//   - two adjacent sessions share a location only when the time between them
//     exceeds gap; a location change always closes a session.
//
// Gap semantics:
//
//	gap >= 0    merge same-location observations at most gap seconds apart.
//	gap < 0     never merge: every observation becomes its own session.
//	gap == +Inf merge every same-location run regardless of span.
//	gap == NaN  rejected with ErrNaNGap.
//
// Errors:
//
//	ErrLengthMismatch     - locations and timestamps differ in length.
//	ErrNonFiniteTimestamp - a timestamp is NaN or ±Inf.
//	ErrNaNGap             - gap is NaN.
//	*InvariantError       - returned by Validate for malformed session sequences;
//	                        wraps ErrReversedInterval, ErrOutOfOrder,
//	                        ErrAdjacentDuplicate or ErrNonFiniteTimestamp.
//
// Every error is reported before any output is built; there are no partial
// results.
//
// Complexity:
//
//	Compress: O(N log N) time for the sort, O(N) for the walk; O(N) space.
package session
