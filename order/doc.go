// SPDX-License-Identifier: MIT

// Package order computes sort permutations: given a sequence of values it
// returns the indices that visit the sequence in ascending order, leaving the
// sequence itself untouched.
//
// The permutation form lets callers keep several parallel columns (for
// example location labels and timestamps) aligned without copying them into
// a struct first:
//
//	perm := order.Ascending(timestamps)
//	for _, i := range perm {
//	    visit(locations[i], timestamps[i])
//	}
//
// Tie policy:
//
//	All functions in this package are stable. Equal keys are visited in their
//	original input order, so the same input always yields the same permutation.
//
// Errors:
//
//	ErrLengthMismatch - a destination or permutation does not match the input length.
//	ErrNotPermutation - a supplied permutation repeats or skips an index.
//
// Complexity:
//
//	Ascending / Stable / Into: O(N log N) time, O(N) space for the permutation.
//	Apply / IsPermutation:     O(N) time, O(N) space.
package order
