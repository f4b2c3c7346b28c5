// SPDX-License-Identifier: MIT
//
// File: order.go
// Role: stable index permutations over float keys and arbitrary comparators.
// Determinism:
//   - Ties resolve to input order in every function.

package order

import (
	"cmp"
	"errors"
	"slices"
)

// Sentinel errors for permutation operations.
var (
	// ErrLengthMismatch indicates a buffer or permutation whose length differs from the input.
	ErrLengthMismatch = errors.New("order: length mismatch")

	// ErrNotPermutation indicates a slice that is not a permutation of [0, n).
	ErrNotPermutation = errors.New("order: not a permutation")
)

// Ascending returns the permutation of [0, len(values)) that visits values in
// ascending order. Equal values keep their input order.
//
// NaN keys are not ordered by this function; callers are expected to reject
// them first (the session compressor does).
//
// Complexity: O(N log N) time, O(N) space.
func Ascending(values []float64) []int {
	perm := make([]int, len(values))
	// Into cannot fail here: perm is sized from values.
	_ = Into(perm, values)

	return perm
}

// Into writes the ascending permutation of values into dst.
// dst must have exactly len(values) elements, otherwise ErrLengthMismatch is
// returned and dst is left untouched.
//
// Steps:
//  1. Validate len(dst) == len(values).
//  2. Seed dst with the identity permutation.
//  3. Stable-sort dst by values[dst[i]].
//
// Complexity: O(N log N) time, no allocations beyond the sort itself.
func Into(dst []int, values []float64) error {
	if len(dst) != len(values) {
		return ErrLengthMismatch
	}
	for i := range dst {
		dst[i] = i
	}
	slices.SortStableFunc(dst, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})

	return nil
}

// Stable returns the permutation that visits xs in ascending order according
// to cmpFn, which must return a negative number when a < b, zero when equal
// and a positive number when a > b. Equal elements keep input order.
func Stable[T any](xs []T, cmpFn func(a, b T) int) []int {
	perm := make([]int, len(xs))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		return cmpFn(xs[a], xs[b])
	})

	return perm
}

// Apply returns a new slice holding xs[perm[0]], xs[perm[1]], ...
// perm must be a permutation of [0, len(xs)).
func Apply[T any](xs []T, perm []int) ([]T, error) {
	if len(perm) != len(xs) {
		return nil, ErrLengthMismatch
	}
	if !IsPermutation(perm, len(xs)) {
		return nil, ErrNotPermutation
	}
	out := make([]T, len(xs))
	for i, j := range perm {
		out[i] = xs[j]
	}

	return out, nil
}

// IsPermutation reports whether perm holds each index of [0, n) exactly once.
func IsPermutation(perm []int, n int) bool {
	if len(perm) != n {
		return false
	}
	seen := make([]bool, n)
	for _, i := range perm {
		if i < 0 || i >= n || seen[i] {
			return false
		}
		seen[i] = true
	}

	return true
}
