// SPDX-License-Identifier: MIT
//
// File: compress.go
// Role: observation stream → stay sessions.
// Determinism:
//   - Observations with equal timestamps are visited in input order.

package session

import (
	"math"

	"github.com/katalvlaran/flowmap/order"
)

// Compress turns parallel location/timestamp columns into stay sessions.
//
// Steps:
//  1. Validate shape (equal lengths), gap and timestamps; nothing is built on error.
//  2. Order indices by timestamp with order.Into (stable on ties).
//  3. Walk the order with one open session:
//     same location and T-open.End <= gap → open.End = T;
//     otherwise append open, open (L, T, T).
//  4. Append the still-open session.
//
// An empty input yields an empty, non-nil slice and no error.
//
// Complexity: O(N log N) time, O(N) space.
func Compress(locations []string, timestamps []float64, gap float64) ([]Session, error) {
	if len(locations) != len(timestamps) {
		return nil, ErrLengthMismatch
	}
	if err := checkGap(gap); err != nil {
		return nil, err
	}
	for _, ts := range timestamps {
		if math.IsNaN(ts) || math.IsInf(ts, 0) {
			return nil, ErrNonFiniteTimestamp
		}
	}
	if len(timestamps) == 0 {
		return []Session{}, nil
	}

	perm := make([]int, len(timestamps))
	if err := order.Into(perm, timestamps); err != nil {
		return nil, err
	}

	return walk(perm, locations, timestamps, gap), nil
}

// CompressObservations is Compress over a slice of Observation values.
func CompressObservations(obs []Observation, gap float64) ([]Session, error) {
	locations := make([]string, len(obs))
	timestamps := make([]float64, len(obs))
	for i, o := range obs {
		locations[i] = o.Location
		timestamps[i] = o.Timestamp
	}

	return Compress(locations, timestamps, gap)
}

// walk performs the sequential merge over a precomputed time order.
// perm must be non-empty.
func walk(perm []int, locations []string, timestamps []float64, gap float64) []Session {
	out := make([]Session, 0, estimateSessions(len(perm)))

	first := perm[0]
	open := Session{Location: locations[first], Start: timestamps[first], End: timestamps[first]}

	for _, idx := range perm[1:] {
		loc, ts := locations[idx], timestamps[idx]
		if loc == open.Location && ts-open.End <= gap {
			open.End = ts // same stay, extend
			continue
		}
		out = append(out, open)
		open = Session{Location: loc, Start: ts, End: ts}
	}

	// the last open session is never closed by the loop
	return append(out, open)
}

// estimateSessions guesses an initial capacity; compression usually removes
// most observations, but the output can never exceed n.
func estimateSessions(n int) int {
	if n < 16 {
		return n
	}

	return n / 4
}

// Zip pairs parallel columns into observations.
func Zip(locations []string, timestamps []float64) ([]Observation, error) {
	if len(locations) != len(timestamps) {
		return nil, ErrLengthMismatch
	}
	obs := make([]Observation, len(locations))
	for i := range locations {
		obs[i] = Observation{Location: locations[i], Timestamp: timestamps[i]}
	}

	return obs, nil
}

// Midpoints re-observes every session once, at its midpoint.
// Compressing the result with the gap that produced sessions gives sessions
// back with zero duration at the same locations.
func Midpoints(sessions []Session) []Observation {
	obs := make([]Observation, len(sessions))
	for i, s := range sessions {
		obs[i] = Observation{Location: s.Location, Timestamp: s.Midpoint()}
	}

	return obs
}
