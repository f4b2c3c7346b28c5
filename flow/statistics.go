// SPDX-License-Identifier: MIT
//
// File: statistics.go
// Role: session sequence → linked transitions → flow table.

package flow

import (
	"math"

	"github.com/katalvlaran/flowmap/session"
)

// Statistics counts linked transitions between consecutive sessions.
// It is StatisticsWith(sessions, DefaultOptions(gap)).
func Statistics(sessions []session.Session, gap float64) (Table, error) {
	return StatisticsWith(sessions, DefaultOptions(gap))
}

// StatisticsWith counts linked transitions with explicit options.
//
// Steps:
//  1. Validate opts.Gap and every session's bounds; nothing is built on error.
//  2. Walk pairs (sessions[i-1], sessions[i]) for i >= 1.
//  3. If cur.Start - prev.End <= gap, build Edge{prev.Location, cur.Location}
//     and increment it. Nothing is built for unlinked pairs.
//
// The sum of all counts equals the number of linked pairs (minus skipped
// self-loops when opts.SkipSelfLoops is set).
//
// Complexity: O(N) time, O(E) space.
func StatisticsWith(sessions []session.Session, opts Options) (Table, error) {
	if err := validate(sessions, opts.Gap); err != nil {
		return nil, err
	}

	table := make(Table)
	visitLinked(sessions, opts, func(prev, cur session.Session) {
		table[Edge{From: prev.Location, To: cur.Location}]++
	})

	return table, nil
}

// Transitions returns every linked pair in time order.
func Transitions(sessions []session.Session, gap float64) ([]Transition, error) {
	opts := DefaultOptions(gap)
	if err := validate(sessions, opts.Gap); err != nil {
		return nil, err
	}

	out := make([]Transition, 0)
	visitLinked(sessions, opts, func(prev, cur session.Session) {
		out = append(out, Transition{
			Edge:  Edge{From: prev.Location, To: cur.Location},
			Delta: cur.Start - prev.End,
			At:    cur.Start,
		})
	})

	return out, nil
}

// CountLinked returns the number of consecutive pairs within gap, counted
// directly without building edges.
func CountLinked(sessions []session.Session, gap float64) int {
	c := 0
	for i := 1; i < len(sessions); i++ {
		if sessions[i].Start-sessions[i-1].End <= gap {
			c++
		}
	}

	return c
}

// visitLinked calls fn for each linked (prev, cur) pair.
// prev and cur are both taken from the current iteration; nothing carries
// over between iterations except the index.
func visitLinked(sessions []session.Session, opts Options, fn func(prev, cur session.Session)) {
	for i := 1; i < len(sessions); i++ {
		prev, cur := sessions[i-1], sessions[i]
		if cur.Start-prev.End > opts.Gap {
			continue
		}
		if opts.SkipSelfLoops && prev.Location == cur.Location {
			continue
		}
		fn(prev, cur)
	}
}

func validate(sessions []session.Session, gap float64) error {
	if math.IsNaN(gap) {
		return ErrNaNGap
	}
	for i, s := range sessions {
		if err := session.CheckBounds(s); err != nil {
			return &session.InvariantError{Index: i, Err: err}
		}
	}

	return nil
}
