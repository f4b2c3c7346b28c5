// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: FlowTable operations: counting, merging, deterministic listing.
// Determinism:
//   - Edges() and Rows() are sorted by (From, To); map iteration order never leaks.

package flow

import "sort"

// Table maps each directed edge to the number of linked transitions.
// Keys are unique; iteration order carries no meaning.
// A Table is not safe for concurrent mutation; use core.Network for that.
type Table map[Edge]int

// Add adds n to the count of e. n must be >= 0; zero is a no-op.
func (t Table) Add(e Edge, n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if n > 0 {
		t[e] += n
	}

	return nil
}

// Count returns the count of e, or 0 when e never occurred.
func (t Table) Count(e Edge) int { return t[e] }

// Len returns the number of distinct edges.
func (t Table) Len() int { return len(t) }

// Total returns the sum of all counts.
func (t Table) Total() int {
	sum := 0
	for _, c := range t {
		sum += c
	}

	return sum
}

// Merge sums every count of other into t.
func (t Table) Merge(other Table) {
	for e, c := range other {
		t[e] += c
	}
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for e, n := range t {
		c[e] = n
	}

	return c
}

// Edges returns the edges of t sorted by (From, To).
func (t Table) Edges() []Edge {
	edges := make([]Edge, 0, len(t))
	for e := range t {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// Rows renders t as (edge, flow) rows sorted by edge.
func (t Table) Rows() []Row {
	edges := t.Edges()
	rows := make([]Row, len(edges))
	for i, e := range edges {
		rows[i] = Row{Edge: e.String(), Flow: t[e]}
	}

	return rows
}

// FromRows rebuilds a Table from rendered rows. Rows with the same edge are
// summed.
func FromRows(rows []Row) (Table, error) {
	t := make(Table, len(rows))
	for _, r := range rows {
		e, err := ParseEdge(r.Edge)
		if err != nil {
			return nil, err
		}
		if err := t.Add(e, r.Flow); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Merge returns a new Table holding the summed counts of all tables.
func Merge(tables ...Table) Table {
	out := make(Table)
	for _, t := range tables {
		out.Merge(t)
	}

	return out
}
