// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory location flow network:
// a directed graph whose vertices are location labels and whose edges carry
// the number of observed transitions from one location to another.
//
// The Network N = (L, E) is the merge target for flow tables computed
// independently per tracked entity:
//
//   - At most one edge per ordered pair (from, to); adding flow to an
//     existing edge sums into it, which is exactly the merge policy for
//     flow tables (sum counts on matching edges).
//   - Self-loops (from == to) are accepted unless WithoutLoops() is given.
//   - Any string is a valid location label, including the empty string.
//   - Separate sync.RWMutex for locations (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert → muEdgeAdj.
//
// Configuration Options (Option):
//
//	– WithoutLoops()
//	    AddFlow(v, v, n) → ErrLoopNotAllowed.
//
//	– WithLocations(ids ...string)
//	    Pre-registers locations so that they are listed even without flow.
//
// Core Methods:
//
//	// Locations
//	AddLocation(id string)              // O(1), idempotent
//	HasLocation(id string) bool         // O(1)
//	Locations() []string                // O(L·log L), sorted
//	LocationCount() int                 // O(1)
//
//	// Flow
//	AddFlow(from, to string, n int64) error  // O(1) amortized
//	Flow(from, to string) int64              // O(1)
//	Edges() []Edge                           // O(E·log E), sorted by (From, To)
//	Neighbors(id string) ([]Edge, error)     // O(d·log d), outgoing, sorted by To
//	Degree(id string) (in, out int, err error)
//	EdgeCount() int; Total() int64           // O(1)
//
//	// Maintenance
//	Merge(other *Network) error   // O(E_other)
//	FilterEdges(pred)             // O(E)
//	Clone() *Network              // O(L + E)
//	Clear()                       // O(1)
//	Stats() Stats                 // O(E)
//
// Errors:
//
//	ErrLocationNotFound - query on a location that was never registered.
//	ErrNegativeFlow     - AddFlow with n < 0.
//	ErrLoopNotAllowed   - self-loop on a network built WithoutLoops().
package core
