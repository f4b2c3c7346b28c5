// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only summary of a network.

package core

// Stats is a point-in-time summary of a Network.
type Stats struct {
	Locations int   // registered locations
	Edges     int   // distinct ordered pairs with flow
	SelfLoops int   // edges with From == To
	Total     int64 // sum of all flows
	MaxFlow   int64 // largest single edge flow
}

// Stats produces a snapshot of sizes and totals.
//
// Implementation:
//   - Stage 1: read the location count under muVert.
//   - Stage 2: scan edges under muEdgeAdj.
//
// Complexity: O(E).
func (n *Network) Stats() Stats {
	st := Stats{Locations: n.LocationCount()}

	n.muEdgeAdj.RLock()
	defer n.muEdgeAdj.RUnlock()
	st.Total = n.total
	for _, inner := range n.out {
		for _, e := range inner {
			st.Edges++
			if e.From == e.To {
				st.SelfLoops++
			}
			if e.Flow > st.MaxFlow {
				st.MaxFlow = e.Flow
			}
		}
	}

	return st
}
