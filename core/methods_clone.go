// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning, clearing and merging networks.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source network.

package core

// Clone returns a deep copy of locations, edges and configuration.
//
// Complexity: O(L + E).
func (n *Network) Clone() *Network {
	n.muVert.RLock()
	defer n.muVert.RUnlock()
	n.muEdgeAdj.RLock()
	defer n.muEdgeAdj.RUnlock()

	clone := NewNetwork()
	clone.allowLoops = n.allowLoops
	for id, loc := range n.locations {
		clone.locations[id] = &Location{ID: loc.ID}
	}
	for from, inner := range n.out {
		for to, e := range inner {
			clone.addFlowLocked(from, to, e.Flow)
		}
	}

	return clone
}

// Clear removes all locations and edges while keeping the loop policy.
func (n *Network) Clear() {
	n.muVert.Lock()
	n.muEdgeAdj.Lock()
	n.locations = make(map[string]*Location)
	n.out = make(map[string]map[string]*Edge)
	n.in = make(map[string]map[string]*Edge)
	n.total = 0
	n.muEdgeAdj.Unlock()
	n.muVert.Unlock()
}

// Merge sums every edge of other into n and registers its locations.
// Self-loops from other are rejected when n forbids them; in that case n is
// left unchanged.
//
// Complexity: O(L_other + E_other).
func (n *Network) Merge(other *Network) error {
	if other == n {
		return n.Merge(other.Clone())
	}
	locs := other.Locations()
	edges := other.Edges()

	n.muVert.Lock()
	if !n.allowLoops {
		for _, e := range edges {
			if e.From == e.To {
				n.muVert.Unlock()
				return ErrLoopNotAllowed
			}
		}
	}
	for _, id := range locs {
		n.addLocationLocked(id)
	}
	n.muVert.Unlock()

	n.muEdgeAdj.Lock()
	defer n.muEdgeAdj.Unlock()
	for _, e := range edges {
		n.addFlowLocked(e.From, e.To, e.Flow)
	}

	return nil
}
