// SPDX-License-Identifier: MIT
//
// File: methods_locations.go
// Role: Location lifecycle & queries.
// Determinism:
//   - Locations() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Location catalog protected by muVert; Degree reads adjacency under muEdgeAdj.

package core

import "sort"

// AddLocation registers a location if missing. Adding an existing location
// is a no-op.
//
// Complexity: O(1) amortized.
func (n *Network) AddLocation(id string) {
	n.muVert.Lock()
	defer n.muVert.Unlock()

	n.addLocationLocked(id)
}

// addLocationLocked registers id; caller holds muVert for writing.
func (n *Network) addLocationLocked(id string) {
	if _, exists := n.locations[id]; exists {
		return
	}
	n.locations[id] = &Location{ID: id}
}

// HasLocation reports whether id has been registered.
func (n *Network) HasLocation(id string) bool {
	n.muVert.RLock()
	defer n.muVert.RUnlock()
	_, ok := n.locations[id]

	return ok
}

// Location returns a copy of the location record for id.
func (n *Network) Location(id string) (Location, error) {
	n.muVert.RLock()
	defer n.muVert.RUnlock()
	loc, ok := n.locations[id]
	if !ok {
		return Location{}, ErrLocationNotFound
	}

	return *loc, nil
}

// Locations returns all location IDs sorted ascending.
// Complexity: O(L·log L).
func (n *Network) Locations() []string {
	n.muVert.RLock()
	ids := make([]string, 0, len(n.locations))
	for id := range n.locations {
		ids = append(ids, id)
	}
	n.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// LocationCount returns the number of registered locations.
func (n *Network) LocationCount() int {
	n.muVert.RLock()
	defer n.muVert.RUnlock()

	return len(n.locations)
}

// Degree returns the number of distinct incoming and outgoing edges of id.
// A self-loop counts once in each direction.
//
// Errors: ErrLocationNotFound.
// Complexity: O(1).
func (n *Network) Degree(id string) (in, out int, err error) {
	if !n.HasLocation(id) {
		return 0, 0, ErrLocationNotFound
	}
	n.muEdgeAdj.RLock()
	defer n.muEdgeAdj.RUnlock()

	return len(n.in[id]), len(n.out[id]), nil
}
