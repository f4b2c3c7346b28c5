// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Flow accumulation & edge queries: AddFlow/Flow/Edges/Neighbors/EdgeCount/Total,
//       plus filtered removal.
// Determinism:
//   - Edges() is sorted by (From, To); Neighbors() by To.
// Concurrency:
//   - Mutations under muEdgeAdj write lock (after registering locations under muVert).
//   - Read queries under muEdgeAdj read lock.

package core

import "sort"

// AddFlow adds count transitions from→to, creating the edge on first use.
//
// Steps:
//  1. Validate count >= 0 and the loop policy.
//  2. Register both endpoints (muVert).
//  3. Under muEdgeAdj, sum into out[from][to] (shared with in[to][from]).
//
// A zero count registers the endpoints but creates no edge, so every edge in
// the network has Flow >= 1.
//
// Errors: ErrNegativeFlow, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (n *Network) AddFlow(from, to string, count int64) error {
	if count < 0 {
		return ErrNegativeFlow
	}

	n.muVert.Lock()
	if from == to && !n.allowLoops {
		n.muVert.Unlock()
		return ErrLoopNotAllowed
	}
	n.addLocationLocked(from)
	n.addLocationLocked(to)
	n.muVert.Unlock()

	if count == 0 {
		return nil
	}

	n.muEdgeAdj.Lock()
	defer n.muEdgeAdj.Unlock()
	n.addFlowLocked(from, to, count)

	return nil
}

// addFlowLocked sums count into the edge; caller holds muEdgeAdj for writing.
func (n *Network) addFlowLocked(from, to string, count int64) {
	e, ok := n.out[from][to]
	if !ok {
		e = &Edge{From: from, To: to}
		if n.out[from] == nil {
			n.out[from] = make(map[string]*Edge)
		}
		if n.in[to] == nil {
			n.in[to] = make(map[string]*Edge)
		}
		n.out[from][to] = e
		n.in[to][from] = e
	}
	e.Flow += count
	n.total += count
}

// Flow returns the accumulated count on from→to, or 0 when no edge exists.
func (n *Network) Flow(from, to string) int64 {
	n.muEdgeAdj.RLock()
	defer n.muEdgeAdj.RUnlock()
	if e, ok := n.out[from][to]; ok {
		return e.Flow
	}

	return 0
}

// HasEdge reports whether at least one transition from→to was recorded.
func (n *Network) HasEdge(from, to string) bool {
	return n.Flow(from, to) > 0
}

// Edges returns copies of all edges sorted by (From, To).
// Complexity: O(E·log E).
func (n *Network) Edges() []Edge {
	n.muEdgeAdj.RLock()
	edges := make([]Edge, 0, n.edgeCountLocked())
	for _, inner := range n.out {
		for _, e := range inner {
			edges = append(edges, *e)
		}
	}
	n.muEdgeAdj.RUnlock()

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// Neighbors returns copies of the outgoing edges of id sorted by To.
//
// Errors: ErrLocationNotFound.
// Complexity: O(d·log d).
func (n *Network) Neighbors(id string) ([]Edge, error) {
	if !n.HasLocation(id) {
		return nil, ErrLocationNotFound
	}

	n.muEdgeAdj.RLock()
	edges := make([]Edge, 0, len(n.out[id]))
	for _, e := range n.out[id] {
		edges = append(edges, *e)
	}
	n.muEdgeAdj.RUnlock()

	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// EdgeCount returns the number of distinct ordered pairs with flow.
func (n *Network) EdgeCount() int {
	n.muEdgeAdj.RLock()
	defer n.muEdgeAdj.RUnlock()

	return n.edgeCountLocked()
}

func (n *Network) edgeCountLocked() int {
	c := 0
	for _, inner := range n.out {
		c += len(inner)
	}

	return c
}

// Total returns the sum of all edge flows.
func (n *Network) Total() int64 {
	n.muEdgeAdj.RLock()
	defer n.muEdgeAdj.RUnlock()

	return n.total
}

// FilterEdges removes every edge for which keep returns false. Locations are
// never removed.
// Complexity: O(E).
func (n *Network) FilterEdges(keep func(Edge) bool) {
	n.muEdgeAdj.Lock()
	defer n.muEdgeAdj.Unlock()

	for from, inner := range n.out {
		for to, e := range inner {
			if keep(*e) {
				continue
			}
			delete(inner, to)
			delete(n.in[to], from)
			if len(n.in[to]) == 0 {
				delete(n.in, to)
			}
			n.total -= e.Flow
		}
		if len(inner) == 0 {
			delete(n.out, from)
		}
	}
}
