// SPDX-License-Identifier: MIT

package flow

import "github.com/katalvlaran/flowmap/core"

// Accumulate sums every count of t into the network n.
// It is safe to call concurrently on the same network.
// On a network built with core.WithoutLoops(), a table holding a self-loop is
// rejected with core.ErrLoopNotAllowed before anything is added.
func Accumulate(n *core.Network, t Table) error {
	edges := t.Edges()
	if !n.Looped() {
		for _, e := range edges {
			if e.IsLoop() {
				return core.ErrLoopNotAllowed
			}
		}
	}
	for _, e := range edges {
		if err := n.AddFlow(e.From, e.To, int64(t[e])); err != nil {
			return err
		}
	}

	return nil
}

// FromNetwork snapshots the network's edges into a Table.
func FromNetwork(n *core.Network) Table {
	edges := n.Edges()
	t := make(Table, len(edges))
	for _, e := range edges {
		t[Edge{From: e.From, To: e.To}] = int(e.Flow)
	}

	return t
}
