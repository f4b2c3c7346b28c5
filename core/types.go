// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Location, Edge, Network, options, sentinel errors and the constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for network operations.
var (
	// ErrLocationNotFound indicates an operation referenced an unknown location.
	ErrLocationNotFound = errors.New("core: location not found")

	// ErrNegativeFlow indicates an attempt to add a negative transition count.
	ErrNegativeFlow = errors.New("core: negative flow")

	// ErrLoopNotAllowed indicates a self-loop on a network that forbids them.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Location is a vertex of the network.
type Location struct {
	// ID is the location label as it appears in observations.
	ID string
}

// Edge is a directed transition bucket between two locations.
type Edge struct {
	// From is the location the entity left.
	From string

	// To is the location the entity arrived at.
	To string

	// Flow is the number of linked transitions From→To.
	Flow int64
}

// Option configures a Network before creation.
type Option func(n *Network)

// WithoutLoops rejects self-loops (from == to) in AddFlow.
func WithoutLoops() Option {
	return func(n *Network) { n.allowLoops = false }
}

// WithLocations pre-registers location IDs.
func WithLocations(ids ...string) Option {
	return func(n *Network) {
		for _, id := range ids {
			n.locations[id] = &Location{ID: id}
		}
	}
}

// Network is the in-memory location flow graph.
//
// muVert protects locations; muEdgeAdj protects out, in and total.
// out[from][to] and in[to][from] point at the same *Edge.
type Network struct {
	muVert    sync.RWMutex // guards locations
	muEdgeAdj sync.RWMutex // guards out, in, total

	// Configuration
	allowLoops bool

	// Storage
	locations map[string]*Location
	out       map[string]map[string]*Edge
	in        map[string]map[string]*Edge
	total     int64
}

// NewNetwork creates an empty Network. By default self-loops are allowed.
// Complexity: O(len(opts)).
func NewNetwork(opts ...Option) *Network {
	n := &Network{
		allowLoops: true,
		locations:  make(map[string]*Location),
		out:        make(map[string]map[string]*Edge),
		in:         make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Looped reports whether self-loops are permitted.
func (n *Network) Looped() bool {
	n.muVert.RLock()
	defer n.muVert.RUnlock()

	return n.allowLoops
}
