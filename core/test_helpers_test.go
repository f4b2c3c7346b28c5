// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/flowmap/core"
	"github.com/stretchr/testify/require"
)

// Common location IDs used across core tests.
const (
	LocEmpty = ""
	LocA     = "A"
	LocB     = "B"
	LocC     = "C"
	LocHome  = "home"
	LocWork  = "work"
)

// Common concurrency sizes (avoid magic numbers in test bodies).
const (
	NConcurrentWriters = 64
	NFlowsPerWriter    = 50
	NReaders           = 32
)

// triangle builds A→B (2), B→C (1), C→A (3) and a self-loop A→A (1).
func triangle(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	require.NoError(t, n.AddFlow(LocA, LocB, 2))
	require.NoError(t, n.AddFlow(LocB, LocC, 1))
	require.NoError(t, n.AddFlow(LocC, LocA, 3))
	require.NoError(t, n.AddFlow(LocA, LocA, 1))

	return n
}
