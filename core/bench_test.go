// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for core.Network operations.

package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/flowmap/core"
)

// BenchmarkAddFlow_HotEdge measures repeated accumulation on one edge.
func BenchmarkAddFlow_HotEdge(b *testing.B) {
	n := core.NewNetwork()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.AddFlow("A", "B", 1)
	}
}

// BenchmarkAddFlow_Spread measures edge creation over 1000 destinations.
func BenchmarkAddFlow_Spread(b *testing.B) {
	n := core.NewNetwork()
	ids := make([]string, 1000)
	for i := range ids {
		ids[i] = fmt.Sprintf("L%d", i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.AddFlow("hub", ids[i%len(ids)], 1)
	}
}
