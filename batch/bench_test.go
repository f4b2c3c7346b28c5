// SPDX-License-Identifier: MIT

package batch_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/flowmap/batch"
)

// BenchmarkRun measures 200 entities of up to 500 observations each.
func BenchmarkRun(b *testing.B) {
	trs := randomTrajectories(rand.New(rand.NewSource(3)), 200, 500)
	o := batch.DefaultOptions(30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = batch.Run(context.Background(), trs, o)
	}
}
