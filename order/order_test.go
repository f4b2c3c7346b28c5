// SPDX-License-Identifier: MIT

package order_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/flowmap/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAscending_Sorts verifies that indexing by the permutation yields ascending values.
func TestAscending_Sorts(t *testing.T) {
	values := []float64{25, 0, 20, 5}
	perm := order.Ascending(values)

	require.True(t, order.IsPermutation(perm, len(values)))
	assert.Equal(t, []int{1, 3, 2, 0}, perm)
	for i := 1; i < len(perm); i++ {
		assert.LessOrEqual(t, values[perm[i-1]], values[perm[i]])
	}
}

// TestAscending_StableTies checks that equal keys keep their input order.
func TestAscending_StableTies(t *testing.T) {
	values := []float64{3, 1, 3, 1, 3}
	assert.Equal(t, []int{1, 3, 0, 2, 4}, order.Ascending(values))
}

// TestAscending_Empty ensures an empty input yields an empty permutation.
func TestAscending_Empty(t *testing.T) {
	perm := order.Ascending(nil)
	assert.Empty(t, perm)
	assert.NotNil(t, perm)
}

// TestInto_LengthMismatch ensures the destination buffer must match the input length.
func TestInto_LengthMismatch(t *testing.T) {
	dst := []int{7, 7}
	err := order.Into(dst, []float64{1, 2, 3})
	assert.ErrorIs(t, err, order.ErrLengthMismatch)
	assert.Equal(t, []int{7, 7}, dst, "dst must be untouched on error")

	dst = make([]int, 3)
	require.NoError(t, order.Into(dst, []float64{2, 0, 1}))
	assert.Equal(t, []int{1, 2, 0}, dst)
}

// TestStable_Comparator sorts strings by length with a custom comparator.
func TestStable_Comparator(t *testing.T) {
	words := []string{"ccc", "a", "bb", "d", "ee"}
	perm := order.Stable(words, func(a, b string) int { return len(a) - len(b) })
	assert.Equal(t, []int{1, 3, 2, 4, 0}, perm)

	perm = order.Stable(words, strings.Compare)
	sorted, err := order.Apply(words, perm)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bb", "ccc", "d", "ee"}, sorted)
}

// TestApply_Validation covers both permutation contract violations.
func TestApply_Validation(t *testing.T) {
	xs := []string{"x", "y", "z"}

	_, err := order.Apply(xs, []int{0, 1})
	assert.ErrorIs(t, err, order.ErrLengthMismatch)

	_, err = order.Apply(xs, []int{0, 0, 2})
	assert.ErrorIs(t, err, order.ErrNotPermutation)

	_, err = order.Apply(xs, []int{0, 1, 3})
	assert.ErrorIs(t, err, order.ErrNotPermutation)

	got, err := order.Apply(xs, []int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "x", "y"}, got)
}

// TestIsPermutation covers negative indices and length disagreement.
func TestIsPermutation(t *testing.T) {
	assert.True(t, order.IsPermutation([]int{}, 0))
	assert.True(t, order.IsPermutation([]int{1, 0}, 2))
	assert.False(t, order.IsPermutation([]int{-1, 0}, 2))
	assert.False(t, order.IsPermutation([]int{0}, 2))
}
