// SPDX-License-Identifier: MIT

package session_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/flowmap/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompress_Scenario merges A@0,5, breaks on B, and opens a new A session.
func TestCompress_Scenario(t *testing.T) {
	got, err := session.Compress(
		[]string{"A", "A", "B", "A"},
		[]float64{0, 5, 20, 25},
		10,
	)
	require.NoError(t, err)
	assert.Equal(t, []session.Session{
		{Location: "A", Start: 0, End: 5},
		{Location: "B", Start: 20, End: 20},
		{Location: "A", Start: 25, End: 25},
	}, got)
}

// TestCompress_SingleObservation yields one zero-length session.
func TestCompress_SingleObservation(t *testing.T) {
	got, err := session.Compress([]string{"X"}, []float64{42}, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, session.Session{Location: "X", Start: 42, End: 42}, got[0])
	assert.Zero(t, got[0].Duration())
}

// TestCompress_ZeroGapEqualTimestamps merges identical timestamps at gap 0.
func TestCompress_ZeroGapEqualTimestamps(t *testing.T) {
	got, err := session.Compress([]string{"A", "A"}, []float64{7, 7}, 0)
	require.NoError(t, err)
	assert.Equal(t, []session.Session{{Location: "A", Start: 7, End: 7}}, got)
}

// TestCompress_Empty returns an empty, non-nil result without error.
func TestCompress_Empty(t *testing.T) {
	got, err := session.Compress(nil, nil, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestCompress_InputErrors covers every structural rejection.
func TestCompress_InputErrors(t *testing.T) {
	_, err := session.Compress([]string{"A", "B"}, []float64{1}, 10)
	assert.ErrorIs(t, err, session.ErrLengthMismatch)

	_, err = session.Compress([]string{"A"}, []float64{math.NaN()}, 10)
	assert.ErrorIs(t, err, session.ErrNonFiniteTimestamp)

	_, err = session.Compress([]string{"A"}, []float64{math.Inf(-1)}, 10)
	assert.ErrorIs(t, err, session.ErrNonFiniteTimestamp)

	_, err = session.Compress([]string{"A"}, []float64{1}, math.NaN())
	assert.ErrorIs(t, err, session.ErrNaNGap)
}

// TestCompress_NegativeGapNeverMerges turns each observation into its own session.
func TestCompress_NegativeGapNeverMerges(t *testing.T) {
	assert.True(t, session.NeverMerge(-1))
	assert.False(t, session.NeverMerge(0))

	got, err := session.Compress([]string{"A", "A", "A"}, []float64{1, 1, 2}, -1)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

// TestCompress_CollapsesLongRun keeps one session for a long, dense run.
func TestCompress_CollapsesLongRun(t *testing.T) {
	n := 1000
	locs := make([]string, n)
	ts := make([]float64, n)
	for i := range locs {
		locs[i] = "home"
		ts[i] = float64(i * 5)
	}
	got, err := session.Compress(locs, ts, 5)
	require.NoError(t, err)
	assert.Equal(t, []session.Session{{Location: "home", Start: 0, End: float64((n - 1) * 5)}}, got)

	// infinite gap collapses regardless of spacing
	got, err = session.Compress([]string{"a", "a"}, []float64{0, 1e12}, math.Inf(1))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// TestCompress_UnsortedInput sorts internally before merging.
func TestCompress_UnsortedInput(t *testing.T) {
	got, err := session.Compress(
		[]string{"A", "B", "A", "A"},
		[]float64{25, 20, 5, 0},
		10,
	)
	require.NoError(t, err)
	assert.Equal(t, []session.Session{
		{Location: "A", Start: 0, End: 5},
		{Location: "B", Start: 20, End: 20},
		{Location: "A", Start: 25, End: 25},
	}, got)
}

// TestCompress_OrderInvariance shuffles distinct-timestamp input and expects the same output.
func TestCompress_OrderInvariance(t *testing.T) {
	locs, ts := randomTrack(rand.New(rand.NewSource(7)), 300)
	want, err := session.Compress(locs, ts, 30)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 5; round++ {
		l2 := append([]string(nil), locs...)
		t2 := append([]float64(nil), ts...)
		rng.Shuffle(len(l2), func(i, j int) {
			l2[i], l2[j] = l2[j], l2[i]
			t2[i], t2[j] = t2[j], t2[i]
		})
		got, err := session.Compress(l2, t2, 30)
		require.NoError(t, err)
		assert.Equal(t, want, got, "round %d", round)
	}
}

// TestCompress_Postconditions checks order, bounds, coverage and adjacency on random input.
func TestCompress_Postconditions(t *testing.T) {
	locs, ts := randomTrack(rand.New(rand.NewSource(3)), 500)
	const gap = 45.0
	got, err := session.Compress(locs, ts, gap)
	require.NoError(t, err)
	require.NoError(t, session.Validate(got, gap))

	// every observation falls inside a session at its own location
	for i := range locs {
		found := false
		for _, s := range got {
			if s.Location == locs[i] && s.Contains(ts[i]) {
				found = true
				break
			}
		}
		assert.True(t, found, "observation %d (%s@%g) not covered", i, locs[i], ts[i])
	}
}

// TestCompress_Idempotent re-compresses session midpoints and expects no further merging.
func TestCompress_Idempotent(t *testing.T) {
	locs, ts := randomTrack(rand.New(rand.NewSource(5)), 400)
	const gap = 20.0
	first, err := session.Compress(locs, ts, gap)
	require.NoError(t, err)

	second, err := session.CompressObservations(session.Midpoints(first), gap)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Location, second[i].Location)
		assert.Equal(t, first[i].Midpoint(), second[i].Start)
	}
}

// TestCompress_MonotoneInGap verifies a larger gap never yields more sessions.
func TestCompress_MonotoneInGap(t *testing.T) {
	locs, ts := randomTrack(rand.New(rand.NewSource(9)), 400)
	prev := math.MaxInt
	for _, gap := range []float64{0, 5, 10, 30, 60, 600} {
		got, err := session.Compress(locs, ts, gap)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), prev, "gap %g", gap)
		prev = len(got)
	}
}

// TestZip checks column pairing and shape validation.
func TestZip(t *testing.T) {
	obs, err := session.Zip([]string{"A", "B"}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []session.Observation{{"A", 1}, {"B", 2}}, obs)

	_, err = session.Zip([]string{"A"}, nil)
	assert.ErrorIs(t, err, session.ErrLengthMismatch)
}

// TestSession_Helpers covers the small accessors.
func TestSession_Helpers(t *testing.T) {
	s := session.Session{Location: "lab", Start: 10, End: 30}
	assert.Equal(t, 20.0, s.Duration())
	assert.Equal(t, 20.0, s.Midpoint())
	assert.True(t, s.Contains(10))
	assert.True(t, s.Contains(30))
	assert.False(t, s.Contains(30.5))
	assert.Equal(t, "lab[10,30]", s.String())
}

// randomTrack builds a track over four locations with strictly increasing,
// distinct timestamps and runs of repeated locations.
func randomTrack(rng *rand.Rand, n int) ([]string, []float64) {
	names := []string{"A", "B", "C", "D"}
	locs := make([]string, n)
	ts := make([]float64, n)
	cur := names[0]
	t := 0.0
	for i := 0; i < n; i++ {
		if rng.Intn(4) == 0 {
			cur = names[rng.Intn(len(names))]
		}
		t += 1 + float64(rng.Intn(60)) + float64(i)*1e-6
		locs[i] = cur
		ts[i] = t
	}

	return locs, ts
}
