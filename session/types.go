// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for session compression and validation.
var (
	// ErrLengthMismatch indicates parallel input columns of different lengths.
	ErrLengthMismatch = errors.New("session: locations and timestamps differ in length")

	// ErrNonFiniteTimestamp indicates a NaN or infinite timestamp.
	ErrNonFiniteTimestamp = errors.New("session: timestamp is not finite")

	// ErrNaNGap indicates a NaN gap threshold.
	ErrNaNGap = errors.New("session: gap is NaN")

	// ErrReversedInterval indicates a session whose Start is after its End.
	ErrReversedInterval = errors.New("session: start after end")

	// ErrOutOfOrder indicates a session starting before the previous one ended.
	ErrOutOfOrder = errors.New("session: sessions out of time order")

	// ErrAdjacentDuplicate indicates two adjacent sessions at the same location
	// that are close enough to have been merged.
	ErrAdjacentDuplicate = errors.New("session: adjacent sessions share a location")
)

// Observation is one sensed event: the entity was at Location at Timestamp
// (seconds, any epoch).
type Observation struct {
	Location  string
	Timestamp float64
}

// Session is a compressed stay at one location. Start <= End.
type Session struct {
	Location string  `json:"location" yaml:"location"`
	Start    float64 `json:"start_time" yaml:"start_time"`
	End      float64 `json:"end_time" yaml:"end_time"`
}

// Duration returns End - Start in seconds.
func (s Session) Duration() float64 { return s.End - s.Start }

// Midpoint returns the instant halfway through the session.
func (s Session) Midpoint() float64 { return s.Start + (s.End-s.Start)/2 }

// Contains reports whether t lies in the closed interval [Start, End].
func (s Session) Contains(t float64) bool { return t >= s.Start && t <= s.End }

// String renders the session as "location[start,end]".
func (s Session) String() string {
	return fmt.Sprintf("%s[%g,%g]", s.Location, s.Start, s.End)
}

// InvariantError reports the session at Index that breaks an ordering or
// interval invariant. Err is one of the sentinel errors above.
type InvariantError struct {
	Index int
	Err   error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("session %d: %v", e.Index, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *InvariantError) Unwrap() error { return e.Err }

// NeverMerge reports whether gap is in the degenerate negative range where no
// two observations are ever merged and no two sessions are ever linked.
func NeverMerge(gap float64) bool { return gap < 0 }

// checkGap rejects the one gap value that cannot be compared meaningfully.
func checkGap(gap float64) error {
	if math.IsNaN(gap) {
		return ErrNaNGap
	}

	return nil
}
