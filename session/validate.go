// SPDX-License-Identifier: MIT

package session

import "math"

// Validate checks that sessions could have been produced by Compress with
// the given gap:
//
//   - every bound is finite and Start <= End;
//   - next.Start >= prev.End (time order, no overlap);
//   - adjacent sessions at the same location are more than gap apart.
//
// The first violation is returned as *InvariantError; nil means the sequence
// is a valid input for flow aggregation.
//
// Complexity: O(N) time, O(1) space.
func Validate(sessions []Session, gap float64) error {
	if err := checkGap(gap); err != nil {
		return err
	}
	for i, s := range sessions {
		if err := checkBounds(s); err != nil {
			return &InvariantError{Index: i, Err: err}
		}
		if i == 0 {
			continue
		}
		prev := sessions[i-1]
		if s.Start < prev.End {
			return &InvariantError{Index: i, Err: ErrOutOfOrder}
		}
		if s.Location == prev.Location && s.Start-prev.End <= gap {
			return &InvariantError{Index: i, Err: ErrAdjacentDuplicate}
		}
	}

	return nil
}

// CheckBounds validates a single session in isolation.
func CheckBounds(s Session) error {
	return checkBounds(s)
}

func checkBounds(s Session) error {
	if math.IsNaN(s.Start) || math.IsInf(s.Start, 0) || math.IsNaN(s.End) || math.IsInf(s.End, 0) {
		return ErrNonFiniteTimestamp
	}
	if s.Start > s.End {
		return ErrReversedInterval
	}

	return nil
}
