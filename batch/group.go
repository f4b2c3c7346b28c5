// SPDX-License-Identifier: MIT

package batch

// GroupByEntity splits a long observation table (one row per observation,
// with an entity column) into one Trajectory per entity. Entities appear in
// order of first occurrence; rows keep their relative order inside an entity.
//
// Complexity: O(N) time and space.
func GroupByEntity(entities, locations []string, timestamps []float64) ([]Trajectory, error) {
	if len(entities) != len(locations) || len(locations) != len(timestamps) {
		return nil, ErrLengthMismatch
	}

	index := make(map[string]int)
	var out []Trajectory
	for i, ent := range entities {
		j, ok := index[ent]
		if !ok {
			j = len(out)
			index[ent] = j
			out = append(out, Trajectory{Entity: ent})
		}
		out[j].Locations = append(out[j].Locations, locations[i])
		out[j].Timestamps = append(out[j].Timestamps, timestamps[i])
	}

	return out, nil
}
