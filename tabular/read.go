// SPDX-License-Identifier: MIT

package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/relvacode/iso8601"

	"github.com/katalvlaran/flowmap/batch"
	"github.com/katalvlaran/flowmap/flow"
	"github.com/katalvlaran/flowmap/session"
)

// Session and flow column names.
const (
	ColLocation = "location"
	ColStart    = "start_time"
	ColEnd      = "end_time"
	ColEdge     = "edge"
	ColFlow     = "flow"
	ColDelta    = "delta"
	ColAt       = "at"
)

// table is a CSV stream positioned after its header.
type table struct {
	r      *csv.Reader
	header map[string]int
}

func openTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("tabular: read header: %w", err)
	}

	t := &table{r: cr, header: make(map[string]int, len(head))}
	for i, name := range head {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := t.header[name]; !dup {
			t.header[name] = i
		}
	}

	return t, nil
}

// require resolves column names to indices.
func (t *table) require(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, n := range names {
		j, ok := t.header[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, n)
		}
		idx[i] = j
	}

	return idx, nil
}

// each calls fn for every data record until EOF.
func (t *table) each(fn func(rec []string, line int) error) error {
	for {
		rec, err := t.r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("tabular: %w", err)
		}
		line, _ := t.r.FieldPos(0)
		if err := fn(rec, line); err != nil {
			return err
		}
	}
}

// ReadObservations parses an observation CSV with the given column names.
// Location and Timestamp columns are required.
func ReadObservations(r io.Reader, cols ObservationColumns) (*Observations, error) {
	t, err := openTable(r)
	if err != nil {
		return nil, err
	}
	idx, err := t.require(cols.Location, cols.Timestamp)
	if err != nil {
		return nil, err
	}
	entCol, hasEntity := t.header[cols.Entity]
	hasEntity = hasEntity && cols.Entity != ""

	obs := &Observations{}
	err = t.each(func(rec []string, line int) error {
		ts, err := ParseTimestamp(rec[idx[1]])
		if err != nil {
			return &ParseError{Line: line, Column: cols.Timestamp, Err: err}
		}
		ent := ""
		if hasEntity {
			ent = rec[entCol]
		}
		obs.Entities = append(obs.Entities, ent)
		obs.Locations = append(obs.Locations, rec[idx[0]])
		obs.Timestamps = append(obs.Timestamps, ts)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}

// Trajectories groups the observations by entity.
func (o *Observations) Trajectories() ([]batch.Trajectory, error) {
	return batch.GroupByEntity(o.Entities, o.Locations, o.Timestamps)
}

// ParseTimestamp accepts finite real seconds or an ISO-8601 instant.
//
// Numbers win: any text strconv.ParseFloat accepts is taken as seconds, so
// a basic-format date such as "20240101" is read as 20240101 seconds, not as
// 1 January 2024. Write calendar values in extended form
// ("2024-01-01T00:00:00Z") to have them parsed as ISO-8601.
func ParseTimestamp(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
		}
		return v, nil
	}
	tm, err := iso8601.ParseString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
	}

	return float64(tm.Unix()) + float64(tm.Nanosecond())/1e9, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}

	return v, nil
}

// ReadSessions parses a location,start_time,end_time CSV.
// Bounds are parsed but not validated; use session.Validate for that.
func ReadSessions(r io.Reader) ([]session.Session, error) {
	t, err := openTable(r)
	if err != nil {
		return nil, err
	}
	idx, err := t.require(ColLocation, ColStart, ColEnd)
	if err != nil {
		return nil, err
	}

	out := []session.Session{}
	err = t.each(func(rec []string, line int) error {
		start, err := parseFinite(rec[idx[1]])
		if err != nil {
			return &ParseError{Line: line, Column: ColStart, Err: err}
		}
		end, err := parseFinite(rec[idx[2]])
		if err != nil {
			return &ParseError{Line: line, Column: ColEnd, Err: err}
		}
		out = append(out, session.Session{Location: rec[idx[0]], Start: start, End: end})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReadFlows parses an edge,flow CSV. Duplicate edges are summed.
func ReadFlows(r io.Reader) (flow.Table, error) {
	t, err := openTable(r)
	if err != nil {
		return nil, err
	}
	idx, err := t.require(ColEdge, ColFlow)
	if err != nil {
		return nil, err
	}

	out := make(flow.Table)
	err = t.each(func(rec []string, line int) error {
		e, err := flow.ParseEdge(rec[idx[0]])
		if err != nil {
			return &ParseError{Line: line, Column: ColEdge, Err: err}
		}
		n, err := strconv.Atoi(strings.TrimSpace(rec[idx[1]]))
		if err != nil {
			return &ParseError{Line: line, Column: ColFlow, Err: fmt.Errorf("%w: %q", ErrBadNumber, rec[idx[1]])}
		}
		if err := out.Add(e, n); err != nil {
			return &ParseError{Line: line, Column: ColFlow, Err: err}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
