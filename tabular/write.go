// SPDX-License-Identifier: MIT

package tabular

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flowmap/flow"
	"github.com/katalvlaran/flowmap/session"
)

// TransitionRow is the rendered form of a flow.Transition.
type TransitionRow struct {
	Edge  string  `json:"edge" yaml:"edge"`
	Delta float64 `json:"delta" yaml:"delta"`
	At    float64 `json:"at" yaml:"at"`
}

// EntitySessions groups the sessions of one entity for structured output.
type EntitySessions struct {
	Entity   string            `json:"entity" yaml:"entity"`
	Sessions []session.Session `json:"sessions" yaml:"sessions"`
}

// WriteSessions writes sessions in the given format.
func WriteSessions(w io.Writer, sessions []session.Session, f Format) error {
	if sessions == nil {
		sessions = []session.Session{}
	}

	return write(w, f, sessions, []string{ColLocation, ColStart, ColEnd}, func(emit func(...string) error) error {
		for _, s := range sessions {
			if err := emit(s.Location, formatFloat(s.Start), formatFloat(s.End)); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteEntitySessions writes sessions of several entities. CSV output gets a
// leading entity column named by entityCol.
func WriteEntitySessions(w io.Writer, groups []EntitySessions, entityCol string, f Format) error {
	if groups == nil {
		groups = []EntitySessions{}
	}

	return write(w, f, groups, []string{entityCol, ColLocation, ColStart, ColEnd}, func(emit func(...string) error) error {
		for _, g := range groups {
			for _, s := range g.Sessions {
				if err := emit(g.Entity, s.Location, formatFloat(s.Start), formatFloat(s.End)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// WriteFlows writes the table as edge,flow rows sorted by edge.
func WriteFlows(w io.Writer, t flow.Table, f Format) error {
	rows := t.Rows()
	if rows == nil {
		rows = []flow.Row{}
	}

	return write(w, f, rows, []string{ColEdge, ColFlow}, func(emit func(...string) error) error {
		for _, r := range rows {
			if err := emit(r.Edge, strconv.Itoa(r.Flow)); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteTransitions writes linked pairs in walk order.
func WriteTransitions(w io.Writer, ts []flow.Transition, f Format) error {
	rows := make([]TransitionRow, len(ts))
	for i, tr := range ts {
		rows[i] = TransitionRow{Edge: tr.Edge.String(), Delta: tr.Delta, At: tr.At}
	}

	return write(w, f, rows, []string{ColEdge, ColDelta, ColAt}, func(emit func(...string) error) error {
		for _, r := range rows {
			if err := emit(r.Edge, formatFloat(r.Delta), formatFloat(r.At)); err != nil {
				return err
			}
		}
		return nil
	})
}

// write dispatches on format: structured formats encode v, CSV writes header
// followed by whatever rows calls emit with.
func write(w io.Writer, f Format, v any, header []string, rows func(emit func(...string) error) error) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("tabular: encode json: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("tabular: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("tabular: encode yaml: %w", err)
		}
		return nil

	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("tabular: write csv: %w", err)
		}
		err := rows(func(rec ...string) error { return cw.Write(rec) })
		cw.Flush()
		if err == nil {
			err = cw.Error()
		}
		if err != nil {
			return fmt.Errorf("tabular: write csv: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// formatFloat renders the shortest representation that parses back exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
