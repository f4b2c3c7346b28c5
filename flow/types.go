// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"strings"
)

// Separator joins the two endpoints of an edge in its textual form.
const Separator = "->"

// Sentinel errors for flow aggregation.
var (
	// ErrNaNGap indicates a NaN gap threshold.
	ErrNaNGap = errors.New("flow: gap is NaN")

	// ErrMalformedEdge indicates an edge string without Separator.
	ErrMalformedEdge = errors.New("flow: malformed edge")

	// ErrNegativeCount indicates a negative count in Table.Add.
	ErrNegativeCount = errors.New("flow: negative count")
)

// Edge is a directed pair of location labels.
type Edge struct {
	From string
	To   string
}

// Escape prefixes a Separator or a literal Escape inside Edge.From in the
// textual form.
const Escape = '\\'

// String renders the edge as "from->to". Inside From, every Escape and every
// Separator is prefixed with Escape, so distinct edges never share a text
// form: {"a->b","c"} renders as `a\->b->c`, {"a","b->c"} as "a->b->c".
// To is written verbatim. Labels without "->" or `\` render unchanged.
func (e Edge) String() string {
	if !strings.ContainsRune(e.From, Escape) && !strings.Contains(e.From, Separator) {
		return e.From + Separator + e.To
	}

	var b strings.Builder
	b.Grow(len(e.From) + len(Separator) + len(e.To) + 2)
	for i := 0; i < len(e.From); i++ {
		if e.From[i] == Escape || strings.HasPrefix(e.From[i:], Separator) {
			b.WriteByte(Escape)
		}
		b.WriteByte(e.From[i])
	}
	b.WriteString(Separator)
	b.WriteString(e.To)

	return b.String()
}

// IsLoop reports whether the edge starts and ends at the same location.
func (e Edge) IsLoop() bool { return e.From == e.To }

// ParseEdge parses the form produced by Edge.String. The split happens at
// the first Separator not preceded by Escape; an escaped byte in From is
// taken literally and everything after the split is To.
func ParseEdge(s string) (Edge, error) {
	var from strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == Escape:
			if i+1 == len(s) {
				return Edge{}, ErrMalformedEdge
			}
			i++
			from.WriteByte(s[i])
		case strings.HasPrefix(s[i:], Separator):
			return Edge{From: from.String(), To: s[i+len(Separator):]}, nil
		default:
			from.WriteByte(s[i])
		}
	}

	return Edge{}, ErrMalformedEdge
}

// Row is one line of the flow output table.
type Row struct {
	Edge string `json:"edge" yaml:"edge"`
	Flow int    `json:"flow" yaml:"flow"`
}

// Transition is one linked pair of consecutive sessions.
type Transition struct {
	Edge  Edge    `json:"edge" yaml:"edge"`
	Delta float64 `json:"delta" yaml:"delta"` // cur.Start - prev.End
	At    float64 `json:"at" yaml:"at"`       // cur.Start
}

// Options configures Statistics.
//   - Gap: maximum cur.Start - prev.End for a linked pair.
//   - SkipSelfLoops: drop A→A links instead of counting them.
type Options struct {
	Gap           float64
	SkipSelfLoops bool
}

// DefaultOptions returns Options with the given gap and self-loops counted.
func DefaultOptions(gap float64) Options {
	return Options{Gap: gap}
}
