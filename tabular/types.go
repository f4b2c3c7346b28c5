// SPDX-License-Identifier: MIT

package tabular

import (
	"errors"
	"fmt"
	"strings"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates a format name other than csv, json or yaml.
	ErrUnknownFormat = errors.New("tabular: unknown format")

	// ErrMissingColumn indicates a required column absent from the header.
	ErrMissingColumn = errors.New("tabular: missing column")

	// ErrEmptyInput indicates a CSV stream without a header row.
	ErrEmptyInput = errors.New("tabular: no header row")

	// ErrBadNumber indicates a cell that is not a finite number.
	ErrBadNumber = errors.New("tabular: not a finite number")

	// ErrBadTimestamp indicates a cell that is neither seconds nor ISO-8601.
	ErrBadTimestamp = errors.New("tabular: bad timestamp")
)

// ParseFormat maps a case-insensitive name ("csv", "json", "yaml", "yml")
// to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ParseError locates a failure inside a CSV stream.
type ParseError struct {
	Line   int    // 1-based input line
	Column string // header name of the offending cell
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tabular: line %d, column %q: %v", e.Line, e.Column, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// ObservationColumns names the observation columns in the CSV header.
// An empty Entity, or an Entity column absent from the header, puts every
// row into a single unnamed entity.
type ObservationColumns struct {
	Entity    string `yaml:"entity"`
	Location  string `yaml:"location"`
	Timestamp string `yaml:"timestamp"`
}

// DefaultColumns returns the entity/location/timestamp column names.
func DefaultColumns() ObservationColumns {
	return ObservationColumns{Entity: "entity", Location: "location", Timestamp: "timestamp"}
}

// Observations holds parsed observation columns of equal length.
type Observations struct {
	Entities   []string
	Locations  []string
	Timestamps []float64
}

// Len returns the number of rows.
func (o *Observations) Len() int { return len(o.Timestamps) }
