// SPDX-License-Identifier: MIT

// Package tabular moves the pipeline's tables in and out of plain text.
//
// Input is CSV with a header row:
//   - observations: entity (optional), location, timestamp; column names are
//     configurable through ObservationColumns. Timestamps are real seconds
//     ("1717430400.25") or ISO-8601 instants ("2024-06-03T16:00:00.25Z"),
//     the latter converted to Unix seconds. Anything that parses as a number
//     is seconds, so dates must use the extended ISO form with dashes.
//   - sessions: location,start_time,end_time.
//   - flows: edge,flow with edges rendered as "from->to".
//
// Output tables can be written as CSV, JSON or YAML (see Format). Flow rows
// are always sorted by edge so repeated runs produce identical files.
//
// Row-level failures are reported as *ParseError carrying the 1-based input
// line and the column name.
package tabular
