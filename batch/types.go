// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/flowmap/core"
	"github.com/katalvlaran/flowmap/flow"
	"github.com/katalvlaran/flowmap/session"
)

// Sentinel errors for batch runs.
var (
	// ErrLengthMismatch indicates grouping columns of different lengths.
	ErrLengthMismatch = errors.New("batch: columns differ in length")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("batch: workers must be >= 0")

	// ErrNaNGap indicates a NaN gap threshold.
	ErrNaNGap = errors.New("batch: gap is NaN")
)

// Trajectory is the raw observation stream of one tracked entity.
type Trajectory struct {
	Entity     string
	Locations  []string
	Timestamps []float64
}

// Len returns the number of observations.
func (t Trajectory) Len() int { return len(t.Timestamps) }

// Options configures Run.
//   - Gap: threshold shared by compression and aggregation.
//   - Workers: maximum entities processed concurrently; 0 means GOMAXPROCS.
//   - SkipSelfLoops: forwarded to flow.Options.
//   - Logger: structured logger; nil is silent.
//   - Metrics: prometheus collectors; nil disables metrics.
type Options struct {
	Gap           float64
	Workers       int
	SkipSelfLoops bool
	Logger        *slog.Logger
	Metrics       *Metrics
}

// DefaultOptions returns Options with the given gap and one worker per CPU.
func DefaultOptions(gap float64) Options {
	return Options{Gap: gap, Workers: runtime.GOMAXPROCS(0)}
}

func (o Options) validate() error {
	if math.IsNaN(o.Gap) {
		return ErrNaNGap
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}

func (o Options) workers() int {
	if o.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}

	return o.Workers
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}

// EntityResult holds the two derived tables of one entity.
type EntityResult struct {
	Entity   string
	Sessions []session.Session
	Flows    flow.Table
}

// Result is the outcome of a Run.
//   - Entities: per-entity results in input order.
//   - Flows: all entity tables summed on matching edges.
//   - Network: the same totals as a queryable graph.
type Result struct {
	Entities []EntityResult
	Flows    flow.Table
	Network  *core.Network
}

// EntityError reports the entity whose processing failed.
type EntityError struct {
	Entity string
	Err    error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("batch: entity %q: %v", e.Entity, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *EntityError) Unwrap() error { return e.Err }
