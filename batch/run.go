// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/flowmap/core"
	"github.com/katalvlaran/flowmap/flow"
	"github.com/katalvlaran/flowmap/session"
)

// Run compresses and aggregates every trajectory, then merges the per-entity
// flow tables.
//
// Steps:
//  1. Validate options (NaN gap, negative workers).
//  2. Process entities on an errgroup limited to opts.Workers; each entity
//     runs session.Compress then flow.StatisticsWith.
//  3. Sum each entity table into a shared core.Network as it completes.
//  4. Render the merged table from the network.
//
// The merged table is independent of worker count and completion order.
// The first failure cancels outstanding entities and is returned as an
// *EntityError; a cancelled ctx yields ctx.Err().
func Run(ctx context.Context, trajectories []Trajectory, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := opts.logger()
	net := core.NewNetwork()
	results := make([]EntityResult, len(trajectories))
	fopts := flow.Options{Gap: opts.Gap, SkipSelfLoops: opts.SkipSelfLoops}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i := range trajectories {
		if gctx.Err() != nil {
			break
		}
		tr := trajectories[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				opts.Metrics.observe(nil, 0, 0, resultCanceled)
				return err
			}

			start := time.Now()
			res, err := processEntity(tr, fopts)
			if err == nil {
				err = flow.Accumulate(net, res.Flows)
			}
			elapsed := time.Since(start)
			if err != nil {
				opts.Metrics.observe(nil, tr.Len(), elapsed, resultError)
				log.Error("entity failed", slog.String("entity", tr.Entity), slog.Any("err", err))
				return &EntityError{Entity: tr.Entity, Err: err}
			}

			opts.Metrics.observe(&res, tr.Len(), elapsed, resultOK)
			log.Debug("entity processed",
				slog.String("entity", tr.Entity),
				slog.Int("observations", tr.Len()),
				slog.Int("sessions", len(res.Sessions)),
				slog.Int("transitions", res.Flows.Total()),
				slog.Duration("elapsed", elapsed))
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var ee *EntityError
		if !errors.As(err, &ee) && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, err
	}
	// Parent ctx may have been cancelled after the last Go call was skipped.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := flow.FromNetwork(net)
	log.Info("batch complete",
		slog.Int("entities", len(trajectories)),
		slog.Int("edges", merged.Len()),
		slog.Int("transitions", merged.Total()))

	return &Result{Entities: results, Flows: merged, Network: net}, nil
}

// processEntity is the single-entity pipeline.
func processEntity(tr Trajectory, opts flow.Options) (EntityResult, error) {
	sessions, err := session.Compress(tr.Locations, tr.Timestamps, opts.Gap)
	if err != nil {
		return EntityResult{}, err
	}
	table, err := flow.StatisticsWith(sessions, opts)
	if err != nil {
		return EntityResult{}, err
	}

	return EntityResult{Entity: tr.Entity, Sessions: sessions, Flows: table}, nil
}
