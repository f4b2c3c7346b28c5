// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmap/batch"
	"github.com/katalvlaran/flowmap/tabular"
)

type runFlags struct {
	sessionsOut string
	metricsFile string
	workers     int
}

func newRunCmd(a *app) *cobra.Command {
	var rf runFlags
	cmd := &cobra.Command{
		Use:   "run <observations.csv|->",
		Short: "Run the full pipeline over every entity and merge their flows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], rf)
		},
	}
	f := cmd.Flags()
	f.StringVar(&rf.sessionsOut, "sessions-out", "", "also write per-entity sessions to this file")
	f.StringVar(&rf.metricsFile, "metrics-textfile", "", "write Prometheus metrics to this file after the run")
	f.IntVar(&rf.workers, "workers", 0, "entities processed concurrently (default from config)")

	return cmd
}

func (a *app) run(cmd *cobra.Command, path string, rf runFlags) error {
	obs, err := a.readObservations(cmd, path)
	if err != nil {
		return err
	}
	trs, err := obs.Trajectories()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	opts := a.cfg.BatchOptions()
	if rf.workers > 0 {
		opts.Workers = rf.workers
	}
	opts.Logger = a.log
	opts.Metrics = batch.NewMetrics(reg)

	res, err := batch.Run(cmd.Context(), trs, opts)
	if err != nil {
		return err
	}

	w, closeFn, err := a.openOutput(cmd)
	if err != nil {
		return err
	}
	err = tabular.WriteFlows(w, res.Flows, a.cfg.OutputFormat())
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if rf.sessionsOut != "" {
		if err := a.writeEntitySessions(cmd, rf.sessionsOut, res.Entities); err != nil {
			return err
		}
	}
	if rf.metricsFile != "" {
		if err := prometheus.WriteToTextfile(rf.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.log.Debug("metrics written", slog.String("path", rf.metricsFile))
	}

	st := res.Network.Stats()
	a.log.Info("network",
		slog.Int("locations", st.Locations),
		slog.Int("edges", st.Edges),
		slog.Int64("total", st.Total),
		slog.Int64("max_flow", st.MaxFlow))

	return nil
}

func (a *app) writeEntitySessions(cmd *cobra.Command, path string, entities []batch.EntityResult) error {
	groups := make([]tabular.EntitySessions, len(entities))
	for i, e := range entities {
		groups[i] = tabular.EntitySessions{Entity: e.Entity, Sessions: e.Sessions}
	}
	w, closeFn, err := createFile(cmd, path)
	if err != nil {
		return err
	}
	err = tabular.WriteEntitySessions(w, groups, a.cfg.Columns.Entity, a.cfg.OutputFormat())
	if cerr := closeFn(); err == nil {
		err = cerr
	}

	return err
}
