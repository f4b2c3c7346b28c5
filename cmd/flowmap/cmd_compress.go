// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmap/session"
	"github.com/katalvlaran/flowmap/tabular"
)

func newCompressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compress <observations.csv|->",
		Short: "Compress raw observations into stay sessions",
		Long: `Reads an observation table and writes one session per stay.

Without an entity column (or with a single unnamed entity) the output has the
columns location,start_time,end_time. Otherwise every row is prefixed with the
entity and sessions are grouped per entity in order of first appearance.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compress(cmd, args[0])
		},
	}
}

func (a *app) compress(cmd *cobra.Command, path string) error {
	obs, err := a.readObservations(cmd, path)
	if err != nil {
		return err
	}
	trs, err := obs.Trajectories()
	if err != nil {
		return err
	}

	groups := make([]tabular.EntitySessions, 0, len(trs))
	total := 0
	for _, tr := range trs {
		sessions, err := session.Compress(tr.Locations, tr.Timestamps, a.cfg.Gap)
		if err != nil {
			return fmt.Errorf("entity %q: %w", tr.Entity, err)
		}
		groups = append(groups, tabular.EntitySessions{Entity: tr.Entity, Sessions: sessions})
		total += len(sessions)
	}

	w, closeFn, err := a.openOutput(cmd)
	if err != nil {
		return err
	}
	if len(groups) == 1 && groups[0].Entity == "" {
		err = tabular.WriteSessions(w, groups[0].Sessions, a.cfg.OutputFormat())
	} else {
		err = tabular.WriteEntitySessions(w, groups, a.cfg.Columns.Entity, a.cfg.OutputFormat())
	}
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	a.log.Info("compressed",
		slog.Int("observations", obs.Len()),
		slog.Int("entities", len(groups)),
		slog.Int("sessions", total))

	return nil
}

func (a *app) readObservations(cmd *cobra.Command, path string) (*tabular.Observations, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return tabular.ReadObservations(r, a.cfg.Columns)
}
