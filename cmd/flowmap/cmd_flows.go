// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmap/flow"
	"github.com/katalvlaran/flowmap/session"
	"github.com/katalvlaran/flowmap/tabular"
)

func newFlowsCmd(a *app) *cobra.Command {
	var validate, transitions bool
	cmd := &cobra.Command{
		Use:   "flows <sessions.csv|->",
		Short: "Count flows between consecutive sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flows(cmd, args[0], validate, transitions)
		},
	}
	cmd.Flags().BoolVar(&validate, "validate", false, "check session ordering and distinctness first")
	cmd.Flags().BoolVar(&transitions, "transitions", false, "write the linked pairs instead of counts")

	return cmd
}

func (a *app) flows(cmd *cobra.Command, path string, validate, transitions bool) error {
	r, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	sessions, err := tabular.ReadSessions(r)
	r.Close()
	if err != nil {
		return err
	}
	if validate {
		if err := session.Validate(sessions, a.cfg.Gap); err != nil {
			return err
		}
	}

	w, closeFn, err := a.openOutput(cmd)
	if err != nil {
		return err
	}
	var linked int
	if transitions {
		var ts []flow.Transition
		ts, err = flow.Transitions(sessions, a.cfg.Gap)
		if err == nil {
			linked = len(ts)
			err = tabular.WriteTransitions(w, ts, a.cfg.OutputFormat())
		}
	} else {
		var t flow.Table
		t, err = flow.StatisticsWith(sessions, flow.Options{Gap: a.cfg.Gap, SkipSelfLoops: a.cfg.SkipSelfLoops})
		if err == nil {
			linked = t.Total()
			err = tabular.WriteFlows(w, t, a.cfg.OutputFormat())
		}
	}
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	a.log.Info("flows counted", slog.Int("sessions", len(sessions)), slog.Int("linked", linked))

	return nil
}
