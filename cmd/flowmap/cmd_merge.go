// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmap/core"
	"github.com/katalvlaran/flowmap/flow"
	"github.com/katalvlaran/flowmap/tabular"
)

func newMergeCmd(a *app) *cobra.Command {
	var minFlow int64
	var dropLoops bool
	cmd := &cobra.Command{
		Use:   "merge <flows.csv>...",
		Short: "Sum flow tables on matching edges",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.merge(cmd, args, minFlow, dropLoops)
		},
	}
	cmd.Flags().Int64Var(&minFlow, "min-flow", 0, "drop merged edges with a smaller count")
	cmd.Flags().BoolVar(&dropLoops, "drop-loops", false, "drop A->A edges")

	return cmd
}

func (a *app) merge(cmd *cobra.Command, paths []string, minFlow int64, dropLoops bool) error {
	net := core.NewNetwork()
	for _, p := range paths {
		r, err := openInput(cmd, p)
		if err != nil {
			return err
		}
		t, err := tabular.ReadFlows(r)
		r.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if err := flow.Accumulate(net, t); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		a.log.Debug("flows read", slog.String("path", p), slog.Int("edges", t.Len()))
	}

	if minFlow > 0 || dropLoops {
		net.FilterEdges(func(e core.Edge) bool {
			return e.Flow >= minFlow && (!dropLoops || e.From != e.To)
		})
	}

	w, closeFn, err := a.openOutput(cmd)
	if err != nil {
		return err
	}
	err = tabular.WriteFlows(w, flow.FromNetwork(net), a.cfg.OutputFormat())
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	st := net.Stats()
	a.log.Info("merged",
		slog.Int("files", len(paths)),
		slog.Int("edges", st.Edges),
		slog.Int64("total", st.Total))

	return nil
}
