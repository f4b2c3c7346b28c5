// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, closeFn, err := a.openOutput(cmd)
			if err != nil {
				return err
			}
			err = a.cfg.Write(w)
			if cerr := closeFn(); err == nil {
				err = cerr
			}

			return err
		},
	}
}
