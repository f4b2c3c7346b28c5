// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmap/config"
)

// app carries flag values and the state built in PersistentPreRunE.
type app struct {
	configPath string
	gap        float64
	format     string
	logLevel   string
	output     string
	noColor    bool

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "flowmap",
		Short:        "Compress location traces into sessions and count flows between them",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.Float64Var(&a.gap, "gap", config.DefaultGap, "session gap threshold in seconds")
	pf.StringVar(&a.format, "format", "csv", "output format: csv, json or yaml")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVarP(&a.output, "output", "o", "-", "output file, - for stdout")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored log output")

	root.AddCommand(
		newCompressCmd(a),
		newFlowsCmd(a),
		newRunCmd(a),
		newMergeCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup loads the configuration file, applies explicitly set flags on top
// and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("gap") {
		cfg.Gap = a.gap
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Level()
	a.log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
		NoColor:    a.noColor || !isTerminal(cmd.ErrOrStderr()),
	}))
	a.log.Debug("configuration loaded",
		slog.String("config", a.configPath),
		slog.Float64("gap", cfg.Gap),
		slog.Int("workers", cfg.Workers),
		slog.String("format", cfg.Format))

	return nil
}

// openInput opens path for reading; "-" is the command's stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

// openOutput opens the --output destination; "-" is the command's stdout.
func (a *app) openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	return createFile(cmd, a.output)
}

func createFile(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, f.Close, nil
}

// isTerminal reports whether w is a character device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	st, err := f.Stat()

	return err == nil && st.Mode()&os.ModeCharDevice != 0
}
