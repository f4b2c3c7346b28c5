// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flowmap/batch"
	"github.com/katalvlaran/flowmap/tabular"
)

// DefaultGap is the default session gap threshold in seconds.
const DefaultGap = 1800

// ErrInvalid marks a configuration that fails Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the effective run configuration.
//
// Workers 0 means one worker per CPU, as in batch.Options.
type Config struct {
	Gap           float64                    `yaml:"gap"`
	Workers       int                        `yaml:"workers"`
	SkipSelfLoops bool                       `yaml:"skip_self_loops"`
	Columns       tabular.ObservationColumns `yaml:"columns"`
	Format        string                     `yaml:"format"`
	LogLevel      string                     `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Gap:      DefaultGap,
		Workers:  runtime.GOMAXPROCS(0),
		Columns:  tabular.DefaultColumns(),
		Format:   string(tabular.FormatCSV),
		LogLevel: "info",
	}
}

// Load reads path over Default and validates the result.
// An empty path yields Default; a named file that does not exist is an
// error matching fs.ErrNotExist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if math.IsNaN(c.Gap) || math.IsInf(c.Gap, 0) {
		return fmt.Errorf("%w: gap must be finite", ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if c.Columns.Location == "" || c.Columns.Timestamp == "" {
		return fmt.Errorf("%w: location and timestamp columns must be named", ErrInvalid)
	}
	if _, err := tabular.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error", with optional
// offsets such as "info+2").
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}

// OutputFormat returns Format parsed; call after Validate.
func (c Config) OutputFormat() tabular.Format {
	f, _ := tabular.ParseFormat(c.Format)

	return f
}

// BatchOptions maps the configuration onto batch.Options.
// Logger and Metrics are left for the caller.
func (c Config) BatchOptions() batch.Options {
	return batch.Options{Gap: c.Gap, Workers: c.Workers, SkipSelfLoops: c.SkipSelfLoops}
}

// Write encodes the configuration as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}
