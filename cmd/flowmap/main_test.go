// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowmap/session"
	"github.com/katalvlaran/flowmap/tabular"
)

const observations = `entity,location,timestamp
alice,home,0
alice,home,5
alice,work,10
bob,work,7
bob,home,1
bob,work,4
bob,gym,9
`

// execute runs the root command with stdin and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--no-color"))
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestCompress_SingleEntity writes plain session columns.
func TestCompress_SingleEntity(t *testing.T) {
	out, stderr, err := execute(t, "location,timestamp\nA,0\nA,5\nB,20\nA,25\n", "compress", "-", "--gap", "10")
	require.NoError(t, err)
	assert.Equal(t, "location,start_time,end_time\nA,0,5\nB,20,20\nA,25,25\n", out)
	assert.Contains(t, stderr, "compressed")
	assert.Contains(t, stderr, "sessions=3")
}

// TestCompress_PerEntity prefixes rows with the entity column.
func TestCompress_PerEntity(t *testing.T) {
	out, _, err := execute(t, observations, "compress", "-", "--gap", "10")
	require.NoError(t, err)
	assert.Equal(t, "entity,location,start_time,end_time\n"+
		"alice,home,0,5\nalice,work,10,10\n"+
		"bob,home,1,1\nbob,work,4,7\nbob,gym,9,9\n", out)
}

// TestCompress_BadTimestamp reports the offending line.
func TestCompress_BadTimestamp(t *testing.T) {
	_, _, err := execute(t, "location,timestamp\nA,soon\n", "compress", "-")
	var pe *tabular.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

// TestFlows counts linked pairs from a sessions file.
func TestFlows(t *testing.T) {
	in := "location,start_time,end_time\nA,0,5\nB,20,20\nA,25,25\n"
	out, _, err := execute(t, in, "flows", "-", "--gap", "10")
	require.NoError(t, err)
	assert.Equal(t, "edge,flow\nB->A,1\n", out)

	out, _, err = execute(t, in, "flows", "-", "--gap", "10", "--transitions", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"edge":"B->A","delta":5,"at":25}]`, out)
}

// TestFlows_Validate rejects out-of-order sessions only when asked.
func TestFlows_Validate(t *testing.T) {
	in := "location,start_time,end_time\nB,20,20\nA,0,5\n"
	_, _, err := execute(t, in, "flows", "-", "--gap", "10")
	require.NoError(t, err)

	_, _, err = execute(t, in, "flows", "-", "--gap", "10", "--validate")
	assert.ErrorIs(t, err, session.ErrOutOfOrder)
}

// TestRun writes merged flows, per-entity sessions and a metrics textfile.
func TestRun(t *testing.T) {
	dir := t.TempDir()
	flowsPath := filepath.Join(dir, "flows.csv")
	sessionsPath := filepath.Join(dir, "sessions.csv")
	metricsPath := filepath.Join(dir, "flowmap.prom")

	_, stderr, err := execute(t, observations, "run", "-",
		"--gap", "10", "--workers", "2",
		"-o", flowsPath,
		"--sessions-out", sessionsPath,
		"--metrics-textfile", metricsPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "batch complete")

	got, err := os.ReadFile(flowsPath)
	require.NoError(t, err)
	assert.Equal(t, "edge,flow\nhome->work,2\nwork->gym,1\n", string(got))

	got, err = os.ReadFile(sessionsPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(got), "entity,location,start_time,end_time\nalice,home,0,5\n"))

	got, err = os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(got), "flowmap_sessions_total 5")
	assert.Contains(t, string(got), `flowmap_entities_total{result="ok"} 2`)
}

// TestMerge sums files and filters small edges.
func TestMerge(t *testing.T) {
	a := writeTemp(t, "a.csv", "edge,flow\nhome->work,2\nwork->gym,1\n")
	b := writeTemp(t, "b.csv", "edge,flow\nhome->work,1\ngym->gym,4\n")

	out, _, err := execute(t, "", "merge", a, b)
	require.NoError(t, err)
	assert.Equal(t, "edge,flow\ngym->gym,4\nhome->work,3\nwork->gym,1\n", out)

	out, _, err = execute(t, "", "merge", a, b, "--min-flow", "2", "--drop-loops")
	require.NoError(t, err)
	assert.Equal(t, "edge,flow\nhome->work,3\n", out)

	_, _, err = execute(t, "", "merge", a, filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

// TestConfig applies flags over the configuration file.
func TestConfig(t *testing.T) {
	path := writeTemp(t, "flowmap.yaml", "gap: 60\nworkers: 3\nformat: yaml\n")

	out, _, err := execute(t, "", "config", "--config", path, "--gap", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "gap: 42\n")
	assert.Contains(t, out, "workers: 3\n")
	assert.Contains(t, out, "format: yaml\n")
}

// TestRoot_InvalidSettings fails before running the command.
func TestRoot_InvalidSettings(t *testing.T) {
	_, _, err := execute(t, "", "config", "--format", "xml")
	assert.ErrorIs(t, err, tabular.ErrUnknownFormat)

	_, _, err = execute(t, "", "config", "--log-level", "chatty")
	assert.Error(t, err)

	_, _, err = execute(t, "", "config", "--config", filepath.Join(t.TempDir(), "typo.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, _, err = execute(t, "", "compress")
	assert.Error(t, err, "missing argument")
}
