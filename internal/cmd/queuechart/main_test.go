// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const scenarioCSV = "queue_name,num_readers,messages_per_second\n" +
	"QueueA,1,1000000\n" +
	"QueueA,2,1800000\n" +
	"QueueB,1,900000\n"

func writeResults(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(args ...string) (code int, stdout, stderr string) {
	var out, errOut strings.Builder
	code = run(context.Background(), append([]string{"queuechart"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func requirePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.DecodeConfig(f)
	require.NoError(t, err)
}

func TestRunDerivesOutputPath(t *testing.T) {
	chk := require.New(t)

	in := writeResults(t, "bench.csv", scenarioCSV)
	want := strings.TrimSuffix(in, ".csv") + ".png"

	code, stdout, stderr := runCommand(in)
	chk.Zero(code, stderr)
	chk.Equal("Saved to "+want+"\n", stdout)
	chk.Empty(stderr)
	requirePNG(t, want)
}

func TestRunExplicitOutputPath(t *testing.T) {
	chk := require.New(t)

	in := writeResults(t, "bench.csv", scenarioCSV)
	out := filepath.Join(t.TempDir(), "chart.svg")

	code, stdout, _ := runCommand(in, out)
	chk.Zero(code)
	chk.Equal("Saved to "+out+"\n", stdout)
	data, err := os.ReadFile(out)
	chk.NoError(err)
	chk.Contains(string(data), "<svg")
}

func TestRunHeaderOnly(t *testing.T) {
	chk := require.New(t)

	in := writeResults(t, "empty.csv", "queue_name,num_readers,messages_per_second\n")
	code, _, stderr := runCommand(in)
	chk.Zero(code, stderr)
	requirePNG(t, strings.TrimSuffix(in, ".csv")+".png")
}

func TestRunUsage(t *testing.T) {
	chk := require.New(t)

	code, stdout, stderr := runCommand()
	chk.Equal(1, code)
	chk.Empty(stdout)
	chk.Contains(stderr, "Usage: queuechart")
}

func TestRunBadFlag(t *testing.T) {
	chk := require.New(t)

	code, _, stderr := runCommand("-nope", "bench.csv")
	chk.Equal(2, code)
	chk.Contains(stderr, "-nope")
}

func TestRunMissingInput(t *testing.T) {
	chk := require.New(t)

	in := filepath.Join(t.TempDir(), "absent.csv")
	code, stdout, stderr := runCommand(in)
	chk.Equal(1, code)
	chk.Empty(stdout)
	chk.Contains(stderr, "absent.csv")

	_, err := os.Stat(strings.TrimSuffix(in, ".csv") + ".png")
	chk.ErrorIs(err, fs.ErrNotExist)
}

func TestRunMalformedRowProducesNoChart(t *testing.T) {
	chk := require.New(t)

	in := writeResults(t, "bench.csv", scenarioCSV+"QueueB,2,fast\n")
	code, stdout, stderr := runCommand(in)
	chk.Equal(1, code)
	chk.Empty(stdout)
	chk.Contains(stderr, "line 5")

	_, err := os.Stat(strings.TrimSuffix(in, ".csv") + ".png")
	chk.ErrorIs(err, fs.ErrNotExist)
}

func TestRunUnwritableOutput(t *testing.T) {
	chk := require.New(t)

	in := writeResults(t, "bench.csv", scenarioCSV)
	code, stdout, stderr := runCommand(in, filepath.Join(t.TempDir(), "no", "such", "dir.png"))
	chk.Equal(1, code)
	chk.Empty(stdout)
	chk.Contains(stderr, "Failed to chart results")
}

func TestRunSummary(t *testing.T) {
	chk := require.New(t)

	in := writeResults(t, "bench.csv", scenarioCSV)
	code, stdout, _ := runCommand("-summary", in)
	chk.Zero(code)
	chk.True(strings.HasPrefix(stdout, "Saved to "))
	chk.Contains(stdout, "# Readers")
	chk.Contains(stdout, "QueueA")
	chk.Contains(stdout, "QueueB")
}

func TestRunTraceAndVerbose(t *testing.T) {
	chk := require.New(t)

	in := writeResults(t, "bench.csv", scenarioCSV)
	code, _, stderr := runCommand("-trace", "-v", in)
	chk.Zero(code)
	chk.Contains(stderr, "Loaded results")
	chk.Contains(stderr, "Saved chart")
	for _, name := range []string{`"queuechart"`, `"load"`, `"render"`} {
		chk.Contains(stderr, name)
	}
}

func TestOutputPathFor(t *testing.T) {
	for in, want := range map[string]string{
		"results.csv":           "results.png",
		"dir/bench.results.csv": "dir/bench.results.png",
		"noext":                 "noext.png",
		".hidden":               ".hidden.png",
		"dir/.hidden":           "dir/.hidden.png",
		"out/run.CSV":           "out/run.png",
	} {
		require.Equal(t, want, outputPathFor(in), "input %q", in)
	}
}
