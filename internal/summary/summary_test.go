// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package summary_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/perf/benchunit"

	"github.com/petenewcomb/queuechart/internal/results"
	"github.com/petenewcomb/queuechart/internal/summary"
)

func TestWrite(t *testing.T) {
	chk := require.New(t)

	var sb strings.Builder
	chk.NoError(summary.Write(&sb, results.Table{
		"QueueB": {1: 900000},
		"QueueA": {1: 1000000, 2: 1800000},
	}))
	out := sb.String()

	chk.Contains(out, "# Readers")
	chk.Less(strings.Index(out, "QueueA"), strings.Index(out, "QueueB"))
	chk.Contains(out, benchunit.Scale(1800000, benchunit.Decimal))
	chk.Contains(out, benchunit.Scale(900000, benchunit.Decimal))

	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, summary.Missing) && !strings.Contains(line, "+") {
			rows = append(rows, line)
		}
	}
	chk.Len(rows, 1)
	chk.Contains(rows[0], benchunit.Scale(1800000, benchunit.Decimal))
}

func TestWriteEmpty(t *testing.T) {
	chk := require.New(t)

	var sb strings.Builder
	chk.NoError(summary.Write(&sb, results.Table{}))
	chk.Contains(sb.String(), "# Readers")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	chk := require.New(t)

	err := summary.Write(failingWriter{}, results.Table{"QueueA": {1: 1}})
	chk.EqualError(err, "disk full")
}
