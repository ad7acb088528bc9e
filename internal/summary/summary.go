// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package summary prints a results table as text, one row per reader count
// and one column per queue.
package summary

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/perf/benchunit"

	"github.com/petenewcomb/queuechart/internal/results"
)

// Missing is printed for a queue with no measurement at a reader count.
const Missing = "-"

// Write renders t to w. Throughputs are scaled with SI prefixes.
func Write(w io.Writer, t results.Table) error {
	ew := &errWriter{w: w}

	queues := t.Queues()
	tw := tablewriter.NewWriter(ew)
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.SetHeader(append([]string{"# Readers"}, queues...))

	for _, readers := range t.Readers() {
		row := make([]string, 0, len(queues)+1)
		row = append(row, strconv.Itoa(readers))
		for _, q := range queues {
			v, ok := t.Lookup(q, readers)
			if !ok {
				row = append(row, Missing)
				continue
			}
			row = append(row, benchunit.Scale(float64(v), benchunit.Decimal))
		}
		tw.Append(row)
	}
	tw.Render()

	return ew.err
}

// errWriter keeps the first write error, since tablewriter discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
