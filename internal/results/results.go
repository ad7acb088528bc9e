// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package results loads queue benchmark results from CSV into a table keyed by
// queue name and reader count.
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Names of the columns read from the header row. Other columns are ignored.
const (
	QueueNameColumn  = "queue_name"
	NumReadersColumn = "num_readers"
	ThroughputColumn = "messages_per_second"
)

// Measurement is one benchmark observation.
type Measurement struct {
	Queue      string
	Readers    int
	Throughput int64
}

// Table maps queue name to reader count to messages per second.
type Table map[string]map[int]int64

// Set records m, replacing any earlier throughput for the same queue and
// reader count.
func (t Table) Set(m Measurement) {
	byReaders, ok := t[m.Queue]
	if !ok {
		byReaders = make(map[int]int64)
		t[m.Queue] = byReaders
	}
	byReaders[m.Readers] = m.Throughput
}

// Lookup returns the throughput of queue at the given reader count and
// whether the table has one.
func (t Table) Lookup(queue string, readers int) (int64, bool) {
	v, ok := t[queue][readers]
	return v, ok
}

// Queues returns the distinct queue names in lexicographic order.
func (t Table) Queues() []string {
	queues := make([]string, 0, len(t))
	for q := range t {
		queues = append(queues, q)
	}
	slices.Sort(queues)
	return queues
}

// Readers returns the distinct reader counts across all queues in ascending
// order.
func (t Table) Readers() []int {
	set := make(map[int]struct{})
	for _, byReaders := range t {
		for r := range byReaders {
			set[r] = struct{}{}
		}
	}
	readers := make([]int, 0, len(set))
	for r := range set {
		readers = append(readers, r)
	}
	slices.Sort(readers)
	return readers
}

// Len returns the number of (queue, reader count) pairs.
func (t Table) Len() int {
	n := 0
	for _, byReaders := range t {
		n += len(byReaders)
	}
	return n
}

// Load reads the results file at path.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV results from r. The first record is the header. Rows are
// applied in order, so the last row for a given queue and reader count wins.
// Input without any records, or with only a header, yields an empty table.
func Read(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	t := make(Table)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return t, nil
	}
	if err != nil {
		return nil, err
	}
	cols, err := newColumns(header)
	if err != nil {
		return nil, err
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		m, err := cols.measurement(record, line)
		if err != nil {
			return nil, err
		}
		t.Set(m)
	}
}

type columns struct {
	queue, readers, throughput int
	width                      int
}

func newColumns(header []string) (columns, error) {
	index := func(name string) (int, error) {
		for i, h := range header {
			if strings.TrimSpace(h) == name {
				return i, nil
			}
		}
		return -1, fmt.Errorf("%w %q", ErrMissingColumn, name)
	}

	var c columns
	var err error
	if c.queue, err = index(QueueNameColumn); err != nil {
		return c, err
	}
	if c.readers, err = index(NumReadersColumn); err != nil {
		return c, err
	}
	if c.throughput, err = index(ThroughputColumn); err != nil {
		return c, err
	}
	c.width = max(c.queue, c.readers, c.throughput) + 1
	return c, nil
}

func (c columns) measurement(record []string, line int) (Measurement, error) {
	if len(record) < c.width {
		return Measurement{}, &RowError{
			Line: line,
			Err:  fmt.Errorf("%w: got %d, need %d", ErrShortRow, len(record), c.width),
		}
	}

	readers, err := strconv.Atoi(strings.TrimSpace(record[c.readers]))
	if err != nil {
		return Measurement{}, &RowError{Line: line, Column: NumReadersColumn, Value: record[c.readers], Err: err}
	}
	throughput, err := strconv.ParseInt(strings.TrimSpace(record[c.throughput]), 10, 64)
	if err != nil {
		return Measurement{}, &RowError{Line: line, Column: ThroughputColumn, Value: record[c.throughput], Err: err}
	}

	return Measurement{
		Queue:      record[c.queue],
		Readers:    readers,
		Throughput: throughput,
	}, nil
}
