// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"github.com/petenewcomb/queuechart/internal/results"
)

// Layout is the bar arrangement derived from a results table. Groups are the
// reader counts along the category axis and Series are the queues drawn
// within every group, both in ascending order.
type Layout struct {
	Groups []int
	Series []string

	// Values[s][g] is the throughput of Series[s] at Groups[g], or zero if
	// the table has no measurement for that pair.
	Values [][]float64
}

// NewLayout arranges the measurements of t into groups and series.
func NewLayout(t results.Table) *Layout {
	l := &Layout{
		Groups: t.Readers(),
		Series: t.Queues(),
	}
	l.Values = make([][]float64, len(l.Series))
	for s, queue := range l.Series {
		values := make([]float64, len(l.Groups))
		for g, readers := range l.Groups {
			if v, ok := t.Lookup(queue, readers); ok {
				values[g] = float64(v)
			}
		}
		l.Values[s] = values
	}
	return l
}

// barThickness returns the thickness of each bar in category axis units.
// The bars of a group together span groupSpan.
func (l *Layout) barThickness() float64 {
	if len(l.Series) == 0 {
		return 0
	}
	return groupSpan / float64(len(l.Series))
}

// barOffset returns the category axis offset of series s from the center of
// its group.
func (l *Layout) barOffset(s int) float64 {
	return (float64(s) - float64(len(l.Series)-1)/2) * l.barThickness()
}
