// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
)

// compactThreshold is the throughput at and above which axis labels switch
// from comma grouped integers to multiples of 10⁷.
const compactThreshold = 1e7

// FormatThroughput formats a value axis label.
func FormatThroughput(v float64) string {
	if v >= compactThreshold {
		return fmt.Sprintf("%.1f×10⁷", v/compactThreshold)
	}
	return humanize.Comma(int64(math.Round(v)))
}

// throughputTicks places ticks like plot.DefaultTicks and labels the major
// ones with FormatThroughput.
type throughputTicks struct{}

var _ plot.Ticker = throughputTicks{}

func (throughputTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].IsMinor() {
			continue
		}
		ticks[i].Label = FormatThroughput(ticks[i].Value)
	}
	return ticks
}
