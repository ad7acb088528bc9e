// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatThroughput(t *testing.T) {
	for v, want := range map[float64]string{
		0:          "0",
		999:        "999",
		1000:       "1,000",
		5_000_000:  "5,000,000",
		9_999_999:  "9,999,999",
		10_000_000: "1.0×10⁷",
		12_300_000: "1.2×10⁷",
		45_000_000: "4.5×10⁷",
	} {
		require.Equal(t, want, FormatThroughput(v), "value %v", v)
	}
}

func TestThroughputTicksLabelMajorTicks(t *testing.T) {
	chk := require.New(t)

	ticks := throughputTicks{}.Ticks(0, 25_000_000)
	chk.NotEmpty(ticks)
	majors := 0
	for _, tk := range ticks {
		if tk.IsMinor() {
			continue
		}
		majors++
		chk.Equal(FormatThroughput(tk.Value), tk.Label)
	}
	chk.NotZero(majors)
}
