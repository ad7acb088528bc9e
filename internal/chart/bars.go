// Derived from https://github.com/gonum/plot/blob/v0.16.0/plotter/barchart.go:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// groupedBars draws one series of horizontal bars, one bar per group. Unlike
// plotter.BarChart, thickness and offset are in category axis units so that
// the bars of neighboring series stay adjacent at any canvas size.
type groupedBars struct {
	// Values holds the length of the bar for each group.
	Values []float64

	// Positions holds the category axis position of each group.
	Positions []float64

	// Thickness is the extent of each bar along the category axis.
	Thickness float64

	// Offset is added to the category position of each bar. When the Offset
	// is zero, bars are centered on their group position.
	Offset float64

	// Color is the fill color of the bars.
	Color color.Color

	// LineStyle is the style of the outline of the bars.
	draw.LineStyle
}

func newGroupedBars(values, positions []float64, thickness float64) *groupedBars {
	return &groupedBars{
		Values:    values,
		Positions: positions,
		Thickness: thickness,
		Color:     color.Black,
		LineStyle: plotter.DefaultLineStyle,
	}
}

// extent returns the category axis interval covered by bar i.
func (b *groupedBars) extent(i int) (lo, hi float64) {
	center := b.Positions[i] + b.Offset
	return center - b.Thickness/2, center + b.Thickness/2
}

// Plot implements the plot.Plotter interface.
func (b *groupedBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trVal, trCat := plt.Transforms(&c)

	for i, v := range b.Values {
		lo, hi := b.extent(i)
		catMin, catMax := trCat(lo), trCat(hi)
		if !c.ContainsY(catMin) && !c.ContainsY(catMax) {
			continue
		}
		valMin := trVal(0)
		valMax := trVal(v)

		pts := []vg.Point{
			{X: valMin, Y: catMin},
			{X: valMin, Y: catMax},
			{X: valMax, Y: catMax},
			{X: valMax, Y: catMin},
		}
		c.FillPolygon(b.Color, c.ClipPolygonX(pts))

		if b.LineStyle.Width > 0 {
			pts = append(pts, vg.Point{X: valMin, Y: catMin})
			c.StrokeLines(b.LineStyle, c.ClipLinesX(pts)...)
		}
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *groupedBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	catMin := math.Inf(1)
	catMax := math.Inf(-1)
	valMin := math.Inf(1)
	valMax := math.Inf(-1)
	for i, v := range b.Values {
		lo, hi := b.extent(i)
		catMin = math.Min(catMin, lo)
		catMax = math.Max(catMax, hi)
		valMin = math.Min(valMin, math.Min(0, v))
		valMax = math.Max(valMax, math.Max(0, v))
	}
	return valMin, valMax, catMin, catMax
}

// Thumbnail fulfills the plot.Thumbnailer interface.
func (b *groupedBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))

	if b.LineStyle.Width > 0 {
		pts = append(pts, vg.Point{X: c.Min.X, Y: c.Min.Y})
		c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
	}
}
