// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package chart renders queue throughput results as a grouped horizontal bar
// chart.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrUnsupportedFormat is returned by Render for an output path whose
// extension names no known image format.
const ErrUnsupportedFormat = constError("unsupported image format")

const (
	// DPI is the resolution of raster output.
	DPI = 150

	// groupSpan is the share of the distance between neighboring groups
	// covered by a group's bars.
	groupSpan = 0.7

	figureWidth     = 12 * vg.Inch
	minFigureHeight = 6 * vg.Inch
	heightPerGroup  = 0.55 * vg.Inch

	// valueGrowFactor stretches the value axis past the longest bar so the
	// legend in the top right corner has room.
	valueGrowFactor = 1.25

	// emptyValueMax is the value axis maximum when there are no bars.
	emptyValueMax = 10
)

// Size returns the dimensions of the figure drawn for l.
func (l *Layout) Size() (width, height vg.Length) {
	return figureWidth, max(minFigureHeight, heightPerGroup*vg.Length(len(l.Groups)))
}

func seriesColors() ([]color.Color, error) {
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Paired", 12)
	if err != nil {
		return nil, err
	}
	return palette.Colors(), nil
}

func (l *Layout) newPlot() (*plot.Plot, []*groupedBars, error) {
	colors, err := seriesColors()
	if err != nil {
		return nil, nil, err
	}

	p := plot.New()
	p.Title.Text = "Queue Throughput"
	p.X.Label.Text = "Messages per second"
	p.Y.Label.Text = "# Readers"
	p.BackgroundColor = color.White

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	grid.Vertical.Color = color.Gray{192}
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	positions := make([]float64, len(l.Groups))
	ticks := make([]plot.Tick, len(l.Groups))
	for g, readers := range l.Groups {
		positions[g] = float64(g)
		ticks[g] = plot.Tick{Value: float64(g), Label: strconv.Itoa(readers)}
	}

	bars := make([]*groupedBars, len(l.Series))
	for s, name := range l.Series {
		bc := newGroupedBars(l.Values[s], positions, l.barThickness())
		bc.Offset = l.barOffset(s)
		bc.Color = colors[s%len(colors)]
		bc.LineStyle.Width = 0
		bars[s] = bc

		p.Add(bc)
		p.Legend.Add(name, bc)
	}

	p.X.Min = 0
	if p.X.Max > 0 && len(l.Series) > 0 {
		p.X.Max *= valueGrowFactor
	} else {
		p.X.Max = emptyValueMax
	}
	p.X.Tick.Marker = throughputTicks{}
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	if len(l.Groups) > 0 {
		p.Y.Min = -0.5
		p.Y.Max = float64(len(l.Groups)) - 0.5
	}

	p.Legend.Top = true
	p.Legend.Padding = 1 * vg.Millimeter

	return p, bars, nil
}

// Render draws l and writes it to path in the format named by the path's
// extension. Raster formats are written at DPI dots per inch.
func Render(l *Layout, path string) error {
	p, _, err := l.newPlot()
	if err != nil {
		return err
	}

	w, h := l.Size()
	wt, err := writerTo(p, w, h, formatOf(path))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func writerTo(p *plot.Plot, w, h vg.Length, format string) (io.WriterTo, error) {
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		c := vgimg.NewWith(
			vgimg.UseWH(w, h),
			vgimg.UseDPI(DPI),
			vgimg.UseBackgroundColor(p.BackgroundColor),
		)
		p.Draw(draw.New(c))
		switch format {
		case "png":
			return vgimg.PngCanvas{Canvas: c}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: c}, nil
		default:
			return vgimg.TiffCanvas{Canvas: c}, nil
		}
	case "svg", "pdf", "eps":
		return p.WriterTo(w, h, format)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}
