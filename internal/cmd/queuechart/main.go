// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command queuechart draws a horizontal bar chart comparing queue throughput
// across reader counts from a CSV file of benchmark results.
//
// Usage:
//
//	queuechart [-summary] [-trace] [-v] <results.csv> [output.png]
//
// The results file needs queue_name, num_readers and messages_per_second
// columns. If no output path is given, the chart is written next to the
// results file with a .png extension.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/petenewcomb/queuechart/internal/chart"
	"github.com/petenewcomb/queuechart/internal/results"
	"github.com/petenewcomb/queuechart/internal/summary"
	"github.com/petenewcomb/queuechart/internal/telemetry"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

type options struct {
	resultsPath string
	outputPath  string
	summary     bool
	trace       bool
	verbose     bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	prog := filepath.Base(args[0])
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.BoolVar(&opts.summary, "summary", false, "print a table of the loaded results")
	fs.BoolVar(&opts.trace, "trace", false, "write trace spans to standard error")
	fs.BoolVar(&opts.verbose, "v", false, "log progress to standard error")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <results.csv> [output.png]\n", prog)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 1
	}
	opts.resultsPath = fs.Arg(0)
	opts.outputPath = fs.Arg(1)
	if opts.outputPath == "" {
		opts.outputPath = outputPathFor(opts.resultsPath)
	}

	logger := telemetry.NewLogger(stderr, opts.verbose)
	defer logger.Sync()

	var traceOut io.Writer
	if opts.trace {
		traceOut = stderr
	}
	tp, shutdown, err := telemetry.NewTracerProvider(traceOut)
	if err != nil {
		logger.Error("Failed to set up tracing", zap.Error(err))
		return 1
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("Failed to flush trace spans", zap.Error(err))
		}
	}()

	if err := chartResults(ctx, tp.Tracer(telemetry.TracerName), logger, &opts, stdout); err != nil {
		logger.Error("Failed to chart results",
			zap.String("results", opts.resultsPath),
			zap.String("output", opts.outputPath),
			zap.Error(err))
		return 1
	}
	return 0
}

func chartResults(ctx context.Context, tracer trace.Tracer, logger *zap.Logger, opts *options, stdout io.Writer) error {
	ctx, span := tracer.Start(ctx, "queuechart")
	defer span.End()

	tbl, err := load(ctx, tracer, logger, opts.resultsPath)
	if err != nil {
		return spanError(span, err)
	}

	if err := render(ctx, tracer, logger, tbl, opts.outputPath); err != nil {
		return spanError(span, err)
	}
	fmt.Fprintf(stdout, "Saved to %s\n", opts.outputPath)

	if opts.summary {
		if err := summary.Write(stdout, tbl); err != nil {
			return spanError(span, err)
		}
	}
	return nil
}

func load(ctx context.Context, tracer trace.Tracer, logger *zap.Logger, path string) (results.Table, error) {
	_, span := tracer.Start(ctx, "load", trace.WithAttributes(attribute.String("results.path", path)))
	defer span.End()

	startTime := time.Now()
	tbl, err := results.Load(path)
	if err != nil {
		return nil, spanError(span, err)
	}
	span.SetAttributes(
		attribute.Int("results.queues", len(tbl)),
		attribute.Int("results.pairs", tbl.Len()),
	)
	logger.Debug("Loaded results",
		zap.String("path", path),
		zap.Int("queues", len(tbl)),
		zap.Int("groups", len(tbl.Readers())),
		zap.Int("pairs", tbl.Len()),
		zap.Duration("duration", time.Since(startTime)))
	return tbl, nil
}

func render(ctx context.Context, tracer trace.Tracer, logger *zap.Logger, tbl results.Table, path string) error {
	_, span := tracer.Start(ctx, "render", trace.WithAttributes(attribute.String("chart.path", path)))
	defer span.End()

	startTime := time.Now()
	layout := chart.NewLayout(tbl)
	if err := chart.Render(layout, path); err != nil {
		return spanError(span, err)
	}
	logger.Debug("Saved chart",
		zap.String("path", path),
		zap.Int("groups", len(layout.Groups)),
		zap.Int("series", len(layout.Series)),
		zap.Duration("duration", time.Since(startTime)))
	return nil
}

func spanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// outputPathFor replaces the extension of the results path with .png.
func outputPathFor(resultsPath string) string {
	ext := filepath.Ext(resultsPath)
	if ext == filepath.Base(resultsPath) {
		// A dot-file such as ".results" has no extension to replace.
		ext = ""
	}
	return strings.TrimSuffix(resultsPath, ext) + ".png"
}
