// Package main provides the fixedvec CLI: kernel diagnostics and a small
// benchmark of the elementwise operations.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/hupe1980/fixedvec"
	"github.com/hupe1980/fixedvec/batch"
	"github.com/hupe1980/fixedvec/internal/kernel"
)

const version = "v0.1.0"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "fixedvec %s\n", version)
	case "info":
		info(stdout)
	case "bench":
		err = bench(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
	default:
		err = fmt.Errorf("unknown command %q", args[0])
		usage(stderr)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fixedvec <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  info       Show kernel ISA selection and CPU features")
	fmt.Fprintln(w, "  bench      Time the elementwise operations")
}

func info(w io.Writer) {
	fmt.Fprintf(w, "GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "%s=%q\n", kernel.EnvISA, os.Getenv(kernel.EnvISA))
	fmt.Fprintf(w, "Active ISA: %s\n", kernel.ActiveISA())
	fmt.Fprintf(w, "Override: %v\n", kernel.IsOverridden())
	fmt.Fprintf(w, "CPU Features:\n")

	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintf(w, "  ASIMD (NEON): %v\n", kernel.HasASIMD())
		fmt.Fprintf(w, "  SVE2: %v\n", kernel.HasSVE2())
	case "amd64":
		fmt.Fprintf(w, "  AVX2+FMA: %v\n", kernel.HasAVX2())
		fmt.Fprintf(w, "  AVX-512 (F+BW): %v\n", kernel.HasAVX512())
	}
}

type benchConfig struct {
	iterations int
	isa        string
	logFormat  string
	verbose    bool
	batchSize  int
}

func parseBench(args []string, stderr io.Writer) (benchConfig, error) {
	var cfg benchConfig

	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.iterations, "n", 1_000_000, "iterations per operation")
	fs.StringVar(&cfg.isa, "isa", "", "kernel ISA to use (generic, neon, sve2, avx2, avx512); default: auto")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format (text, json)")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose output")
	fs.IntVar(&cfg.batchSize, "batch", 1024, "vectors per batch run")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.iterations <= 0 {
		return cfg, fmt.Errorf("-n must be positive, got %d", cfg.iterations)
	}
	if cfg.batchSize < 0 {
		return cfg, fmt.Errorf("-batch must not be negative, got %d", cfg.batchSize)
	}
	return cfg, nil
}

func newLogger(cfg benchConfig, w io.Writer) (*fixedvec.Logger, error) {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}

	switch cfg.logFormat {
	case "text":
		return fixedvec.NewTextLogger(w, level), nil
	case "json":
		return fixedvec.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.logFormat)
	}
}

func bench(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseBench(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, stdout)
	if err != nil {
		return err
	}

	if cfg.isa != "" {
		isa, ok := kernel.ParseISA(cfg.isa)
		if !ok {
			return fmt.Errorf("unknown ISA %q", cfg.isa)
		}
		prev, ok := kernel.SetISA(isa)
		if !ok {
			return fmt.Errorf("ISA %s is not available on this CPU", isa)
		}
		defer kernel.SetISA(prev)
	}

	logger = logger.WithISA(kernel.ActiveISA().String())

	benchVector3(ctx, logger, cfg.iterations)
	benchVector16(ctx, logger, cfg.iterations)

	if cfg.batchSize > 0 {
		return benchBatch(ctx, logger, cfg.batchSize)
	}
	return nil
}

func timeIt(ctx context.Context, logger *fixedvec.Logger, op string, n int, fn func()) {
	start := time.Now()
	for range n {
		fn()
	}
	logger.LogBench(ctx, op, n, time.Since(start))
}

func benchVector3(ctx context.Context, logger *fixedvec.Logger, n int) {
	l := logger.WithDimension(3)
	a := fixedvec.Filled[float64, fixedvec.D3](1)
	b := fixedvec.Filled[float64, fixedvec.D3](0.5)

	timeIt(ctx, l, "add", n, func() { a.AddInPlace(b) })
	timeIt(ctx, l, "sub", n, func() { a.SubInPlace(b) })
	timeIt(ctx, l, "scale", n, func() { a.ScaleInPlace(1.0000001) })
	timeIt(ctx, l, "div", n, func() { a.DivInPlace(1.0000001) })
}

func benchVector16(ctx context.Context, logger *fixedvec.Logger, n int) {
	l := logger.WithDimension(16)
	a := fixedvec.Filled[float32, fixedvec.D16](1)
	b := fixedvec.Filled[float32, fixedvec.D16](0.5)

	timeIt(ctx, l, "add", n, func() { a.AddInPlace(b) })
	timeIt(ctx, l, "sub", n, func() { a.SubInPlace(b) })
	timeIt(ctx, l, "scale", n, func() { a.ScaleInPlace(1.0000001) })
	timeIt(ctx, l, "fill", n, func() { a.Fill(2) })
	timeIt(ctx, l, "swap", n, func() { a.Swap(b) })
}

func benchBatch(ctx context.Context, logger *fixedvec.Logger, size int) error {
	l := logger.WithDimension(16).WithCount(size)

	dst := make([]*fixedvec.Vector[float32, fixedvec.D16], size)
	src := make([]*fixedvec.Vector[float32, fixedvec.D16], size)
	for i := range dst {
		dst[i] = fixedvec.Filled[float32, fixedvec.D16](float32(i))
		src[i] = fixedvec.Filled[float32, fixedvec.D16](1)
	}

	start := time.Now()
	if err := batch.AddInPlace(ctx, dst, src, batch.WithLogger(l)); err != nil {
		return fmt.Errorf("batch add: %w", err)
	}
	l.LogBench(ctx, "batch-add", size, time.Since(start))
	return nil
}
