// Command homotopy evaluates a script describing a homotopy map and writes
// the points of a regular sample grid.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/sgostarter/i/l"
	"honnef.co/go/homotopy/internal/config"
	"honnef.co/go/homotopy/sample"
	"honnef.co/go/homotopy/script"
)

// flags holds command line settings that override the configuration file.
type flags struct {
	script  string
	n       int
	output  string
	format  string
	workers int
}

func (f flags) apply(cfg *config.Config) {
	if f.script != "" {
		cfg.Script = f.script
	}
	if f.n > 0 {
		cfg.Resolution = [3]int{f.n, f.n, f.n}
	}
	if f.output != "" {
		cfg.Output.Path = f.output
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}
}

func main() {
	var f flags
	configPath := flag.String("config", "", "Path to a YAML job configuration")
	flag.StringVar(&f.script, "script", "", "Path to the script describing the map (overrides the configuration)")
	flag.IntVar(&f.n, "n", 0, "Number of samples along every axis")
	flag.StringVar(&f.output, "o", "", "Output path, - for standard output")
	flag.StringVar(&f.format, "format", "", "Output format, yaml or csv")
	flag.IntVar(&f.workers, "workers", 0, "Number of rows sampled concurrently (default: number of CPUs)")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `homotopy - sample 3D geometry described by homotopy maps

Usage:
  homotopy -script shape.zy [options]
  homotopy -config job.yaml [options]

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  homotopy -script ball.zy -n 32 -o ball.yaml
  homotopy -config job.yaml -format csv -o - -v
`)
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	f.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Script == "" {
		fmt.Fprintln(os.Stderr, "Error: script required (-script or -config)")
		flag.Usage()
		os.Exit(1)
	}

	var logger l.Wrapper = l.NewNopLoggerWrapper()
	if *verbose {
		logger = l.NewConsoleLoggerWrapper()
		spew.Fdump(os.Stderr, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, logger, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run evaluates the configured script, samples the resulting map and writes
// the points.
func run(ctx context.Context, cfg *config.Config, logger l.Wrapper, stdout io.Writer) error {
	src, err := os.ReadFile(cfg.Script)
	if err != nil {
		return err
	}

	opts := []script.Option{script.WithLogger(logger)}
	if cfg.Timeout > 0 {
		opts = append(opts, script.WithTimeout(cfg.Timeout))
	}
	res, evalErrs, err := script.NewEngine(opts...).Evaluate(ctx, string(src), script.WithParams(cfg.Params))
	if err != nil {
		return err
	}
	if len(evalErrs) > 0 {
		errs := make([]error, len(evalErrs))
		for i, e := range evalErrs {
			errs[i] = e
		}
		return fmt.Errorf("%s: %w", cfg.Script, errors.Join(errs...))
	}
	if res == nil {
		return fmt.Errorf("%s: script is empty", cfg.Script)
	}

	doc, err := sampleResult(ctx, res, cfg)
	if err != nil {
		return err
	}
	logger.WithFields(
		l.StringField("script", cfg.Script),
		l.IntField("rank", res.Rank),
		l.IntField("points", len(doc.Points)),
	).Debug("sampled")

	w, closeOutput, err := openOutput(cfg.Output.Path, stdout)
	if err != nil {
		return err
	}
	switch cfg.Output.Format {
	case config.FormatCSV:
		err = writeCSV(w, doc.Points)
	default:
		err = writeYAML(w, doc)
	}
	if cerr := closeOutput(); err == nil {
		err = cerr
	}
	return err
}

func sampleResult(ctx context.Context, res *script.Result, cfg *config.Config) (*document, error) {
	workers := sample.WithWorkers(cfg.Workers)
	nu, nv, nw := cfg.Resolution[0], cfg.Resolution[1], cfg.Resolution[2]

	var pts [][3]float64
	switch res.Rank {
	case 1:
		var err error
		if pts, err = sample.Curve(ctx, res.Curve, nu, workers); err != nil {
			return nil, err
		}
	case 2:
		grid, err := sample.Surface(ctx, res.Surface, nu, nv, workers)
		if err != nil {
			return nil, err
		}
		pts = sample.Flatten2(grid)
	case 3:
		grid, err := sample.Volume(ctx, res.Volume, nu, nv, nw, workers)
		if err != nil {
			return nil, err
		}
		pts = sample.Flatten3(grid)
	default:
		return nil, fmt.Errorf("unsupported rank %d", res.Rank)
	}

	doc := &document{
		Rank:       res.Rank,
		Resolution: cfg.Resolution[:res.Rank],
		Points:     make([]point, len(pts)),
	}
	for i, p := range pts {
		doc.Points[i] = point(p)
	}
	if box, ok := sample.Bounds(pts); ok {
		doc.Bounds = &bounds{
			Min: point{box.Min.X, box.Min.Y, box.Min.Z},
			Max: point{box.Max.X, box.Max.Y, box.Max.Z},
		}
	}
	return doc, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == config.Stdout {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
