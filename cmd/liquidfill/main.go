// Command liquidfill renders a liquid fill gauge described by a YAML config
// file as an SVG document.
//
// Usage:
//
//	liquidfill [flags] config.yaml
//
// The flags are:
//
//	-o file
//		Write the document to file instead of standard output.
//	-size n
//		Width and height of the document in pixels (default 300).
//	-static
//		Don't animate the waves.
//	-precision n
//		Maximum number of decimal places of coordinates (default 3).
//	-v
//		Log debug output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/liquid"
	"honnef.co/go/liquid/svg"
)

type options struct {
	config    string
	output    string
	size      float64
	static    bool
	precision int
}

func main() {
	var (
		opts    options
		verbose bool
	)
	flag.StringVar(&opts.output, "o", "", "write the document to `file`")
	flag.Float64Var(&opts.size, "size", 300, "width and height of the document")
	flag.BoolVar(&opts.static, "static", false, "don't animate the waves")
	flag.IntVar(&opts.precision, "precision", 3, "maximum number of decimal places")
	flag.BoolVar(&verbose, "v", false, "log debug output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: liquidfill [flags] config.yaml\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.config = flag.Arg(0)

	if err := run(opts, log); err != nil {
		log.Error("rendering failed", "config", opts.config, "err", err)
		os.Exit(1)
	}
}

func run(opts options, log *slog.Logger) (err error) {
	cfg, err := liquid.LoadConfig(opts.config)
	if err != nil {
		return err
	}
	doc, err := render(cfg, opts, log)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if opts.output != "" {
		f, ferr := os.Create(opts.output)
		if ferr != nil {
			return fmt.Errorf("failed to create output: %w", ferr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		w = f
	}
	n, err := doc.WriteTo(w)
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	log.Debug("wrote document", "bytes", n, "output", opts.output)
	return nil
}

func render(cfg liquid.GaugeConfig, opts options, log *slog.Logger) (*svg.Document, error) {
	g, err := liquid.NewGauge(cfg, liquid.WithLogger(log))
	if err != nil {
		return nil, err
	}
	doc := svg.New(opts.size, opts.size)
	doc.Static = opts.static
	doc.MaxPrecision = opts.precision
	d, err := g.Draw(doc)
	if err != nil {
		return nil, err
	}
	log.Debug("drew gauge",
		"center", d.Geometry.Center,
		"radius", d.Geometry.Radius,
		"level", d.Geometry.FillLevel,
		"waves", len(d.Waves),
		"static", len(d.AnimationErrors()) > 0)
	return doc, nil
}
