// Command curvelab evaluates the control points of a lab scene and renders
// the resulting curves.
//
// Usage:
//
//	curvelab [flags]
//
// The scene is read from the YAML file named by -scene; -points places points
// without one. Flags override the scene's settings. With -o, the frame is
// written as a PNG or SVG image; with -report, or without -o, a summary of the
// curves and their joints is printed. -watch re-renders whenever the scene
// file changes, until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"honnef.co/go/spline"
	"honnef.co/go/spline/lab"
	"honnef.co/go/spline/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "curvelab: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	scene    string
	points   string
	output   string
	method   spline.Method
	g1       spline.G1Policy
	segments int
	degree   int
	samples  int
	report   bool
	watch    bool
	verbose  bool

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("curvelab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.scene, "scene", "", "YAML scene `file`")
	fs.StringVar(&opts.points, "points", "", "control points as \"x,y x,y ...\", replacing the scene's")
	fs.StringVar(&opts.output, "o", "", "write the frame to `file` (.png or .svg)")
	fs.TextVar(&opts.method, "method", spline.Bernstein, "evaluation `method`: bernstein, decasteljau, bspline-definition or bspline-deboor")
	fs.TextVar(&opts.g1, "g1", spline.G1None, "continuity `policy` at segment joints: none, strict, mirror or align")
	fs.IntVar(&opts.segments, "segments", 0, "number of cubic segments (0 infers it from the points)")
	fs.IntVar(&opts.degree, "degree", 0, "B-spline degree (0 selects 3)")
	fs.IntVar(&opts.samples, "samples", 0, "samples per segment (0 selects 100)")
	fs.BoolVar(&opts.report, "report", false, "print sample counts, lengths and joints")
	fs.BoolVar(&opts.watch, "watch", false, "re-render whenever the scene file changes")
	fs.BoolVar(&opts.verbose, "v", false, "log debug output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	if opts.watch && opts.scene == "" {
		return nil, errors.New("-watch needs -scene")
	}
	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	lab.SetLogger(logger)
	defer lab.SetLogger(nil)

	once := func() error {
		sc, err := opts.loadScene()
		if err != nil {
			return err
		}
		var f lab.Frame
		if opts.output != "" {
			f, err = render.WriteScene(opts.output, sc)
			if err == nil {
				logger.Info("rendered", "output", opts.output, "curves", len(f.Curves))
			}
		} else {
			f, err = frame(sc)
		}
		if opts.report || opts.output == "" {
			writeReport(stdout, f)
		}
		return err
	}

	if !opts.watch {
		return once()
	}
	return watch(ctx, opts.scene, once, logger)
}

func frame(sc *lab.Scene) (lab.Frame, error) {
	s, err := sc.Session()
	if err != nil {
		return lab.Frame{}, err
	}
	return s.Frame()
}

// loadScene reads the scene file, if any, and applies the flags given on the
// command line.
func (opts *options) loadScene() (*lab.Scene, error) {
	sc := new(lab.Scene)
	if opts.scene != "" {
		var err error
		if sc, err = lab.ReadSceneFile(opts.scene); err != nil {
			return nil, err
		}
	}
	if opts.set["points"] {
		pts, err := parsePoints(opts.points)
		if err != nil {
			return nil, err
		}
		sc.Points = pts
	}
	if opts.set["method"] {
		sc.Method = opts.method
	}
	if opts.set["g1"] {
		sc.G1 = opts.g1
	}
	if opts.set["segments"] {
		sc.Segments = opts.segments
	}
	if opts.set["degree"] {
		sc.Degree = opts.degree
	}
	if opts.set["samples"] {
		sc.Samples = opts.samples
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}
