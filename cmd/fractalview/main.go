// Command fractalview is an interactive escape-time fractal viewer.
//
// By default it opens a window; scroll to zoom at the cursor, press H to
// toggle the status overlay and Q or Escape to quit. The overlay is drawn
// over the picture, never into it. With -headless it
// replays a scripted list of zoom steps and writes the frames to disk
// instead:
//
//	fractalview -headless -script "in@500,120*30" -out frame-%d.png
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/text/language"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/hud"
	"github.com/gogpu/fractal/internal/viewer"
)

type options struct {
	width, height int
	maxIteration  int
	zoom          float64
	originRe      float64
	originIm      float64
	workers       int

	headless bool
	script   string
	out      string

	hud      bool
	hudColor string
	lang     string
	logLevel string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("fractalview", flag.ContinueOnError)
	fs.IntVar(&o.width, "width", fractal.DefaultWidth, "image width")
	fs.IntVar(&o.height, "height", fractal.DefaultHeight, "image height")
	fs.IntVar(&o.maxIteration, "max-iteration", fractal.DefaultMaxIteration, "iteration budget")
	fs.Float64Var(&o.zoom, "zoom", fractal.DefaultZoom, "initial zoom (>= 1)")
	fs.Float64Var(&o.originRe, "origin-re", 0, "real part of the initial view centre")
	fs.Float64Var(&o.originIm, "origin-im", 0, "imaginary part of the initial view centre")
	fs.IntVar(&o.workers, "workers", 0, "engine goroutines (0 = GOMAXPROCS, 1 = sequential)")
	fs.BoolVar(&o.headless, "headless", false, "replay -script and write frames instead of opening a window")
	fs.StringVar(&o.script, "script", "", `headless zoom steps, e.g. "in@360,240*10; out@0,0"`)
	fs.StringVar(&o.out, "out", "fractal.png", "headless output file (.png or .bmp, %d for one file per frame)")
	fs.BoolVar(&o.hud, "hud", false, "show the status overlay (toggle with H in the window; drawn into the written files with -headless)")
	fs.StringVar(&o.hudColor, "hud-color", "#ffcc00", "overlay text colour")
	fs.StringVar(&o.lang, "lang", "en", "language for overlay number formatting")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

func newOverlay(o options) (*hud.Overlay, error) {
	tag, err := language.Parse(o.lang)
	if err != nil {
		return nil, fmt.Errorf("invalid -lang %q: %w", o.lang, err)
	}
	c, err := fractal.ParseHex(o.hudColor)
	if err != nil {
		return nil, err
	}
	ov := hud.New(tag)
	ov.Color = c
	return ov, nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logger, err := newLogger(o.logLevel)
	if err != nil {
		log.Fatal(err)
	}
	fractal.SetLogger(logger)

	overlay, err := newOverlay(o)
	if err != nil {
		log.Fatal(err)
	}

	r, err := fractal.NewRenderer(
		fractal.WithSize(o.width, o.height),
		fractal.WithMaxIteration(o.maxIteration),
		fractal.WithInitialZoom(o.zoom),
		fractal.WithOrigin(complex(o.originRe, o.originIm)),
		fractal.WithWorkers(o.workers),
	)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	session := fractal.NewSession(r)
	if o.headless {
		if !o.hud {
			overlay = nil
		}
		err = runHeadless(session, overlay, o)
	} else {
		err = viewer.New(session, overlay, o.hud).Run()
	}
	r.Close()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runHeadless(s *fractal.Session, overlay *hud.Overlay, o options) error {
	events, err := fractal.ParseScript(o.script)
	if err != nil {
		return err
	}

	sink := &fractal.FileSink{Path: o.out}
	if overlay != nil {
		sink.Overlay = func(pm *fractal.Pixmap) {
			st := s.Stats()
			v := s.Viewport()
			overlay.Draw(pm, hud.Info{Zoom: v.Zoom, Origin: v.Origin, Elapsed: st.Elapsed, Passes: st.Passes})
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fractal.Run(ctx, s, fractal.NewScriptSource(events), sink); err != nil {
		return err
	}
	log.Printf("Wrote %d frame(s) to %s (%dx%d)", sink.Frames(), o.out, o.width, o.height)
	return nil
}
