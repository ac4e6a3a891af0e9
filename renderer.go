package fractal

import (
	"errors"
	"fmt"
	"time"
)

// ErrSizeMismatch is returned when a viewport does not match the grid size
// a Renderer was created with.
var ErrSizeMismatch = errors.New("fractal: viewport size does not match renderer")

// Stats describes the last generation cycle.
type Stats struct {
	Passes  int
	Elapsed time.Duration
}

// Renderer runs generation cycles: viewport → coordinate field → iteration
// grid → pixels. It owns every buffer of the cycle, allocated once up front.
//
// A Renderer is not safe for concurrent use. Render runs to completion
// before returning, so at most one generation is in flight.
type Renderer struct {
	cfg    Config
	engine *Engine
	frame  *Frame
	pixmap *Pixmap
	stats  Stats
}

// NewRenderer validates the configuration and allocates the frame and
// pixel buffers.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:    cfg,
		frame:  NewFrame(cfg.Width, cfg.Height),
		pixmap: NewPixmap(cfg.Width, cfg.Height),
		engine: NewEngine(cfg.MaxIteration, cfg.Workers),
	}

	Logger().Debug("fractal: renderer created",
		"width", cfg.Width,
		"height", cfg.Height,
		"max_iteration", cfg.MaxIteration,
		"workers", r.engine.Workers())
	return r, nil
}

// Config returns the configuration the renderer was created with.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Render generates the image for v. The returned Pixmap is owned by the
// renderer and is overwritten by the next call.
func (r *Renderer) Render(v Viewport) (*Pixmap, error) {
	if v.Width != r.cfg.Width || v.Height != r.cfg.Height {
		return nil, fmt.Errorf("%w: %dx%d, want %dx%d",
			ErrSizeMismatch, v.Width, v.Height, r.cfg.Width, r.cfg.Height)
	}

	start := time.Now()

	v.FillField(r.frame.Field)
	passes := r.engine.Generate(r.frame)
	r.pixmap.Colorize(r.frame.Iterations, r.cfg.MaxIteration)

	r.stats = Stats{Passes: passes, Elapsed: time.Since(start)}

	Logger().Debug("fractal: render cycle",
		"origin", v.Origin,
		"zoom", v.Zoom,
		"passes", passes,
		"elapsed", r.stats.Elapsed)
	return r.pixmap, nil
}

// Frame returns the working buffers of the last cycle.
func (r *Renderer) Frame() *Frame {
	return r.frame
}

// Stats returns statistics for the last cycle.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Close stops the engine's workers.
func (r *Renderer) Close() {
	r.engine.Close()
}
