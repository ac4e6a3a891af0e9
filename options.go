package fractal

import (
	"errors"
	"fmt"
)

// Default configuration: a 720x480 grid with an 80 iteration budget.
const (
	DefaultWidth        = 720
	DefaultHeight       = 480
	DefaultMaxIteration = 80
	DefaultZoom         = 1.0

	// MaxIterationLimit is the largest budget for which Gray still has a
	// non-zero intensity step (255 / (limit+1) >= 1).
	MaxIterationLimit = 254
)

var (
	// ErrInvalidSize is returned when the grid is smaller than 2x2. The
	// transform divides by width-1 and height-1.
	ErrInvalidSize = errors.New("fractal: width and height must be at least 2")

	// ErrInvalidZoom is returned when the initial zoom is below MinZoom.
	ErrInvalidZoom = errors.New("fractal: zoom must be at least 1")

	// ErrInvalidMaxIteration is returned for budgets outside [1, MaxIterationLimit].
	ErrInvalidMaxIteration = errors.New("fractal: max iteration out of range")
)

// Config holds the recognized configuration options of a Renderer.
type Config struct {
	Width        int
	Height       int
	MaxIteration int
	InitialZoom  float64
	Origin       complex128

	// Workers is the number of engine goroutines. Zero or negative means
	// GOMAXPROCS; one runs the engine on the calling goroutine.
	Workers int
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := fractal.NewRenderer(
//	    fractal.WithSize(1280, 720),
//	    fractal.WithMaxIteration(120),
//	)
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		MaxIteration: DefaultMaxIteration,
		InitialZoom:  DefaultZoom,
	}
}

// WithSize sets the pixel grid dimensions. They are fixed for the
// lifetime of the Renderer.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithMaxIteration sets the iteration budget.
func WithMaxIteration(n int) Option {
	return func(c *Config) {
		c.MaxIteration = n
	}
}

// WithInitialZoom sets the zoom of the first viewport.
func WithInitialZoom(zoom float64) Option {
	return func(c *Config) {
		c.InitialZoom = zoom
	}
}

// WithOrigin sets the plane point at the centre of the first viewport.
func WithOrigin(origin complex128) Option {
	return func(c *Config) {
		c.Origin = origin
	}
}

// WithWorkers sets the engine worker count.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// NewConfig applies opts on top of DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports whether c describes a renderable configuration.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.MaxIteration < 1 || c.MaxIteration > MaxIterationLimit {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidMaxIteration, c.MaxIteration, MaxIterationLimit)
	}
	// Written negated so NaN is rejected too.
	if !(c.InitialZoom >= MinZoom) {
		return fmt.Errorf("%w: got %g", ErrInvalidZoom, c.InitialZoom)
	}
	return nil
}

// Viewport returns the initial viewport described by c.
func (c Config) Viewport() Viewport {
	return Viewport{
		Origin: c.Origin,
		Zoom:   c.InitialZoom,
		Width:  c.Width,
		Height: c.Height,
	}
}
