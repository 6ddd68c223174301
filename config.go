package basins

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/basins/internal/progress"
)

// Default render parameters.
const (
	DefaultWidth  = 10000
	DefaultHeight = 10000
	DefaultZoom   = 3.0
)

// Config holds every parameter of a render.
//
// The integrator parameters are promoted, so cfg.Steps and
// cfg.Integrator.Steps are the same field.
type Config struct {
	// Width and Height are the image size in pixels.
	Width, Height int

	// Zoom is the half-extent of the simulated square: the image spans
	// [-Zoom, Zoom) on both axes.
	Zoom float64

	// Attractors is the ordered attractor set. At most MaxAttractors.
	Attractors []Attractor

	Integrator

	// Workers is the size of the worker pool. 0 uses GOMAXPROCS.
	Workers int

	// ProgressInterval is the progress bar refresh period.
	ProgressInterval time.Duration

	// Jitter, when positive, displaces each attractor's position and mass
	// by up to ±Jitter/2 before rendering. JitterSeed seeds the generator.
	Jitter     float64
	JitterSeed uint64
}

// DefaultConfig returns the default configuration: a 10000x10000 image of
// the two default attractors at zoom 3.
func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Zoom:             DefaultZoom,
		Attractors:       DefaultAttractors(),
		Integrator:       DefaultIntegrator(),
		ProgressInterval: progress.DefaultInterval,
	}
}

// Pixels returns Width*Height.
func (c Config) Pixels() int {
	return c.Width * c.Height
}

// Validate reports the first problem that would prevent c from rendering.
// Every returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return invalid("size %dx%d must be positive", c.Width, c.Height)
	case !finite(c.Zoom) || c.Zoom <= 0:
		return invalid("zoom %g must be positive and finite", c.Zoom)
	case len(c.Attractors) == 0:
		return invalid("no attractors")
	case len(c.Attractors) > MaxAttractors:
		return invalid("%d attractors, palette holds %d", len(c.Attractors), MaxAttractors)
	case c.Steps < 0:
		return invalid("steps %d must not be negative", c.Steps)
	case !finite(c.StepSize) || c.StepSize <= 0:
		return invalid("step size %g must be positive and finite", c.StepSize)
	case !finite(c.CaptureRadius) || c.CaptureRadius <= 0:
		return invalid("capture radius %g must be positive and finite", c.CaptureRadius)
	case !finite(c.NearRadius) || c.NearRadius <= 0:
		return invalid("near radius %g must be positive and finite", c.NearRadius)
	case !finite(c.EscapeRadius) || c.EscapeRadius <= 0:
		return invalid("escape radius %g must be positive and finite", c.EscapeRadius)
	case !finite(c.Dampening):
		return invalid("dampening %g must be finite", c.Dampening)
	case c.Workers < 0:
		return invalid("workers %d must not be negative", c.Workers)
	case c.ProgressInterval <= 0:
		return invalid("progress interval %v must be positive", c.ProgressInterval)
	case !finite(c.Jitter) || c.Jitter < 0:
		return invalid("jitter %g must be non-negative and finite", c.Jitter)
	}

	for i, a := range c.Attractors {
		if !finite(a.X) || !finite(a.Y) || !finite(a.Mass) {
			return invalid("attractor %d: %v is not finite", i, a)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
