package basins

import (
	"io"
	"time"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default 10000x10000 render
//	r, err := basins.New()
//
//	// Small preview render with three attractors
//	r, err := basins.New(
//	    basins.WithSize(800, 800),
//	    basins.WithAttractors(
//	        basins.Attractor{X: 1, Y: 1, Mass: 1},
//	        basins.Attractor{X: -1, Y: -1, Mass: 1},
//	        basins.Attractor{X: -1, Y: 1, Mass: 1},
//	    ),
//	)
type Option func(*options)

// options holds the configuration being built by New.
type options struct {
	cfg      Config
	progress io.Writer
	now      func() time.Time
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		cfg: DefaultConfig(),
		now: time.Now,
	}
}

// WithConfig replaces the whole configuration. Options after it still apply.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithSize sets the image size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.cfg.Width = width
		o.cfg.Height = height
	}
}

// WithZoom sets the half-extent of the simulated square.
func WithZoom(zoom float64) Option {
	return func(o *options) {
		o.cfg.Zoom = zoom
	}
}

// WithAttractors sets the ordered attractor set.
func WithAttractors(attractors ...Attractor) Option {
	return func(o *options) {
		o.cfg.Attractors = append([]Attractor(nil), attractors...)
	}
}

// WithIntegrator sets the integrator parameters.
func WithIntegrator(in Integrator) Option {
	return func(o *options) {
		o.cfg.Integrator = in
	}
}

// WithWorkers sets the worker pool size. 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.cfg.Workers = n
	}
}

// WithProgress sets where the progress bar is drawn. Defaults to os.Stderr.
// Pass io.Discard to hide it.
func WithProgress(w io.Writer) Option {
	return func(o *options) {
		o.progress = w
	}
}

// WithProgressInterval sets the progress bar refresh period.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.cfg.ProgressInterval = d
	}
}

// WithJitter displaces every attractor by up to ±amount/2 in position and
// mass, using a generator seeded with seed. The displaced set is fixed when
// the Renderer is created.
func WithJitter(amount float64, seed uint64) Option {
	return func(o *options) {
		o.cfg.Jitter = amount
		o.cfg.JitterSeed = seed
	}
}

// WithClock replaces time.Now for artifact timestamps and progress timing.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
