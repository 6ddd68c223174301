package basins

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gogpu/basins/internal/parallel"
	"github.com/gogpu/basins/internal/progress"
)

// Renderer renders basin images for a fixed configuration.
//
// A Renderer is immutable after New and may be used for several renders,
// but Render calls must not overlap if they share a progress writer.
type Renderer struct {
	cfg        Config
	attractors []Attractor
	progress   io.Writer
	now        func() time.Time
}

// New creates a Renderer from the default configuration adjusted by opts.
// It returns an error wrapping ErrInvalidConfig if the result is invalid.
func New(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	attractors := append([]Attractor(nil), o.cfg.Attractors...)
	if o.cfg.Jitter > 0 {
		attractors = PerturbAll(attractors, o.cfg.Jitter, o.cfg.JitterSeed)
	}

	out := o.progress
	if out == nil {
		out = os.Stderr
	}

	return &Renderer{
		cfg:        o.cfg,
		attractors: attractors,
		progress:   out,
		now:        o.now,
	}, nil
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	cfg := r.cfg
	cfg.Attractors = append([]Attractor(nil), cfg.Attractors...)
	return cfg
}

// Attractors returns the attractor set used for shading, after jitter.
func (r *Renderer) Attractors() []Attractor {
	return append([]Attractor(nil), r.attractors...)
}

// ToSim maps pixel (x, y) to simulation space.
func (r *Renderer) ToSim(x, y int) Point {
	return Point{
		X: r.cfg.Zoom * ((float64(x)/float64(r.cfg.Width))*2 - 1),
		Y: r.cfg.Zoom * ((float64(y)/float64(r.cfg.Height))*2 - 1),
	}
}

// Shade simulates and classifies pixel (x, y), returning its class and
// color. Escaped trajectories keep the color of their nearest attractor.
func (r *Renderer) Shade(x, y int) (class int, color RGB) {
	smp := r.shade(x, y)
	return smp.Class, smp.RGB
}

func (r *Renderer) shade(x, y int) parallel.Sample {
	start := r.ToSim(x, y)
	end := r.cfg.Integrator.Simulate(r.attractors, start.X, start.Y)
	class := Classify(r.attractors, end)
	return parallel.Sample{
		RGB:     ColorFor(class),
		Class:   class,
		Escaped: r.cfg.Escaped(end),
	}
}

// Render shades every pixel and returns the finished artifact.
//
// A progress bar runs on a background goroutine for the duration of the
// render and has drawn its final frame and exited before Render returns.
// Render fails with ErrIncomplete if any tile was left unshaded.
func (r *Renderer) Render() (*Artifact, error) {
	cfg := r.cfg
	log := Logger()

	pr := parallel.NewParallelRasterizerWithWorkers(cfg.Width, cfg.Height, cfg.Workers)
	defer pr.Close()

	log.Debug("basins: rasterizer ready",
		"tiles", pr.TileCount(),
		"tilesX", pr.Grid().TilesX(),
		"tilesY", pr.Grid().TilesY(),
		"workers", pr.Workers())

	created := r.now()
	total := uint64(cfg.Pixels())
	pix := make([]byte, cfg.Pixels()*parallel.BytesPerPixel)

	log.Info("basins: render started",
		"width", cfg.Width,
		"height", cfg.Height,
		"zoom", cfg.Zoom,
		"attractors", len(r.attractors))

	mon := progress.Start(pr.Progress(), total,
		progress.WithOutput(r.progress),
		progress.WithInterval(cfg.ProgressInterval),
		progress.WithClock(r.now))

	stats, err := pr.Render(pix, r.shade)
	mon.Stop()
	if err != nil {
		return nil, fmt.Errorf("basins: render: %w", err)
	}

	if missing := pr.Done().Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %d of %d tiles not shaded", ErrIncomplete, len(missing), pr.TileCount())
	}
	if n := pr.Progress().Load(); n != total {
		return nil, fmt.Errorf("%w: %d of %d pixels counted", ErrIncomplete, n, total)
	}

	art := &Artifact{
		Pix:        pix,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Zoom:       cfg.Zoom,
		Created:    created,
		Attractors: append([]Attractor(nil), r.attractors...),
		Histogram:  append([]uint64(nil), stats.Classes[:len(r.attractors)]...),
		Escaped:    stats.Escaped,
	}

	log.Info("basins: render finished",
		"elapsed", r.now().Sub(created),
		"histogram", art.Histogram)
	if art.Escaped > 0 {
		log.Warn("basins: trajectories escaped",
			"count", art.Escaped,
			"radius", cfg.EscapeRadius)
	}

	return art, nil
}

// Run renders with r and hands the artifact to sink, returning the path
// the sink reports. Nothing is saved if the render fails.
func Run(r *Renderer, sink Sink) (string, error) {
	art, err := r.Render()
	if err != nil {
		return "", err
	}
	return sink.Save(art)
}
