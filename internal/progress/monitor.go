// Package progress reports rasterization progress from a background goroutine.
//
// A Monitor samples a shared counter at a fixed interval and redraws a
// one-line progress bar. It only ever reads the counter, so the workers that
// increment it are never slowed down or blocked.
package progress

import (
	"io"
	"os"
	"sync"
	"time"
)

// DefaultInterval is the sampling period used when none is configured.
const DefaultInterval = 200 * time.Millisecond

// Counter is the shared progress counter. *atomic.Uint64 satisfies it.
type Counter interface {
	Load() uint64
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithInterval sets the sampling period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithOutput sets where the bar is drawn. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(m *Monitor) {
		if w != nil {
			m.out = w
		}
	}
}

// WithWidth sets the number of bar cells.
func WithWidth(cells int) Option {
	return func(m *Monitor) {
		if cells > 0 {
			m.cells = cells
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) {
		if now != nil {
			m.now = now
		}
	}
}

// Monitor is a running progress reporter.
//
// The stop channel is the one-shot termination signal: Stop closes it exactly
// once and then waits for the reporting goroutine to exit.
type Monitor struct {
	counter  Counter
	total    uint64
	interval time.Duration
	out      io.Writer
	cells    int
	now      func() time.Time

	bar      *Bar
	start    time.Time
	stop     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex
	samples int
	last    uint64
}

// Start launches a Monitor for a counter that will reach total.
func Start(counter Counter, total uint64, opts ...Option) *Monitor {
	m := &Monitor{
		counter:  counter,
		total:    total,
		interval: DefaultInterval,
		out:      os.Stderr,
		cells:    40,
		now:      time.Now,
		stop:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.bar = NewBar(m.out, m.total, m.cells)
	m.start = m.now()

	go m.run()
	return m
}

// run is the reporting loop.
func (m *Monitor) run() {
	defer close(m.exited)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.sample()

		select {
		case <-m.stop:
			m.sample()
			m.bar.Finish()
			return
		case <-ticker.C:
		}
	}
}

// sample reads the counter once and redraws the bar.
func (m *Monitor) sample() {
	n := m.counter.Load()
	m.bar.Draw(n, m.now().Sub(m.start))

	m.mu.Lock()
	m.samples++
	m.last = n
	m.mu.Unlock()
}

// Stop sends the termination signal and waits for the reporting goroutine
// to draw its final frame and exit. Stop is safe to call more than once.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
	<-m.exited
}

// Samples returns how many times the counter has been read.
func (m *Monitor) Samples() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.samples
}

// Last returns the most recently sampled counter value.
func (m *Monitor) Last() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
