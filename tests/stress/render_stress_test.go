// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build stress

package stress

import (
	"bytes"
	"io"
	"runtime"
	"sync"
	"testing"

	"github.com/gogpu/basins"
	"github.com/gogpu/basins/internal/parallel"
)

// =============================================================================
// Stress Tests for the Parallel Render Path
// These tests verify stability under heavy worker and goroutine load
// =============================================================================

// TestStressConcurrentRenderers runs several renderers at once and checks
// that they agree.
func TestStressConcurrentRenderers(t *testing.T) {
	const renderers = 8

	results := make([][]byte, renderers)
	var wg sync.WaitGroup
	for i := range renderers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := basins.New(
				basins.WithSize(256, 256),
				basins.WithWorkers(1+i%4),
				basins.WithProgress(io.Discard),
			)
			if err != nil {
				t.Error(err)
				return
			}
			art, err := r.Render()
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = art.Pix
		}()
	}
	wg.Wait()

	for i := 1; i < renderers; i++ {
		if !bytes.Equal(results[i], results[0]) {
			t.Errorf("renderer %d produced different pixels", i)
		}
	}
}

// TestStressOversubscribedPool uses far more workers than CPUs.
func TestStressOversubscribedPool(t *testing.T) {
	workers := runtime.GOMAXPROCS(0) * 16

	r, err := basins.New(
		basins.WithSize(512, 384),
		basins.WithWorkers(workers),
		basins.WithProgress(io.Discard),
	)
	if err != nil {
		t.Fatal(err)
	}

	art, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}

	var total uint64
	for _, n := range art.Histogram {
		total += n
	}
	if total != 512*384 {
		t.Errorf("histogram total = %d, want %d", total, 512*384)
	}
	t.Logf("%d workers: histogram %v, %d escaped", workers, art.Histogram, art.Escaped)
}

// TestStressRepeatedRasterizer reuses one rasterizer for many renders.
func TestStressRepeatedRasterizer(t *testing.T) {
	const w, h = 300, 200
	pr := parallel.NewParallelRasterizer(w, h)
	defer pr.Close()

	buf := make([]byte, w*h*parallel.BytesPerPixel)
	shade := func(x, y int) parallel.Sample {
		return parallel.Sample{RGB: [3]byte{byte(x), byte(y), byte(x ^ y)}, Class: (x + y) % 3}
	}

	for i := range 100 {
		stats, err := pr.Render(buf, shade)
		if err != nil {
			t.Fatal(err)
		}
		if got := pr.Progress().Load(); got != w*h {
			t.Fatalf("render %d: progress = %d, want %d", i, got, w*h)
		}
		if !pr.Done().Complete() {
			t.Fatalf("render %d: missing tiles %v", i, pr.Done().Missing())
		}
		if stats.Total() != w*h {
			t.Fatalf("render %d: stats total = %d, want %d", i, stats.Total(), w*h)
		}
	}
}
