package parallel

import (
	"errors"
	"runtime"
	"sync/atomic"
)

// ErrBufferSize is returned when the destination buffer does not hold exactly
// width*height RGB pixels.
var ErrBufferSize = errors.New("parallel: buffer size does not match canvas")

// MaxClasses is the number of class labels tallied individually in Stats.
const MaxClasses = 8

// Sample is the outcome of shading one pixel.
type Sample struct {
	// RGB is the color written to the pixel.
	RGB [3]byte

	// Class is the label tallied in Stats. Labels outside [0, MaxClasses)
	// are counted in Stats.Other.
	Class int

	// Escaped marks samples whose trajectory left the simulation region.
	Escaped bool
}

// ShadeFunc computes the sample for the canvas pixel (x, y).
// It is called concurrently from every worker and must not share mutable state.
type ShadeFunc func(x, y int) Sample

// Stats tallies samples by class.
type Stats struct {
	Classes [MaxClasses]uint64
	Other   uint64
	Escaped uint64
}

// add records one sample.
func (s *Stats) add(smp Sample) {
	if smp.Class >= 0 && smp.Class < MaxClasses {
		s.Classes[smp.Class]++
	} else {
		s.Other++
	}
	if smp.Escaped {
		s.Escaped++
	}
}

// merge folds o into s.
func (s *Stats) merge(o *Stats) {
	for i := range s.Classes {
		s.Classes[i] += o.Classes[i]
	}
	s.Other += o.Other
	s.Escaped += o.Escaped
}

// Total returns the number of samples tallied.
func (s *Stats) Total() uint64 {
	total := s.Other
	for _, n := range s.Classes {
		total += n
	}
	return total
}

// ParallelRasterizer shades every pixel of a canvas in parallel.
//
// Tiles are handed to a WorkerPool; each tile writes only its own pixels of
// the shared buffer, so no two workers ever touch the same byte. The only
// shared mutable state is the progress counter, updated with one atomic add
// per pixel.
//
// Thread safety: Render must not be called concurrently on the same
// rasterizer. Progress and Done may be read at any time.
type ParallelRasterizer struct {
	grid     *TileGrid
	pool     *WorkerPool
	done     *DoneSet
	width    int
	height   int
	progress atomic.Uint64
}

// NewParallelRasterizer creates a rasterizer with GOMAXPROCS workers.
// Returns nil if width or height is <= 0.
func NewParallelRasterizer(width, height int) *ParallelRasterizer {
	return NewParallelRasterizerWithWorkers(width, height, runtime.GOMAXPROCS(0))
}

// NewParallelRasterizerWithWorkers creates a rasterizer with a specific worker
// count. If workers <= 0, GOMAXPROCS is used.
// Returns nil if width or height is <= 0.
func NewParallelRasterizerWithWorkers(width, height, workers int) *ParallelRasterizer {
	if width <= 0 || height <= 0 {
		return nil
	}

	grid := NewTileGrid(width, height)
	return &ParallelRasterizer{
		grid:   grid,
		pool:   NewWorkerPool(workers),
		done:   NewDoneSet(grid.TileCount()),
		width:  width,
		height: height,
	}
}

// Width returns the canvas width in pixels.
func (pr *ParallelRasterizer) Width() int {
	return pr.width
}

// Height returns the canvas height in pixels.
func (pr *ParallelRasterizer) Height() int {
	return pr.height
}

// Workers returns the number of pool workers.
func (pr *ParallelRasterizer) Workers() int {
	return pr.pool.Workers()
}

// TileCount returns the total number of tiles.
func (pr *ParallelRasterizer) TileCount() int {
	return pr.grid.TileCount()
}

// Grid returns the underlying TileGrid.
func (pr *ParallelRasterizer) Grid() *TileGrid {
	return pr.grid
}

// Progress returns the shared counter of shaded pixels.
// It is reset to zero at the start of every Render.
func (pr *ParallelRasterizer) Progress() *atomic.Uint64 {
	return &pr.progress
}

// Done returns the set of tiles finished by the last Render.
func (pr *ParallelRasterizer) Done() *DoneSet {
	return pr.done
}

// Render shades every pixel into dst, which must be exactly
// width*height*BytesPerPixel bytes in row-major RGB order.
//
// Render blocks until every tile has been shaded and returns the merged
// per-class tallies. A panic in shade is not recovered.
func (pr *ParallelRasterizer) Render(dst []byte, shade ShadeFunc) (Stats, error) {
	if len(dst) != pr.width*pr.height*BytesPerPixel {
		return Stats{}, ErrBufferSize
	}

	pr.progress.Store(0)
	pr.done.Reset()

	tiles := pr.grid.AllTiles()
	perTile := make([]Stats, len(tiles))

	work := make([]func(), len(tiles))
	for i, tile := range tiles {
		work[i] = func() {
			pr.shadeTile(tile, dst, shade, &perTile[tile.Index])
		}
	}

	pr.pool.ExecuteAll(work)

	var stats Stats
	for i := range perTile {
		stats.merge(&perTile[i])
	}
	return stats, nil
}

// shadeTile shades the pixels of a single tile.
func (pr *ParallelRasterizer) shadeTile(t *Tile, dst []byte, shade ShadeFunc, stats *Stats) {
	x0, y0, w, h := t.Bounds()

	for y := y0; y < y0+h; y++ {
		row := y * pr.width
		for x := x0; x < x0+w; x++ {
			smp := shade(x, y)
			offset := (row + x) * BytesPerPixel
			px := dst[offset : offset+BytesPerPixel : offset+BytesPerPixel]
			px[0] = smp.RGB[0]
			px[1] = smp.RGB[1]
			px[2] = smp.RGB[2]
			stats.add(smp)
			pr.progress.Add(1)
		}
	}

	pr.done.Mark(t.Index)
}

// Close stops the worker pool.
// The rasterizer should not be used after Close is called.
func (pr *ParallelRasterizer) Close() {
	pr.pool.Close()
}
