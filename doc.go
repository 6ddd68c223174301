// Package basins renders the basins of attraction of a small set of point
// masses.
//
// # Overview
//
// Every pixel of the output image is mapped to a point in simulation space.
// A massless test particle is released there with zero velocity and
// integrated under the inverse-square pull of the attractors until it is
// captured, escapes, or runs out of steps. The pixel is then colored by the
// attractor nearest to where the particle stopped.
//
// # Quick Start
//
//	import "github.com/gogpu/basins"
//
//	r, err := basins.New(basins.WithSize(1000, 1000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := basins.Run(r, basins.FileSink{Dir: "figs"})
//
// # Coordinate System
//
// Pixel (x, y) maps to
//
//	simX = zoom * ((x/width)*2 - 1)
//	simY = zoom * ((y/height)*2 - 1)
//
// so the image spans [-zoom, zoom) on both axes with the origin at the
// center pixel. Y increases downward, as in the image.
//
// # Concurrency
//
// Pixels are shaded in 64x64 tiles on a fixed-size work-stealing pool.
// Tiles never overlap, so the pixel buffer is written without locks; the
// only shared mutable state is an atomic progress counter, sampled by a
// single background goroutine that draws a progress bar.
package basins
