package basins

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// G is the gravitational constant of the force law.
const G = 1.0

// Point is a position or velocity in simulation space.
type Point = r2.Vec

// Attractor is a fixed point mass.
//
// An attractor set is ordered: the index of an attractor is its class and
// its priority when two attractors are equally near.
type Attractor struct {
	X, Y float64
	Mass float64
}

// Pos returns the attractor's position.
func (a Attractor) Pos() Point {
	return Point{X: a.X, Y: a.Y}
}

// String returns a human-readable representation.
func (a Attractor) String() string {
	return fmt.Sprintf("Attractor(%g, %g, mass %g)", a.X, a.Y, a.Mass)
}

// DefaultAttractors returns the default pair of unit masses at (1, 1) and
// (-1, -1).
func DefaultAttractors() []Attractor {
	return []Attractor{
		{X: 1, Y: 1, Mass: 1},
		{X: -1, Y: -1, Mass: 1},
	}
}

// Force returns the pull of a on a test particle at p.
//
// The magnitude is G*mass/d² and the direction is the unit vector from p
// toward a. p must not coincide with a.
func Force(a Attractor, p Point) Point {
	d := r2.Sub(a.Pos(), p)
	dist := norm(d)
	f := G * a.Mass / (dist * dist)
	return Point{X: f * d.X / dist, Y: f * d.Y / dist}
}

// distance returns the Euclidean distance between p and q.
func distance(p, q Point) float64 {
	return norm(r2.Sub(p, q))
}

// norm returns the length of p. Each square is rounded before the sum, so
// no target fuses it into a multiply-add.
func norm(p Point) float64 {
	return math.Sqrt(float64(p.X*p.X) + float64(p.Y*p.Y))
}
