package basins

import "gonum.org/v1/gonum/spatial/r2"

// Integrator parameters. All distances are in simulation units.
const (
	DefaultSteps         = 3000
	DefaultStepSize      = 0.01
	DefaultCaptureRadius = 0.1
	DefaultNearRadius    = 0.02
	DefaultEscapeRadius  = 1500.0
	DefaultDampening     = 1.0
)

// Integrator is a fixed-step Euler integrator with early exits.
type Integrator struct {
	// Steps is the step budget of one trajectory.
	Steps int

	// StepSize is the time step h.
	StepSize float64

	// CaptureRadius: a particle released closer than this to an attractor
	// is captured before the first step.
	CaptureRadius float64

	// NearRadius: a particle closer than this to an attractor during a step
	// is captured.
	NearRadius float64

	// EscapeRadius: a particle farther than this from the origin after a
	// step has escaped.
	EscapeRadius float64

	// Dampening scales the velocity once per step. 1 disables it.
	Dampening float64
}

// DefaultIntegrator returns the integrator used by Simulate.
func DefaultIntegrator() Integrator {
	return Integrator{
		Steps:         DefaultSteps,
		StepSize:      DefaultStepSize,
		CaptureRadius: DefaultCaptureRadius,
		NearRadius:    DefaultNearRadius,
		EscapeRadius:  DefaultEscapeRadius,
		Dampening:     DefaultDampening,
	}
}

// Simulate integrates a particle released at rest at (x, y) with the default
// integrator and returns its terminal point.
func Simulate(attractors []Attractor, x, y float64) Point {
	return DefaultIntegrator().Simulate(attractors, x, y)
}

// Simulate integrates a particle released at rest at (x, y) and returns its
// terminal point:
//
//   - the position of the first attractor within CaptureRadius of the start;
//   - the position of an attractor the particle comes within NearRadius of;
//   - the first position farther than EscapeRadius from the origin;
//   - otherwise the position after Steps steps.
//
// Within a step every attractor's force is applied to the velocity in turn,
// and the near check for an attractor runs right after its own
// contribution. The result is a pure function of its arguments.
func (in Integrator) Simulate(attractors []Attractor, x, y float64) Point {
	pos := Point{X: x, Y: y}

	for _, a := range attractors {
		if distance(pos, a.Pos()) < in.CaptureRadius {
			return a.Pos()
		}
	}

	var vel Point
	for range in.Steps {
		for _, a := range attractors {
			vel = addScaled(vel, in.StepSize, Force(a, pos))
			if distance(pos, a.Pos()) < in.NearRadius {
				return a.Pos()
			}
		}
		vel = r2.Scale(in.Dampening, vel)
		pos = addScaled(pos, in.StepSize, vel)

		if in.Escaped(pos) {
			return pos
		}
	}
	return pos
}

// Escaped reports whether p lies beyond the escape radius.
func (in Integrator) Escaped(p Point) bool {
	return norm(p) > in.EscapeRadius
}

// addScaled returns p + s*q with the product rounded before the add, so
// trajectories are bit-identical on targets that fuse multiply-add.
func addScaled(p Point, s float64, q Point) Point {
	return Point{X: p.X + float64(s*q.X), Y: p.Y + float64(s*q.Y)}
}
