package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// G is the Newtonian constant of gravitation in SI units.
const G = 6.6743e-11

// gravityForce is the pull of a body of mass m2 at p2 on a body of mass m1 at
// p1: scale*G*m1*m2/d^2 toward p2. ok is false when the bodies are closer than
// eps and the direction is undefined.
func gravityForce(scale, m1, m2 float64, p1, p2 cp.Vector, eps float64) (f cp.Vector, ok bool) {
	delta := p2.Sub(p1)
	d := delta.Length()
	if d <= eps {
		return cp.Vector{}, false
	}
	magnitude := scale * G * m1 * m2 / (d * d)
	return delta.Mult(magnitude / d), true
}

// dragDelta is the velocity change from quadratic drag over dt. It opposes v
// and never exceeds |v|, so drag can stop a body but not reverse it. ok is
// false for a (near) zero velocity.
func dragDelta(v cp.Vector, coefficient, reference, dt, eps float64) (dv cp.Vector, ok bool) {
	speed := v.Length()
	if speed <= eps || reference <= 0 {
		return cp.Vector{}, false
	}
	ratio := speed / reference
	magnitude := math.Min(coefficient*ratio*ratio*dt, speed)
	return v.Mult(-magnitude / speed), true
}
