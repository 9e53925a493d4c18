package physics

import (
	"math"

	"github.com/icmeyer/boing/geom"
	"github.com/jakecoffman/cp"
)

// TestCollision runs the separating axis test over the face normals of a and
// b, a's axes first. It returns the axis of least overlap, oriented to push a
// away from b, and true when the shapes overlap. Touching shapes overlap.
func TestCollision(a, b *Shape) (cp.Vector, bool) {
	vertsA := a.WorldVertices()
	vertsB := b.WorldVertices()

	best := math.Inf(1)
	var mtv cp.Vector
	found := false

	for _, axes := range [2][]cp.Vector{a.normals, b.normals} {
		for _, axis := range axes {
			minA, maxA := geom.Project(vertsA, axis)
			minB, maxB := geom.Project(vertsB, axis)
			if geom.Separated(minA, maxA, minB, maxB) {
				return cp.Vector{}, false
			}
			if o := geom.Overlap(minA, maxA, minB, maxB); o < best {
				best = o
				mtv = axis
				found = true
			}
		}
	}
	if !found {
		return cp.Vector{}, false
	}

	if mtv.Dot(a.Body.Position.Sub(b.Body.Position)) < 0 {
		mtv = mtv.Neg()
	}
	return mtv, true
}

// reflect mirrors v about the unit axis n: v - 2(v.n)n.
func reflect(v, n cp.Vector) cp.Vector {
	return v.Sub(n.Mult(2 * v.Dot(n)))
}
