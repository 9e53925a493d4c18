// Package geom holds convex polygon helpers shared by shape construction and
// the separating axis test. Vertex rings are expressed with cp.Vector.
package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Epsilon is the shortest edge length accepted by ComputeNormals.
const Epsilon = 1e-9

var (
	ErrTooFewVertices = errors.New("geom: polygon needs at least 3 vertices")
	ErrDegenerateEdge = errors.New("geom: zero-length edge")
)

// ComputeNormals returns one unit normal per edge i -> (i+1)%n. Each normal is
// the edge vector rotated a quarter turn clockwise, (dy, -dx), which points
// outward for the counter-clockwise rings built by RegularPolygon and Rectangle.
func ComputeNormals(vertices []cp.Vector) ([]cp.Vector, error) {
	n := len(vertices)
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, n)
	}

	normals := make([]cp.Vector, 0, n)
	for i := range vertices {
		edge := vertices[(i+1)%n].Sub(vertices[i])
		length := edge.Length()
		if length <= Epsilon {
			return nil, fmt.Errorf("%w: edge %d", ErrDegenerateEdge, i)
		}
		normals = append(normals, edge.ReversePerp().Mult(1/length))
	}
	return normals, nil
}

// RegularPolygon places n vertices at angles 2*pi*i/n around the origin.
func RegularPolygon(n int, radius float64) []cp.Vector {
	if n <= 0 {
		return nil
	}
	verts := make([]cp.Vector, n)
	for i := range verts {
		t := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = cp.Vector{X: radius * math.Cos(t), Y: radius * math.Sin(t)}
	}
	return verts
}

// Rectangle returns the four corners of a width x height box centred on the
// origin: top-right, top-left, bottom-left, bottom-right.
func Rectangle(width, height float64) []cp.Vector {
	hw, hh := width/2, height/2
	return []cp.Vector{
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
	}
}

// Translate returns a new ring with offset added to every vertex.
func Translate(vertices []cp.Vector, offset cp.Vector) []cp.Vector {
	out := make([]cp.Vector, len(vertices))
	for i, v := range vertices {
		out[i] = v.Add(offset)
	}
	return out
}

// Project returns the interval covered by vertices along axis.
func Project(vertices []cp.Vector, axis cp.Vector) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range vertices {
		d := axis.Dot(v)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// Separated reports whether [minA,maxA] and [minB,maxB] are disjoint.
// Touching intervals are not separated.
func Separated(minA, maxA, minB, maxB float64) bool {
	return maxA < minB || maxB < minA
}

// Overlap is the length shared by two intervals; negative when they are
// disjoint.
func Overlap(minA, maxA, minB, maxB float64) float64 {
	return math.Min(maxA, maxB) - math.Max(minA, minB)
}
