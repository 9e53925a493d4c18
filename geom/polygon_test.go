package geom

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func TestRegularPolygonNormals(t *testing.T) {
	for _, n := range []int{3, 4, 8, 16, 64} {
		verts := RegularPolygon(n, 2.5)
		require.Len(t, verts, n)

		normals, err := ComputeNormals(verts)
		require.NoError(t, err)
		require.Len(t, normals, n)
		for i, nv := range normals {
			assert.InDelta(t, 1.0, nv.Length(), tol, "n=%d normal %d", n, i)

			// outward: the normal points the same way as the edge midpoint
			mid := verts[i].Add(verts[(i+1)%n]).Mult(0.5)
			assert.Greater(t, nv.Dot(mid), 0.0, "n=%d normal %d not outward", n, i)
		}
	}
}

func TestRectangleWinding(t *testing.T) {
	verts := Rectangle(4, 2)
	assert.Equal(t, []cp.Vector{{X: 2, Y: 1}, {X: -2, Y: 1}, {X: -2, Y: -1}, {X: 2, Y: -1}}, verts)

	normals, err := ComputeNormals(verts)
	require.NoError(t, err)
	want := []cp.Vector{{X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: 0}}
	for i := range want {
		assert.InDelta(t, want[i].X, normals[i].X, tol)
		assert.InDelta(t, want[i].Y, normals[i].Y, tol)
	}
}

func TestComputeNormalsErrors(t *testing.T) {
	cases := []struct {
		name  string
		verts []cp.Vector
		want  error
	}{
		{"empty", nil, ErrTooFewVertices},
		{"segment", []cp.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}}, ErrTooFewVertices},
		{"repeated_vertex", []cp.Vector{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}}, ErrDegenerateEdge},
		{"closing_edge", []cp.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, ErrDegenerateEdge},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ComputeNormals(c.verts)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestProjectAndOverlap(t *testing.T) {
	verts := Translate(Rectangle(2, 2), cp.Vector{X: 3, Y: 0})
	min, max := Project(verts, cp.Vector{X: 1, Y: 0})
	assert.InDelta(t, 2.0, min, tol)
	assert.InDelta(t, 4.0, max, tol)

	diag := cp.Vector{X: 1, Y: 1}.Normalize()
	min, max = Project(Rectangle(2, 2), diag)
	assert.InDelta(t, -math.Sqrt2, min, tol)
	assert.InDelta(t, math.Sqrt2, max, tol)

	assert.False(t, Separated(0, 1, 1, 2), "touching intervals overlap")
	assert.True(t, Separated(0, 1, 1.5, 2))
	assert.InDelta(t, 0.5, Overlap(0, 1, 0.5, 3), tol)
	assert.InDelta(t, 1.0, Overlap(0, 5, 2, 3), tol)
	assert.Less(t, Overlap(0, 1, 2, 3), 0.0)
}
