package physics

import (
	"fmt"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestRectangleCollisionAlongX(t *testing.T) {
	// half widths 1 and 0.5: contact at d == 1.5
	cases := []struct {
		d    float64
		want bool
	}{
		{0, true},
		{1.0, true},
		{1.49, true},
		{1.5, true},
		{1.51, false},
		{3, false},
		{-1.49, true},
		{-1.51, false},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("d=%v", c.d), func(t *testing.T) {
			a := rectAt(t, 0, 0, 2, 2)
			b := rectAt(t, c.d, 0, 1, 1)
			_, got := TestCollision(a, b)
			assert.Equal(t, c.want, got)
			_, got = TestCollision(b, a)
			assert.Equal(t, c.want, got, "collision must be symmetric")
		})
	}
}

func TestCircleCollision(t *testing.T) {
	const r1, r2 = 1.0, 0.5
	// the 16-gon is inscribed, so the test is exact only outside
	// [cos(pi/16)*(r1+r2), r1+r2]
	for _, angle := range []float64{0, math.Pi / 4, 1, math.Pi} {
		dir := cp.ForAngle(angle)
		for _, c := range []struct {
			d    float64
			want bool
		}{
			{0.5, true},
			{1.3, true},
			{1.6, false},
			{4, false},
		} {
			t.Run(fmt.Sprintf("angle=%.2f/d=%v", angle, c.d), func(t *testing.T) {
				a := circleAt(t, 0, 0, r1)
				p := dir.Mult(c.d)
				b := circleAt(t, p.X, p.Y, r2)
				_, got := TestCollision(a, b)
				assert.Equal(t, c.want, got)
			})
		}
	}
}

func TestCircleRectangleScenario(t *testing.T) {
	circ := circleAt(t, 1, 0, 0.5)
	small := rectAt(t, 0, 0, 0.25, 0.25)
	near := rectAt(t, 1.5, 0, 0.5, 0.5)

	_, hit := TestCollision(circ, small)
	assert.False(t, hit, "gap between circle and small rectangle")
	_, hit = TestCollision(circ, near)
	assert.True(t, hit)
}

func TestMTVPushesAwayFromOther(t *testing.T) {
	a := rectAt(t, 0, 0, 2, 2)
	b := rectAt(t, 1.5, 0, 2, 2)

	mtv, ok := TestCollision(a, b)
	assert.True(t, ok)
	assert.InDelta(t, -1.0, mtv.X, 1e-9)
	assert.InDelta(t, 0.0, mtv.Y, 1e-9)

	mtv, ok = TestCollision(b, a)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, mtv.X, 1e-9)

	// vertical overlap is the smaller one here
	c := rectAt(t, 0.2, 1.8, 2, 2)
	mtv, ok = TestCollision(c, a)
	assert.True(t, ok)
	assert.InDelta(t, 0.0, mtv.X, 1e-9)
	assert.InDelta(t, 1.0, mtv.Y, 1e-9)
}

func TestReflect(t *testing.T) {
	v := cp.Vector{X: 3, Y: -4}
	n := cp.Vector{X: 0, Y: 1}
	assert.Equal(t, cp.Vector{X: 3, Y: 4}, reflect(v, n))
	assert.Equal(t, cp.Vector{X: 3, Y: 4}, reflect(v, n.Neg()), "sign of the axis does not matter")
}
