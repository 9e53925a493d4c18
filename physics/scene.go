// Package physics advances a scene of circles and rectangles by fixed time
// steps: separating-axis collision response, pairwise gravity, quadratic drag
// and explicit Euler integration.
package physics

import "github.com/jakecoffman/cp"

// TransformSink receives the per-tick translation of each moving shape.
// Translate reports false when the handle has no visual, in which case the
// shape is left where it is.
type TransformSink interface {
	Translate(h Handle, delta cp.Vector) bool
}

// Scene is the simulation state owned by the driver. Shapes are processed in
// insertion order; that order decides which body of a colliding pair is
// resolved first.
type Scene struct {
	Shapes []*Shape
	Config Config
	// Sink is optional. Without one every non-stationary shape moves.
	Sink TransformSink
}

// NewScene returns an empty scene using DefaultConfig.
func NewScene() *Scene {
	return &Scene{Config: DefaultConfig()}
}

// Add appends shapes to the scene.
func (s *Scene) Add(shapes ...*Shape) {
	for _, sh := range shapes {
		if sh != nil {
			s.Shapes = append(s.Shapes, sh)
		}
	}
}

// StepReport counts what a single Advance did.
type StepReport struct {
	Collisions int
	// Coincident is the number of gravity pairs skipped because the bodies
	// share a position.
	Coincident int
	// Massless is the number of bodies that received no gravity because their
	// mass is zero.
	Massless int
	Moved    int
	// Unbound is the number of bodies the sink could not find a visual for.
	Unbound int
}

// Advance moves the scene forward by dt. The passes run in order and each one
// sees the velocities left by the previous pass: collision response, gravity,
// drag, integration.
func Advance(scene *Scene, dt float64) StepReport {
	var r StepReport
	if scene == nil {
		return r
	}
	r.Collisions = resolveCollisions(scene.Shapes, scene.Config)
	r.Coincident, r.Massless = applyGravity(scene.Shapes, scene.Config, dt)
	applyDrag(scene.Shapes, scene.Config, dt)
	r.Moved, r.Unbound = integrate(scene.Shapes, scene.Sink, dt)
	return r
}

// resolveCollisions reflects each moving shape off the first shape it
// overlaps. Only one partner is handled per shape per tick.
func resolveCollisions(shapes []*Shape, cfg Config) int {
	n := 0
	for i, current := range shapes {
		if current.Body.Stationary {
			continue
		}
		for j, other := range shapes {
			if i == j {
				continue
			}
			mtv, ok := TestCollision(current, other)
			if !ok {
				continue
			}
			v := current.Body.Velocity
			if !cfg.ApproachOnly || v.Dot(mtv) < 0 {
				current.Body.Velocity = reflect(v, mtv).Mult(cfg.Restitution)
				n++
			}
			break
		}
	}
	return n
}

func applyGravity(shapes []*Shape, cfg Config, dt float64) (coincident, massless int) {
	for i, current := range shapes {
		if current.Body.Stationary {
			continue
		}
		if current.Body.Mass <= 0 {
			massless++
			continue
		}
		var total cp.Vector
		for j, other := range shapes {
			if i == j {
				continue
			}
			f, ok := gravityForce(cfg.GravityScale, current.Body.Mass, other.Body.Mass,
				current.Body.Position, other.Body.Position, cfg.Epsilon)
			if !ok {
				coincident++
				continue
			}
			total = total.Add(f)
		}
		current.Body.Velocity = current.Body.Velocity.Add(total.Mult(dt / current.Body.Mass))
	}
	return coincident, massless
}

func applyDrag(shapes []*Shape, cfg Config, dt float64) {
	for _, s := range shapes {
		if s.Body.Stationary {
			continue
		}
		if dv, ok := dragDelta(s.Body.Velocity, cfg.DragCoefficient, cfg.DragReference, dt, cfg.Epsilon); ok {
			s.Body.Velocity = s.Body.Velocity.Add(dv)
		}
	}
}

func integrate(shapes []*Shape, sink TransformSink, dt float64) (moved, unbound int) {
	for _, s := range shapes {
		if s.Body.Stationary {
			continue
		}
		delta := s.Body.Velocity.Mult(dt)
		if sink != nil && !sink.Translate(s.handle, delta) {
			unbound++
			continue
		}
		s.Body.Position = s.Body.Position.Add(delta)
		moved++
	}
	return moved, unbound
}
